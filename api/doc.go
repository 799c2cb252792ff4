// Package api provides the HTTP REST surface of the game server.
//
// Lobby:
//   - POST /api/players - register a player
//   - GET  /api/players/{id}
//   - POST /api/rooms - open a room
//   - GET  /api/rooms - list joinable public rooms
//   - GET  /api/rooms/{id}
//   - DELETE /api/rooms/{id} - tear down a room and its game
//   - POST /api/rooms/{id}/join
//   - POST /api/rooms/{id}/leave
//
// Game:
//   - POST /api/rooms/{id}/start - host starts the match
//   - GET  /api/rooms/{id}/state - public snapshot
//   - GET  /api/rooms/{id}/hand?player= - private hand
//   - POST /api/rooms/{id}/play
//   - POST /api/rooms/{id}/draw
//   - POST /api/rooms/{id}/discard
//
// Presets: GET /api/presets, GET /api/presets/{name}.
// WebSocket upgrade: /ws?room=&player=.
package api
