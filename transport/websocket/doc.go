// Package websocket pushes game state to connected clients over
// gorilla/websocket. Each connection belongs to a room and a player; the hub
// fans out public snapshots room-wide and private hands per player. Plays
// themselves arrive over the REST API.
package websocket
