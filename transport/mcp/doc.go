// Package mcp exposes the game over the Model Context Protocol so AI agents
// can play. It is a thin client: every tool call is proxied to the REST API.
//
// MCP Tools:
//   - list_rooms: list joinable public rooms
//   - game_state: public snapshot of a room's game
//   - player_hand: a player's private hand
//   - play_card: play a card with an optional target
//   - draw_card: draw up to the hand limit
//   - discard_cards: discard one to three cards and end the turn
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: direct stdio communication for local MCP clients
//   - HTTP: a /mcp endpoint mounted next to the REST API
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
