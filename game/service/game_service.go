package service

import (
	"context"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

// StartOptions tunes a new match.
type StartOptions struct {
	Mode        engine.Mode `json:"mode"`
	TurnSeconds int         `json:"turn_seconds"`
	Seed        int64       `json:"seed,omitempty"`
}

// GameService is the application facade over running games. Implementations
// are safe for concurrent use.
type GameService interface {
	// StartSession creates and starts a game for the room's players.
	StartSession(ctx context.Context, roomID string, opts StartOptions) (engine.PublicState, error)

	// PlayCard resolves one card play and returns the updated public state.
	PlayCard(ctx context.Context, roomID, playerID, cardID string, target engine.Target) (engine.PublicState, error)

	// DrawCard draws one card for the player and returns the new hand.
	DrawCard(ctx context.Context, roomID, playerID string) ([]engine.Card, error)

	// DiscardCards throws away up to three cards and ends the turn.
	DiscardCards(ctx context.Context, roomID, playerID string, cardIDs []string) (engine.PublicState, error)

	// GetPublicState returns the room-wide snapshot.
	GetPublicState(ctx context.Context, roomID string) (engine.PublicState, error)

	// GetPrivateHand returns one player's hand.
	GetPrivateHand(ctx context.Context, roomID, playerID string) ([]engine.Card, error)

	// EndSession tears the room's game down.
	EndSession(ctx context.Context, roomID string) error

	// ListSessions returns the rooms with running games.
	ListSessions(ctx context.Context) ([]string, error)
}

// PlayerDirectory resolves the seated players of a room, in seating order.
type PlayerDirectory interface {
	RoomPlayers(roomID string) ([]engine.PlayerInfo, error)
}

// Broadcaster pushes state to connected clients. A nil Broadcaster is valid
// and drops everything.
type Broadcaster interface {
	// BroadcastState delivers the public snapshot to everyone in the room.
	BroadcastState(roomID string, st engine.PublicState)
	// SendHand delivers a private hand to a single player.
	SendHand(roomID, playerID string, hand []engine.Card)
	// NotifyGameEnded tells the room the match is over.
	NotifyGameEnded(roomID string, st engine.PublicState)
}
