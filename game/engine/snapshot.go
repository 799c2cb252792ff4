package engine

import "time"

// PublicOrgan is the board view of one organ slot.
type PublicOrgan struct {
	Organ    Card   `json:"organ"`
	Attached []Card `json:"attached"`
}

// PublicPlayer hides the hand contents behind a count.
type PublicPlayer struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	HandCount       int           `json:"hand_count"`
	Board           []PublicOrgan `json:"board"`
	SkipNextTurn    bool          `json:"skip_next_turn"`
	HasTrickOrTreat bool          `json:"has_trick_or_treat"`
}

// PublicState is the room-wide snapshot broadcast after every action.
type PublicState struct {
	RoomID          string         `json:"room_id"`
	Mode            Mode           `json:"mode"`
	Players         []PublicPlayer `json:"players"`
	CurrentPlayerID string         `json:"current_player_id"`
	TurnDeadline    time.Time      `json:"turn_deadline"`
	DeckCount       int            `json:"deck_count"`
	DiscardCount    int            `json:"discard_count"`
	DiscardTop      *Card          `json:"discard_top,omitempty"`
	Pending         *PendingAction `json:"pending,omitempty"`
	History         []string       `json:"history"`
	Winner          string         `json:"winner,omitempty"`
	Finished        bool           `json:"finished"`
}

// Public builds the snapshot every client in the room may see.
func (g *Game) Public() PublicState {
	st := PublicState{
		RoomID:          g.RoomID,
		Mode:            g.Mode,
		CurrentPlayerID: g.CurrentPlayer().ID,
		TurnDeadline:    g.TurnDeadline,
		DeckCount:       len(g.Deck),
		DiscardCount:    len(g.Discard),
		Pending:         g.Pending,
		History:         append([]string{}, g.History...),
		Winner:          g.Winner,
		Finished:        g.Finished,
	}
	if n := len(g.Discard); n > 0 {
		top := g.Discard[n-1]
		st.DiscardTop = &top
	}
	for _, p := range g.Players {
		pp := PublicPlayer{
			ID:              p.ID,
			Name:            p.Name,
			HandCount:       len(p.Hand),
			SkipNextTurn:    p.SkipNextTurn,
			HasTrickOrTreat: p.HasTrickOrTreat,
		}
		for _, s := range p.Board {
			pp.Board = append(pp.Board, PublicOrgan{
				Organ:    s.Organ,
				Attached: append([]Card{}, s.Attached...),
			})
		}
		st.Players = append(st.Players, pp)
	}
	return st
}

// Hand returns a copy of one player's private hand.
func (g *Game) Hand(playerID string) ([]Card, error) {
	p := g.player(playerID)
	if p == nil {
		return nil, ErrNoPlayer
	}
	return append([]Card{}, p.Hand...), nil
}
