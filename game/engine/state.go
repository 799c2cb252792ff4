package engine

import (
	"math/rand"
	"time"
)

// HandLimit is the maximum number of cards a player may hold.
const HandLimit = 3

// HistoryLimit bounds the number of retained history entries.
const HistoryLimit = 100

// DefaultTurnSeconds is the turn duration used when none is configured.
const DefaultTurnSeconds = 60

// TurnDurations lists the allowed turn lengths in seconds.
var TurnDurations = []int{30, 60, 90, 120}

// OrganSlot is an organ in play together with the virus and medicine cards
// attached to it.
type OrganSlot struct {
	Organ    Card   `json:"organ"`
	Attached []Card `json:"attached"`
}

// PlayerState holds everything the engine tracks per player.
type PlayerState struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Hand            []Card       `json:"hand"`
	Board           []*OrganSlot `json:"board"`
	SkipNextTurn    bool         `json:"skip_next_turn"`
	HasTrickOrTreat bool         `json:"has_trick_or_treat"`
}

// PendingAction marks a card decision a player still owes, created by the
// apparition treatment. While set, that player may only play or discard the
// named card.
type PendingAction struct {
	PlayerID string `json:"player_id"`
	CardID   string `json:"card_id"`
}

// PlayerInfo seeds a player at game start.
type PlayerInfo struct {
	ID   string
	Name string
}

// Config tunes a new game. Zero values select sensible defaults. Seed and
// Now exist so tests can pin the shuffle and the clock.
type Config struct {
	Mode        Mode
	TurnSeconds int
	Seed        int64
	Now         func() time.Time
}

// Game is the authoritative state of one match. It is a pure state machine:
// no I/O, no goroutines, no timers. Callers serialize access.
type Game struct {
	RoomID       string
	Mode         Mode
	Deck         []Card
	Discard      []Card
	Players      []*PlayerState
	TurnIndex    int
	TurnSeconds  int
	TurnStart    time.Time
	TurnDeadline time.Time
	LastAction   time.Time
	History      []string
	Winner       string
	Finished     bool
	Pending      *PendingAction

	rng *rand.Rand
	now func() time.Time
}

// NewGame builds a shuffled deck, deals the opening hands and starts the
// first turn. Player order is the order given.
func NewGame(roomID string, players []PlayerInfo, cfg Config) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrInvalidAction
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeBase
	}
	if cfg.TurnSeconds == 0 {
		cfg.TurnSeconds = DefaultTurnSeconds
	}
	if !validTurnSeconds(cfg.TurnSeconds) {
		return nil, ErrInvalidAction
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Seed == 0 {
		cfg.Seed = cfg.Now().UnixNano()
	}

	g := &Game{
		RoomID:      roomID,
		Mode:        cfg.Mode,
		Deck:        BuildDeck(cfg.Mode),
		TurnSeconds: cfg.TurnSeconds,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		now:         cfg.Now,
	}
	g.rng.Shuffle(len(g.Deck), func(i, j int) {
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	})

	for _, p := range players {
		ps := &PlayerState{ID: p.ID, Name: p.Name}
		for i := 0; i < HandLimit; i++ {
			if c, ok := g.popDeck(); ok {
				ps.Hand = append(ps.Hand, c)
			}
		}
		g.Players = append(g.Players, ps)
	}

	g.startTurn()
	g.LastAction = g.now()
	g.pushHistory("game started with %d players", len(g.Players))
	return g, nil
}

func validTurnSeconds(s int) bool {
	for _, d := range TurnDurations {
		if s == d {
			return true
		}
	}
	return false
}

// Abort ends the game without a winner, for inactivity or room teardown.
func (g *Game) Abort(reason string) {
	if g.Finished {
		return
	}
	g.Finished = true
	g.Pending = nil
	g.pushHistory("game ended: %s", reason)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *PlayerState {
	return g.Players[g.TurnIndex]
}

func (g *Game) player(id string) *PlayerState {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) playerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// handIndex finds a card in a hand by ID.
func handIndex(p *PlayerState, cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// removeHand removes the card at index i, preserving order.
func removeHand(p *PlayerState, i int) Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return c
}

// boardSlot finds a slot on a board by organ card ID.
func boardSlot(p *PlayerState, organID string) (int, *OrganSlot) {
	for i, s := range p.Board {
		if s.Organ.ID == organID {
			return i, s
		}
	}
	return -1, nil
}

// removeSlot detaches the slot at index i from the board.
func removeSlot(p *PlayerState, i int) *OrganSlot {
	s := p.Board[i]
	p.Board = append(p.Board[:i], p.Board[i+1:]...)
	return s
}

// discardSlot sends an entire slot, organ and attachments, to the discard.
func (g *Game) discardSlot(s *OrganSlot) {
	g.Discard = append(g.Discard, s.Organ)
	g.Discard = append(g.Discard, s.Attached...)
}
