package engine

import (
	"testing"
	"time"
)

var testClock = time.Date(2025, 10, 31, 20, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	var infos []PlayerInfo
	for i, n := range names {
		infos = append(infos, PlayerInfo{ID: "p" + string(rune('1'+i)), Name: n})
	}
	g, err := NewGame("room1", infos, Config{
		Mode: ModeHalloween,
		Seed: 42,
		Now:  func() time.Time { return testClock },
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func organCard(color Color) Card {
	return Card{ID: "organ_" + string(color) + "_t", Kind: KindOrgan, Color: color}
}

func virusCard(color Color) Card {
	return Card{ID: "virus_" + string(color) + "_t", Kind: KindVirus, Color: color}
}

func medicineCard(color Color) Card {
	return Card{ID: "medicine_" + string(color) + "_t", Kind: KindMedicine, Color: color}
}

func treatmentCard(t Treatment) Card {
	return Card{ID: "treatment_" + string(t) + "_t", Kind: KindTreatment, Color: ColorMulti, Treatment: t}
}

// setHand replaces a player's hand outright.
func setHand(p *PlayerState, cards ...Card) {
	p.Hand = append([]Card{}, cards...)
}

// addSlot puts an organ with optional attachments on a board.
func addSlot(p *PlayerState, organ Card, attached ...Card) *OrganSlot {
	s := &OrganSlot{Organ: organ, Attached: append([]Card{}, attached...)}
	p.Board = append(p.Board, s)
	return s
}

// totalCards counts every card in the game across piles, hands and boards.
func totalCards(g *Game) int {
	n := len(g.Deck) + len(g.Discard)
	for _, p := range g.Players {
		n += len(p.Hand)
		for _, s := range p.Board {
			n += 1 + len(s.Attached)
		}
	}
	return n
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	ge, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected game error %s, got %v", code, err)
	}
	if ge.Code != code {
		t.Fatalf("expected code %s, got %s", code, ge.Code)
	}
}
