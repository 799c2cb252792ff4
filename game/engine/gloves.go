package engine

// playGloves discards every other player's hand and deals each of them a
// fresh one. The seized hands reach the discard only after all refills, so
// nobody can draw back a card that was just taken from them. Every other
// player also skips their next turn.
func (g *Game) playGloves(p *PlayerState, idx int) error {
	card := removeHand(p, idx)

	var seized []Card
	for _, other := range g.Players {
		if other.ID == p.ID {
			continue
		}
		seized = append(seized, other.Hand...)
		other.Hand = nil
		other.SkipNextTurn = true
	}
	for _, other := range g.Players {
		if other.ID == p.ID {
			continue
		}
		g.refillHand(other)
	}
	g.Discard = append(g.Discard, seized...)
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s played gloves, everyone else drops their hand", p.Name)
	return nil
}
