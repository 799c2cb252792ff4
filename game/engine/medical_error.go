package engine

// playMedicalError swaps the caller's entire board with the target's,
// immunity included. When exactly one of the two holds the trick-or-treat
// token it travels with the board and the move is recorded.
func (g *Game) playMedicalError(p *PlayerState, idx int, target Target) error {
	if target.PlayerID == "" {
		return ErrNoTarget
	}
	other := g.player(target.PlayerID)
	if other == nil {
		return ErrNoPlayer
	}
	if other.ID == p.ID {
		return ErrInvalidTarget
	}

	card := removeHand(p, idx)
	p.Board, other.Board = other.Board, p.Board
	if p.HasTrickOrTreat != other.HasTrickOrTreat {
		p.HasTrickOrTreat, other.HasTrickOrTreat = other.HasTrickOrTreat, p.HasTrickOrTreat
		g.pushHistory("the trick-or-treat token moved with the boards")
	}
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s swapped bodies with %s", p.Name, other.Name)
	return nil
}
