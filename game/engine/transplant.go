package engine

// playTransplant exchanges two organs, each named by a player and organ pair.
// Both pairs may point at any board, the caller's own twice included, so a
// player can reorganize their own slots. The regular transplant refuses
// immune organs on either side; the alien variant ignores immunity. Neither
// owner may end up with two organs of the same color.
func (g *Game) playTransplant(p *PlayerState, idx int, target Target, checkImmune bool) error {
	if target.PlayerID == "" || target.OrganID == "" || target.SecondPlayerID == "" || target.SecondOrganID == "" {
		return ErrNoTarget
	}
	a := g.player(target.PlayerID)
	b := g.player(target.SecondPlayerID)
	if a == nil || b == nil {
		return ErrNoPlayer
	}
	ai, slotA := boardSlot(a, target.OrganID)
	if slotA == nil {
		return ErrNoOrgan
	}
	bi, slotB := boardSlot(b, target.SecondOrganID)
	if slotB == nil {
		return ErrNoOrgan
	}
	if slotA == slotB {
		return ErrInvalidTarget
	}
	if checkImmune && (slotA.IsImmune() || slotB.IsImmune()) {
		return ErrImmuneOrgan
	}
	// A swap within one board never changes that board's color set.
	if a.ID != b.ID {
		if duplicateAfterSwap(a, ai, slotB.Organ.Color) || duplicateAfterSwap(b, bi, slotA.Organ.Color) {
			return ErrDuplicateOrgan
		}
	}

	card := removeHand(p, idx)
	a.Board[ai], b.Board[bi] = slotB, slotA
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s swapped %s's %s for %s's %s", p.Name, a.Name, slotA.Organ.Label(), b.Name, slotB.Organ.Label())
	return nil
}

// duplicateAfterSwap reports whether the incoming color collides with any
// organ on the board other than the slot being swapped out.
func duplicateAfterSwap(p *PlayerState, swapIdx int, incoming Color) bool {
	for i, s := range p.Board {
		if i == swapIdx {
			continue
		}
		if s.Organ.Color == incoming {
			return true
		}
	}
	return false
}
