package engine

// playContagion moves viruses from the caller's infected organs onto other
// players' clean organs, one virus per pair. The whole pair list is checked
// before anything moves so a bad pair leaves the game untouched. A pair
// whose source organ holds no virus left, counting viruses claimed by
// earlier pairs, is skipped rather than rejected, but only after its
// destination passed the same checks as everyone else's.
func (g *Game) playContagion(p *PlayerState, idx int, target Target) error {
	if len(target.Pairs) == 0 {
		return ErrNoTarget
	}

	type move struct {
		src     *OrganSlot
		victim  *PlayerState
		dst     *OrganSlot
		virusID string
	}

	claimed := map[string]bool{} // virus card IDs taken by earlier pairs
	dstUsed := map[string]bool{} // destination organs already claimed
	var moves []move

	for _, pair := range target.Pairs {
		_, src := boardSlot(p, pair.SourceOrganID)
		if src == nil {
			return ErrNoOrgan
		}
		victim := g.player(pair.TargetPlayerID)
		if victim == nil {
			return ErrNoPlayer
		}
		if victim.ID == p.ID {
			return ErrInvalidTarget
		}
		_, dst := boardSlot(victim, pair.TargetOrganID)
		if dst == nil {
			return ErrNoOrgan
		}
		// Immunity outranks color compatibility in error reporting.
		if dst.IsImmune() {
			return ErrImmuneOrgan
		}
		if len(dst.Attached) > 0 || dstUsed[pair.TargetOrganID] {
			return ErrInvalidTarget
		}
		available := []Card{}
		for _, v := range src.viruses() {
			if !claimed[v.ID] {
				available = append(available, v)
			}
		}
		if len(available) == 0 {
			continue
		}
		var virus *Card
		for i := range available {
			if colorMatches(available[i].Color, dst.Organ.Color) {
				virus = &available[i]
				break
			}
		}
		if virus == nil {
			return ErrColorMismatch
		}
		claimed[virus.ID] = true
		dstUsed[pair.TargetOrganID] = true
		moves = append(moves, move{src: src, victim: victim, dst: dst, virusID: virus.ID})
	}

	card := removeHand(p, idx)
	for _, m := range moves {
		for i, c := range m.src.Attached {
			if c.ID == m.virusID {
				m.src.Attached = append(m.src.Attached[:i], m.src.Attached[i+1:]...)
				m.dst.Attached = append(m.dst.Attached, c)
				break
			}
		}
		g.pushHistory("%s spread a virus to %s's %s", p.Name, m.victim.Name, m.dst.Organ.Label())
	}
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s played a contagion", p.Name)
	return nil
}
