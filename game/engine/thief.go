package engine

// playOrganThief steals an organ, with its attachments, from another player.
// Immune organs cannot be stolen and the thief must not already hold an
// organ of that color.
func (g *Game) playOrganThief(p *PlayerState, idx int, target Target) error {
	return g.steal(p, idx, target, "")
}

// playColorThief is the halloween variant limited to one organ color.
func (g *Game) playColorThief(p *PlayerState, idx int, target Target) error {
	color, _ := p.Hand[idx].Treatment.thiefColor()
	return g.steal(p, idx, target, color)
}

func (g *Game) steal(p *PlayerState, idx int, target Target, onlyColor Color) error {
	if target.PlayerID == "" || target.OrganID == "" {
		return ErrNoTarget
	}
	victim := g.player(target.PlayerID)
	if victim == nil {
		return ErrNoPlayer
	}
	if victim.ID == p.ID {
		return ErrInvalidTarget
	}
	si, slot := boardSlot(victim, target.OrganID)
	if slot == nil {
		return ErrNoOrgan
	}
	if onlyColor != "" && slot.Organ.Color != onlyColor {
		return ErrColorMismatch
	}
	if slot.IsImmune() {
		return ErrImmuneOrgan
	}
	if hasColor(p, slot.Organ.Color) {
		return ErrDuplicateOrgan
	}

	card := removeHand(p, idx)
	p.Board = append(p.Board, removeSlot(victim, si))
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s stole %s's %s", p.Name, victim.Name, slot.Organ.Label())
	return nil
}
