package engine

// playOrgan places an organ from the hand onto the caller's own board. A
// mutant (orange) organ may only enter play by replacing one of the caller's
// organs, which goes to the discard together with its attachments.
func (g *Game) playOrgan(p *PlayerState, idx int, target Target) error {
	card := p.Hand[idx]

	if card.Color == ColorOrange {
		if target.ReplaceOrganID == "" {
			return ErrNoTarget
		}
		si, slot := boardSlot(p, target.ReplaceOrganID)
		if slot == nil {
			return ErrNoOrgan
		}
		removeHand(p, idx)
		g.discardSlot(removeSlot(p, si))
		p.Board = append(p.Board, &OrganSlot{Organ: card})
		g.pushHistory("%s replaced a %s with the mutant organ", p.Name, slot.Organ.Label())
		return nil
	}

	if hasColor(p, card.Color) {
		return ErrDuplicateOrgan
	}
	removeHand(p, idx)
	p.Board = append(p.Board, &OrganSlot{Organ: card})
	g.pushHistory("%s played a %s", p.Name, card.Label())
	return nil
}
