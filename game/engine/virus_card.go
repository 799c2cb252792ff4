package engine

// playVirusAs resolves a virus play. The effective card may differ from the
// one in hand when a failed experiment re-types itself as a multi virus.
//
// On a clean organ the virus attaches. On a vaccinated organ it must
// neutralize a color compatible medicine, sending both cards to the discard.
// On an infected organ the second virus extirpates: organ, attachments and
// the played virus all go to the discard.
func (g *Game) playVirusAs(p *PlayerState, idx int, target Target, effective Card) error {
	if target.PlayerID == "" || target.OrganID == "" {
		return ErrNoTarget
	}
	victim := g.player(target.PlayerID)
	if victim == nil {
		return ErrNoPlayer
	}
	si, slot := boardSlot(victim, target.OrganID)
	if slot == nil {
		return ErrNoOrgan
	}
	if slot.IsImmune() {
		return ErrImmuneOrgan
	}
	if !colorMatches(effective.Color, slot.Organ.Color) {
		return ErrColorMismatch
	}

	switch {
	case slot.IsVaccinated():
		med, ok := slot.detachFirst(KindMedicine, effective.Color)
		if !ok {
			return ErrColorMismatch
		}
		removeHand(p, idx)
		g.Discard = append(g.Discard, med, effective)
		g.pushHistory("%s destroyed a vaccine on %s's %s", p.Name, victim.Name, slot.Organ.Label())
	case slot.IsInfected():
		removeHand(p, idx)
		g.discardSlot(removeSlot(victim, si))
		g.Discard = append(g.Discard, effective)
		g.pushHistory("%s extirpated %s's %s", p.Name, victim.Name, slot.Organ.Label())
	default:
		removeHand(p, idx)
		slot.Attached = append(slot.Attached, effective)
		g.pushHistory("%s infected %s's %s", p.Name, victim.Name, slot.Organ.Label())
	}
	return nil
}
