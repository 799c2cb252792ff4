package engine

// playMedicineAs resolves a medicine play. The effective card may differ
// from the one in hand when a failed experiment re-types itself as a multi
// medicine.
//
// On an infected organ the medicine must neutralize a color compatible
// virus, sending both cards to the discard. Otherwise it attaches; a second
// medicine makes the organ immune.
func (g *Game) playMedicineAs(p *PlayerState, idx int, target Target, effective Card) error {
	if target.PlayerID == "" || target.OrganID == "" {
		return ErrNoTarget
	}
	owner := g.player(target.PlayerID)
	if owner == nil {
		return ErrNoPlayer
	}
	_, slot := boardSlot(owner, target.OrganID)
	if slot == nil {
		return ErrNoOrgan
	}
	if slot.IsImmune() {
		return ErrAlreadyImmune
	}
	if !colorMatches(effective.Color, slot.Organ.Color) {
		return ErrColorMismatch
	}

	if slot.IsInfected() {
		virus, ok := slot.detachFirst(KindVirus, effective.Color)
		if !ok {
			return ErrColorMismatch
		}
		removeHand(p, idx)
		g.Discard = append(g.Discard, virus, effective)
		g.pushHistory("%s cured %s's %s", p.Name, owner.Name, slot.Organ.Label())
		return nil
	}

	removeHand(p, idx)
	slot.Attached = append(slot.Attached, effective)
	if slot.IsImmune() {
		g.pushHistory("%s made %s's %s immune", p.Name, owner.Name, slot.Organ.Label())
	} else {
		g.pushHistory("%s vaccinated %s's %s", p.Name, owner.Name, slot.Organ.Label())
	}
	return nil
}
