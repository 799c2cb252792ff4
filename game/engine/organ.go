package engine

// viruses returns the virus cards attached to the slot.
func (s *OrganSlot) viruses() []Card {
	var out []Card
	for _, c := range s.Attached {
		if c.Kind == KindVirus {
			out = append(out, c)
		}
	}
	return out
}

// medicines returns the medicine cards attached to the slot.
func (s *OrganSlot) medicines() []Card {
	var out []Card
	for _, c := range s.Attached {
		if c.Kind == KindMedicine {
			out = append(out, c)
		}
	}
	return out
}

// IsInfected reports whether at least one virus is attached.
func (s *OrganSlot) IsInfected() bool {
	return len(s.viruses()) > 0
}

// IsVaccinated reports whether at least one medicine is attached.
func (s *OrganSlot) IsVaccinated() bool {
	return len(s.medicines()) > 0
}

// IsImmune reports whether two medicines are attached. An immune organ can
// no longer be targeted by viruses or removal treatments.
func (s *OrganSlot) IsImmune() bool {
	return len(s.medicines()) >= 2
}

// IsHealthy reports whether the organ counts toward victory: not infected.
// Vaccinated and immune organs are healthy.
func (s *OrganSlot) IsHealthy() bool {
	return !s.IsInfected()
}

// detachFirst removes and returns the first attached card of the given kind
// whose color is compatible with the given color.
func (s *OrganSlot) detachFirst(kind Kind, color Color) (Card, bool) {
	for i, c := range s.Attached {
		if c.Kind == kind && colorMatches(c.Color, color) {
			s.Attached = append(s.Attached[:i], s.Attached[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// hasColor reports whether the board already holds an organ of this color.
// Multi and orange organs only collide with themselves.
func hasColor(p *PlayerState, color Color) bool {
	for _, s := range p.Board {
		if s.Organ.Color == color {
			return true
		}
	}
	return false
}
