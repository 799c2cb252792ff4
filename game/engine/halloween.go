package engine

// playFailedExperiment re-types itself as a multi colored virus or medicine,
// whichever the player names in target.Action. The organ must already carry
// something: a medicine cures an infected organ or pushes a vaccinated one to
// immune, a virus strips a vaccine or extirpates an infected organ. A clean
// or immune organ is not a valid target. The card keeps its own ID but enters
// the discard as the re-typed card.
func (g *Game) playFailedExperiment(p *PlayerState, idx int, target Target) error {
	if target.PlayerID == "" || target.OrganID == "" || target.Action == "" {
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
		return ErrImmuneOrgan
	}
	if !slot.IsInfected() && !slot.IsVaccinated() {
		return ErrOrganNotTreatable
	}

	effective := p.Hand[idx]
	effective.Color = ColorMulti
	effective.Treatment = ""
	switch target.Action {
	case KindMedicine:
		effective.Kind = KindMedicine
		return g.playMedicineAs(p, idx, target, effective)
	case KindVirus:
		effective.Kind = KindVirus
		return g.playVirusAs(p, idx, target, effective)
	}
	return ErrInvalidAction
}

// playTrickOrTreat hands the trick-or-treat token to the caller, taking it
// from whoever held it before.
func (g *Game) playTrickOrTreat(p *PlayerState, idx int) error {
	card := removeHand(p, idx)
	for _, other := range g.Players {
		other.HasTrickOrTreat = other.ID == p.ID
	}
	g.Discard = append(g.Discard, card)
	g.pushHistory("%s took the trick-or-treat token", p.Name)
	return nil
}

// playBodySwap rotates every board, and the trick-or-treat token, one seat in
// the chosen direction. With fewer than two players it does nothing but the
// card is still spent.
func (g *Game) playBodySwap(p *PlayerState, idx int, target Target) error {
	if target.Direction != Clockwise && target.Direction != CounterClockwise {
		return ErrInvalidTarget
	}
	card := removeHand(p, idx)
	if n := len(g.Players); n >= 2 {
		boards := make([][]*OrganSlot, n)
		tokens := make([]bool, n)
		for i, pl := range g.Players {
			boards[i] = pl.Board
			tokens[i] = pl.HasTrickOrTreat
		}
		for i, pl := range g.Players {
			from := (i - 1 + n) % n
			if target.Direction == CounterClockwise {
				from = (i + 1) % n
			}
			pl.Board = boards[from]
			pl.HasTrickOrTreat = tokens[from]
		}
		g.pushHistory("%s rotated every body one seat %s", p.Name, target.Direction)
	}
	g.Discard = append(g.Discard, card)
	return nil
}

// playApparition trades the played card for the top of the discard pile and
// leaves the caller with a pending decision: the taken card must be played
// or discarded before the turn can move on.
func (g *Game) playApparition(p *PlayerState, idx int) error {
	if len(g.Discard) == 0 {
		return ErrEmptyDiscard
	}
	card := removeHand(p, idx)
	taken := g.Discard[len(g.Discard)-1]
	g.Discard[len(g.Discard)-1] = card
	p.Hand = append(p.Hand, taken)
	g.Pending = &PendingAction{PlayerID: p.ID, CardID: taken.ID}
	g.pushHistory("%s traded the apparition for the %s on the discard", p.Name, taken.Label())
	return nil
}
