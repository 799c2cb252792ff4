package engine

// PlayCard validates and resolves one card play by the given player. On
// success the victory condition is evaluated; if the game is still running
// the player draws a replacement card and the turn advances. Resolvers leave
// the state untouched when they return an error.
func (g *Game) PlayCard(playerID, cardID string, target Target) error {
	if g.Finished {
		return ErrInvalidAction
	}
	p := g.player(playerID)
	if p == nil {
		return ErrNoPlayer
	}
	if g.CurrentPlayer().ID != playerID {
		return ErrNotYourTurn
	}
	pending := g.Pending
	if pending != nil && (pending.PlayerID != playerID || pending.CardID != cardID) {
		return ErrInvalidAction
	}
	idx := handIndex(p, cardID)
	if idx < 0 {
		return ErrNoCard
	}

	card := p.Hand[idx]
	var err error
	switch card.Kind {
	case KindOrgan:
		err = g.playOrgan(p, idx, target)
	case KindVirus:
		err = g.playVirusAs(p, idx, target, card)
	case KindMedicine:
		err = g.playMedicineAs(p, idx, target, card)
	case KindTreatment:
		err = g.playTreatment(p, idx, target)
	default:
		err = ErrUnsupportedCard
	}
	if err != nil {
		return err
	}

	// A satisfied pending decision is cleared; a resolver may have opened a
	// fresh one in its place (an apparition taken back off the discard).
	if pending != nil && g.Pending == pending {
		g.Pending = nil
	}

	g.LastAction = g.now()

	if winner := g.checkVictory(); winner != nil {
		g.finish(winner.ID)
		g.pushHistory("%s wins the game", winner.Name)
		return nil
	}

	// An apparition leaves a decision open for the same player, so the turn
	// does not advance and no replacement card is drawn yet.
	if g.Pending != nil && g.Pending.PlayerID == playerID {
		return nil
	}

	// Replacement draw failure (empty piles, full hand) never voids a play.
	g.drawInto(p)
	g.AdvanceTurn()
	return nil
}

// playTreatment dispatches on the treatment subtype.
func (g *Game) playTreatment(p *PlayerState, idx int, target Target) error {
	card := p.Hand[idx]
	if _, ok := card.Treatment.thiefColor(); ok {
		return g.playColorThief(p, idx, target)
	}
	switch card.Treatment {
	case TreatmentTransplant:
		return g.playTransplant(p, idx, target, true)
	case TreatmentAlienTransplant:
		return g.playTransplant(p, idx, target, false)
	case TreatmentOrganThief:
		return g.playOrganThief(p, idx, target)
	case TreatmentContagion:
		return g.playContagion(p, idx, target)
	case TreatmentGloves:
		return g.playGloves(p, idx)
	case TreatmentMedicalError:
		return g.playMedicalError(p, idx, target)
	case TreatmentFailedExperiment:
		return g.playFailedExperiment(p, idx, target)
	case TreatmentTrickOrTreat:
		return g.playTrickOrTreat(p, idx)
	case TreatmentBodySwap:
		return g.playBodySwap(p, idx, target)
	case TreatmentApparition:
		return g.playApparition(p, idx)
	}
	return ErrUnsupportedTreat
}

func (g *Game) finish(winnerID string) {
	g.Finished = true
	g.Winner = winnerID
	g.Pending = nil
}
