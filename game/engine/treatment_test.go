package engine

import "testing"

func TestTransplant(t *testing.T) {
	t.Run("swaps organs between players", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, other := g.Players[0], g.Players[1]
		mine := addSlot(p, organCard(ColorRed))
		theirs := addSlot(other, organCard(ColorBlue))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: mine.Organ.ID,
			SecondPlayerID: other.ID, SecondOrganID: theirs.Organ.ID,
		})
		if err != nil {
			t.Fatalf("transplant: %v", err)
		}
		if p.Board[0].Organ.Color != ColorBlue || other.Board[0].Organ.Color != ColorRed {
			t.Errorf("organs not swapped: mine=%v theirs=%v", p.Board[0].Organ, other.Board[0].Organ)
		}
	})

	t.Run("reorganizes the caller's own board", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		red := addSlot(p, organCard(ColorRed))
		blue := addSlot(p, organCard(ColorBlue))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: red.Organ.ID,
			SecondPlayerID: p.ID, SecondOrganID: blue.Organ.ID,
		})
		if err != nil {
			t.Fatalf("self transplant: %v", err)
		}
		if p.Board[0].Organ.Color != ColorBlue || p.Board[1].Organ.Color != ColorRed {
			t.Errorf("slots not swapped: %v, %v", p.Board[0].Organ, p.Board[1].Organ)
		}
	})

	t.Run("swaps organs between two other players", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob", "cai")
		p, b, c := g.Players[0], g.Players[1], g.Players[2]
		bobs := addSlot(b, organCard(ColorGreen))
		cais := addSlot(c, organCard(ColorYellow))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: b.ID, OrganID: bobs.Organ.ID,
			SecondPlayerID: c.ID, SecondOrganID: cais.Organ.ID,
		})
		if err != nil {
			t.Fatalf("third party transplant: %v", err)
		}
		if b.Board[0].Organ.Color != ColorYellow || c.Board[0].Organ.Color != ColorGreen {
			t.Errorf("organs not swapped: bob=%v cai=%v", b.Board[0].Organ, c.Board[0].Organ)
		}
	})

	t.Run("rejects the same organ on both sides", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		red := addSlot(p, organCard(ColorRed))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: red.Organ.ID,
			SecondPlayerID: p.ID, SecondOrganID: red.Organ.ID,
		})
		wantCode(t, err, "INVALID_TARGET")
	})

	t.Run("rejects immune organ", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, other := g.Players[0], g.Players[1]
		mine := addSlot(p, organCard(ColorRed))
		theirs := addSlot(other, organCard(ColorBlue), medicineCard(ColorBlue), medicineCard(ColorMulti))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: mine.Organ.ID,
			SecondPlayerID: other.ID, SecondOrganID: theirs.Organ.ID,
		})
		wantCode(t, err, "IMMUNE_ORGAN")
	})

	t.Run("alien transplant ignores immunity", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, other := g.Players[0], g.Players[1]
		mine := addSlot(p, organCard(ColorRed))
		theirs := addSlot(other, organCard(ColorBlue), medicineCard(ColorBlue), medicineCard(ColorMulti))
		card := treatmentCard(TreatmentAlienTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: mine.Organ.ID,
			SecondPlayerID: other.ID, SecondOrganID: theirs.Organ.ID,
		})
		if err != nil {
			t.Fatalf("alien transplant: %v", err)
		}
		if p.Board[0].Organ.Color != ColorBlue {
			t.Errorf("immune organ not received")
		}
	})

	t.Run("rejects duplicate color after swap", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, other := g.Players[0], g.Players[1]
		mine := addSlot(p, organCard(ColorRed))
		addSlot(p, organCard(ColorBlue))
		theirs := addSlot(other, organCard(ColorBlue))
		card := treatmentCard(TreatmentTransplant)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{
			PlayerID: p.ID, OrganID: mine.Organ.ID,
			SecondPlayerID: other.ID, SecondOrganID: theirs.Organ.ID,
		})
		wantCode(t, err, "DUPLICATE_ORGAN")
	})
}

func TestOrganThief(t *testing.T) {
	t.Run("steals organ with attachments", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		prey := addSlot(victim, organCard(ColorGreen), medicineCard(ColorGreen))
		card := treatmentCard(TreatmentOrganThief)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: prey.Organ.ID})
		if err != nil {
			t.Fatalf("thief: %v", err)
		}
		if len(victim.Board) != 0 || len(p.Board) != 1 {
			t.Fatalf("organ not moved")
		}
		if len(p.Board[0].Attached) != 1 {
			t.Errorf("attachments must travel with the organ")
		}
	})

	t.Run("cannot steal immune organ", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		prey := addSlot(victim, organCard(ColorGreen), medicineCard(ColorGreen), medicineCard(ColorMulti))
		card := treatmentCard(TreatmentOrganThief)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: prey.Organ.ID})
		wantCode(t, err, "IMMUNE_ORGAN")
	})

	t.Run("cannot hold two organs of one color", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		addSlot(p, organCard(ColorGreen))
		prey := addSlot(victim, organCard(ColorGreen))
		card := treatmentCard(TreatmentOrganThief)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: prey.Organ.ID})
		wantCode(t, err, "DUPLICATE_ORGAN")
	})
}

func TestColorThief(t *testing.T) {
	g := newTestGame(t, "ana", "bob")
	p, victim := g.Players[0], g.Players[1]
	red := addSlot(victim, organCard(ColorRed))
	card := Card{ID: "ct", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentColorThiefBlue}
	setHand(p, card)

	err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: red.Organ.ID})
	wantCode(t, err, "COLOR_MISMATCH")

	blue := addSlot(victim, organCard(ColorBlue))
	setHand(p, card)
	if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: blue.Organ.ID}); err != nil {
		t.Fatalf("color thief: %v", err)
	}
	if len(p.Board) != 1 || p.Board[0].Organ.Color != ColorBlue {
		t.Errorf("blue organ not stolen")
	}
}

func TestContagion(t *testing.T) {
	t.Run("spreads viruses by explicit pairs", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob", "cai")
		p, v1, v2 := g.Players[0], g.Players[1], g.Players[2]
		src := addSlot(p, organCard(ColorRed), virusCard(ColorRed), virusCard(ColorMulti))
		d1 := addSlot(v1, organCard(ColorRed))
		d2 := addSlot(v2, organCard(ColorBlue))
		card := treatmentCard(TreatmentContagion)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{Pairs: []ContagionPair{
			{SourceOrganID: src.Organ.ID, TargetPlayerID: v1.ID, TargetOrganID: d1.Organ.ID},
			{SourceOrganID: src.Organ.ID, TargetPlayerID: v2.ID, TargetOrganID: d2.Organ.ID},
		}})
		if err != nil {
			t.Fatalf("contagion: %v", err)
		}
		if len(src.Attached) != 0 {
			t.Errorf("source still holds %d viruses", len(src.Attached))
		}
		if !d1.IsInfected() || !d2.IsInfected() {
			t.Errorf("destinations not infected")
		}
	})

	t.Run("bad pair leaves everything untouched", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		src := addSlot(p, organCard(ColorRed), virusCard(ColorRed))
		immune := addSlot(victim, organCard(ColorRed), medicineCard(ColorRed), medicineCard(ColorMulti))
		clean := addSlot(victim, organCard(ColorMulti))
		card := treatmentCard(TreatmentContagion)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{Pairs: []ContagionPair{
			{SourceOrganID: src.Organ.ID, TargetPlayerID: victim.ID, TargetOrganID: clean.Organ.ID},
			{SourceOrganID: src.Organ.ID, TargetPlayerID: victim.ID, TargetOrganID: immune.Organ.ID},
		}})
		wantCode(t, err, "IMMUNE_ORGAN")
		if clean.IsInfected() {
			t.Errorf("first pair must not apply when a later pair fails")
		}
		if len(src.viruses()) != 1 {
			t.Errorf("source virus must stay put")
		}
	})

	t.Run("dry source cannot mask an immune destination", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		dry := addSlot(p, organCard(ColorRed))
		immune := addSlot(victim, organCard(ColorRed), medicineCard(ColorRed), medicineCard(ColorMulti))
		card := treatmentCard(TreatmentContagion)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{Pairs: []ContagionPair{
			{SourceOrganID: dry.Organ.ID, TargetPlayerID: victim.ID, TargetOrganID: immune.Organ.ID},
		}})
		wantCode(t, err, "IMMUNE_ORGAN")
		if len(p.Hand) != 1 {
			t.Errorf("card must stay in hand on a rejected pair")
		}
	})

	t.Run("source without virus is skipped", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		dry := addSlot(p, organCard(ColorBlue))
		dst := addSlot(victim, organCard(ColorBlue))
		card := treatmentCard(TreatmentContagion)
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{Pairs: []ContagionPair{
			{SourceOrganID: dry.Organ.ID, TargetPlayerID: victim.ID, TargetOrganID: dst.Organ.ID},
		}})
		if err != nil {
			t.Fatalf("contagion: %v", err)
		}
		if dst.IsInfected() {
			t.Errorf("nothing should spread from a clean source")
		}
	})
}

func TestGloves(t *testing.T) {
	g := newTestGame(t, "ana", "bob", "cai")
	p := g.Players[0]
	card := treatmentCard(TreatmentGloves)
	setHand(p, card)

	before := map[string][]Card{}
	for _, other := range g.Players[1:] {
		before[other.ID] = append([]Card{}, other.Hand...)
	}

	if err := g.PlayCard(p.ID, card.ID, Target{}); err != nil {
		t.Fatalf("gloves: %v", err)
	}
	for _, other := range g.Players[1:] {
		if len(other.Hand) != HandLimit {
			t.Errorf("%s not refilled: %d cards", other.Name, len(other.Hand))
		}
		// No player may get one of their own seized cards back.
		old := map[string]bool{}
		for _, c := range before[other.ID] {
			old[c.ID] = true
		}
		for _, c := range other.Hand {
			if old[c.ID] {
				t.Errorf("%s drew back seized card %s", other.Name, c.ID)
			}
		}
	}
	// Both opponents were flagged, so after ana the game skips straight
	// back to her.
	if g.CurrentPlayer().ID != p.ID {
		t.Errorf("turn should cycle back to the gloves player")
	}
}

func TestMedicalError(t *testing.T) {
	g := newTestGame(t, "ana", "bob")
	p, other := g.Players[0], g.Players[1]
	addSlot(p, organCard(ColorRed))
	addSlot(other, organCard(ColorBlue), medicineCard(ColorBlue), medicineCard(ColorMulti))
	other.HasTrickOrTreat = true
	card := treatmentCard(TreatmentMedicalError)
	setHand(p, card)

	if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: other.ID}); err != nil {
		t.Fatalf("medical error: %v", err)
	}
	if p.Board[0].Organ.Color != ColorBlue || other.Board[0].Organ.Color != ColorRed {
		t.Errorf("boards not swapped")
	}
	if !p.HasTrickOrTreat || other.HasTrickOrTreat {
		t.Errorf("trick-or-treat token must travel with the board")
	}
}

func TestFailedExperiment(t *testing.T) {
	t.Run("cures an infected organ as medicine", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		slot := addSlot(p, organCard(ColorRed), virusCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: p.ID, OrganID: slot.Organ.ID, Action: KindMedicine}); err != nil {
			t.Fatalf("failed experiment: %v", err)
		}
		if slot.IsInfected() {
			t.Errorf("virus not cured")
		}
	})

	t.Run("immunizes a vaccinated organ as medicine", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		slot := addSlot(p, organCard(ColorRed), medicineCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: p.ID, OrganID: slot.Organ.ID, Action: KindMedicine}); err != nil {
			t.Fatalf("failed experiment: %v", err)
		}
		if !slot.IsImmune() {
			t.Errorf("second medicine must make the organ immune")
		}
	})

	t.Run("strips a vaccine as virus", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		slot := addSlot(victim, organCard(ColorRed), medicineCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: slot.Organ.ID, Action: KindVirus}); err != nil {
			t.Fatalf("failed experiment: %v", err)
		}
		if slot.IsVaccinated() {
			t.Errorf("vaccine not destroyed")
		}
	})

	t.Run("extirpates an infected organ as virus", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p, victim := g.Players[0], g.Players[1]
		slot := addSlot(victim, organCard(ColorRed), virusCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		if err := g.PlayCard(p.ID, card.ID, Target{PlayerID: victim.ID, OrganID: slot.Organ.ID, Action: KindVirus}); err != nil {
			t.Fatalf("failed experiment: %v", err)
		}
		if len(victim.Board) != 0 {
			t.Errorf("second virus must extirpate the organ")
		}
	})

	t.Run("rejects clean organ", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		slot := addSlot(p, organCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: p.ID, OrganID: slot.Organ.ID, Action: KindMedicine})
		wantCode(t, err, "ORGAN_NOT_INFECTED_OR_VACCINATED")
	})

	t.Run("requires an action", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		slot := addSlot(p, organCard(ColorRed), virusCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: p.ID, OrganID: slot.Organ.ID})
		wantCode(t, err, "NO_TARGET")
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		slot := addSlot(p, organCard(ColorRed), virusCard(ColorRed))
		card := Card{ID: "fe", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentFailedExperiment}
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{PlayerID: p.ID, OrganID: slot.Organ.ID, Action: KindOrgan})
		wantCode(t, err, "INVALID_ACTION")
	})
}

func TestTrickOrTreat(t *testing.T) {
	g := newTestGame(t, "ana", "bob")
	p, other := g.Players[0], g.Players[1]
	other.HasTrickOrTreat = true
	card := Card{ID: "tot", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentTrickOrTreat}
	setHand(p, card)

	total := totalCards(g)
	if err := g.PlayCard(p.ID, card.ID, Target{}); err != nil {
		t.Fatalf("trick or treat: %v", err)
	}
	if !p.HasTrickOrTreat || other.HasTrickOrTreat {
		t.Errorf("token not moved to the player")
	}
	if got := totalCards(g); got != total {
		t.Errorf("card count changed: %d -> %d", total, got)
	}
}

func TestBodySwap(t *testing.T) {
	setup := func(t *testing.T) (*Game, *PlayerState, *PlayerState, *PlayerState, Card) {
		t.Helper()
		g := newTestGame(t, "ana", "bob", "cai")
		a, b, c := g.Players[0], g.Players[1], g.Players[2]
		addSlot(a, organCard(ColorRed))
		addSlot(b, organCard(ColorBlue))
		addSlot(c, organCard(ColorGreen))
		c.HasTrickOrTreat = true
		card := Card{ID: "bs", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentBodySwap}
		setHand(a, card)
		return g, a, b, c, card
	}

	t.Run("rotates clockwise", func(t *testing.T) {
		g, a, b, c, card := setup(t)
		if err := g.PlayCard(a.ID, card.ID, Target{Direction: Clockwise}); err != nil {
			t.Fatalf("body swap: %v", err)
		}
		if a.Board[0].Organ.Color != ColorGreen || b.Board[0].Organ.Color != ColorRed || c.Board[0].Organ.Color != ColorBlue {
			t.Errorf("boards not rotated one seat clockwise")
		}
		if !a.HasTrickOrTreat || c.HasTrickOrTreat {
			t.Errorf("token must rotate with the boards")
		}
	})

	t.Run("rotates counter-clockwise", func(t *testing.T) {
		g, a, b, c, card := setup(t)
		if err := g.PlayCard(a.ID, card.ID, Target{Direction: CounterClockwise}); err != nil {
			t.Fatalf("body swap: %v", err)
		}
		if a.Board[0].Organ.Color != ColorBlue || b.Board[0].Organ.Color != ColorGreen || c.Board[0].Organ.Color != ColorRed {
			t.Errorf("boards not rotated one seat counter-clockwise")
		}
		if !b.HasTrickOrTreat || c.HasTrickOrTreat {
			t.Errorf("token must rotate with the boards")
		}
	})

	t.Run("rejects a missing direction", func(t *testing.T) {
		g, a, _, _, card := setup(t)
		err := g.PlayCard(a.ID, card.ID, Target{})
		wantCode(t, err, "INVALID_TARGET")
		if len(a.Hand) != 1 {
			t.Errorf("card must stay in hand on a rejected swap")
		}
	})
}

func TestApparition(t *testing.T) {
	t.Run("rejects empty discard", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		g.Discard = nil
		card := Card{ID: "ap", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentApparition}
		setHand(p, card)

		err := g.PlayCard(p.ID, card.ID, Target{})
		wantCode(t, err, "EMPTY_DISCARD")
	})

	t.Run("swaps with discard top and opens a pending decision", func(t *testing.T) {
		g := newTestGame(t, "ana", "bob")
		p := g.Players[0]
		top := organCard(ColorYellow)
		g.Discard = []Card{top}
		card := Card{ID: "ap", Kind: KindTreatment, Color: ColorHalloween, Treatment: TreatmentApparition}
		setHand(p, card)

		if err := g.PlayCard(p.ID, card.ID, Target{}); err != nil {
			t.Fatalf("apparition: %v", err)
		}
		if g.Discard[len(g.Discard)-1].ID != card.ID {
			t.Errorf("apparition card must sit on the discard top")
		}
		if g.Pending == nil || g.Pending.CardID != top.ID {
			t.Fatalf("pending decision missing: %+v", g.Pending)
		}
		if g.CurrentPlayer().ID != p.ID {
			t.Errorf("turn must not advance while the decision is pending")
		}

		// Another card is locked out until the decision resolves.
		setHand(p, top, organCard(ColorRed))
		err := g.PlayCard(p.ID, "organ_red_t", Target{})
		wantCode(t, err, "INVALID_ACTION")

		// Playing the taken card resolves the decision and advances.
		if err := g.PlayCard(p.ID, top.ID, Target{}); err != nil {
			t.Fatalf("play pending card: %v", err)
		}
		if g.Pending != nil {
			t.Errorf("pending not cleared")
		}
		if g.CurrentPlayer().ID != g.Players[1].ID {
			t.Errorf("turn should advance after the decision")
		}
	})
}
