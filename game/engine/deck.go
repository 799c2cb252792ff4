package engine

import "fmt"

// Mode selects the deck composition for a match.
type Mode string

const (
	ModeBase      Mode = "base"
	ModeHalloween Mode = "halloween"
)

// deckEntry describes one row of the deck composition table.
type deckEntry struct {
	kind      Kind
	color     Color
	treatment Treatment
	count     int
}

// baseDeck is the standard 68 card composition.
var baseDeck = []deckEntry{
	{kind: KindOrgan, color: ColorRed, count: 5},
	{kind: KindOrgan, color: ColorGreen, count: 5},
	{kind: KindOrgan, color: ColorBlue, count: 5},
	{kind: KindOrgan, color: ColorYellow, count: 5},
	{kind: KindOrgan, color: ColorMulti, count: 1},
	{kind: KindVirus, color: ColorRed, count: 4},
	{kind: KindVirus, color: ColorGreen, count: 4},
	{kind: KindVirus, color: ColorBlue, count: 4},
	{kind: KindVirus, color: ColorYellow, count: 4},
	{kind: KindVirus, color: ColorMulti, count: 1},
	{kind: KindMedicine, color: ColorRed, count: 4},
	{kind: KindMedicine, color: ColorGreen, count: 4},
	{kind: KindMedicine, color: ColorBlue, count: 4},
	{kind: KindMedicine, color: ColorYellow, count: 4},
	{kind: KindMedicine, color: ColorMulti, count: 4},
	{kind: KindTreatment, color: ColorMulti, treatment: TreatmentContagion, count: 2},
	{kind: KindTreatment, color: ColorMulti, treatment: TreatmentOrganThief, count: 3},
	{kind: KindTreatment, color: ColorMulti, treatment: TreatmentTransplant, count: 3},
	{kind: KindTreatment, color: ColorMulti, treatment: TreatmentGloves, count: 1},
	{kind: KindTreatment, color: ColorMulti, treatment: TreatmentMedicalError, count: 1},
}

// halloweenDeck is appended to the base composition in halloween mode.
var halloweenDeck = []deckEntry{
	{kind: KindOrgan, color: ColorOrange, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentTrickOrTreat, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentFailedExperiment, count: 2},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentColorThiefRed, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentColorThiefGreen, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentColorThiefBlue, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentColorThiefYellow, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentBodySwap, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentApparition, count: 1},
	{kind: KindTreatment, color: ColorHalloween, treatment: TreatmentAlienTransplant, count: 1},
}

// BuildDeck expands the composition table for the given mode into concrete
// cards with deterministic IDs. The returned slice is unshuffled.
func BuildDeck(mode Mode) []Card {
	entries := baseDeck
	if mode == ModeHalloween {
		entries = append(append([]deckEntry{}, baseDeck...), halloweenDeck...)
	}

	var cards []Card
	for _, e := range entries {
		for i := 0; i < e.count; i++ {
			cards = append(cards, Card{
				ID:        cardID(e, i),
				Kind:      e.kind,
				Color:     e.color,
				Treatment: e.treatment,
			})
		}
	}
	return cards
}

func cardID(e deckEntry, i int) string {
	if e.kind == KindTreatment {
		return fmt.Sprintf("%s_%s_%s_%d", e.kind, e.color, e.treatment, i)
	}
	return fmt.Sprintf("%s_%s_%d", e.kind, e.color, i)
}
