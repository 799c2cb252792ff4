package engine

import "fmt"

// Kind identifies the broad category of a card.
type Kind string

const (
	KindOrgan     Kind = "organ"
	KindVirus     Kind = "virus"
	KindMedicine  Kind = "medicine"
	KindTreatment Kind = "treatment"
)

// Color is the suit of a card. Multi is a wildcard that matches any other
// color. Halloween is used for expansion treatment cards and Orange marks the
// mutant organ, which may only enter play by replacing another organ.
type Color string

const (
	ColorRed       Color = "red"
	ColorGreen     Color = "green"
	ColorBlue      Color = "blue"
	ColorYellow    Color = "yellow"
	ColorMulti     Color = "multi"
	ColorHalloween Color = "halloween"
	ColorOrange    Color = "orange"
)

// Treatment names the effect of a treatment card.
type Treatment string

const (
	TreatmentTransplant       Treatment = "transplant"
	TreatmentOrganThief       Treatment = "organThief"
	TreatmentContagion        Treatment = "contagion"
	TreatmentGloves           Treatment = "gloves"
	TreatmentMedicalError     Treatment = "medicalError"
	TreatmentFailedExperiment Treatment = "failedExperiment"
	TreatmentTrickOrTreat     Treatment = "trickOrTreat"
	TreatmentColorThiefRed    Treatment = "colorThiefRed"
	TreatmentColorThiefGreen  Treatment = "colorThiefGreen"
	TreatmentColorThiefBlue   Treatment = "colorThiefBlue"
	TreatmentColorThiefYellow Treatment = "colorThiefYellow"
	TreatmentBodySwap         Treatment = "bodySwap"
	TreatmentApparition       Treatment = "apparition"
	TreatmentAlienTransplant  Treatment = "alienTransplant"
)

// Card is a single card. The ID is assigned deterministically when the deck
// is built and is stable for the whole match.
type Card struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Color     Color     `json:"color"`
	Treatment Treatment `json:"treatment,omitempty"`
}

// thiefColor reports the organ color a color-thief treatment steals, and
// whether the treatment is a color thief at all.
func (t Treatment) thiefColor() (Color, bool) {
	switch t {
	case TreatmentColorThiefRed:
		return ColorRed, true
	case TreatmentColorThiefGreen:
		return ColorGreen, true
	case TreatmentColorThiefBlue:
		return ColorBlue, true
	case TreatmentColorThiefYellow:
		return ColorYellow, true
	}
	return "", false
}

// Label returns a short human readable description used in history entries.
func (c Card) Label() string {
	switch c.Kind {
	case KindOrgan:
		return fmt.Sprintf("%s organ", c.Color)
	case KindVirus:
		return fmt.Sprintf("%s virus", c.Color)
	case KindMedicine:
		return fmt.Sprintf("%s medicine", c.Color)
	case KindTreatment:
		return string(c.Treatment)
	}
	return c.ID
}

// colorMatches reports whether two card colors are compatible for attachment.
// Multi is a wildcard on either side.
func colorMatches(a, b Color) bool {
	if a == ColorMulti || b == ColorMulti {
		return true
	}
	return a == b
}
