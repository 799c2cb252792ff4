package engine

// ContagionPair names one virus move for the contagion treatment: a virus is
// taken from the caller's SourceOrganID and attached to TargetOrganID on
// TargetPlayerID's board.
type ContagionPair struct {
	SourceOrganID  string `json:"source_organ_id"`
	TargetPlayerID string `json:"target_player_id"`
	TargetOrganID  string `json:"target_organ_id"`
}

// Direction is the rotation sense of a body swap.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counter-clockwise"
)

// Target carries the optional targeting information for a play. Which fields
// are required depends on the card; resolvers validate their own fields and
// reject plays with missing or foreign targets.
type Target struct {
	// PlayerID and OrganID name an organ on some player's board. Used by
	// viruses, medicines, transplants, thieves and failed experiment.
	PlayerID string `json:"player_id,omitempty"`
	OrganID  string `json:"organ_id,omitempty"`

	// SecondPlayerID and SecondOrganID name the other side of a transplant
	// exchange. Either side may be any board, the caller's included.
	SecondPlayerID string `json:"second_player_id,omitempty"`
	SecondOrganID  string `json:"second_organ_id,omitempty"`

	// ReplaceOrganID names the caller's organ displaced by the mutant organ.
	ReplaceOrganID string `json:"replace_organ_id,omitempty"`

	// Action picks the face of a failed experiment: virus or medicine.
	Action Kind `json:"action,omitempty"`

	// Direction picks the rotation of a body swap.
	Direction Direction `json:"direction,omitempty"`

	// Pairs lists the explicit virus moves of a contagion.
	Pairs []ContagionPair `json:"pairs,omitempty"`
}
