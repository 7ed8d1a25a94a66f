package domain

import "github.com/google/uuid"

// PartialPlanMessage is returned alongside a plan that does not fill the
// requested duration.
const PartialPlanMessage = "Could not fully match the requested duration with available poses."

// PlanEntry is one pose in a generated plan.
type PlanEntry struct {
	Pose         string
	Description  string
	Duration     string
	Instructions string
	Minutes      float64
}

// Plan is an ordered sequence of poses for one session.
type Plan struct {
	ID               uuid.UUID
	Entries          []PlanEntry
	RequestedMinutes float64
	UsedMinutes      float64
	Satisfied        bool
}

// Message returns the notice attached to a partial plan, or an empty string.
func (p Plan) Message() string {
	if p.Satisfied {
		return ""
	}
	return PartialPlanMessage
}
