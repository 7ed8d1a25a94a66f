// Package planner assembles a time-boxed pose sequence from ranked
// candidates.
package planner

import (
	"fmt"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/google/uuid"
)

// MaxPoseMinutes caps the time any single pose contributes to a plan.
const MaxPoseMinutes = 5.0

// Build walks candidates in the given order, adding each pose for its listed
// duration (capped at MaxPoseMinutes) until totalMinutes is filled. The pose
// that would overflow the budget is shortened to the remaining time.
// Candidates are never reordered.
func Build(candidates []domain.PoseCandidate, totalMinutes float64) (domain.Plan, error) {
	plan := domain.Plan{
		ID:               uuid.New(),
		Entries:          []domain.PlanEntry{},
		RequestedMinutes: totalMinutes,
	}

	used := 0.0
	for _, c := range candidates {
		minutes, err := domain.ParsePoseMinutes(c.Record.Duration)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("pose %q: %w", c.Record.Pose, err)
		}

		minutes = min(minutes, MaxPoseMinutes)

		shrunk := false
		if used+minutes > totalMinutes {
			minutes = totalMinutes - used
			if minutes <= 0 {
				break
			}
			shrunk = true
		}

		plan.Entries = append(plan.Entries, domain.PlanEntry{
			Pose:         c.Record.Pose,
			Description:  c.Record.Definition,
			Duration:     domain.FormatMinutes(minutes),
			Instructions: c.Record.Instructions,
			Minutes:      minutes,
		})
		// a shortened pose fills the budget exactly
		if shrunk {
			used = totalMinutes
		} else {
			used += minutes
		}

		if used >= totalMinutes {
			break
		}
	}

	plan.UsedMinutes = used
	plan.Satisfied = used >= totalMinutes
	return plan, nil
}
