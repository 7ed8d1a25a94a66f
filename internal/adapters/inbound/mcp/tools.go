package mcp

import (
	"context"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GeneratePlanToolName is the name clients use to call plan generation.
const GeneratePlanToolName = "generate_yoga_plan"

// GeneratePlanInput is the argument object of the generate_yoga_plan tool.
type GeneratePlanInput struct {
	Duration  int      `json:"duration" jsonschema:"total session length in minutes"`
	Intensity string   `json:"intensity,omitempty" jsonschema:"desired intensity, e.g. gentle or vigorous"`
	Muscles   []string `json:"muscles,omitempty" jsonschema:"muscle groups to target"`
}

// PlanPose is one pose in the tool result.
type PlanPose struct {
	Pose         string  `json:"pose"`
	Description  string  `json:"description"`
	Duration     string  `json:"duration"`
	Instructions string  `json:"instructions"`
	Minutes      float64 `json:"minutes"`
}

// GeneratePlanOutput is the structured result of the generate_yoga_plan tool.
type GeneratePlanOutput struct {
	PlanID           string     `json:"plan_id"`
	Message          string     `json:"message,omitempty"`
	Plan             []PlanPose `json:"plan"`
	RequestedMinutes float64    `json:"requested_minutes"`
	UsedMinutes      float64    `json:"used_minutes"`
	Satisfied        bool       `json:"satisfied"`
}

func registerTools(server *mcp.Server, generatePlan usecases.GeneratePlan) {
	mcp.AddTool(server, &mcp.Tool{
		Name: GeneratePlanToolName,
		Description: "Build a yoga session of the requested length from the poses that best match " +
			"the intensity and muscle groups. Each pose lasts at most 5 minutes.",
	}, generatePlanHandler(generatePlan))
}

func generatePlanHandler(generatePlan usecases.GeneratePlan) mcp.ToolHandlerFor[GeneratePlanInput, GeneratePlanOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GeneratePlanInput) (*mcp.CallToolResult, GeneratePlanOutput, error) {
		plan, err := generatePlan.Execute(ctx, usecases.PlanRequest{
			Duration:  in.Duration,
			Intensity: in.Intensity,
			Muscles:   in.Muscles,
		})
		if err != nil {
			return nil, GeneratePlanOutput{}, err
		}
		return nil, toOutput(plan), nil
	}
}

func toOutput(plan domain.Plan) GeneratePlanOutput {
	out := GeneratePlanOutput{
		PlanID:           plan.ID.String(),
		Message:          plan.Message(),
		Plan:             make([]PlanPose, 0, len(plan.Entries)),
		RequestedMinutes: plan.RequestedMinutes,
		UsedMinutes:      plan.UsedMinutes,
		Satisfied:        plan.Satisfied,
	}
	for _, e := range plan.Entries {
		out.Plan = append(out.Plan, PlanPose{
			Pose:         e.Pose,
			Description:  e.Description,
			Duration:     e.Duration,
			Instructions: e.Instructions,
			Minutes:      e.Minutes,
		})
	}
	return out
}
