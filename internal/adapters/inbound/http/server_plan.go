package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/usecases"
)

const maxPlanRequestBytes = 1 << 20

// PlanIDHeader carries the id of the generated plan.
const PlanIDHeader = "X-Plan-ID"

// GeneratePlan handles POST /generate_plan/.
func (api YogaCoachServer) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	req, err := decodePlanRequest(w, r)
	if err != nil {
		respondError(w, err)
		return
	}

	plan, err := api.GeneratePlanUseCase.Execute(r.Context(), req)
	if err != nil {
		api.Logger.Printf("YogaCoachServer: error generating plan: %v", err)
		respondError(w, err)
		return
	}

	w.Header().Set(PlanIDHeader, plan.ID.String())
	respondJSON(w, http.StatusOK, toPlanResp(plan))
}

// decodePlanRequest accepts either a JSON object body or the legacy form,
// where duration and intensity are query parameters and the body is a JSON
// array of muscle groups. Fields in a JSON object win over query parameters.
func decodePlanRequest(w http.ResponseWriter, r *http.Request) (usecases.PlanRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPlanRequestBytes))
	if err != nil {
		return usecases.PlanRequest{}, domain.NewValidationErr(fmt.Sprintf("invalid request body: %v", err))
	}

	query := r.URL.Query()
	req := usecases.PlanRequest{Intensity: query.Get("intensity")}
	hasDuration := false
	if raw := query.Get("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return usecases.PlanRequest{}, domain.NewValidationErr(fmt.Sprintf("duration must be an integer, got %q", raw))
		}
		req.Duration = d
		hasDuration = true
	}

	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &req.Muscles); err != nil {
			return usecases.PlanRequest{}, domain.NewValidationErr(fmt.Sprintf("invalid request body: %v", err))
		}
	default:
		var obj PlanReq
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return usecases.PlanRequest{}, domain.NewValidationErr(fmt.Sprintf("invalid request body: %v", err))
		}
		if obj.Duration != nil {
			req.Duration = *obj.Duration
			hasDuration = true
		}
		if obj.Intensity != "" {
			req.Intensity = obj.Intensity
		}
		if obj.Muscles != nil {
			req.Muscles = obj.Muscles
		}
	}

	if !hasDuration {
		return usecases.PlanRequest{}, domain.NewValidationErr("duration is required")
	}
	return req, nil
}
