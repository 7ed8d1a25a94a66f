package http

import (
	"net/http"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
)

func toError(err error) (int, ErrorResp) {
	kind := domain.KindOf(err)
	resp := ErrorResp{Kind: string(kind), Error: err.Error()}

	switch kind {
	case domain.ErrKindValidation:
		return http.StatusBadRequest, resp
	case domain.ErrKindParse:
		return http.StatusUnprocessableEntity, resp
	case domain.ErrKindEmbedding:
		return http.StatusBadGateway, resp
	case domain.ErrKindIndex:
		return http.StatusInternalServerError, resp
	default:
		resp.Error = "internal server error"
		return http.StatusInternalServerError, resp
	}
}

func toPlanResp(plan domain.Plan) PlanResp {
	resp := PlanResp{
		Message: plan.Message(),
		Plan:    make([]PlanItem, 0, len(plan.Entries)),
	}
	for _, e := range plan.Entries {
		resp.Plan = append(resp.Plan, PlanItem{
			Pose:         e.Pose,
			Description:  e.Description,
			Duration:     e.Duration,
			Instructions: e.Instructions,
		})
	}
	return resp
}
