package http

// WelcomeResp is the body returned by GET /.
type WelcomeResp struct {
	Message string `json:"message"`
}

// PlanReq is the JSON object form of a plan request.
type PlanReq struct {
	Duration  *int     `json:"duration"`
	Intensity string   `json:"intensity"`
	Muscles   []string `json:"muscles"`
}

// PlanItem is one pose of a plan as returned to clients.
type PlanItem struct {
	Pose         string `json:"pose"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// PlanResp is the body of a successful plan request. Message is only set for
// partial plans.
type PlanResp struct {
	Message string     `json:"message,omitempty"`
	Plan    []PlanItem `json:"plan"`
}

// ErrorResp is the body of a failed request.
type ErrorResp struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
