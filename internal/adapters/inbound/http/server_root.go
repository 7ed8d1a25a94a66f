package http

import "net/http"

// WelcomeMessage is returned by the root endpoint.
const WelcomeMessage = "Welcome to the Personalized Yoga Coach"

// Root answers GET / and doubles as the readiness probe.
func (api YogaCoachServer) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, WelcomeResp{Message: WelcomeMessage})
}
