package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/usecases"
	"github.com/rs/cors"
)

// YogaCoachServer is the REST API HTTP server of the yoga coach.
type YogaCoachServer struct {
	Port                int                   `config:"HTTP_PORT" default:"8080"`
	AllowedOrigins      string                `config:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	Logger              *log.Logger           `resolve:""`
	GeneratePlanUseCase usecases.GeneratePlan `resolve:""`
}

// Handler returns the routed handler with telemetry and CORS applied.
func (api YogaCoachServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", api.Root)
	mux.HandleFunc("POST /generate_plan", api.GeneratePlan)
	mux.HandleFunc("POST /generate_plan/{$}", api.GeneratePlan)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := telemetry.Middleware("yogacoach-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.New(cors.Options{
		AllowedOrigins:   splitOrigins(api.AllowedOrigins),
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{PlanIDHeader},
	}).Handler(h)
}

// Run starts the HTTP server for the YogaCoachServer.
func (api YogaCoachServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("YogaCoachServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("YogaCoachServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("YogaCoachServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks if the YogaCoachServer is ready by performing a health check.
func (api YogaCoachServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
