//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/app"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL     = "http://localhost:18080"
	mcpEndpoint = "http://localhost:18081/mcp"
)

type planResp struct {
	Message string `json:"message"`
	Plan    []struct {
		Pose         string `json:"pose"`
		Description  string `json:"description"`
		Duration     string `json:"duration"`
		Instructions string `json:"instructions"`
	} `json:"plan"`
}

func TestMain(m *testing.M) {
	yogaCoach := app.NewYogaCoachApp(
		&initEnvVars{
			envVars: map[string]string{
				"VAULT_ADDR":        "http://localhost:8200",
				"VAULT_TOKEN":       "root-token",
				"VAULT_MOUNT_PATH":  "secret",
				"VAULT_SECRET_PATH": "yogacoach",
				"HTTP_PORT":         "18080",
				"MCP_PORT":          "18081",
			},
		},
		&InitDockerCompose{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := yogaCoach.RunAsync(cancelCtx)

	err := yogaCoach.WaitForReadiness(cancelCtx, 5*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("YogaCoach app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("YogaCoach app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("YogaCoach app shutdown with error: %v", err)
		} else {
			log.Printf("YogaCoach app shut down gracefully")
		}
	}

	os.Exit(code)
}

func postPlan(t *testing.T, target string, body string) (*http.Response, planResp) {
	t.Helper()
	resp, err := http.Post(baseURL+target, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var out planResp
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestYogaCoach_RestAPI(t *testing.T) {
	t.Run("welcome", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Welcome to the Personalized Yoga Coach", body["message"])
	})

	t.Run("satisfied-plan", func(t *testing.T) {
		resp, plan := postPlan(t, "/generate_plan/", `{"duration": 5, "intensity": "moderate", "muscles": ["core", "legs"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Plan-ID"))
		assert.Empty(t, plan.Message)

		var total float64
		for _, p := range plan.Plan {
			m, err := domain.ParsePoseMinutes(p.Duration)
			require.NoError(t, err)
			assert.LessOrEqual(t, m, 5.0)
			total += m
		}
		// durations are rounded to one decimal
		assert.InDelta(t, 5.0, total, 0.05*float64(len(plan.Plan)))
	})

	t.Run("legacy-request", func(t *testing.T) {
		resp, plan := postPlan(t, "/generate_plan/?duration=5&intensity=gentle", `["hamstrings", "back"]`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, plan.Plan)
	})

	t.Run("partial-plan", func(t *testing.T) {
		resp, plan := postPlan(t, "/generate_plan/", `{"duration": 1000, "intensity": "low", "muscles": ["neck"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.PartialPlanMessage, plan.Message)
		assert.LessOrEqual(t, len(plan.Plan), 15)
	})

	t.Run("invalid-duration", func(t *testing.T) {
		resp, _ := postPlan(t, "/generate_plan/", `{"duration": 0}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("introspect", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/introspect")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	})
}

func TestYogaCoach_MCP(t *testing.T) {
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(t.Context(), &mcp.StreamableClientTransport{Endpoint: mcpEndpoint}, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "generate_yoga_plan",
		Arguments: map[string]any{"duration": 5, "intensity": "gentle", "muscles": []string{"hips"}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out struct {
		PlanID    string  `json:"plan_id"`
		Used      float64 `json:"used_minutes"`
		Satisfied bool    `json:"satisfied"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out.PlanID)
	assert.True(t, out.Satisfied)
	assert.InDelta(t, 5.0, out.Used, 1e-6)
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
