package openai

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, expectInput string, statusCode int, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req goopenai.EmbeddingRequest
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		assert.Equal(t, []any{expectInput}, req.Input)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write([]byte(response)) //nolint:errcheck
	}))
}

func TestEncoder_Vectorize(t *testing.T) {
	pose := domain.PoseRecord{Pose: "Cobra Pose", Definition: "A gentle backbend", MuscleGroups: "Back, Chest"}
	query := "Intensity: gentle. Target muscles: back."

	tests := map[string]struct {
		vectorize      func(e Encoder) (domain.EmbeddingVector, error)
		expectInput    string
		statusCode     int
		response       string
		expectedVec    []float64
		expectedTokens int
		expectErr      bool
	}{
		"pose": {
			vectorize: func(e Encoder) (domain.EmbeddingVector, error) {
				return e.VectorizePose(context.Background(), "text-embedding-3-small", pose)
			},
			expectInput:    "Cobra Pose A gentle backbend Back, Chest",
			statusCode:     http.StatusOK,
			response:       `{"object":"list","data":[{"object":"embedding","index":0,"embedding":[0.5,0.25]}],"model":"text-embedding-3-small","usage":{"prompt_tokens":7,"total_tokens":7}}`,
			expectedVec:    []float64{0.5, 0.25},
			expectedTokens: 7,
		},
		"query": {
			vectorize: func(e Encoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "text-embedding-3-small", query)
			},
			expectInput:    query,
			statusCode:     http.StatusOK,
			response:       `{"object":"list","data":[{"object":"embedding","index":0,"embedding":[1,0]}],"model":"text-embedding-3-small","usage":{"prompt_tokens":9,"total_tokens":9}}`,
			expectedVec:    []float64{1, 0},
			expectedTokens: 9,
		},
		"no-embedding-data": {
			vectorize: func(e Encoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "text-embedding-3-small", query)
			},
			expectInput: query,
			statusCode:  http.StatusOK,
			response:    `{"object":"list","data":[],"model":"text-embedding-3-small","usage":{"prompt_tokens":0,"total_tokens":0}}`,
			expectErr:   true,
		},
		"api-error": {
			vectorize: func(e Encoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "text-embedding-3-small", query)
			},
			expectInput: query,
			statusCode:  http.StatusUnauthorized,
			response:    `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			expectErr:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := newTestServer(t, tt.expectInput, tt.statusCode, tt.response)
			defer server.Close()

			encoder := NewEncoder(NewClient("test-key", server.URL+"/v1", server.Client()))
			vec, err := tt.vectorize(encoder)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedVec, vec.Vector)
			assert.Equal(t, tt.expectedTokens, vec.TotalTokens)
		})
	}
}

func TestInitEncoder_Initialize(t *testing.T) {
	tests := map[string]struct {
		init         InitEncoder
		expectErr    bool
		expectLookup bool
	}{
		"selected": {
			init:         InitEncoder{Provider: ProviderName, APIKey: "test-key", BaseURL: "-"},
			expectLookup: true,
		},
		"missing-api-key": {
			init:      InitEncoder{Provider: ProviderName, APIKey: "-", BaseURL: "-"},
			expectErr: true,
		},
		"not-selected": {
			init: InitEncoder{Provider: "modelrunner", APIKey: "-", BaseURL: "-"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			tt.init.Logger = log.New(&strings.Builder{}, "", 0)
			tt.init.HttpClient = http.DefaultClient
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			_, err = depend.Resolve[domain.SemanticEncoder]()
			if tt.expectLookup {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
