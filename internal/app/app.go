package app

import (
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/inbound/http"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/inbound/mcp"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/config"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/dataset"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/localembed"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/log"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/modelrunner"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/openai"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/corpus"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewYogaCoachApp creates and returns a new instance of the yoga coach application.
// Initializers passed in run before the built-in ones.
func NewYogaCoachApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},

			&InitEmbeddingProvider{},
			&modelrunner.InitEncoder{},
			&openai.InitEncoder{},
			&localembed.InitEncoder{},

			&dataset.InitPoseDataset{},
			&corpus.InitPoseIndex{},

			&usecases.InitGeneratePlan{},
		).
		Host(
			&http.YogaCoachServer{},
			&mcp.YogaCoachMCPServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
