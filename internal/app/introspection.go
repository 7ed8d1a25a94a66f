package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// IntrospectionGraphName is the named dependency holding the mermaid graph
// served by GET /introspect.
const IntrospectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector renders the app's configuration keys, initializers
// and hosts as a mermaid graph once startup completes.
type MermaidGraphIntrospector struct {
}

// Introspect registers the graph as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs every configuration key the app read and
// whether its default value was used.
type ReportLoggerIntrospector struct {
}

// Introspect writes the report to the registered logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		return err
	}
	for _, c := range r.Configs {
		source := "configured"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("Config: %s (%s)", c.Key, source)
	}
	return nil
}
