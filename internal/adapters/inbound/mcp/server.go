// Package mcp exposes plan generation as a Model Context Protocol tool over
// streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Disabled turns the MCP server off when used as MCP_PORT.
const Disabled = "-"

// YogaCoachMCPServer serves the yoga coach tools to MCP clients.
type YogaCoachMCPServer struct {
	Port                string                `config:"MCP_PORT" default:"8081"`
	Version             string                `config:"APP_VERSION" default:"dev"`
	Logger              *log.Logger           `resolve:""`
	GeneratePlanUseCase usecases.GeneratePlan `resolve:""`
}

// NewServer creates the MCP server with all tools registered.
func (s YogaCoachMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "yogacoach", Version: s.Version}, nil)
	registerTools(server, s.GeneratePlanUseCase)
	return server
}

// Run serves MCP over streamable HTTP until ctx is canceled.
func (s YogaCoachMCPServer) Run(ctx context.Context) error {
	if s.Port == Disabled {
		s.Logger.Println("YogaCoachMCPServer: disabled")
		<-ctx.Done()
		return nil
	}

	server := s.NewServer()
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", telemetry.Middleware("yogacoach-mcp")(handler))

	hs := &http.Server{
		Handler:           mux,
		Addr:              ":" + s.Port,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("YogaCoachMCPServer: Listening on port %s", s.Port)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := hs.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("YogaCoachMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("YogaCoachMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady reports whether the MCP port accepts connections.
func (s YogaCoachMCPServer) IsReady(ctx context.Context) error {
	if s.Port == Disabled {
		return nil
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", "localhost:"+s.Port)
	if err != nil {
		return fmt.Errorf("mcp server not reachable: %w", err)
	}
	return conn.Close()
}
