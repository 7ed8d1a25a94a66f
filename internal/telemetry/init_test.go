package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		ServiceName:     "yogacoach",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	assert.Nil(t, init.tp)
	assert.Nil(t, init.mp)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 1, Timeout: time.Second}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.Equal(t, time.Second, client.Timeout)
}

func TestDontRetry5xxStatusPolicy(t *testing.T) {
	always := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry5xxStatusPolicy(always)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx         context.Context
		resp        *http.Response
		err         error
		expectRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"bad-gateway": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusBadGateway},
		},
		"gateway-timeout": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusGatewayTimeout},
		},
		"too-many-requests": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusTooManyRequests},
			expectRetry: true,
		},
		"service-unavailable": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusServiceUnavailable},
			expectRetry: true,
		},
		"transport-error": {
			ctx:         context.Background(),
			err:         errors.New("connection refused"),
			expectRetry: true,
		},
		"canceled": {
			ctx: canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.expectRetry, retry)
		})
	}
}
