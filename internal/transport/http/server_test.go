package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/viant/idgen"
	"github.com/viant/idgen/internal/batch"
	"github.com/viant/idgen/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Generator.Strategy = idgen.StrategySimple
	cfg.Addr = "127.0.0.1:0"
	logger := zerolog.Nop()
	return NewServer(cfg, batch.New(idgen.NewSimple(), nil), &logger)
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	return rec
}

func TestServer_IDs(t *testing.T) {
	var testCases = []struct {
		description string
		target      string
		status      int
		expect      []string
	}{
		{description: "default", target: "/v1/ids", status: stdhttp.StatusOK, expect: []string{"00000000-0000-0000-0000-000000000001"}},
		{description: "count and format", target: "/v1/ids?count=2&format=bits", status: stdhttp.StatusOK, expect: []string{"0 1", "0 2"}},
		{description: "bad count", target: "/v1/ids?count=abc", status: stdhttp.StatusBadRequest},
		{description: "count too large", target: "/v1/ids?count=1001", status: stdhttp.StatusBadRequest},
		{description: "bad format", target: "/v1/ids?format=base58", status: stdhttp.StatusBadRequest},
	}

	for _, testCase := range testCases {
		rec := get(newTestServer(t), testCase.target)
		assert.Equal(t, testCase.status, rec.Code, testCase.description)
		if testCase.expect == nil {
			continue
		}
		var body struct {
			IDs []string `json:"ids"`
		}
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body), testCase.description)
		assert.Equal(t, testCase.expect, body.IDs, testCase.description)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)
	rec := get(s, "/health")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	get(s, "/v1/ids?count=5")
	rec = get(s, "/metrics")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `idgen_ids_generated_total{strategy="simple"} 5`), body)
	assert.True(t, strings.Contains(body, `idgen_http_requests_total{path="/v1/ids",status="200"} 1`), body)
}

func TestServer_Run(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for shutdown")
	}
}
