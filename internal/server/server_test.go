package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-recipe-keeper/internal/handler/http"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

func testServerConfig(addr string) config.Server {
	return config.Server{HTTPAddress: addr, RequestTimeout: config.Duration(2 * time.Second)}
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: testServerConfig("127.0.0.1:0")},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: testServerConfig("127.0.0.1:0")},
		{name: "no address", handlers: &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
	s, err := NewServer(handlers, testServerConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
	s, err := NewServer(handlers, testServerConfig(l.Addr().String()), logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

func TestHTTPServer_ShutdownCancelsRequestContexts(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = http.NewResponseController(w).Flush()
		close(started)
		<-r.Context().Done()
		close(finished)
	})

	srv := newHTTPServer(h, testServerConfig("127.0.0.1:0"), logger.Nop())
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	defer resp.Body.Close()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.shutdown(ctx))

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("request context was not cancelled on shutdown")
	}
}
