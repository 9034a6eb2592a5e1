package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-car-keeper/internal/handler/http"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, 0, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.IsType(t, &server{}, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NilHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewHTTPServer(t *testing.T) {
	h := http.NewServeMux()
	srv := newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:9999"}, logger.Nop())

	assert.Equal(t, "127.0.0.1:9999", srv.server.Addr)
	assert.Same(t, h, srv.server.Handler)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/main")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusUnauthorized
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + addr + "/main")
	assert.Error(t, err)
}

func TestRun_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.(*server).run(context.Background()) }()

	select {
	case err := <-done:
		var opErr *net.OpError
		assert.ErrorAs(t, err, &opErr)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after listen failure")
	}
}
