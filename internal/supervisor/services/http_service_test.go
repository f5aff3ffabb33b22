// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// mockHTTPServer is a test double for HTTPServer.
type mockHTTPServer struct {
	serveErr      error
	shutdownErr   error
	serveCount    atomic.Int32
	shutdownCount atomic.Int32
	started       chan struct{}
	stopCh        chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) Serve(l net.Listener) error {
	m.serveCount.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if m.serveErr != nil {
		_ = l.Close()
		return m.serveErr
	}
	<-m.stopCh
	_ = l.Close()
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(ctx context.Context) error {
	m.shutdownCount.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	for _, timeout := range []time.Duration{0, -5 * time.Second} {
		svc := NewHTTPServerService(newMockHTTPServer(), "127.0.0.1:0", timeout)
		if svc.shutdownTimeout != defaultShutdownTimeout {
			t.Errorf("timeout %v: got %v, want %v", timeout, svc.shutdownTimeout, defaultShutdownTimeout)
		}
	}
	if got := NewHTTPServerService(newMockHTTPServer(), "", time.Second).String(); got != "http-server" {
		t.Errorf("String() = %q", got)
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, "127.0.0.1:0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}

	if server.serveCount.Load() != 1 || server.shutdownCount.Load() != 1 {
		t.Errorf("serve=%d shutdown=%d, want 1/1", server.serveCount.Load(), server.shutdownCount.Load())
	}
}

func TestHTTPServerService_Failures(t *testing.T) {
	t.Parallel()

	t.Run("serve error is returned", func(t *testing.T) {
		t.Parallel()
		want := errors.New("accept failed")
		server := newMockHTTPServer()
		server.serveErr = want

		err := NewHTTPServerService(server, "127.0.0.1:0", time.Second).Serve(context.Background())
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
	})

	t.Run("bind error is returned", func(t *testing.T) {
		t.Parallel()
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
		defer ln.Close()

		server := newMockHTTPServer()
		err = NewHTTPServerService(server, ln.Addr().String(), time.Second).Serve(context.Background())
		if err == nil {
			t.Fatal("expected bind error")
		}
		if server.serveCount.Load() != 0 {
			t.Error("Serve must not be called when bind fails")
		}
	})

	t.Run("shutdown error is returned", func(t *testing.T) {
		t.Parallel()
		want := errors.New("shutdown timeout")
		server := newMockHTTPServer()
		server.shutdownErr = want
		svc := NewHTTPServerService(server, "127.0.0.1:0", time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()
		<-server.started
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, want) {
				t.Errorf("expected shutdown error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return")
		}
	})
}

func TestHTTPServerService_RealServerUnderSupervisor(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(server, "127.0.0.1:0", time.Second)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	addrCtx, addrCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer addrCancel()
	addr, err := svc.Addr(addrCtx)
	if err != nil {
		t.Fatalf("Addr: %v", err)
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}

	cancel()
	<-errCh
}
