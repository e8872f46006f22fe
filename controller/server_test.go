package controller

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"reading-app-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8000", ServerAddr())
}

func TestServeShutsDownOnCancel(t *testing.T) {
	log := logger.NewLoggerWithOutput("error", "text", &bytes.Buffer{})

	// reserve a free port, then release it for the server
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, http.NotFoundHandler(), log)
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeReportsListenError(t *testing.T) {
	log := logger.NewLoggerWithOutput("error", "text", &bytes.Buffer{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = Serve(context.Background(), ln.Addr().String(), http.NotFoundHandler(), log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
