package main

import (
	"context"
	"net"
	"testing"
	"time"

	"bookstore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, config.Config{Addr: "127.0.0.1:0", RateLimitRPS: 10, RateLimitBurst: 10, MaxBodyBytes: 1024})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	ls, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ls.Close()

	err = run(context.Background(), config.Config{Addr: ls.Addr().String()})
	assert.Error(t, err)
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000", displayURL(&net.TCPAddr{IP: net.IPv6zero, Port: 3000}))
	assert.Equal(t, "http://localhost:8080", displayURL(&net.TCPAddr{Port: 8080}))
}
