package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUntilDone_ReturnsAfterProgramExits(t *testing.T) {
	var tornDown atomic.Bool

	result := make(chan error, 1)
	go func() {
		result <- runUntilDone(context.Background(),
			func() error { return nil },
			func() { t.Error("quit must not be called when the program exits on its own") },
			func() { tornDown.Store(true) },
		)
	}()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown still blocked after the program exited")
	}
	assert.True(t, tornDown.Load(), "teardown must run on the quit path")
}

func TestRunUntilDone_SignalQuitsProgram(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan struct{})
	var tornDown atomic.Bool

	result := make(chan error, 1)
	go func() {
		result <- runUntilDone(ctx,
			func() error { <-quit; return nil },
			func() { close(quit) },
			func() { tornDown.Store(true) },
		)
	}()

	cancel()
	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown still blocked after cancellation")
	}
	assert.True(t, tornDown.Load(), "teardown must run on the signal path")
}

func TestRunUntilDone_ReturnsRunError(t *testing.T) {
	errProgram := errors.New("terminal lost")
	err := runUntilDone(context.Background(),
		func() error { return errProgram },
		func() {},
		func() {},
	)
	assert.ErrorIs(t, err, errProgram)
}
