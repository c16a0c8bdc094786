package camera

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedDevice_AcquireAndRead(t *testing.T) {
	stream, err := NewSimulatedDevice().Acquire(context.Background(), FacingEnvironment)
	require.NoError(t, err)
	defer stream.Release()

	first, err := stream.Frame()
	require.NoError(t, err)
	assert.Equal(t, 640, first.Width)
	assert.Equal(t, 480, first.Height)
	assert.Len(t, first.Pixels, 640*480*4)

	second, err := stream.Frame()
	require.NoError(t, err)
	assert.Greater(t, second.Seq, first.Seq)
}

func TestSimulatedDevice_Fail(t *testing.T) {
	device := &SimulatedDevice{Width: 64, Height: 48, Fail: true}
	_, err := device.Acquire(context.Background(), FacingEnvironment)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSimulatedDevice_AcquireCancelled(t *testing.T) {
	device := &SimulatedDevice{Width: 64, Height: 48, AcquireLatency: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := device.Acquire(ctx, FacingEnvironment)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Acquire did not honor context cancellation")
	}
}

func TestStream_ReleaseIdempotent(t *testing.T) {
	stream, err := NewSimulatedDevice().Acquire(context.Background(), FacingEnvironment)
	require.NoError(t, err)

	require.NoError(t, stream.Release())
	require.NoError(t, stream.Release())

	_, err = stream.Frame()
	assert.ErrorIs(t, err, ErrStreamReleased)
}

func TestFrame_Clone(t *testing.T) {
	f := Frame{Width: 2, Height: 1, Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	clone := f.Clone()
	clone.Pixels[0] = 99
	assert.Equal(t, byte(1), f.Pixels[0])
}
