package capture

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raine/portionvision/internal/camera"
	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDevice wraps the simulated device and counts stream releases.
type countingDevice struct {
	inner    camera.Device
	releases atomic.Int32
}

func newCountingDevice() *countingDevice {
	return &countingDevice{inner: &camera.SimulatedDevice{Width: 64, Height: 48}}
}

func (d *countingDevice) Acquire(ctx context.Context, facing camera.FacingMode) (camera.Stream, error) {
	stream, err := d.inner.Acquire(ctx, facing)
	if err != nil {
		return nil, err
	}
	return &countingStream{Stream: stream, releases: &d.releases}, nil
}

type countingStream struct {
	camera.Stream
	mu       sync.Mutex
	released bool
	releases *atomic.Int32
}

func (s *countingStream) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.released {
		s.released = true
		s.releases.Add(1)
	}
	return s.Stream.Release()
}

// slowDevice delivers a stream after a delay regardless of context state,
// modeling an acquisition that completes after the session was closed.
type slowDevice struct {
	device *countingDevice
	delay  time.Duration
}

func (d *slowDevice) Acquire(ctx context.Context, facing camera.FacingMode) (camera.Stream, error) {
	time.Sleep(d.delay)
	return d.device.Acquire(context.Background(), facing)
}

func testObject() catalog.VisualObject {
	return catalog.LookupVisualObject("Tennis Ball")
}

func TestSession_OpenSuccess(t *testing.T) {
	s := NewSession(newCountingDevice(), testObject())
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Open(context.Background()))
	assert.Equal(t, StateLive, s.State())
	assert.Equal(t, overlay.DefaultScale, s.Scale())

	require.NoError(t, s.Close())
}

func TestSession_OpenFailure(t *testing.T) {
	device := &camera.SimulatedDevice{Fail: true}
	s := NewSession(device, testObject())

	err := s.Open(context.Background())
	assert.ErrorIs(t, err, camera.ErrUnavailable)
	assert.Equal(t, StateFailed, s.State())
	assert.NotEmpty(t, s.FailReason())

	// Close must still work after a failed open
	require.NoError(t, s.Close())
	assert.Equal(t, StateReleased, s.State())
}

func TestSession_SetScaleClamps(t *testing.T) {
	s := NewSession(newCountingDevice(), testObject())
	require.NoError(t, s.Open(context.Background()))
	defer s.Close()

	assert.Equal(t, 2.0, s.SetScale(10.0))
	assert.Equal(t, 0.5, s.SetScale(-5))
	assert.Equal(t, 1.25, s.SetScale(1.25))

	guide := s.Guide()
	assert.Equal(t, 1.25, guide.Scale)
}

func TestSession_SetScaleIgnoredWhenNotLive(t *testing.T) {
	s := NewSession(newCountingDevice(), testObject())
	assert.Equal(t, overlay.DefaultScale, s.SetScale(1.8))

	require.NoError(t, s.Open(context.Background()))
	s.SetScale(1.8)
	require.NoError(t, s.Capture())

	// Frozen session keeps its scale
	assert.Equal(t, 1.8, s.SetScale(0.6))
	s.Close()
}

func TestSession_Capture(t *testing.T) {
	var captured atomic.Bool
	s := NewSession(newCountingDevice(), testObject(), OnCapture(func() { captured.Store(true) }))
	require.NoError(t, s.Open(context.Background()))
	defer s.Close()

	require.NoError(t, s.Capture())
	assert.Equal(t, StateFrozen, s.State())
	assert.True(t, captured.Load(), "capture-complete callback should fire synchronously with zero delay")

	frame := s.FrozenFrame()
	require.NotNil(t, frame)
	assert.Len(t, frame.Pixels, 64*48*4)

	// A second capture is not a valid transition
	assert.ErrorIs(t, s.Capture(), ErrNotLive)
}

func TestSession_CaptureBeforeOpen(t *testing.T) {
	s := NewSession(newCountingDevice(), testObject())
	assert.ErrorIs(t, s.Capture(), ErrNotLive)
}

func TestSession_CloseIdempotent(t *testing.T) {
	device := newCountingDevice()
	s := NewSession(device, testObject())
	require.NoError(t, s.Open(context.Background()))

	require.NoError(t, s.Close())
	assert.Equal(t, StateReleased, s.State())

	require.NoError(t, s.Close())
	assert.Equal(t, StateReleased, s.State())

	assert.Equal(t, int32(1), device.releases.Load(), "underlying stream must be released exactly once")
}

func TestSession_CloseDuringAcquisition(t *testing.T) {
	device := newCountingDevice()
	slow := &slowDevice{device: device, delay: 50 * time.Millisecond}
	s := NewSession(slow, testObject())

	done := make(chan error, 1)
	go func() { done <- s.Open(context.Background()) }()

	// Close while the acquisition is still in flight
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Close())
	assert.Equal(t, StateReleased, s.State())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Open did not return after Close")
	}

	// The late-arriving stream must still have been released
	assert.Eventually(t, func() bool { return device.releases.Load() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestSession_OpenTwice(t *testing.T) {
	s := NewSession(newCountingDevice(), testObject())
	require.NoError(t, s.Open(context.Background()))
	defer s.Close()

	assert.ErrorIs(t, s.Open(context.Background()), ErrAlreadyOpened)
}

func TestSession_CaptureAckDelay(t *testing.T) {
	var captured atomic.Bool
	s := NewSession(newCountingDevice(), testObject(),
		WithAckDelay(20*time.Millisecond),
		OnCapture(func() { captured.Store(true) }))
	require.NoError(t, s.Open(context.Background()))
	defer s.Close()

	require.NoError(t, s.Capture())
	assert.False(t, captured.Load(), "callback should be deferred by the ack delay")
	assert.Eventually(t, func() bool { return captured.Load() }, time.Second, 5*time.Millisecond)
}
