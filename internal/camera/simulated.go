package camera

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrStreamReleased is returned when reading from a released stream.
var ErrStreamReleased = errors.New("stream has been released")

// SimulatedDevice generates synthetic frames. It stands in for a real
// camera in tests and on machines without video hardware.
type SimulatedDevice struct {
	Width  int
	Height int
	// AcquireLatency delays Acquire to model real device startup.
	AcquireLatency time.Duration
	// Fail makes every Acquire return ErrUnavailable.
	Fail bool
}

// NewSimulatedDevice returns a device producing 640x480 synthetic frames
// with no acquisition latency.
func NewSimulatedDevice() *SimulatedDevice {
	return &SimulatedDevice{Width: 640, Height: 480}
}

// Acquire returns a synthetic stream, honoring the configured latency and
// failure mode. Cancelling the context aborts acquisition.
func (d *SimulatedDevice) Acquire(ctx context.Context, facing FacingMode) (Stream, error) {
	if d.AcquireLatency > 0 {
		select {
		case <-time.After(d.AcquireLatency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if d.Fail {
		return nil, ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("facing", string(facing)).
		Int("width", d.Width).
		Int("height", d.Height).
		Msg("simulated camera stream acquired")

	return &simulatedStream{width: d.Width, height: d.Height, started: time.Now()}, nil
}

type simulatedStream struct {
	mu       sync.Mutex
	width    int
	height   int
	seq      uint64
	started  time.Time
	released bool
}

// Frame synthesizes the next frame. The pixel pattern shifts with the
// sequence number so consecutive frames differ.
func (s *simulatedStream) Frame() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return Frame{}, ErrStreamReleased
	}

	s.seq++
	pixels := make([]byte, s.width*s.height*4)
	shift := byte(s.seq % 256)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = shift
		pixels[i+1] = byte((i / 4) % 256)
		pixels[i+2] = 0x80
		pixels[i+3] = 0xff
	}
	return Frame{
		Seq:       s.seq,
		Width:     s.width,
		Height:    s.height,
		Pixels:    pixels,
		Timestamp: time.Now(),
	}, nil
}

func (s *simulatedStream) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	s.released = true
	log.Debug().Uint64("frames", s.seq).Dur("uptime", time.Since(s.started)).Msg("simulated camera stream released")
	return nil
}
