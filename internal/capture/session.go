// Package capture owns the lifecycle of one live camera stream bound to a
// reference object: acquisition, scale adjustment, frame freeze and
// guaranteed release.
package capture

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/raine/portionvision/internal/camera"
	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/overlay"
	"github.com/rs/zerolog/log"
)

// State represents the capture session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateAcquiring
	StateLive
	StateFrozen
	StateFailed
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAcquiring:
		return "Acquiring"
	case StateLive:
		return "Live"
	case StateFrozen:
		return "Frozen"
	case StateFailed:
		return "Failed"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

var (
	// ErrNotLive is returned by operations that require a live stream.
	ErrNotLive = errors.New("session has no live stream")
	// ErrAlreadyOpened is returned when Open is called more than once.
	ErrAlreadyOpened = errors.New("session already opened")
)

// Option configures a session.
type Option func(*Session)

// WithFacing selects the camera facing mode. The default is the
// environment-facing camera.
func WithFacing(facing camera.FacingMode) Option {
	return func(s *Session) { s.facing = facing }
}

// WithAckDelay sets how long after a capture the capture-complete callback
// fires. The delay exists so a success acknowledgment can be shown; zero
// (the default) fires the callback synchronously from Capture.
func WithAckDelay(d time.Duration) Option {
	return func(s *Session) { s.ackDelay = d }
}

// OnCapture registers the callback invoked once a frame has been captured.
func OnCapture(fn func()) Option {
	return func(s *Session) { s.onCapture = fn }
}

// Session is one active use of the device camera, bound to a single
// reference object. All methods are safe for concurrent use, though the
// workflow drives them one transition at a time.
type Session struct {
	mu        sync.Mutex
	device    camera.Device
	facing    camera.FacingMode
	object    catalog.VisualObject
	ackDelay  time.Duration
	onCapture func()

	state      State
	scale      float64
	failReason string
	stream     camera.Stream
	frozen     *camera.Frame
	cancel     context.CancelFunc
}

// NewSession creates an idle session bound to the given reference object.
func NewSession(device camera.Device, object catalog.VisualObject, opts ...Option) *Session {
	s := &Session{
		device: device,
		facing: camera.FacingEnvironment,
		object: object,
		state:  StateIdle,
		scale:  overlay.DefaultScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Object returns the reference object this session is bound to.
func (s *Session) Object() catalog.VisualObject {
	return s.object
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FailReason returns the human-readable reason the session failed, if any.
func (s *Session) FailReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failReason
}

// Open acquires the device stream. It blocks until the stream is live, the
// acquisition fails, or the session is closed from another goroutine. On
// failure the session ends in the Failed state with a user-facing reason;
// acquisition is not retried.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		if state == StateReleased {
			return nil
		}
		return ErrAlreadyOpened
	}
	s.state = StateAcquiring
	acquireCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	log.Info().Str("object", s.object.Name).Msg("acquiring camera stream")
	stream, err := s.device.Acquire(acquireCtx, s.facing)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReleased {
		// Closed while acquiring; a late stream must still be released.
		if stream != nil {
			if rerr := stream.Release(); rerr != nil {
				log.Error().Err(rerr).Msg("failed to release late-arriving stream")
			}
		}
		return nil
	}

	if err != nil {
		s.state = StateFailed
		s.failReason = "Unable to access camera. Please ensure you have granted permissions."
		log.Warn().Err(err).Str("object", s.object.Name).Msg("camera acquisition failed")
		return err
	}

	s.stream = stream
	s.state = StateLive
	s.scale = overlay.DefaultScale
	log.Info().Str("object", s.object.Name).Msg("camera stream live")
	return nil
}

// SetScale updates the guide scale factor, clamping it to the valid range,
// and returns the effective value. Only valid while live; otherwise the
// current scale is returned unchanged.
func (s *Session) SetScale(factor float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLive {
		return s.scale
	}
	s.scale = overlay.ClampScale(factor)
	return s.scale
}

// Scale returns the current guide scale factor.
func (s *Session) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// Guide returns the alignment guide for the bound object at the current
// scale.
func (s *Session) Guide() overlay.Guide {
	s.mu.Lock()
	scale := s.scale
	s.mu.Unlock()
	return overlay.ApplyScale(overlay.Template(s.object.Shape, s.object.Name), scale)
}

// Capture freezes the current video frame into an off-screen buffer and
// transitions to Frozen. The capture-complete callback fires after the
// configured acknowledgment delay. Capturing a frame never logs a portion
// by itself; that requires explicit confirmation in the workflow.
func (s *Session) Capture() error {
	s.mu.Lock()
	if s.state != StateLive {
		s.mu.Unlock()
		return ErrNotLive
	}

	frame, err := s.stream.Frame()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	frozen := frame.Clone()
	s.frozen = &frozen
	s.state = StateFrozen
	callback := s.onCapture
	delay := s.ackDelay
	s.mu.Unlock()

	log.Info().Uint64("seq", frozen.Seq).Str("object", s.object.Name).Msg("frame captured")

	if callback != nil {
		if delay > 0 {
			time.AfterFunc(delay, callback)
		} else {
			callback()
		}
	}
	return nil
}

// FrozenFrame returns the captured frame, if any.
func (s *Session) FrozenFrame() *camera.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frozen
}

// Close releases the device stream and moves the session to Released. It
// is idempotent, valid from any state, and interrupts an in-flight
// acquisition. It must run on every exit path, including teardown after a
// failed Open.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReleased {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	var err error
	if s.stream != nil {
		err = s.stream.Release()
		s.stream = nil
	}

	log.Info().Str("object", s.object.Name).Str("from", s.state.String()).Msg("capture session released")
	s.state = StateReleased
	return err
}
