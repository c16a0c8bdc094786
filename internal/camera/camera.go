// Package camera defines the device camera boundary used by capture
// sessions, plus a synthetic implementation for environments without a
// physical camera.
package camera

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when no camera can be acquired, either because
// the device is missing or permission was denied.
var ErrUnavailable = errors.New("camera unavailable or permission denied")

// FacingMode selects which camera to acquire on devices that have several.
type FacingMode string

const (
	FacingEnvironment FacingMode = "environment"
	FacingUser        FacingMode = "user"
)

// Frame is one video frame. Pixels holds packed RGBA data.
type Frame struct {
	Seq       uint64
	Width     int
	Height    int
	Pixels    []byte
	Timestamp time.Time
}

// Clone returns a deep copy of the frame, safe to keep after the stream
// moves on.
func (f Frame) Clone() Frame {
	pixels := make([]byte, len(f.Pixels))
	copy(pixels, f.Pixels)
	f.Pixels = pixels
	return f
}

// Device acquires live video streams. Acquire blocks until the stream is
// ready or the context is cancelled; acquisition latency and failure are
// the device's to report, not to retry.
type Device interface {
	Acquire(ctx context.Context, facing FacingMode) (Stream, error)
}

// Stream is an acquired video stream. It is exclusively owned by its
// caller and must be released exactly once; Release is idempotent.
type Stream interface {
	// Frame returns the most recent frame from the stream.
	Frame() (Frame, error)
	// Release stops the stream and frees the device. Safe to call twice.
	Release() error
}
