// Package workflow orchestrates the portion comparison flow: browse a food,
// view its reference object, align it over the live camera, then confirm or
// discard the logged portion.
package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/raine/portionvision/internal/camera"
	"github.com/raine/portionvision/internal/capture"
	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/logbook"
	"github.com/rs/zerolog/log"
)

// State represents which stage of the portion flow is active. Browsing is
// the sole idle state; at most one of the other stages is active at a time.
type State int

const (
	StateBrowsing State = iota
	StateDetail
	StateCapturing
	StateConfirmPending
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateDetail:
		return "Detail"
	case StateCapturing:
		return "Capturing"
	case StateConfirmPending:
		return "ConfirmPending"
	default:
		return "Unknown"
	}
}

// PendingLog pairs the selected food with the reference object used to
// capture it. It exists only between camera open and prompt resolution;
// cancelling at any point discards it without creating a log entry.
type PendingLog struct {
	Food   catalog.FoodItem
	Object catalog.VisualObject
}

// Option configures a workflow.
type Option func(*Workflow)

// WithNotify registers a callback for transient user-facing notifications.
func WithNotify(fn func(message string)) Option {
	return func(w *Workflow) { w.notify = fn }
}

// WithClock overrides the time source used for log entry ids.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// WithSessionOptions passes extra options to every capture session the
// workflow creates.
func WithSessionOptions(opts ...capture.Option) Option {
	return func(w *Workflow) { w.sessionOpts = opts }
}

// Workflow is the portion-comparison state machine. All mutations go
// through its named transition methods; invalid transition requests are
// logged no-ops rather than errors that escape to the caller.
type Workflow struct {
	mu          sync.Mutex
	device      camera.Device
	store       *logbook.Store
	notify      func(string)
	now         func() time.Time
	sessionOpts []capture.Option

	state   State
	food    *catalog.FoodItem
	pending *PendingLog
	session *capture.Session
}

// New creates a workflow in the Browsing state.
func New(device camera.Device, store *logbook.Store, opts ...Option) *Workflow {
	w := &Workflow{
		device: device,
		store:  store,
		now:    time.Now,
		state:  StateBrowsing,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SelectedFood returns the food shown in the detail view, if any.
func (w *Workflow) SelectedFood() (catalog.FoodItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.food == nil {
		return catalog.FoodItem{}, false
	}
	return *w.food, true
}

// Pending returns the pending log awaiting confirmation, if any.
func (w *Workflow) Pending() (PendingLog, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return PendingLog{}, false
	}
	return *w.pending, true
}

// Session returns the active capture session, or nil outside Capturing.
func (w *Workflow) Session() *capture.Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session
}

// SelectFood opens the detail view for a food. Valid while browsing or
// with another detail view open.
func (w *Workflow) SelectFood(food catalog.FoodItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateBrowsing && w.state != StateDetail {
		log.Warn().Str("state", w.state.String()).Str("food", food.Name).Msg("ignoring food selection")
		return
	}
	w.food = &food
	w.state = StateDetail
}

// DismissDetail closes the detail view without opening the camera.
func (w *Workflow) DismissDetail() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateDetail {
		log.Warn().Str("state", w.state.String()).Msg("ignoring detail dismissal")
		return
	}
	w.food = nil
	w.state = StateBrowsing
}

// OpenCapture starts a capture session for the selected food's reference
// object and records the pending log. It blocks until the camera is live
// or acquisition fails; on failure the session stays available in its
// Failed state so the error can be shown, and CloseCamera remains the exit
// path. Only valid from the detail view, which also guarantees at most one
// session exists at a time.
func (w *Workflow) OpenCapture(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StateDetail || w.food == nil {
		w.mu.Unlock()
		log.Warn().Str("state", w.state.String()).Msg("ignoring capture open")
		return nil
	}

	food := *w.food
	object := catalog.VisualObjectFor(food)
	w.pending = &PendingLog{Food: food, Object: object}

	opts := append([]capture.Option{capture.OnCapture(w.cameraCaptured)}, w.sessionOpts...)
	session := capture.NewSession(w.device, object, opts...)
	w.session = session
	w.state = StateCapturing
	w.mu.Unlock()

	return session.Open(ctx)
}

// CaptureFrame freezes the current camera frame. The session signals
// capture completion, which advances the workflow to the confirm prompt.
func (w *Workflow) CaptureFrame() error {
	w.mu.Lock()
	session := w.session
	w.mu.Unlock()
	if session == nil {
		return capture.ErrNotLive
	}
	return session.Capture()
}

// AdjustScale updates the guide scale on the active session and returns
// the effective value.
func (w *Workflow) AdjustScale(factor float64) float64 {
	w.mu.Lock()
	session := w.session
	w.mu.Unlock()
	if session == nil {
		return 0
	}
	return session.SetScale(factor)
}

// cameraCaptured is signaled by the capture session once a frame has been
// frozen. It releases the camera and opens the confirm prompt.
func (w *Workflow) cameraCaptured() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateCapturing {
		log.Warn().Str("state", w.state.String()).Msg("ignoring capture signal")
		return
	}
	w.closeSessionLocked()
	w.state = StateConfirmPending
}

// CloseCamera cancels an active capture, releasing the stream and
// discarding the pending log. The confirm prompt is not opened.
func (w *Workflow) CloseCamera() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateCapturing {
		log.Warn().Str("state", w.state.String()).Msg("ignoring camera close")
		return
	}
	w.closeSessionLocked()
	w.pending = nil
	w.food = nil
	w.state = StateBrowsing
}

// ConfirmLog turns the pending log into a durable log entry. A confirm
// with no pending log is a no-op.
func (w *Workflow) ConfirmLog() error {
	w.mu.Lock()
	if w.state != StateConfirmPending || w.pending == nil {
		w.mu.Unlock()
		log.Warn().Str("state", w.state.String()).Msg("ignoring log confirmation")
		return nil
	}
	pending := *w.pending
	w.pending = nil
	w.food = nil
	w.state = StateBrowsing
	notify := w.notify
	now := w.now()
	w.mu.Unlock()

	entry := logbook.NewEntry(pending.Food, pending.Object, now)
	if err := w.store.Append(entry); err != nil {
		return err
	}
	if notify != nil {
		notify("Logged! 🎉")
	}
	return nil
}

// CancelLog dismisses the confirm prompt, discarding the pending log.
func (w *Workflow) CancelLog() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirmPending {
		log.Warn().Str("state", w.state.String()).Msg("ignoring log cancellation")
		return
	}
	w.pending = nil
	w.food = nil
	w.state = StateBrowsing
}

// Close releases any active capture session. Safe to call at any time;
// used on teardown so the camera is never left acquired.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeSessionLocked()
	w.pending = nil
	w.food = nil
	w.state = StateBrowsing
}

func (w *Workflow) closeSessionLocked() {
	if w.session == nil {
		return
	}
	if err := w.session.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close capture session")
	}
	w.session = nil
}
