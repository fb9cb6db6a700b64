package timer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/timespan"

	"go.uber.org/zap"
)

// Storage keys for the persisted timer slot. The slot is a single
// last-write-wins register; no cross-process coordination is
// attempted.
const (
	keyActive      = "timer.active"
	keyStart       = "timer.start"
	keySubjectID   = "timer.subject_id"
	keySubjectType = "timer.subject_type"
)

var (
	// ErrTimerActive rejects a second Start while a timer is running.
	ErrTimerActive = errors.New("a timer is already running")
	// ErrNotRunning is returned by Stop when there is nothing to stop.
	ErrNotRunning = errors.New("no timer is running")
)

// StateStore is the durable key-value slot the timer serializes into.
type StateStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type Option func(*Timer)

// WithClock substitutes the time source; tests freeze it.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// Timer tracks the one in-progress timed activity on this machine.
// Elapsed time is always recomputed from the persisted start instant
// against the current instant, never from a cached counter, so it
// stays correct across restarts of any length.
type Timer struct {
	store StateStore
	now   func() time.Time
	log   *zap.Logger
	state models.TimerState
}

func New(store StateStore, log *zap.Logger, opts ...Option) *Timer {
	t := &Timer{
		store: store,
		now:   time.Now,
		log:   log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Running reports whether a timer is currently active.
func (t *Timer) Running() bool {
	return t.state.Active
}

// State returns a copy of the current timer state.
func (t *Timer) State() models.TimerState {
	return t.state
}

// Start begins timing the given subject, persisting the slot before
// Running is observable. A second Start without an intervening Stop is
// rejected with ErrTimerActive; the first timer is untouched.
func (t *Timer) Start(ctx context.Context, subject models.Subject) (models.TimerState, error) {
	if t.state.Active {
		return models.TimerState{}, ErrTimerActive
	}

	state := models.TimerState{
		Active:      true,
		Start:       t.now(),
		SubjectID:   subject.ID,
		SubjectType: subject.StudyType,
	}

	if err := t.persist(ctx, state); err != nil {
		return models.TimerState{}, fmt.Errorf("failed persist timer state: %w", err)
	}

	t.state = state
	return state, nil
}

// Elapsed recomputes time since start. Purely observational; safe to
// call at any cadence while running.
func (t *Timer) Elapsed() timespan.Span {
	if !t.state.Active {
		return timespan.Span{}
	}
	return timespan.Between(t.state.Start, t.now())
}

// Stop captures the end instant, clears the persisted slot and
// returns the completed span. What happens to the span is the
// caller's business: DURATION subjects commit a study session
// immediately, COUNT subjects go through a pending count entry first.
func (t *Timer) Stop(ctx context.Context) (start, end time.Time, err error) {
	if !t.state.Active {
		return time.Time{}, time.Time{}, ErrNotRunning
	}

	start = t.state.Start
	end = t.now()

	if err := t.store.Delete(ctx, keyActive, keyStart, keySubjectID, keySubjectType); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed clear timer state: %w", err)
	}

	t.state = models.TimerState{}
	return start, end, nil
}

// Resume reconstructs a running timer from the persisted slot, if
// any. Malformed state is treated as absent: the slot is cleared, a
// warning is logged and the timer comes up idle. Initialization never
// fails on a bad slot.
func (t *Timer) Resume(ctx context.Context) (models.TimerState, error) {
	active, ok, err := t.store.Get(ctx, keyActive)
	if err != nil {
		return models.TimerState{}, fmt.Errorf("failed read timer state: %w", err)
	}
	if !ok || active != "1" {
		return models.TimerState{}, nil
	}

	startRaw, ok, err := t.store.Get(ctx, keyStart)
	if err != nil {
		return models.TimerState{}, fmt.Errorf("failed read timer start: %w", err)
	}
	if !ok {
		t.discardCorrupt(ctx, "missing start instant")
		return models.TimerState{}, nil
	}

	start, err := time.Parse(time.RFC3339Nano, startRaw)
	if err != nil {
		t.discardCorrupt(ctx, "unparseable start instant")
		return models.TimerState{}, nil
	}

	state := models.TimerState{
		Active: true,
		Start:  start,
	}

	if idRaw, ok, err := t.store.Get(ctx, keySubjectID); err == nil && ok {
		if id, err := strconv.ParseInt(idRaw, 10, 64); err == nil {
			state.SubjectID = id
		}
	}
	if typeRaw, ok, err := t.store.Get(ctx, keySubjectType); err == nil && ok {
		state.SubjectType = models.StudyType(typeRaw)
	}

	t.state = state
	return state, nil
}

func (t *Timer) persist(ctx context.Context, state models.TimerState) error {
	if err := t.store.Set(ctx, keyStart, state.Start.Format(time.RFC3339Nano)); err != nil {
		return err
	}
	if err := t.store.Set(ctx, keySubjectID, strconv.FormatInt(state.SubjectID, 10)); err != nil {
		return err
	}
	if err := t.store.Set(ctx, keySubjectType, string(state.SubjectType)); err != nil {
		return err
	}
	// Active flag last so a partial write never resurrects as running.
	return t.store.Set(ctx, keyActive, "1")
}

func (t *Timer) discardCorrupt(ctx context.Context, reason string) {
	t.log.Warn("discarding corrupt persisted timer state", zap.String("reason", reason))
	if err := t.store.Delete(ctx, keyActive, keyStart, keySubjectID, keySubjectType); err != nil {
		t.log.Warn("failed to clear corrupt timer state", zap.Error(err))
	}
}
