package settings

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Preference keys. Appearance only; nothing here feeds aggregation.
const (
	KeyGlobalTheme   = "theme.global"
	KeyGradientTheme = "theme.gradient"
	KeyClockTheme    = "theme.flip_clock"
)

var defaults = map[string]string{
	KeyGlobalTheme:   "default",
	KeyGradientTheme: "default",
	KeyClockTheme:    "classic",
}

// KV is the persistence boundary for preferences.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store is the observable settings store. Views subscribe once and
// get called back on every change; nothing polls.
type Store struct {
	kv  KV
	log *zap.Logger

	mu     sync.Mutex
	values map[string]string
	subs   map[int]func(key, value string)
	nextID int
}

func NewStore(kv KV, log *zap.Logger) *Store {
	values := make(map[string]string, len(defaults))
	for key, value := range defaults {
		values[key] = value
	}
	return &Store{
		kv:     kv,
		log:    log,
		values: values,
		subs:   make(map[int]func(key, value string)),
	}
}

// Load pulls persisted preferences over the defaults. Missing keys
// keep their defaults; a read failure is logged and skipped so a bad
// preference never blocks startup.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range defaults {
		value, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			s.log.Warn("failed to load preference", zap.String("key", key), zap.Error(err))
			continue
		}
		if ok {
			s.values[key] = value
		}
	}
}

func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set persists the value and notifies subscribers. Subscribers run
// synchronously on the caller's goroutine, outside the lock.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, key, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.values[key] = value
	subs := make([]func(string, string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key, value)
	}
	return nil
}

// Subscribe registers a change callback and returns its remover.
func (s *Store) Subscribe(fn func(key, value string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
