package store

import (
	"cmp"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"triply/internal/trip"
)

// ========== In-memory store ==========

type snapshot struct {
	Trips    map[string]*trip.Trip         `json:"trips"`
	Messages map[string][]trip.ChatMessage `json:"messages"`
}

// MemoryStore keeps everything in maps and, when a path is set, rewrites the
// whole data file after every change.
type MemoryStore struct {
	mu       sync.RWMutex
	trips    map[string]*trip.Trip
	messages map[string][]trip.ChatMessage
	path     string
	now      func() time.Time
	logger   *zap.Logger
}

// NewMemoryStore loads path if it exists. An empty path keeps data in memory only.
func NewMemoryStore(path string, logger *zap.Logger) (*MemoryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MemoryStore{
		trips:    make(map[string]*trip.Trip),
		messages: make(map[string][]trip.ChatMessage),
		path:     path,
		now:      time.Now,
		logger:   logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MemoryStore) load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no existing data file, starting fresh", zap.String("path", s.path))
			return nil
		}
		return errors.Wrapf(err, "read %s", s.path)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return errors.Wrapf(err, "parse %s", s.path)
	}
	if snap.Trips != nil {
		s.trips = snap.Trips
	}
	if snap.Messages != nil {
		s.messages = snap.Messages
	}
	s.logger.Info("loaded trips", zap.Int("count", len(s.trips)))
	return nil
}

// save must be called with the write lock held.
func (s *MemoryStore) save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(snapshot{Trips: s.trips, Messages: s.messages}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal trips")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(s.path))
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	return nil
}

func (s *MemoryStore) ListTrips(_ context.Context) ([]trip.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trip.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t.Clone())
	}
	slices.SortFunc(out, func(a, b trip.Trip) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (s *MemoryStore) GetTrip(_ context.Context, id string) (*trip.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trips[id]
	if !ok {
		return nil, errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	c := t.Clone()
	return &c, nil
}

func (s *MemoryStore) CreateTrip(_ context.Context, t *trip.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	c := t.Clone()
	s.trips[t.ID] = &c
	return s.save()
}

func (s *MemoryStore) UpdateTrip(_ context.Context, id string, fn func(*trip.Trip) error) (*trip.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.trips[id]
	if !ok {
		return nil, errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = id
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now()

	s.trips[id] = &next
	if err := s.save(); err != nil {
		return nil, err
	}
	out := next.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteTrip(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[id]; !ok {
		return errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	delete(s.trips, id)
	delete(s.messages, id)
	return s.save()
}

func (s *MemoryStore) AppendMessages(_ context.Context, tripID string, msgs ...trip.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[tripID]; !ok {
		return errors.Wrapf(ErrTripNotFound, "trip %s", tripID)
	}
	for _, m := range msgs {
		m.TripID = tripID
		s.messages[tripID] = append(s.messages[tripID], m)
	}
	return s.save()
}

func (s *MemoryStore) Messages(_ context.Context, tripID string, limit int) ([]trip.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.trips[tripID]; !ok {
		return nil, errors.Wrapf(ErrTripNotFound, "trip %s", tripID)
	}
	return append([]trip.ChatMessage{}, trip.Recent(s.messages[tripID], limit)...), nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}
