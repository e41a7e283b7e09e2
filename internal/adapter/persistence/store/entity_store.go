// Package store keeps a whole entity collection under one key of a key-value
// backend and serves create/read/update/delete over it.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"liquidation_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Entity is a record addressed by a positive integer id.
type Entity interface {
	EntityID() int64
}

// Schema configures an EntityStore for one entity type.
type Schema[T Entity] struct {
	// Key is the storage key of the collection.
	Key string
	// Fields lists the payload keys accepted by Create and Update with their
	// coercers. Other keys are ignored.
	Fields map[string]Coercer
	// Defaults are merged under every create payload.
	Defaults func() map[string]any
	// Seed is returned (and persisted) when the key holds nothing usable.
	Seed func() []T
	// OnCreate runs on a new record after its id is assigned.
	OnCreate func(*T)
	// Append stores new records at the end instead of the front.
	Append bool
}

// envelope is the persisted form. LastID keeps the high-water mark so that
// ids of removed records are never handed out again.
type envelope[T Entity] struct {
	LastID int64 `json:"lastId"`
	Items  []T   `json:"items"`
}

var errMalformed = errors.New("malformed collection")

// EntityStore is safe for concurrent use. Mutations are serialized and the
// collection is cached after the first load.
type EntityStore[T Entity] struct {
	kv     interfaces.IKeyValueStore
	schema Schema[T]
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	loaded bool
	items  []T
	lastID int64
}

type Option[T Entity] func(*EntityStore[T])

// WithClock overrides time.Now for createdAt stamps.
func WithClock[T Entity](now func() time.Time) Option[T] {
	return func(s *EntityStore[T]) { s.now = now }
}

func WithLogger[T Entity](logger *zap.Logger) Option[T] {
	return func(s *EntityStore[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewEntityStore[T Entity](kv interfaces.IKeyValueStore, schema Schema[T], opts ...Option[T]) *EntityStore[T] {
	s := &EntityStore[T]{
		kv:     kv,
		schema: schema,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("store", schema.Key))
	return s
}

// NextID is 1 for an empty collection without history, otherwise one past
// the larger of the highest id present and lastID.
func NextID[T Entity](items []T, lastID int64) int64 {
	high := lastID
	for _, it := range items {
		if id := it.EntityID(); id > high {
			high = id
		}
	}
	return high + 1
}

// Load returns a copy of the collection.
func (s *EntityStore[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return clone(s.items), nil
}

// Get returns the record with the given id. found is false when absent.
func (s *EntityStore[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true, nil
	}
	return zero, false, nil
}

// Save replaces the persisted collection.
func (s *EntityStore[T]) Save(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	return s.persist(ctx, clone(items), s.lastID)
}

// Create allocates an id, merges the coerced payload over the defaults and
// stores the new record.
func (s *EntityStore[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return zero, err
	}

	id := NextID(s.items, s.lastID)
	record := map[string]any{}
	if s.schema.Defaults != nil {
		for k, v := range s.schema.Defaults() {
			record[k] = v
		}
	}
	for k, v := range s.coerce(fields) {
		record[k] = v
	}
	record["id"] = id
	record["createdAt"] = s.now().UnixMilli()

	var created T
	if err := decode(record, &created); err != nil {
		return zero, fmt.Errorf("build record: %w", err)
	}
	if s.schema.OnCreate != nil {
		s.schema.OnCreate(&created)
	}

	next := make([]T, 0, len(s.items)+1)
	if s.schema.Append {
		next = append(append(next, s.items...), created)
	} else {
		next = append(append(next, created), s.items...)
	}
	if err := s.persist(ctx, next, id); err != nil {
		return zero, err
	}
	s.logger.Debug("record created", zap.Int64("id", id))
	return created, nil
}

// Update shallow-merges the coerced patch over the record. id and createdAt
// cannot be changed. found is false, and nothing is written, when the id is
// absent.
func (s *EntityStore[T]) Update(ctx context.Context, id int64, patch map[string]any) (T, bool, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, false, nil
	}

	current, err := toMap(s.items[idx])
	if err != nil {
		return zero, true, err
	}
	for k, v := range s.coerce(patch) {
		if k == "id" || k == "createdAt" {
			continue
		}
		current[k] = v
	}

	var updated T
	if err := decode(current, &updated); err != nil {
		return zero, true, fmt.Errorf("merge record: %w", err)
	}

	next := clone(s.items)
	next[idx] = updated
	if err := s.persist(ctx, next, s.lastID); err != nil {
		return zero, true, err
	}
	return updated, true, nil
}

// Mutate applies fn to a copy of the record and stores it when fn reports a
// change.
func (s *EntityStore[T]) Mutate(ctx context.Context, id int64, fn func(*T) bool) (T, bool, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, false, nil
	}

	record := s.items[idx]
	if !fn(&record) {
		return record, true, nil
	}

	next := clone(s.items)
	next[idx] = record
	if err := s.persist(ctx, next, s.lastID); err != nil {
		return zero, true, err
	}
	return record, true, nil
}

// Remove deletes the record. Removing an absent id is a successful no-op.
func (s *EntityStore[T]) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return true, nil
	}

	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	if err := s.persist(ctx, next, s.lastID); err != nil {
		return false, err
	}
	s.logger.Debug("record removed", zap.Int64("id", id))
	return true, nil
}

func (s *EntityStore[T]) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, found, err := s.kv.Get(ctx, s.schema.Key)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.schema.Key, err)
	}
	if found {
		items, lastID, err := decodeCollection[T](raw)
		if err == nil {
			s.items, s.lastID, s.loaded = items, lastID, true
			return nil
		}
		s.logger.Warn("discarding unreadable collection", zap.Error(err), zap.Int("bytes", len(raw)))
	}

	var seed []T
	if s.schema.Seed != nil {
		seed = s.schema.Seed()
	}
	if seed == nil {
		seed = []T{}
	}
	if err := s.persist(ctx, seed, 0); err != nil {
		return err
	}
	s.loaded = true
	s.logger.Info("collection seeded", zap.Int("items", len(seed)))
	return nil
}

// persist writes items and, only once the write succeeded, makes them the
// visible collection.
func (s *EntityStore[T]) persist(ctx context.Context, items []T, lastID int64) error {
	if high := NextID(items, lastID) - 1; high > lastID {
		lastID = high
	}
	b, err := json.Marshal(envelope[T]{LastID: lastID, Items: nonNil(items)})
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.schema.Key, err)
	}
	if err := s.kv.Set(ctx, s.schema.Key, b); err != nil {
		return fmt.Errorf("save %s: %w", s.schema.Key, err)
	}
	s.items, s.lastID = items, lastID
	return nil
}

func (s *EntityStore[T]) indexOf(id int64) int {
	for i, it := range s.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *EntityStore[T]) coerce(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		c, ok := s.schema.Fields[k]
		if !ok {
			continue
		}
		if cv, ok := c(v); ok {
			out[k] = cv
		} else {
			s.logger.Debug("dropping unreadable field", zap.String("field", k))
		}
	}
	return out
}

// decodeCollection accepts the envelope and, for older data, a bare array.
func decodeCollection[T Entity](raw []byte) ([]T, int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, 0, errMalformed
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, 0, err
		}
		return nonNil(items), NextID(items, 0) - 1, nil
	}

	var env struct {
		LastID int64 `json:"lastId"`
		Items  *[]T  `json:"items"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, 0, err
	}
	if env.Items == nil || env.LastID < 0 {
		return nil, 0, errMalformed
	}
	return nonNil(*env.Items), env.LastID, nil
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
