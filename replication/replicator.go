package replication

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pointer-to-null/RobustToolbox/physics"
)

// Update pairs a tracked shape's ID with its current snapshot.
type Update struct {
	ID    uuid.UUID `json:"id"`
	State State     `json:"state"`
}

// Keyframe is a full snapshot of every tracked shape plus a content digest
// that observers use to verify they hold the same state.
type Keyframe struct {
	Updates []Update `json:"updates"`
	Digest  uint64   `json:"digest"`
}

// Replicator tracks live shapes and remembers the last broadcast geometry of
// each, so Collect can suppress updates whose geometry did not change.
//
// Shapes are compared with Equals, which on purpose excludes non-geometry
// fields such as an edge's rounding radius; a radius-only change therefore
// produces no update.
type Replicator struct {
	log *zap.Logger

	mu    sync.Mutex
	live  map[uuid.UUID]physics.Shape
	sent  map[uuid.UUID]physics.Shape
	order []uuid.UUID
}

func NewReplicator(log *zap.Logger) *Replicator {
	return &Replicator{
		log:  log,
		live: make(map[uuid.UUID]physics.Shape),
		sent: make(map[uuid.UUID]physics.Shape),
	}
}

// Track registers a shape for replication. Re-tracking an ID forces a fresh
// broadcast on the next Collect.
func (r *Replicator) Track(id uuid.UUID, shape physics.Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live[id]; !ok {
		r.order = append(r.order, id)
	}
	r.live[id] = shape
	delete(r.sent, id)

	r.log.Debug("tracking shape",
		zap.String("id", id.String()),
		zap.Stringer("type", shape.Type()))
}

// Untrack removes a shape from replication.
func (r *Replicator) Untrack(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live[id]; !ok {
		return
	}

	delete(r.live, id)
	delete(r.sent, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Collect returns an update for every tracked shape whose geometry differs
// from the last collected state, in tracking order.
func (r *Replicator) Collect() ([]Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updates []Update
	for _, id := range r.order {
		shape := r.live[id]
		if prev, ok := r.sent[id]; ok && shape.Equals(prev) {
			continue
		}

		state, err := Encode(shape)
		if err != nil {
			return nil, fmt.Errorf("encode shape %s: %w", id, err)
		}

		updates = append(updates, Update{ID: id, State: state})
		r.sent[id] = shape.Clone()
	}

	return updates, nil
}

// Keyframe snapshots every tracked shape regardless of dirtiness. It does not
// touch the per-shape dirty tracking, so deltas keep flowing between
// keyframes.
func (r *Replicator) Keyframe() (Keyframe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updates := make([]Update, 0, len(r.order))
	for _, id := range r.order {
		state, err := Encode(r.live[id])
		if err != nil {
			return Keyframe{}, fmt.Errorf("encode shape %s: %w", id, err)
		}
		updates = append(updates, Update{ID: id, State: state})
	}

	payload, err := json.Marshal(updates)
	if err != nil {
		return Keyframe{}, fmt.Errorf("marshal keyframe: %w", err)
	}

	return Keyframe{
		Updates: updates,
		Digest:  xxhash.Sum64(payload),
	}, nil
}

// Len returns the number of tracked shapes.
func (r *Replicator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
