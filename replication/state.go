// Package replication carries collision-shape state between an authority and
// its observers. Shapes expose their serializable field set here; the wire
// protocol around these snapshots belongs to the transport layer.
package replication

import (
	"fmt"

	"github.com/pointer-to-null/RobustToolbox/physics"
)

// State is the serializable snapshot of one shape. Exactly one variant
// payload is populated, selected by Type.
type State struct {
	Type   physics.ShapeType `json:"type"`
	Radius float64           `json:"radius"`

	Circle  *CircleState  `json:"circle,omitempty"`
	Edge    *EdgeState    `json:"edge,omitempty"`
	Polygon *PolygonState `json:"polygon,omitempty"`
	Chain   *ChainState   `json:"chain,omitempty"`
}

type CircleState struct {
	Position physics.Vec2 `json:"position"`
}

type EdgeState struct {
	Vertex0    physics.Vec2 `json:"vertex0"`
	Vertex1    physics.Vec2 `json:"vertex1"`
	Vertex2    physics.Vec2 `json:"vertex2"`
	Vertex3    physics.Vec2 `json:"vertex3"`
	HasVertex0 bool         `json:"hasVertex0"`
	HasVertex3 bool         `json:"hasVertex3"`
}

type PolygonState struct {
	// Vertices only: normals and centroid are derived on the observer by
	// ApplyState.
	Vertices []physics.Vec2 `json:"vertices"`
}

type ChainState struct {
	Vertices      []physics.Vec2 `json:"vertices"`
	PrevVertex    physics.Vec2   `json:"prevVertex"`
	NextVertex    physics.Vec2   `json:"nextVertex"`
	HasPrevVertex bool           `json:"hasPrevVertex"`
	HasNextVertex bool           `json:"hasNextVertex"`
}

// constructors is the shape-type registry used for decode dispatch.
var constructors = map[physics.ShapeType]func() physics.Shape{
	physics.CircleType: func() physics.Shape { return physics.NewCircleShape(0) },
	physics.EdgeType: func() physics.Shape {
		return physics.NewEdgeShape(physics.MakeVec2(0, 0), physics.MakeVec2(0, 0))
	},
	physics.PolygonType: func() physics.Shape { return physics.NewPolygonShape() },
	physics.ChainType:   func() physics.Shape { return physics.NewChainShape() },
}

// NewShape constructs an empty shape of the given type.
func NewShape(t physics.ShapeType) (physics.Shape, error) {
	ctor, ok := constructors[t]
	if !ok {
		return nil, fmt.Errorf("replication: unknown shape type %d", uint8(t))
	}

	return ctor(), nil
}

// Encode captures the replicated field set of a shape.
func Encode(shape physics.Shape) (State, error) {
	state := State{
		Type:   shape.Type(),
		Radius: shape.Radius(),
	}

	switch s := shape.(type) {
	case *physics.CircleShape:
		state.Circle = &CircleState{Position: s.Position}
	case *physics.EdgeShape:
		state.Edge = &EdgeState{
			Vertex0:    s.Vertex0,
			Vertex1:    s.Vertex1,
			Vertex2:    s.Vertex2,
			Vertex3:    s.Vertex3,
			HasVertex0: s.HasVertex0,
			HasVertex3: s.HasVertex3,
		}
	case *physics.PolygonShape:
		vertices := make([]physics.Vec2, len(s.Vertices))
		copy(vertices, s.Vertices)
		state.Polygon = &PolygonState{Vertices: vertices}
	case *physics.ChainShape:
		vertices := make([]physics.Vec2, len(s.Vertices))
		copy(vertices, s.Vertices)
		state.Chain = &ChainState{
			Vertices:      vertices,
			PrevVertex:    s.PrevVertex,
			NextVertex:    s.NextVertex,
			HasPrevVertex: s.HasPrevVertex,
			HasNextVertex: s.HasNextVertex,
		}
	default:
		return State{}, fmt.Errorf("replication: unsupported shape %T", shape)
	}

	return state, nil
}

// Apply assigns the snapshot's fields onto an existing shape of the matching
// type, then invokes ApplyState so derived fields are rebuilt.
func (st State) Apply(shape physics.Shape) error {
	if shape.Type() != st.Type {
		return fmt.Errorf("replication: cannot apply %v state to %v shape", st.Type, shape.Type())
	}

	switch s := shape.(type) {
	case *physics.CircleShape:
		if st.Circle == nil {
			return fmt.Errorf("replication: missing circle payload")
		}
		s.Position = st.Circle.Position
	case *physics.EdgeShape:
		if st.Edge == nil {
			return fmt.Errorf("replication: missing edge payload")
		}
		s.Vertex0 = st.Edge.Vertex0
		s.Vertex1 = st.Edge.Vertex1
		s.Vertex2 = st.Edge.Vertex2
		s.Vertex3 = st.Edge.Vertex3
		s.HasVertex0 = st.Edge.HasVertex0
		s.HasVertex3 = st.Edge.HasVertex3
	case *physics.PolygonShape:
		if st.Polygon == nil {
			return fmt.Errorf("replication: missing polygon payload")
		}
		s.Vertices = make([]physics.Vec2, len(st.Polygon.Vertices))
		copy(s.Vertices, st.Polygon.Vertices)
	case *physics.ChainShape:
		if st.Chain == nil {
			return fmt.Errorf("replication: missing chain payload")
		}
		s.Vertices = make([]physics.Vec2, len(st.Chain.Vertices))
		copy(s.Vertices, st.Chain.Vertices)
		s.PrevVertex = st.Chain.PrevVertex
		s.NextVertex = st.Chain.NextVertex
		s.HasPrevVertex = st.Chain.HasPrevVertex
		s.HasNextVertex = st.Chain.HasNextVertex
	default:
		return fmt.Errorf("replication: unsupported shape %T", shape)
	}

	shape.SetRadius(st.Radius)
	shape.ApplyState()

	return nil
}

// Decode builds a fresh shape from the snapshot.
func (st State) Decode() (physics.Shape, error) {
	shape, err := NewShape(st.Type)
	if err != nil {
		return nil, err
	}

	if err := st.Apply(shape); err != nil {
		return nil, err
	}

	return shape, nil
}
