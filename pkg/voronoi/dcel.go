package voronoi

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Handle is an index into one of the mesh or beachline arenas.
type Handle int32

// NoHandle marks an unset reference.
const NoHandle Handle = -1

func (h Handle) Valid() bool { return h >= 0 }

func (h Handle) String() string {
	if h == NoHandle {
		return "nil"
	}
	return "#" + strconv.Itoa(int(h))
}

// Vertex is a finite Voronoi vertex.
type Vertex struct {
	Point Point
	Edge  Handle // some half-edge leaving the vertex
}

// HalfEdge is one orientation of a Voronoi edge. Face is the cell on its left.
// While the sweep runs, an end that is still being traced has no Origin; ends
// that stay unset after the sweep are unbounded.
type HalfEdge struct {
	Origin Handle
	Twin   Handle
	Face   Handle
	Next   Handle
	Prev   Handle
}

// Face is the cell of one site. Edge (its outer boundary) is left for the
// face closer to fill in.
type Face struct {
	Site Point
	Edge Handle
}

// Mesh is a doubly connected edge list. Entities are never moved, so handles
// stay valid for the mesh's lifetime.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// AddTwins allocates a pair of mutually twinned half-edges with every other
// field unset.
func (m *Mesh) AddTwins() (Handle, Handle) {
	a := Handle(len(m.HalfEdges))
	b := a + 1
	m.HalfEdges = append(m.HalfEdges,
		HalfEdge{Origin: NoHandle, Twin: b, Face: NoHandle, Next: NoHandle, Prev: NoHandle},
		HalfEdge{Origin: NoHandle, Twin: a, Face: NoHandle, Next: NoHandle, Prev: NoHandle},
	)
	return a, b
}

func (m *Mesh) Twin(e Handle) Handle { return m.HalfEdges[e].Twin }

// Dest returns the vertex e points to, or NoHandle if that end is open.
func (m *Mesh) Dest(e Handle) Handle { return m.HalfEdges[m.HalfEdges[e].Twin].Origin }

// Pairs returns the number of twin pairs, i.e. undirected edges.
func (m *Mesh) Pairs() int { return len(m.HalfEdges) / 2 }

func (m *Mesh) addVertex(p Point, edge Handle) Handle {
	m.Vertices = append(m.Vertices, Vertex{Point: p, Edge: edge})
	return Handle(len(m.Vertices) - 1)
}

func (m *Mesh) addFace(site Point) Handle {
	m.Faces = append(m.Faces, Face{Site: site, Edge: NoHandle})
	return Handle(len(m.Faces) - 1)
}

// link sets a.Next = b and b.Prev = a.
func (m *Mesh) link(a, b Handle) {
	m.HalfEdges[a].Next = b
	m.HalfEdges[b].Prev = a
}

// Validate checks the structural invariants that hold at every point of the
// sweep: twin involution, handle ranges, and next/prev agreement where set.
func (m *Mesh) Validate() error {
	var err error
	nh := Handle(len(m.HalfEdges))
	inRange := func(h, n Handle) bool { return h == NoHandle || (h >= 0 && h < n) }

	for i, he := range m.HalfEdges {
		e := Handle(i)
		switch {
		case he.Twin < 0 || he.Twin >= nh:
			err = multierr.Append(err, errors.Errorf("half-edge %v: twin %v out of range", e, he.Twin))
			continue
		case he.Twin == e:
			err = multierr.Append(err, errors.Errorf("half-edge %v is its own twin", e))
		case m.HalfEdges[he.Twin].Twin != e:
			err = multierr.Append(err, errors.Errorf("half-edge %v: twin(twin) is %v", e, m.HalfEdges[he.Twin].Twin))
		}
		if !inRange(he.Origin, Handle(len(m.Vertices))) {
			err = multierr.Append(err, errors.Errorf("half-edge %v: origin %v out of range", e, he.Origin))
		}
		if !inRange(he.Face, Handle(len(m.Faces))) {
			err = multierr.Append(err, errors.Errorf("half-edge %v: face %v out of range", e, he.Face))
		}
		if !inRange(he.Next, nh) || !inRange(he.Prev, nh) {
			err = multierr.Append(err, errors.Errorf("half-edge %v: next/prev out of range", e))
			continue
		}
		if he.Next != NoHandle && m.HalfEdges[he.Next].Prev != e {
			err = multierr.Append(err, errors.Errorf("half-edge %v: next %v does not point back", e, he.Next))
		}
		if he.Prev != NoHandle && m.HalfEdges[he.Prev].Next != e {
			err = multierr.Append(err, errors.Errorf("half-edge %v: prev %v does not point forward", e, he.Prev))
		}
	}

	for i, v := range m.Vertices {
		if v.Edge < 0 || v.Edge >= nh {
			err = multierr.Append(err, errors.Errorf("vertex %v: edge %v out of range", Handle(i), v.Edge))
		} else if m.HalfEdges[v.Edge].Origin != Handle(i) {
			err = multierr.Append(err, errors.Errorf("vertex %v: edge %v does not leave it", Handle(i), v.Edge))
		}
	}
	return err
}
