package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestHandle(t *testing.T) {
	assert.False(t, NoHandle.Valid())
	assert.True(t, Handle(0).Valid())
	assert.Equal(t, "nil", NoHandle.String())
	assert.Equal(t, "#12", Handle(12).String())
}

func TestMeshTwins(t *testing.T) {
	m := NewMesh()
	a, b := m.AddTwins()
	c, d := m.AddTwins()

	assert.Equal(t, Handle(0), a)
	assert.Equal(t, Handle(3), d)
	assert.Equal(t, b, m.Twin(a))
	assert.Equal(t, a, m.Twin(b))
	assert.Equal(t, d, m.Twin(c))
	assert.Equal(t, 2, m.Pairs())

	for _, he := range m.HalfEdges {
		assert.Equal(t, NoHandle, he.Origin)
		assert.Equal(t, NoHandle, he.Face)
		assert.Equal(t, NoHandle, he.Next)
		assert.Equal(t, NoHandle, he.Prev)
	}
	require.NoError(t, m.Validate())
}

func TestMeshLinkAndDest(t *testing.T) {
	m := NewMesh()
	f := m.addFace(Point{0, 0})
	a, b := m.AddTwins()
	c, _ := m.AddTwins()
	v := m.addVertex(Point{1, 1}, c)

	m.HalfEdges[c].Origin = v
	m.HalfEdges[b].Origin = v
	m.HalfEdges[a].Face = f
	m.link(a, c)

	assert.Equal(t, v, m.Dest(a))
	assert.Equal(t, NoHandle, m.Dest(b))
	assert.Equal(t, c, m.HalfEdges[a].Next)
	assert.Equal(t, a, m.HalfEdges[c].Prev)
	assert.NoError(t, m.Validate())
}

func TestMeshValidate(t *testing.T) {
	m := NewMesh()
	a, b := m.AddTwins()
	c, _ := m.AddTwins()
	m.addVertex(Point{}, b)

	m.HalfEdges[a].Twin = c
	m.HalfEdges[b].Next = c
	m.HalfEdges[c].Face = 5

	err := m.Validate()
	require.Error(t, err)
	// two broken twins, face range, dangling next, vertex edge origin
	assert.Len(t, multierr.Errors(err), 5)
}
