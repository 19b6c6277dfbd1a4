package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkRedBlack verifies the red-black properties and the threaded order of t.
func checkRedBlack(t *testing.T, tree *eventTree) {
	t.Helper()
	var blackHeight func(n *eventNode) int
	blackHeight = func(n *eventNode) int {
		if n == nil {
			return 1
		}
		if n.red {
			require.False(t, isRed(n.left) || isRed(n.right), "red node with red child")
		}
		if n.left != nil {
			require.Same(t, n, n.left.parent)
		}
		if n.right != nil {
			require.Same(t, n, n.right.parent)
		}
		l, r := blackHeight(n.left), blackHeight(n.right)
		require.Equal(t, l, r, "unequal black height")
		if n.red {
			return l
		}
		return l + 1
	}
	require.False(t, isRed(tree.root))
	blackHeight(tree.root)

	count := 0
	var prev *eventNode
	for n := tree.first; n != nil; n = n.next {
		if prev != nil {
			require.False(t, n.ev.before(prev.ev), "list out of order")
			require.Same(t, prev, n.previous)
		}
		prev = n
		count++
	}
	require.Equal(t, tree.size, count)
	if tree.root != nil {
		require.Same(t, tree.getFirst(tree.root), tree.first)
	}
}

func TestEventOrder(t *testing.T) {
	q := newEventQueue()
	q.pushSite(Point{1, 5})
	q.pushCircle(7, Triple{}, Point{0, 9}, 5)
	q.pushSite(Point{0, 5})
	q.pushSite(Point{0, 7})
	q.pushCircle(8, Triple{}, Point{0, 9}, 5)

	var got []string
	for ev := q.pop(); ev != nil; ev = q.pop() {
		got = append(got, ev.String())
	}
	assert.Equal(t, []string{
		"site(0, 7)",
		"site(0, 5)",
		"circle(arc #7, y=5, center=(0, 9))",
		"circle(arc #8, y=5, center=(0, 9))",
		"site(1, 5)",
	}, got)
	assert.Zero(t, q.len())
	assert.Empty(t, q.circles)
}

func TestRemoveCirclesWithArc(t *testing.T) {
	q := newEventQueue()
	q.pushCircle(3, Triple{}, Point{0, 0}, -1)
	q.pushCircle(3, Triple{}, Point{1, 0}, -2)
	keep := q.pushCircle(4, Triple{}, Point{2, 0}, -3)
	q.pushSite(Point{5, 5})
	require.Equal(t, 4, q.len())

	assert.Equal(t, 2, q.removeCirclesWithArc(3))
	assert.Zero(t, q.removeCirclesWithArc(3))
	assert.Equal(t, 2, q.len())
	checkRedBlack(t, &q.tree)

	assert.Equal(t, siteEvent, q.pop().kind)
	assert.Same(t, keep, q.pop())
	assert.Nil(t, q.pop())
	assert.Nil(t, keep.node)
	assert.Zero(t, q.removeCirclesWithArc(4), "popped events are forgotten")
}

func TestEventQueueRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	q := newEventQueue()
	live := 0
	for i := 0; i < 2000; i++ {
		x, y := float64(rnd.Intn(50)), float64(rnd.Intn(50))
		if rnd.Intn(3) == 0 {
			q.pushSite(Point{x, y})
		} else {
			q.pushCircle(Handle(rnd.Intn(300)), Triple{}, Point{x, y}, y-float64(rnd.Intn(10)))
		}
		live++

		if i%7 == 0 {
			live -= q.removeCirclesWithArc(Handle(rnd.Intn(300)))
		}
		if i%97 == 0 {
			checkRedBlack(t, &q.tree)
		}
	}
	require.Equal(t, live, q.len())
	checkRedBlack(t, &q.tree)

	var prev *event
	for ev := q.pop(); ev != nil; ev = q.pop() {
		if prev != nil {
			require.False(t, ev.before(prev))
		}
		prev = ev
		live--
		if live%211 == 0 {
			checkRedBlack(t, &q.tree)
		}
	}
	assert.Zero(t, live)
	assert.Empty(t, q.circles)
}
