package voronoi

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type nodeKind uint8

const (
	arcNode nodeKind = iota
	breakpointNode
)

// beachNode is either an arc (leaf) or a breakpoint (internal node).
type beachNode struct {
	kind    nodeKind
	parent  Handle
	left    Handle
	right   Handle
	removed bool

	// arc
	site   Point
	face   Handle
	circle *event // pending circle event predicting this arc's disappearance

	// breakpoint
	leftSite  Point
	rightSite Point
	edge      Handle // half-edge traced by this breakpoint, in the left site's face
}

// beachline keeps the arcs of the current sweep height left to right as the
// leaves of an unbalanced binary tree. Nodes live in an append-only arena;
// replaced nodes are flagged removed and never reused, so a handle always
// refers to the same node.
type beachline struct {
	nodes []beachNode
	root  Handle
}

func newBeachline() *beachline {
	return &beachline{root: NoHandle}
}

func (b *beachline) empty() bool { return b.root == NoHandle }

func (b *beachline) isArc(n Handle) bool {
	return n != NoHandle && b.nodes[n].kind == arcNode
}

func (b *beachline) push(n beachNode) Handle {
	b.nodes = append(b.nodes, n)
	return Handle(len(b.nodes) - 1)
}

func newArc(parent Handle, site Point, face Handle) beachNode {
	return beachNode{kind: arcNode, parent: parent, left: NoHandle, right: NoHandle, site: site, face: face}
}

func newBreakpoint(parent, left, right Handle, leftSite, rightSite Point, edge Handle) beachNode {
	return beachNode{
		kind:      breakpointNode,
		parent:    parent,
		left:      left,
		right:     right,
		leftSite:  leftSite,
		rightSite: rightSite,
		edge:      edge,
		face:      NoHandle,
	}
}

// insertFirst makes site the sole arc of an empty beachline.
func (b *beachline) insertFirst(site Point, face Handle) Handle {
	if !b.empty() {
		violated("insertFirst on a non-empty beachline", b.root)
	}
	b.root = b.push(newArc(NoHandle, site, face))
	return b.root
}

// locateArcAbove returns the arc directly above p, with the sweep line at p.Y.
func (b *beachline) locateArcAbove(p Point) Handle {
	if b.empty() {
		violated("locateArcAbove on an empty beachline")
	}
	n := b.root
	for b.nodes[n].kind == breakpointNode {
		node := &b.nodes[n]
		if node.left == NoHandle || node.right == NoHandle {
			violated("breakpoint without two children", n)
		}
		if p.X < BreakpointX(node.leftSite, node.rightSite, p.Y) {
			n = node.left
		} else {
			n = node.right
		}
	}
	return n
}

func (b *beachline) minimum(n Handle) Handle {
	for b.nodes[n].left != NoHandle {
		n = b.nodes[n].left
	}
	return n
}

func (b *beachline) maximum(n Handle) Handle {
	for b.nodes[n].right != NoHandle {
		n = b.nodes[n].right
	}
	return n
}

func (b *beachline) successor(n Handle) Handle {
	if r := b.nodes[n].right; r != NoHandle {
		return b.minimum(r)
	}
	p := b.nodes[n].parent
	for p != NoHandle && b.nodes[p].right == n {
		n, p = p, b.nodes[p].parent
	}
	return p
}

func (b *beachline) predecessor(n Handle) Handle {
	if l := b.nodes[n].left; l != NoHandle {
		return b.maximum(l)
	}
	p := b.nodes[n].parent
	for p != NoHandle && b.nodes[p].left == n {
		n, p = p, b.nodes[p].parent
	}
	return p
}

// leftArc skips the breakpoint on the left of n and returns the arc behind it.
func (b *beachline) leftArc(n Handle) Handle {
	if n == NoHandle {
		return NoHandle
	}
	if p := b.predecessor(n); p != NoHandle {
		return b.predecessor(p)
	}
	return NoHandle
}

func (b *beachline) rightArc(n Handle) Handle {
	if n == NoHandle {
		return NoHandle
	}
	if s := b.successor(n); s != NoHandle {
		return b.successor(s)
	}
	return NoHandle
}

// leftwardTriple returns the sites of n's two left neighbors and n itself.
func (b *beachline) leftwardTriple(n Handle) (Triple, bool) {
	l := b.leftArc(n)
	ll := b.leftArc(l)
	if !b.isArc(n) || !b.isArc(l) || !b.isArc(ll) {
		return Triple{}, false
	}
	return Triple{b.nodes[ll].site, b.nodes[l].site, b.nodes[n].site}, true
}

func (b *beachline) rightwardTriple(n Handle) (Triple, bool) {
	r := b.rightArc(n)
	rr := b.rightArc(r)
	if !b.isArc(n) || !b.isArc(r) || !b.isArc(rr) {
		return Triple{}, false
	}
	return Triple{b.nodes[n].site, b.nodes[r].site, b.nodes[rr].site}, true
}

// replace hangs sub where old used to be under old's parent.
func (b *beachline) replace(old, sub Handle) {
	parent := b.nodes[old].parent
	b.nodes[sub].parent = parent
	switch {
	case parent == NoHandle:
		if b.root != old {
			violated("parentless node is not the root", old, b.root)
		}
		b.root = sub
	case b.nodes[parent].left == old:
		b.nodes[parent].left = sub
	case b.nodes[parent].right == old:
		b.nodes[parent].right = sub
	default:
		violated("parent does not acknowledge child", parent, old)
	}
	b.nodes[old].removed = true
}

// splitArc replaces arc A with the subtree
//
//	   (A,B)
//	  /     \
//	A1      (B,A)
//	       /     \
//	      B       A2
//
// where B is the new site. left and right are the twinned half-edges traced
// by (A,B) and (B,A). It returns the handle of B.
func (b *beachline) splitArc(arc Handle, site Point, face, left, right Handle) Handle {
	if !b.isArc(arc) {
		violated("split target is not an arc", arc)
	}
	old := b.nodes[arc]

	ab := Handle(len(b.nodes))
	ba, a1, nb, a2 := ab+1, ab+2, ab+3, ab+4
	b.push(newBreakpoint(NoHandle, a1, ba, old.site, site, left))
	b.push(newBreakpoint(ab, nb, a2, site, old.site, right))
	b.push(newArc(ab, old.site, old.face))
	b.push(newArc(ba, site, face))
	b.push(newArc(ba, old.site, old.face))

	b.replace(arc, ab)
	return nb
}

// splitArcAside handles a new site at the same height as the arc it lands in.
// That arc is still a vertical ray, so the new arc goes beside it instead of
// inside it, separated by a single breakpoint tracing edge.
func (b *beachline) splitArcAside(arc Handle, site Point, face, edge Handle) Handle {
	if !b.isArc(arc) {
		violated("split target is not an arc", arc)
	}
	old := b.nodes[arc]

	bp := Handle(len(b.nodes))
	oldArc, nb := bp+1, bp+2
	if site.X < old.site.X {
		b.push(newBreakpoint(NoHandle, nb, oldArc, site, old.site, edge))
	} else {
		b.push(newBreakpoint(NoHandle, oldArc, nb, old.site, site, edge))
	}
	b.push(newArc(bp, old.site, old.face))
	b.push(newArc(bp, site, face))

	b.replace(arc, bp)
	return nb
}

// deleteLeaf removes a disappearing arc. It returns the breakpoints on either
// side (pred, succ), the arc's parent, which is spliced out together with the
// arc, and other, the surviving breakpoint among pred and succ, which now
// separates the two arcs that became adjacent.
func (b *beachline) deleteLeaf(leaf Handle) (pred, succ, parent, other Handle) {
	if !b.isArc(leaf) || b.nodes[leaf].removed {
		violated("deleteLeaf on a node that is not a live arc", leaf)
	}
	pred = b.predecessor(leaf)
	succ = b.successor(leaf)
	parent = b.nodes[leaf].parent
	if pred == NoHandle || succ == NoHandle || parent == NoHandle {
		violated("disappearing arc lacks a neighbor", leaf, pred, succ, parent)
	}

	switch parent {
	case pred:
		other = succ
	case succ:
		other = pred
	default:
		violated("parent of an arc is neither of its breakpoints", leaf, parent)
	}

	var sibling Handle
	switch leaf {
	case b.nodes[parent].right:
		sibling = b.nodes[parent].left
	case b.nodes[parent].left:
		sibling = b.nodes[parent].right
	default:
		violated("parent does not acknowledge leaf", parent, leaf)
	}

	b.replace(parent, sibling)
	b.nodes[leaf].removed = true
	b.nodes[leaf].parent = NoHandle

	if other == pred {
		n := b.successor(other)
		if !b.isArc(n) {
			violated("successor of a breakpoint is not an arc", other, n)
		}
		b.nodes[other].rightSite = b.nodes[n].site
	} else {
		n := b.predecessor(other)
		if !b.isArc(n) {
			violated("predecessor of a breakpoint is not an arc", other, n)
		}
		b.nodes[other].leftSite = b.nodes[n].site
	}
	return pred, succ, parent, other
}

// arcs returns the arcs in left-to-right order.
func (b *beachline) arcs() []Handle {
	var out []Handle
	if b.empty() {
		return out
	}
	for n := b.minimum(b.root); n != NoHandle; n = b.rightArc(n) {
		out = append(out, n)
	}
	return out
}

// checkOrder verifies the tree order: breakpoints met in order are
// non-decreasing at sweepY, and arcs and breakpoints alternate with matching
// sites.
func (b *beachline) checkOrder(sweepY, eps float64) error {
	if b.empty() {
		return nil
	}
	var err error
	prevX := math.Inf(-1)
	var prev Handle = NoHandle
	for n := b.minimum(b.root); n != NoHandle; n = b.successor(n) {
		node := &b.nodes[n]
		if node.removed {
			err = multierr.Append(err, errors.Errorf("node %v is reachable but removed", n))
		}
		if prev != NoHandle && b.nodes[prev].kind == node.kind {
			err = multierr.Append(err, errors.Errorf("nodes %v and %v of the same kind are adjacent", prev, n))
		}
		if node.kind == breakpointNode {
			l, r := b.predecessor(n), b.successor(n)
			if b.nodes[l].site != node.leftSite || b.nodes[r].site != node.rightSite {
				err = multierr.Append(err, errors.Errorf("breakpoint %v does not match its arcs %v %v", n, l, r))
			}
			x := BreakpointX(node.leftSite, node.rightSite, sweepY)
			if x < prevX-eps*math.Max(1, math.Abs(x)) {
				err = multierr.Append(err, errors.Errorf("breakpoint %v at %g left of previous at %g", n, x, prevX))
			}
			prevX = math.Max(prevX, x)
		}
		prev = n
	}
	return err
}
