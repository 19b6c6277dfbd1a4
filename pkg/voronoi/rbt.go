package voronoi

// eventTree is a red-black tree of pending events ordered by event.before.
// Nodes are also threaded into a doubly linked list, so the next event to
// process is always first.
type eventTree struct {
	root  *eventNode
	first *eventNode
	size  int
}

type eventNode struct {
	ev       *event
	left     *eventNode
	right    *eventNode
	parent   *eventNode
	previous *eventNode
	next     *eventNode
	red      bool
}

func isRed(n *eventNode) bool { return n != nil && n.red }

// insert places ev after every event that must be processed before it.
func (t *eventTree) insert(ev *event) *eventNode {
	var predecessor *eventNode
	node := t.root
	for node != nil {
		if ev.before(node.ev) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	n := t.insertSuccessor(predecessor, ev)
	ev.node = n
	t.size++
	return n
}

func (t *eventTree) insertSuccessor(node *eventNode, ev *event) *eventNode {
	successor := &eventNode{ev: ev, red: true}

	var parent *eventNode
	switch {
	case node != nil:
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			node = t.getFirst(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	case t.root != nil:
		node = t.getFirst(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
	default:
		t.root = successor
	}
	successor.parent = parent
	if successor.previous == nil {
		t.first = successor
	}

	t.insertFixup(successor)
	return successor
}

func (t *eventTree) insertFixup(node *eventNode) {
	parent := node.parent
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if isRed(uncle) {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if isRed(uncle) {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

func (t *eventTree) remove(node *eventNode) {
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	} else {
		t.first = node.next
	}
	node.next, node.previous = nil, nil
	node.ev.node = nil
	t.size--

	parent, left, right := node.parent, node.left, node.right
	var next *eventNode
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = t.getFirst(right)
	}
	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var wasRed bool
	if left != nil && right != nil {
		wasRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		wasRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if wasRed {
		return
	}
	if isRed(node) {
		node.red = false
		return
	}
	t.removeFixup(node, parent)
}

func (t *eventTree) removeFixup(node, parent *eventNode) {
	for node != t.root {
		var sibling *eventNode
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.right) {
					sibling.left.red, sibling.red = false, true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red, parent.red = parent.red, false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.left) {
					sibling.right.red, sibling.red = false, true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red, parent.red = parent.red, false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node, parent = parent, parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func (t *eventTree) rotateLeft(p *eventNode) {
	q := p.right
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *eventTree) rotateRight(p *eventNode) {
	q := p.left
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

func (t *eventTree) getFirst(node *eventNode) *eventNode {
	for node.left != nil {
		node = node.left
	}
	return node
}
