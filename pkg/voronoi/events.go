package voronoi

import "fmt"

type eventKind uint8

const (
	siteEvent eventKind = iota
	circleEvent
)

func (k eventKind) String() string {
	if k == siteEvent {
		return "site"
	}
	return "circle"
}

// event is a site to insert or a predicted arc disappearance. A circle event
// keeps a snapshot of its triple, so it never depends on live tree state.
type event struct {
	kind eventKind
	site Point // site events

	arc    Handle // circle events: the disappearing arc
	triple Triple
	center Point

	// priority: the sweep moves downwards, ties go left to right
	x, y float64
	seq  uint64
	node *eventNode
}

func (e *event) String() string {
	if e.kind == siteEvent {
		return fmt.Sprintf("site(%g, %g)", e.site.X, e.site.Y)
	}
	return fmt.Sprintf("circle(arc %v, y=%g, center=(%g, %g))", e.arc, e.y, e.center.X, e.center.Y)
}

// before reports whether e must be processed before o: higher first, then
// leftmost, then site events before circle events, then scheduling order.
func (e *event) before(o *event) bool {
	switch {
	case e.y != o.y:
		return e.y > o.y
	case e.x != o.x:
		return e.x < o.x
	case e.kind != o.kind:
		return e.kind == siteEvent
	}
	return e.seq < o.seq
}

// eventQueue orders pending events and indexes circle events by the arc they
// predict to disappear, so they can be purged when that arc changes.
type eventQueue struct {
	tree    eventTree
	circles map[Handle][]*event
	seq     uint64
}

func newEventQueue() *eventQueue {
	return &eventQueue{circles: make(map[Handle][]*event)}
}

func (q *eventQueue) len() int { return q.tree.size }

func (q *eventQueue) push(ev *event) {
	q.seq++
	ev.seq = q.seq
	q.tree.insert(ev)
	if ev.kind == circleEvent {
		q.circles[ev.arc] = append(q.circles[ev.arc], ev)
	}
}

func (q *eventQueue) pushSite(p Point) *event {
	ev := &event{kind: siteEvent, site: p, arc: NoHandle, x: p.X, y: p.Y}
	q.push(ev)
	return ev
}

func (q *eventQueue) pushCircle(arc Handle, t Triple, center Point, bottom float64) *event {
	ev := &event{kind: circleEvent, arc: arc, triple: t, center: center, x: center.X, y: bottom}
	q.push(ev)
	return ev
}

// pop removes and returns the next event, or nil when the queue is empty.
func (q *eventQueue) pop() *event {
	n := q.tree.first
	if n == nil {
		return nil
	}
	ev := n.ev
	q.tree.remove(n)
	if ev.kind == circleEvent {
		q.forget(ev)
	}
	return ev
}

func (q *eventQueue) forget(ev *event) {
	pending := q.circles[ev.arc]
	for i, c := range pending {
		if c == ev {
			pending = append(pending[:i], pending[i+1:]...)
			break
		}
	}
	if len(pending) == 0 {
		delete(q.circles, ev.arc)
	} else {
		q.circles[ev.arc] = pending
	}
}

// removeCirclesWithArc drops every pending circle event for arc and returns
// how many there were.
func (q *eventQueue) removeCirclesWithArc(arc Handle) int {
	pending := q.circles[arc]
	for _, ev := range pending {
		if ev.node != nil {
			q.tree.remove(ev.node)
		}
	}
	delete(q.circles, arc)
	return len(pending)
}
