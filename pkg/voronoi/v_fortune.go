package voronoi

import (
	"math"

	"go.uber.org/zap"
)

// sweep owns all state of one diagram construction.
type sweep struct {
	mesh   *Mesh
	beach  *beachline
	queue  *eventQueue
	opts   options
	log    *zap.Logger
	stats  Stats
	sweepY float64
}

func newSweep(o options) *sweep {
	return &sweep{
		mesh:   NewMesh(),
		beach:  newBeachline(),
		queue:  newEventQueue(),
		opts:   o,
		log:    o.logger,
		sweepY: math.Inf(1),
	}
}

// step pops and handles the next event. It returns nil once the queue is
// drained.
func (s *sweep) step() *event {
	ev := s.queue.pop()
	if ev == nil {
		return nil
	}
	// a circle event accepted within epsilon above the line must not lift it
	s.sweepY = math.Min(s.sweepY, ev.y)

	switch ev.kind {
	case siteEvent:
		s.stats.SiteEvents++
		s.handleSiteEvent(ev.site)
	case circleEvent:
		s.stats.CircleEvents++
		s.handleCircleEvent(ev)
	}

	if s.opts.checks {
		s.check()
	}
	return ev
}

// minOrderTolerance is the smallest relative slack allowed between breakpoints
// in the order check: breakpoint abscissas lose far more precision than the
// circle-event epsilon when arcs are about to vanish.
const minOrderTolerance = 1e-6

func (s *sweep) orderTolerance() float64 {
	return math.Max(minOrderTolerance, s.opts.epsilon)
}

func (s *sweep) check() {
	if err := s.beach.checkOrder(s.sweepY, s.orderTolerance()); err != nil {
		violated("beachline order: " + err.Error())
	}
	if err := s.mesh.Validate(); err != nil {
		violated("mesh: " + err.Error())
	}
}

func (s *sweep) handleSiteEvent(site Point) {
	face := s.mesh.addFace(site)

	// первая точка - просто дуга, ребер еще нет
	if s.beach.empty() {
		s.beach.insertFirst(site, face)
		s.log.Debug("[f-site] Первая дуга", zap.Any("site", site))
		return
	}

	arc := s.beach.locateArcAbove(site)
	// дугу разрежут, ее событие круга больше не наступит
	s.purge(arc)

	old := s.beach.nodes[arc]
	left, right := s.mesh.AddTwins()

	var nb Handle
	if old.site.Y == site.Y {
		// обе точки на прямой сканирования: новая дуга встает рядом, а не внутрь
		if site.X < old.site.X {
			s.mesh.HalfEdges[left].Face = face
			s.mesh.HalfEdges[right].Face = old.face
		} else {
			s.mesh.HalfEdges[left].Face = old.face
			s.mesh.HalfEdges[right].Face = face
		}
		nb = s.beach.splitArcAside(arc, site, face, left)
	} else {
		s.mesh.HalfEdges[left].Face = old.face
		s.mesh.HalfEdges[right].Face = face
		nb = s.beach.splitArc(arc, site, face, left, right)
	}

	s.log.Debug("[f-site] Дуга разрезана",
		zap.Any("site", site),
		zap.Any("above", old.site),
		zap.Stringer("arc", nb),
		zap.Stringer("edge", left),
	)

	s.checkLeft(nb)
	s.checkRight(nb)
}

func (s *sweep) handleCircleEvent(ev *event) {
	arc := ev.arc
	if !s.beach.isArc(arc) || s.beach.nodes[arc].removed {
		violated("circle event for an arc that is no longer on the beachline", arc)
	}
	left, right := s.beach.leftArc(arc), s.beach.rightArc(arc)
	if left == NoHandle || right == NoHandle {
		violated("disappearing arc lacks a neighbor arc", arc, left, right)
	}

	pred, succ, parent, other := s.beach.deleteLeaf(arc)

	// все тройки с исчезнувшей дугой больше не действительны
	s.purge(arc)
	s.purge(left)
	s.purge(right)

	e1, e2 := s.mesh.AddTwins()
	v := s.mesh.addVertex(ev.center, e1)

	predEdge := s.beach.nodes[pred].edge
	succEdge := s.beach.nodes[succ].edge
	for _, e := range []Handle{s.beach.nodes[parent].edge, s.beach.nodes[other].edge} {
		if s.mesh.HalfEdges[e].Origin != NoHandle {
			violated("retiring half-edge already has an origin", e)
		}
		s.mesh.HalfEdges[e].Origin = v
	}
	s.mesh.HalfEdges[e1].Origin = v

	s.mesh.link(s.mesh.Twin(predEdge), succEdge)
	s.mesh.link(s.mesh.Twin(succEdge), e1)
	s.mesh.link(e2, predEdge)

	s.mesh.HalfEdges[e1].Face = s.beach.nodes[right].face
	s.mesh.HalfEdges[e2].Face = s.beach.nodes[left].face
	s.beach.nodes[other].edge = e2

	s.log.Debug("[f-circle] Дуга исчезла",
		zap.Stringer("arc", arc),
		zap.Float64("y", ev.y),
		zap.Any("vertex", ev.center),
		zap.Stringer("edge", e1),
	)

	// новые соседи: проверяем тройки вокруг выжившей точки излома
	s.checkLeft(right)
	s.checkRight(left)
}

// checkLeft tests the triple ending at n and schedules the disappearance of
// the arc in its middle.
func (s *sweep) checkLeft(n Handle) {
	if t, ok := s.beach.leftwardTriple(n); ok {
		s.scheduleCircle(s.beach.leftArc(n), t)
	}
}

// checkRight tests the triple starting at n.
func (s *sweep) checkRight(n Handle) {
	if t, ok := s.beach.rightwardTriple(n); ok {
		s.scheduleCircle(s.beach.rightArc(n), t)
	}
}

func (s *sweep) scheduleCircle(arc Handle, t Triple) {
	if !BreakpointsConverge(t[0], t[1], t[2]) {
		return
	}
	center, ok := Circumcenter(t[0], t[1], t[2])
	if !ok {
		s.log.Debug("[f-circle] Точки на одной прямой", zap.Any("triple", t))
		return
	}
	bottom := center.Y - math.Hypot(t[1].X-center.X, t[1].Y-center.Y)
	if bottom > s.sweepY+s.opts.epsilon*math.Max(1, math.Abs(s.sweepY)) {
		s.log.Debug("[f-circle] Круг выше прямой сканирования", zap.Any("triple", t), zap.Float64("y", bottom))
		return
	}

	s.purge(arc)
	ev := s.queue.pushCircle(arc, t, center, bottom)
	s.beach.nodes[arc].circle = ev
	s.stats.CirclesScheduled++

	s.log.Debug("[f-circle] Новое событие круга", zap.Stringer("event", ev))
}

// purge drops the pending circle event of arc, if any.
func (s *sweep) purge(arc Handle) {
	if n := s.queue.removeCirclesWithArc(arc); n > 0 {
		s.stats.CirclesPurged += n
	}
	s.beach.nodes[arc].circle = nil
}
