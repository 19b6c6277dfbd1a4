package voronoi

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Diagram is the result of a sweep: the half-edge mesh with one face per
// distinct site, and counters describing the run.
type Diagram struct {
	Mesh  *Mesh
	Stats Stats
}

type Stats struct {
	Sites            int // distinct sites swept
	Duplicates       int // exact duplicates dropped before the sweep
	SiteEvents       int
	CircleEvents     int // circle events processed, one per vertex
	CirclesScheduled int
	CirclesPurged    int // circle events dropped before firing
}

// Compute builds the Voronoi diagram of sites with Fortune's sweep. The sweep
// line moves from the highest site downwards.
//
// Exact duplicate sites are dropped. Sites with non-finite coordinates are
// rejected with ErrNonFiniteSite. Edges still unbounded when the sweep ends
// keep an unset origin on their open end; clipping them is left to the
// caller (see package clip).
func Compute(sites []Point, opts ...Option) (d *Diagram, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for i, p := range sites {
		if !p.Finite() {
			return nil, errors.Wrapf(ErrNonFiniteSite, "site %d (%v, %v)", i, p.X, p.Y)
		}
	}

	s := newSweep(o)
	defer func() {
		if r := recover(); r != nil {
			err = recoverInvariant(r)
			d = nil
			s.log.Error("[f] Нарушен инвариант", zap.Error(err))
		}
	}()

	s.log.Info("[f] Алгоритм Форчуна запущен", zap.Int("sites", len(sites)))
	s.seed(sites)

	for s.step() != nil {
	}

	s.log.Info("[f] Алгоритм завершен",
		zap.Int("vertices", len(s.mesh.Vertices)),
		zap.Int("edges", s.mesh.Pairs()),
		zap.Int("circles", s.stats.CircleEvents),
		zap.Int("purged", s.stats.CirclesPurged),
	)
	return &Diagram{Mesh: s.mesh, Stats: s.stats}, nil
}

// seed queues one site event per distinct site.
func (s *sweep) seed(sites []Point) {
	sorted := slices.Clone(sites)
	slices.SortFunc(sorted, Point.Compare)

	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			s.stats.Duplicates++
			s.log.Warn("[f] Найден дубликат", zap.Any("site", p))
			continue
		}
		s.queue.pushSite(p)
		s.stats.Sites++
	}
}
