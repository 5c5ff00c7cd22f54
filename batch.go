package projections

import (
	"runtime"
	"sync"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
)

// Batch helpers map the per-point transforms over a slice of points in
// parallel. Points carry (lon, lat) on the geographic side and (x, y) on
// the planar side, in orb's axis order. Results are position-stable: out[i]
// always corresponds to points[i].
//
// The checked variants fail the whole batch on the first non-finite result;
// the unchecked variants let non-finite values propagate per element.

// ProjectBatch forward-transforms every point, failing fast on the first
// point whose projection is impossible.
func ProjectBatch(p Projection, points []orb.Point) ([]orb.Point, error) {
	return mapChecked(points, func(pt orb.Point) (orb.Point, error) {
		x, y, err := p.Project(pt[0], pt[1])
		return orb.Point{x, y}, err
	})
}

// InverseProjectBatch inverse-transforms every point, failing fast on the
// first point whose inverse projection is impossible.
func InverseProjectBatch(p Projection, points []orb.Point) ([]orb.Point, error) {
	return mapChecked(points, func(pt orb.Point) (orb.Point, error) {
		lon, lat, err := p.InverseProject(pt[0], pt[1])
		return orb.Point{lon, lat}, err
	})
}

// ConvertBatch runs every point through a conversion pipe, failing fast on
// the first failing conversion.
func ConvertBatch(pipe ConversionPipe, points []orb.Point) ([]orb.Point, error) {
	return mapChecked(points, func(pt orb.Point) (orb.Point, error) {
		x, y, err := pipe.Convert(pt[0], pt[1])
		return orb.Point{x, y}, err
	})
}

// ProjectBatchUnchecked forward-transforms every point without finiteness
// checks; out-of-domain points yield non-finite coordinates in place.
func ProjectBatchUnchecked(p Projection, points []orb.Point) []orb.Point {
	return mapUnchecked(points, func(pt orb.Point) orb.Point {
		x, y := p.ProjectUnchecked(pt[0], pt[1])
		return orb.Point{x, y}
	})
}

// InverseProjectBatchUnchecked inverse-transforms every point without
// finiteness checks.
func InverseProjectBatchUnchecked(p Projection, points []orb.Point) []orb.Point {
	return mapUnchecked(points, func(pt orb.Point) orb.Point {
		lon, lat := p.InverseProjectUnchecked(pt[0], pt[1])
		return orb.Point{lon, lat}
	})
}

// ConvertBatchUnchecked runs every point through a conversion pipe without
// finiteness checks.
func ConvertBatchUnchecked(pipe ConversionPipe, points []orb.Point) []orb.Point {
	return mapUnchecked(points, func(pt orb.Point) orb.Point {
		x, y := pipe.ConvertUnchecked(pt[0], pt[1])
		return orb.Point{x, y}
	})
}

type span struct {
	lo, hi int
}

// chunk splits n items into contiguous spans, one per worker.
func chunk(n int) []span {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return nil
	}

	spans := make([]span, 0, workers)
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo: lo, hi: hi})
	}
	return spans
}

func mapChecked(points []orb.Point, fn func(orb.Point) (orb.Point, error)) ([]orb.Point, error) {
	out := make([]orb.Point, len(points))
	var g errgroup.Group
	for _, sp := range chunk(len(points)) {
		sp := sp
		g.Go(func() error {
			for i := sp.lo; i < sp.hi; i++ {
				pt, err := fn(points[i])
				if err != nil {
					return err
				}
				out[i] = pt
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func mapUnchecked(points []orb.Point, fn func(orb.Point) orb.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	var wg sync.WaitGroup
	for _, sp := range chunk(len(points)) {
		sp := sp
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := sp.lo; i < sp.hi; i++ {
				out[i] = fn(points[i])
			}
		}()
	}
	wg.Wait()
	return out
}
