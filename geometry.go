package projections

import "github.com/paulmach/orb"

// ProjectGeometry forward-transforms every coordinate of geom through p,
// returning a new geometry of the same kind. The first point whose
// projection is impossible fails the whole geometry; no partial result is
// returned.
func ProjectGeometry(p Projection, geom orb.Geometry) (orb.Geometry, error) {
	return transformGeometry(geom, func(pt orb.Point) (orb.Point, error) {
		x, y, err := p.Project(pt[0], pt[1])
		return orb.Point{x, y}, err
	})
}

// InverseProjectGeometry inverse-transforms every coordinate of geom
// through p.
func InverseProjectGeometry(p Projection, geom orb.Geometry) (orb.Geometry, error) {
	return transformGeometry(geom, func(pt orb.Point) (orb.Point, error) {
		lon, lat, err := p.InverseProject(pt[0], pt[1])
		return orb.Point{lon, lat}, err
	})
}

// ProjectGeometryUnchecked is ProjectGeometry without finiteness checks;
// out-of-domain coordinates yield non-finite values in place.
func ProjectGeometryUnchecked(p Projection, geom orb.Geometry) orb.Geometry {
	out, _ := transformGeometry(geom, func(pt orb.Point) (orb.Point, error) {
		x, y := p.ProjectUnchecked(pt[0], pt[1])
		return orb.Point{x, y}, nil
	})
	return out
}

// InverseProjectGeometryUnchecked is InverseProjectGeometry without
// finiteness checks.
func InverseProjectGeometryUnchecked(p Projection, geom orb.Geometry) orb.Geometry {
	out, _ := transformGeometry(geom, func(pt orb.Point) (orb.Point, error) {
		lon, lat := p.InverseProjectUnchecked(pt[0], pt[1])
		return orb.Point{lon, lat}, nil
	})
	return out
}

// transformGeometry applies fn to every coordinate of geom, recursing
// through compound kinds.
func transformGeometry(geom orb.Geometry, fn func(orb.Point) (orb.Point, error)) (orb.Geometry, error) {
	if geom == nil {
		return nil, nil
	}

	switch v := geom.(type) {
	case orb.Point:
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		return out, nil

	case orb.MultiPoint:
		mp := make(orb.MultiPoint, len(v))
		for i, pt := range v {
			out, err := fn(pt)
			if err != nil {
				return nil, err
			}
			mp[i] = out
		}
		return mp, nil

	case orb.LineString:
		ls := make(orb.LineString, len(v))
		for i, pt := range v {
			out, err := fn(pt)
			if err != nil {
				return nil, err
			}
			ls[i] = out
		}
		return ls, nil

	case orb.MultiLineString:
		mls := make(orb.MultiLineString, len(v))
		for i, ls := range v {
			out, err := transformGeometry(ls, fn)
			if err != nil {
				return nil, err
			}
			mls[i] = out.(orb.LineString)
		}
		return mls, nil

	case orb.Ring:
		ring := make(orb.Ring, len(v))
		for i, pt := range v {
			out, err := fn(pt)
			if err != nil {
				return nil, err
			}
			ring[i] = out
		}
		return ring, nil

	case orb.Polygon:
		poly := make(orb.Polygon, len(v))
		for i, ring := range v {
			out, err := transformGeometry(ring, fn)
			if err != nil {
				return nil, err
			}
			poly[i] = out.(orb.Ring)
		}
		return poly, nil

	case orb.MultiPolygon:
		mp := make(orb.MultiPolygon, len(v))
		for i, poly := range v {
			out, err := transformGeometry(poly, fn)
			if err != nil {
				return nil, err
			}
			mp[i] = out.(orb.Polygon)
		}
		return mp, nil

	case orb.Collection:
		coll := make(orb.Collection, len(v))
		for i, child := range v {
			out, err := transformGeometry(child, fn)
			if err != nil {
				return nil, err
			}
			coll[i] = out
		}
		return coll, nil

	case orb.Bound:
		// Transform the rectangle's corners and take the bound of the
		// result: the projected min/max corners need not stay min/max.
		ring := orb.Ring{
			v.Min,
			{v.Max[0], v.Min[1]},
			v.Max,
			{v.Min[0], v.Max[1]},
		}
		out, err := transformGeometry(ring, fn)
		if err != nil {
			return nil, err
		}
		return out.Bound(), nil

	default:
		return nil, &IncorrectParamsError{Reason: "unsupported geometry type"}
	}
}
