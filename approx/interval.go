package approx

import "math"

// Interval is a real interval [Lo, Hi], Lo < Hi. Either endpoint may be
// infinite.
type Interval struct {
	Lo float64
	Hi float64
}

// Unit is the reference interval [-1, 1].
var Unit = Interval{Lo: -1, Hi: 1}

// IsFinite reports whether both endpoints are finite.
func (iv Interval) IsFinite() bool {
	return !math.IsInf(iv.Lo, 0) && !math.IsInf(iv.Hi, 0)
}

func (iv Interval) valid() bool {
	if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
		return false
	}

	return iv.Lo < iv.Hi
}

type mapKind int

const (
	mapLinear mapKind = iota
	mapHalfLine
	mapRealLine
)

// mapScale sets the length scale of the algebraic maps for unbounded
// intervals.
const mapScale = 1.0

// mapping is the change of variable between the unit interval and an
// approximation interval. The kind is fixed at construction time.
type mapping struct {
	kind mapKind
	iv   Interval
	// flip is true for (-inf, hi], which reuses the half-line map
	// mirrored about the finite endpoint.
	flip bool
}

func newMapping(iv Interval) mapping {
	loInf := math.IsInf(iv.Lo, -1)
	hiInf := math.IsInf(iv.Hi, 1)

	switch {
	case loInf && hiInf:
		return mapping{kind: mapRealLine, iv: iv}
	case hiInf:
		return mapping{kind: mapHalfLine, iv: iv}
	case loInf:
		return mapping{kind: mapHalfLine, iv: iv, flip: true}
	default:
		return mapping{kind: mapLinear, iv: iv}
	}
}

// forward maps t in [-1, 1] onto the interval.
func (m mapping) forward(t float64) float64 {
	switch m.kind {
	case mapRealLine:
		return mapScale * t / (1 - t*t)
	case mapHalfLine:
		if m.flip {
			return m.iv.Hi - mapScale*(1+t)/(1-t)
		}
		return m.iv.Lo + mapScale*(1+t)/(1-t)
	default:
		return m.iv.Lo + (t+1)*(m.iv.Hi-m.iv.Lo)/2
	}
}

// backward maps a point of the interval into [-1, 1].
func (m mapping) backward(x float64) float64 {
	switch m.kind {
	case mapRealLine:
		// Inverse of L*t/(1-t^2); the branch with |t| <= 1.
		if x == 0 {
			return 0
		}
		return (math.Sqrt(mapScale*mapScale+4*x*x) - mapScale) / (2 * x)
	case mapHalfLine:
		if m.flip {
			d := m.iv.Hi - x
			return (d - mapScale) / (d + mapScale)
		}
		d := x - m.iv.Lo
		return (d - mapScale) / (d + mapScale)
	default:
		return 2*(x-m.iv.Lo)/(m.iv.Hi-m.iv.Lo) - 1
	}
}
