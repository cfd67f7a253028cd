// Package layout computes tooltip positions for tour steps. It is pure
// geometry: no state, no side effects, identical inputs always produce
// identical output, so it is unit-testable without any UI harness.
package layout

import "github.com/petrijr/spotlight/pkg/api"

// sideOrder is the fallback scan order when the preferred side has no
// room. Ties on available space resolve to the earlier side.
var sideOrder = [4]api.Side{api.SideBottom, api.SideTop, api.SideRight, api.SideLeft}

// sideSpaces returns the free linear space outside the target on each
// side, after subtracting the margin and the tooltip extent along that
// axis. Negative values mean the tooltip does not fit on that side.
func sideSpaces(target api.Rect, tipW, tipH, viewW, viewH, margin float64) [4]float64 {
	var spaces [4]float64
	spaces[api.SideBottom] = viewH - target.Bottom() - margin - tipH
	spaces[api.SideTop] = target.Y - margin - tipH
	spaces[api.SideRight] = viewW - target.Right() - margin - tipW
	spaces[api.SideLeft] = target.X - margin - tipW
	return spaces
}

// ChooseSide returns the side the tooltip will be placed on: the
// preferred side if it has non-negative free space, otherwise the side
// with the most space in the fixed order Bottom, Top, Right, Left.
//
// Exported separately from TooltipOffset so hosts can orient pointer
// arrows or beaks toward the target.
func ChooseSide(target api.Rect, preferred api.Side, tipW, tipH, viewW, viewH, margin float64) api.Side {
	spaces := sideSpaces(target, tipW, tipH, viewW, viewH, margin)

	if spaces[preferred] >= 0 {
		return preferred
	}

	best := sideOrder[0]
	for _, s := range sideOrder[1:] {
		if spaces[s] > spaces[best] {
			best = s
		}
	}
	return best
}

// TooltipOffset computes the top-left corner for a tooltip of fixed
// dimensions tipW x tipH next to target, inside a viewW x viewH viewport.
//
// The preferred side is kept when it has room; otherwise the side with
// the most free space wins (ties: Bottom, Top, Right, Left). Along the
// other axis the tooltip is centered on the target's midpoint and
// clamped edgePad away from the viewport edges, preferring a left/up
// shift over overflow. A final clamp forces the result fully on-screen
// even for pathological geometry such as a target larger than the
// viewport.
func TooltipOffset(target api.Rect, preferred api.Side, tipW, tipH, viewW, viewH, margin, edgePad float64) (x, y float64) {
	side := ChooseSide(target, preferred, tipW, tipH, viewW, viewH, margin)

	switch side {
	case api.SideBottom:
		x = clamp(target.CenterX()-tipW/2, edgePad, viewW-tipW-edgePad)
		y = target.Bottom() + margin
	case api.SideTop:
		x = clamp(target.CenterX()-tipW/2, edgePad, viewW-tipW-edgePad)
		y = target.Y - margin - tipH
		if y < edgePad {
			y = edgePad
		}
	case api.SideRight:
		x = target.Right() + margin
		if limit := viewW - tipW - edgePad; x > limit {
			x = limit
		}
		y = clamp(target.CenterY()-tipH/2, edgePad, viewH-tipH-edgePad)
	case api.SideLeft:
		x = target.X - tipW - margin
		if x < edgePad {
			x = edgePad
		}
		y = clamp(target.CenterY()-tipH/2, edgePad, viewH-tipH-edgePad)
	}

	// Defensive clamp regardless of which branch produced the position.
	x = clamp(x, edgePad, viewW-tipW-edgePad)
	y = clamp(y, edgePad, viewH-tipH-edgePad)
	return x, y
}

// clamp forces v into [lo, hi]. When the interval is inverted (tooltip
// wider than the padded viewport) lo wins, preferring a left/up shift.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
