package editor

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// arrangeOrder fixes which marker takes which surviving corner.
var arrangeOrder = []string{ClassConstStatus, ClassLotPremium, ClassSoldStatus}

// AutoArrange spreads each lot's markers onto inset corners of the lot
// outline. The inset is 8% of the lot width with a 10px floor; corner
// candidates that land outside the outline are discarded and the rest are
// handed out in the fixed class order. Lots without a usable outline are
// left untouched.
func (s *Session) AutoArrange() error {
	for _, lot := range s.lots {
		if len(lot.Ring) < 4 || len(lot.Units) == 0 {
			continue
		}
		corners := insetCorners(lot.Ring)
		var inside []orb.Point
		for _, c := range corners {
			if planar.RingContains(lot.Ring, c) {
				inside = append(inside, c)
			}
		}
		byClass := map[string]*MarkerUnit{}
		for _, u := range lot.Units {
			byClass[u.Class] = u
		}
		for i, class := range arrangeOrder {
			if i >= len(inside) {
				break
			}
			u := byClass[class]
			if u == nil {
				continue
			}
			if err := u.MoveTo(inside[i][0], inside[i][1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// insetCorners returns the four bounding-box corners pulled inward by the
// lot's inset, top-left first.
func insetCorners(ring orb.Ring) [4]orb.Point {
	b := ring.Bound()
	inset := 0.08 * (b.Max[0] - b.Min[0])
	if inset < 10 {
		inset = 10
	}
	return [4]orb.Point{
		{b.Min[0] + inset, b.Min[1] + inset},
		{b.Max[0] - inset, b.Min[1] + inset},
		{b.Min[0] + inset, b.Max[1] - inset},
		{b.Max[0] - inset, b.Max[1] - inset},
	}
}
