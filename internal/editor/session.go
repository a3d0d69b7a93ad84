package editor

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"
)

// ErrSelection is returned by Swap when the selection does not hold
// exactly two markers.
var ErrSelection = errors.New("select exactly two markers to swap")

// Session holds one generated plat drawing open for marker editing. The
// document tree stays authoritative; lots and marker units are views into
// it that keep their cached positions in sync on every move.
type Session struct {
	doc  *etree.Document
	path string

	lots  []*LotShape
	units []*MarkerUnit
}

// LotShape is one lot group in the drawing: its outline ring plus the
// marker units nested under it.
type LotShape struct {
	ID    string
	El    *etree.Element
	Ring  orb.Ring
	Units []*MarkerUnit
}

// Load opens a drawing file and indexes its lot shapes and marker units.
func Load(path string) (*Session, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s := &Session{doc: doc, path: path}
	if err := s.scan(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file the session was loaded from.
func (s *Session) Path() string { return s.path }

// Lots returns the indexed lot shapes in document order.
func (s *Session) Lots() []*LotShape { return s.lots }

// Units returns every marker unit in document order.
func (s *Session) Units() []*MarkerUnit { return s.units }

// Save writes the edited document to path, pretty-printed.
func (s *Session) Save(path string) error {
	s.doc.Indent(2)
	if err := s.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// scan walks the lot groups and builds the editable index. Lot groups are
// the id-carrying "notavailable" groups except the unused bucket; marker
// units are the class-tagged groups nested inside them. Malformed units
// are skipped rather than failing the whole load.
func (s *Session) scan() error {
	root := s.doc.Root()
	if root == nil {
		return errors.New("document has no root element")
	}
	for _, lg := range root.FindElements("//g[@class='notavailable']") {
		id := lg.SelectAttrValue("id", "")
		if id == "" || id == "unused" {
			continue
		}
		lot := &LotShape{ID: id, El: lg}
		if outline := lg.SelectElement("path"); outline != nil {
			ring, err := ringFromPath(outline.SelectAttrValue("d", ""))
			if err != nil {
				return fmt.Errorf("lot %s outline: %w", id, err)
			}
			lot.Ring = ring
		}
		for _, class := range []string{ClassConstStatus, ClassLotPremium, ClassSoldStatus} {
			mg := lg.FindElement(fmt.Sprintf(".//g[@class='%s']", class))
			if mg == nil {
				continue
			}
			unit, ok := newMarkerUnit(lot, class, mg)
			if !ok {
				continue
			}
			lot.Units = append(lot.Units, unit)
			s.units = append(s.units, unit)
		}
		s.lots = append(s.lots, lot)
	}
	return nil
}

// ringFromPath converts a lot outline path into a closed ring.
func ringFromPath(d string) (orb.Ring, error) {
	segs, err := ParsePath(d)
	if err != nil {
		return nil, err
	}
	pts := PathPoints(segs)
	if len(pts) == 0 {
		return nil, nil
	}
	ring := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		ring = append(ring, orb.Point{p[0], p[1]})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring, nil
}

// Swap exchanges the positions of exactly two marker units. Any other
// selection size is rejected with ErrSelection and nothing moves.
func (s *Session) Swap(units []*MarkerUnit) error {
	if len(units) != 2 {
		return ErrSelection
	}
	ax, ay := units[0].Center()
	bx, by := units[1].Center()
	if err := units[0].MoveBy(bx-ax, by-ay); err != nil {
		return err
	}
	return units[1].MoveBy(ax-bx, ay-by)
}
