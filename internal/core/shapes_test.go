package core

import "testing"

func TestMatchShapeCoversEveryRequest(t *testing.T) {
	// Every non-empty opening set must be covered by some catalog shape
	// under some rotation.
	for req := DirSet(1); req <= DirSetAll; req++ {
		shape, rot := MatchShape(req)
		if rot < 0 || rot > 3 {
			t.Fatalf("req %v: rotation %d out of range", req, rot)
		}
		if !shape.Conns.Rotate(rot).Contains(req) {
			t.Errorf("req %v: shape %s rot %d does not cover it", req, shape.Name, rot)
		}
	}
}

func TestMatchShapePicksSmallest(t *testing.T) {
	// A single opening fits a straight, not a tee or cross.
	shape, _ := MatchShape(NewDirSet(DirUp))
	if shape.Conns.Count() != 2 {
		t.Errorf("single opening matched %s with %d openings, want 2", shape.Name, shape.Conns.Count())
	}

	// An exact corner request matches a corner.
	shape, rot := MatchShape(NewDirSet(DirUp, DirRight))
	if shape.Conns.Rotate(rot) != NewDirSet(DirUp, DirRight) {
		t.Errorf("corner request matched %s rot %d", shape.Name, rot)
	}
	if shape.Conns.Count() != 2 {
		t.Errorf("corner request matched a %d-opening shape", shape.Conns.Count())
	}

	// Opposite openings need a straight, not a corner.
	shape, _ = MatchShape(NewDirSet(DirUp, DirDown))
	if shape.Code != 'I' {
		t.Errorf("opposite openings matched family %c, want I", shape.Code)
	}

	// Three openings need a tee.
	shape, _ = MatchShape(NewDirSet(DirUp, DirRight, DirDown))
	if shape.Code != 'T' {
		t.Errorf("three openings matched family %c, want T", shape.Code)
	}

	// Four openings need the cross.
	shape, _ = MatchShape(DirSetAll)
	if shape.Code != 'X' {
		t.Errorf("four openings matched family %c, want X", shape.Code)
	}
}

func TestEncodeShapeRoundTrip(t *testing.T) {
	// Every rotation of every catalog shape must encode and decode back
	// to the same openings.
	for _, s := range Catalog {
		for rot := 0; rot < 4; rot++ {
			conns := s.Conns.Rotate(rot)
			code, encRot, ok := EncodeShape(conns)
			if !ok {
				t.Fatalf("%s rot %d: not encodable", s.Name, rot)
			}
			base, found := BaseShape(code)
			if !found {
				t.Fatalf("%s rot %d: unknown code %c", s.Name, rot, code)
			}
			if base.Conns.Rotate(encRot) != conns {
				t.Errorf("%s rot %d: decoded %v, want %v", s.Name, rot, base.Conns.Rotate(encRot), conns)
			}
		}
	}
}

func TestEncodeShapeRejectsNonCatalog(t *testing.T) {
	// A single opening is not itself a catalog shape.
	if _, _, ok := EncodeShape(NewDirSet(DirUp)); ok {
		t.Error("single opening should not encode exactly")
	}
	if _, _, ok := EncodeShape(0); ok {
		t.Error("empty set should not encode")
	}
}

func TestBaseShapeUnknownCode(t *testing.T) {
	if _, ok := BaseShape('Z'); ok {
		t.Error("unknown code should not resolve")
	}
}
