package generate

import "testing"

func TestGoalSeparation(t *testing.T) {
	if got := GoalSeparation(5, 5); got != 3 {
		t.Errorf("5x5 separation = %d, want floor-but-min 3", got)
	}
	if got := GoalSeparation(15, 12); got != 4 {
		t.Errorf("15x12 separation = %d, want 4", got)
	}
	if got := GoalSeparation(30, 9); got != 3 {
		t.Errorf("30x9 separation = %d, want 3", got)
	}
}

func TestPlaceGoalsRespectsSeparation(t *testing.T) {
	profile, _ := ProfileByName("all")
	rng := NewRNG(11)
	for trial := 0; trial < 20; trial++ {
		goals, ok := PlaceGoals(15, 15, 3, profile, rng)
		if !ok {
			continue
		}
		sep := GoalSeparation(15, 15)
		for i := range goals {
			for j := i + 1; j < len(goals); j++ {
				if d := goals[i].Manhattan(goals[j]); d < sep {
					t.Fatalf("goals %v and %v only %d apart, want >= %d", goals[i], goals[j], d, sep)
				}
			}
		}
	}
}

func TestPlaceGoalsStaysInterior(t *testing.T) {
	rng := NewRNG(5)
	for _, p := range Profiles {
		goals, ok := PlaceGoals(9, 9, 2, p, rng)
		if !ok {
			continue
		}
		for _, g := range goals {
			if g.X < 1 || g.X > 7 || g.Y < 1 || g.Y > 7 {
				t.Errorf("profile %s placed goal on border: %v", p.Name, g)
			}
		}
	}
}

func TestPlaceGoalsBiasTowardPressure(t *testing.T) {
	top, _ := ProfileByName("top")
	rng := NewRNG(99)
	for trial := 0; trial < 10; trial++ {
		goals, ok := PlaceGoals(21, 21, 2, top, rng)
		if !ok {
			t.Fatal("large grid should place 2 goals")
		}
		for _, g := range goals {
			if g.Y > 10 {
				t.Errorf("profile top placed goal in lower half: %v", g)
			}
		}
	}
}

func TestPlaceGoalsImpossibleCount(t *testing.T) {
	profile, _ := ProfileByName("all")
	rng := NewRNG(7)
	// A 5x5 grid has a 3x3 interior; six goals at separation 3 cannot fit.
	if _, ok := PlaceGoals(5, 5, 6, profile, rng); ok {
		t.Error("six goals on a 5x5 grid should be rejected")
	}
}

func TestPlaceGoalsZeroCount(t *testing.T) {
	profile, _ := ProfileByName("all")
	if _, ok := PlaceGoals(9, 9, 0, profile, NewRNG(1)); ok {
		t.Error("zero goals should be rejected")
	}
}

func TestProfileByName(t *testing.T) {
	for _, p := range Profiles {
		got, ok := ProfileByName(p.Name)
		if !ok || got.Name != p.Name {
			t.Errorf("ProfileByName(%q) failed", p.Name)
		}
	}
	if _, ok := ProfileByName("diagonal"); ok {
		t.Error("unknown profile should not resolve")
	}
}

func TestRandomProfileIsSeeded(t *testing.T) {
	a := RandomProfile(NewRNG(42))
	b := RandomProfile(NewRNG(42))
	if a.Name != b.Name {
		t.Error("same seed should pick the same profile")
	}
}
