package typewar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/typewar/internal/core"
)

// fixedSource returns its words in order, cycling.
type fixedSource struct {
	words []string
	next  int
}

func (f *fixedSource) Next() string {
	w := f.words[f.next%len(f.words)]
	f.next++
	return w
}

func stateWith(hp int, entities ...Entity) *State {
	s := NewState(hp)
	for _, e := range entities {
		s.Entities.Add(e)
	}
	return s
}

func TestAdvanceApproachesCenter(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec
		offset float64
	}{
		{"on x axis", core.Vec{X: 400}, 0.66},
		{"diagonal", core.Vec{X: -120, Y: 90}, 5},
		{"offset larger than distance", core.Vec{X: 0, Y: 60}, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := stateWith(10, Entity{Text: "a", Pos: tc.pos})
			d := tc.pos.Len()

			if !Advance(s, tc.offset, 50) {
				t.Fatal("Advance() ended the game unexpectedly")
			}
			if s.Entities.Len() != 1 {
				t.Fatalf("Entities.Len() = %d, expected 1", s.Entities.Len())
			}
			got := s.Entities.At(0).Distance()
			if got >= d {
				t.Errorf("distance after Advance = %f, expected less than %f", got, d)
			}
			if tc.offset < d && math.Abs(got-(d-tc.offset)) > 1e-9 {
				t.Errorf("distance after Advance = %f, expected %f", got, d-tc.offset)
			}
		})
	}
}

func TestAdvanceKeepsDirection(t *testing.T) {
	s := stateWith(10, Entity{Text: "a", Pos: core.Vec{X: 300, Y: -400}})
	Advance(s, 50, 50)

	p := s.Entities.At(0).Pos
	if math.Abs(p.X-270) > 1e-9 || math.Abs(p.Y+360) > 1e-9 {
		t.Errorf("Pos = %v, expected {270 -360}", p)
	}
}

func TestAdvanceRemovesReachedEntities(t *testing.T) {
	s := stateWith(10,
		Entity{Text: "a", Pos: core.Vec{X: 10}},
		Entity{Text: "b", Pos: core.Vec{X: 400}},
		Entity{Text: "c", Pos: core.Vec{Y: -49}},
		Entity{Text: "d", Pos: core.Vec{}}, // zero distance
	)

	Advance(s, 1, 50)

	if s.HitPoints != 7 {
		t.Errorf("HitPoints = %d, expected 7", s.HitPoints)
	}
	if s.Entities.Len() != 1 {
		t.Fatalf("Entities.Len() = %d, expected 1", s.Entities.Len())
	}
	if s.Entities.At(0).Text != "b" {
		t.Errorf("survivor = %q, expected %q", s.Entities.At(0).Text, "b")
	}
}

func TestAdvanceZeroDistanceWithZeroRadius(t *testing.T) {
	s := stateWith(5, Entity{Text: "a", Pos: core.Vec{}})

	Advance(s, 1, 0)

	if s.Entities.Len() != 0 {
		t.Errorf("Entities.Len() = %d, expected 0", s.Entities.Len())
	}
	if s.HitPoints != 4 {
		t.Errorf("HitPoints = %d, expected 4", s.HitPoints)
	}
	for _, e := range s.Entities.All() {
		if math.IsNaN(e.Pos.X) || math.IsNaN(e.Pos.Y) {
			t.Error("entity position became NaN")
		}
	}
}

func TestAdvanceGameOverScenario(t *testing.T) {
	s := stateWith(1, Entity{Text: "a", Pos: core.Vec{X: 10}})

	if Advance(s, 0.66, 50) {
		t.Error("Advance() = true, expected false on game over")
	}
	if s.Entities.Len() != 0 {
		t.Errorf("Entities.Len() = %d, expected 0", s.Entities.Len())
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected GameOver", s.Phase)
	}

	// Subsequent calls are no-ops.
	s.Entities.Add(Entity{Text: "b", Pos: core.Vec{X: 5}})
	if Advance(s, 0.66, 50) {
		t.Error("Advance() after game over = true, expected false")
	}
	if s.Entities.Len() != 1 || s.HitPoints != 0 {
		t.Errorf("Advance() after game over changed state: len=%d hp=%d", s.Entities.Len(), s.HitPoints)
	}
	if s.Entities.At(0).Pos != (core.Vec{X: 5}) {
		t.Errorf("Advance() after game over moved an entity to %v", s.Entities.At(0).Pos)
	}
}

func TestSpawnAddsCount(t *testing.T) {
	s := NewState(100)
	src := &fixedSource{words: []string{"測", "試"}}
	rng := rand.New(rand.NewSource(3))

	Spawn(s, src, rng, 3, 400)

	if s.Entities.Len() != 3 {
		t.Fatalf("Entities.Len() = %d, expected 3", s.Entities.Len())
	}
	for i, e := range s.Entities.All() {
		if math.Abs(e.Distance()-400) > 1e-9 {
			t.Errorf("entity %d distance = %f, expected 400", i, e.Distance())
		}
		if e.Text == "" {
			t.Errorf("entity %d has empty text", i)
		}
	}
}

func TestSpawnAfterGameOverIsNoop(t *testing.T) {
	s := NewState(0)
	s.Phase = PhaseGameOver
	Spawn(s, &fixedSource{words: []string{"x"}}, rand.New(rand.NewSource(1)), 3, 400)

	if s.Entities.Len() != 0 {
		t.Errorf("Entities.Len() = %d, expected 0", s.Entities.Len())
	}
}

// fixedUniform returns its values in order.
type fixedUniform struct {
	values []float64
	next   int
}

func (f *fixedUniform) Float64() float64 {
	v := f.values[f.next]
	f.next++
	return v
}

func TestSpawnPlacement(t *testing.T) {
	tests := []struct {
		name    string
		uniform float64
		want    core.Vec
	}{
		{"angle zero", 0, core.Vec{X: 400, Y: 0}},
		{"quarter turn", 0.25, core.Vec{X: 0, Y: 400}},
		{"half turn", 0.5, core.Vec{X: -400, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(10)
			Spawn(s, &fixedSource{words: []string{"測"}}, &fixedUniform{values: []float64{tc.uniform}}, 1, 400)

			if s.Entities.Len() != 1 {
				t.Fatalf("Entities.Len() = %d, expected 1", s.Entities.Len())
			}
			got := s.Entities.At(0)
			if math.Abs(got.Pos.X-tc.want.X) > 1e-9 || math.Abs(got.Pos.Y-tc.want.Y) > 1e-9 {
				t.Errorf("spawn position = %v, expected %v", got.Pos, tc.want)
			}
			if got.Text != "測" {
				t.Errorf("spawn text = %q, expected %q", got.Text, "測")
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		s := stateWith(10, Entity{Text: "foo"}, Entity{Text: "bar"})
		if Resolve(s, "baz") {
			t.Error("Resolve(baz) = true, expected false")
		}
		if s.Entities.Len() != 2 || s.Score != 0 {
			t.Errorf("state changed: len=%d score=%d", s.Entities.Len(), s.Score)
		}
	})

	t.Run("single match", func(t *testing.T) {
		s := stateWith(10, Entity{Text: "foo"}, Entity{Text: "bar"}, Entity{Text: "baz"})
		if !Resolve(s, "foo") {
			t.Fatal("Resolve(foo) = false, expected true")
		}
		if s.Entities.Len() != 2 || s.Score != 1 {
			t.Errorf("len=%d score=%d, expected 2 and 1", s.Entities.Len(), s.Score)
		}
		for _, e := range s.Entities.All() {
			if e.Text == "foo" {
				t.Error("matched entity still present")
			}
		}
	})

	t.Run("duplicates remove one", func(t *testing.T) {
		s := stateWith(10, Entity{Text: "測"}, Entity{Text: "測"})
		Resolve(s, "測")
		if s.Entities.Len() != 1 || s.Score != 1 {
			t.Errorf("len=%d score=%d, expected 1 and 1", s.Entities.Len(), s.Score)
		}
	})

	t.Run("exact comparison", func(t *testing.T) {
		s := stateWith(10, Entity{Text: "Foo"})
		if Resolve(s, "foo") || Resolve(s, "Foo ") || Resolve(s, "") {
			t.Error("Resolve() should require exact equality")
		}
	})

	t.Run("after game over", func(t *testing.T) {
		s := stateWith(10, Entity{Text: "foo"})
		s.Phase = PhaseGameOver
		if Resolve(s, "foo") {
			t.Error("Resolve() after game over = true, expected false")
		}
	})
}

func TestStoreRemoveIndices(t *testing.T) {
	var s Store
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		s.Add(Entity{Text: text})
	}

	// Includes the last index and a duplicate.
	s.RemoveIndices([]int{4, 1, 1, 2})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	got := map[string]bool{}
	for _, e := range s.All() {
		got[e.Text] = true
	}
	if !got["a"] || !got["d"] {
		t.Errorf("remaining = %v, expected a and d", got)
	}
}

func TestStoreSwapRemove(t *testing.T) {
	var s Store
	for _, text := range []string{"a", "b", "c"} {
		s.Add(Entity{Text: text})
	}
	s.SwapRemove(0)

	if s.Len() != 2 || s.At(0).Text != "c" || s.At(1).Text != "b" {
		t.Errorf("after SwapRemove(0) = %v, expected [c b]", s.All())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "Running" || PhaseGameOver.String() != "GameOver" {
		t.Error("Phase.String() returned unexpected names")
	}
}
