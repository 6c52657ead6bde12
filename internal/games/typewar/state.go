package typewar

import (
	"math"

	"github.com/vovakirdan/typewar/internal/core"
	"github.com/vovakirdan/typewar/internal/words"
)

// Epsilon is the distance under which an entity counts as on the center,
// whatever the inner radius; it keeps the direction vector defined.
const Epsilon = 1e-6

// Phase is the game's top-level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is everything the steps mutate. All steps run on one goroutine.
type State struct {
	Score     int
	HitPoints int
	Entities  Store
	Phase     Phase
}

// NewState returns a running state with the given hit points.
func NewState(hitPoints int) *State {
	return &State{HitPoints: hitPoints, Phase: PhaseRunning}
}

// Over reports whether the game has ended.
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}

// Advance moves every entity tickOffset px toward the center. Entities
// already inside innerRadius are removed and cost one hit point each.
// Returns false once the game is over; further calls are no-ops.
func Advance(s *State, tickOffset, innerRadius float64) bool {
	if s.Over() {
		return false
	}

	var reached []int
	for i := 0; i < s.Entities.Len(); i++ {
		e := s.Entities.At(i)
		d := e.Distance()
		if d < innerRadius || d < Epsilon {
			reached = append(reached, i)
			continue
		}
		if tickOffset >= d {
			e.Pos = core.Vec{}
			continue
		}
		e.Pos = e.Pos.Sub(e.Pos.Scale(tickOffset / d))
	}

	s.Entities.RemoveIndices(reached)
	s.HitPoints -= len(reached)

	if s.HitPoints <= 0 {
		s.Phase = PhaseGameOver
		return false
	}
	return true
}

// Uniform yields values in [0, 1); *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// Spawn places count new entities at random angles on the spawn ring.
func Spawn(s *State, src words.Source, rng Uniform, count int, spawnRadius float64) {
	if s.Over() {
		return
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		s.Entities.Add(Entity{
			Text: src.Next(),
			Pos:  core.Polar(angle, spawnRadius),
		})
	}
}

// Resolve removes the first entity whose text equals committed exactly and
// scores it. A commit matching nothing is not an error; it returns false.
func Resolve(s *State, committed string) bool {
	if s.Over() || committed == "" {
		return false
	}
	for i := 0; i < s.Entities.Len(); i++ {
		if s.Entities.At(i).Text == committed {
			s.Entities.SwapRemove(i)
			s.Score++
			return true
		}
	}
	return false
}
