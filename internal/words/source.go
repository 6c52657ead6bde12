// Package words provides the display strings that targets carry: either
// single hanzi sampled from a legacy double-byte code range, or entries
// picked from a loaded word list.
package words

import "math/rand"

// Source produces display strings for new targets.
type Source interface {
	// Next returns a non-empty string of valid UTF-8.
	Next() string
}

// New returns a List source when list is non-empty, a Sampler otherwise.
func New(list []string, rng *rand.Rand) Source {
	if len(list) > 0 {
		return NewList(list, rng)
	}
	return NewSampler(rng)
}

// Sampler draws characters from CNS 11643 plane 1 level 1 through EUC-TW.
//
// Lead and trail bytes are drawn independently and rejected when out of
// range, so the last row (which has fewer valid trail bytes) is slightly
// over-represented per character. That matches the long-standing behavior
// and is kept on purpose.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler drawing from rng.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Next returns one sampled character.
func (s *Sampler) Next() string {
	for {
		lead, trail := s.draw()
		text, err := DecodeEUCTW([]byte{ss2, planeOne, lead, trail})
		if err == nil {
			return text
		}
		// Holes in the table: resample.
	}
}

// draw returns a lead/trail pair inside the lattice.
func (s *Sampler) draw() (lead, trail byte) {
	lead = s.byteIn(leadMin, leadMax)
	for {
		trail = s.byteIn(trailMin, trailMax)
		if InLattice(lead, trail) {
			return lead, trail
		}
	}
}

func (s *Sampler) byteIn(lo, hi byte) byte {
	for {
		b := byte(s.rng.Intn(256))
		if b >= lo && b <= hi {
			return b
		}
	}
}

// List picks entries uniformly from a fixed word list.
type List struct {
	words []string
	rng   *rand.Rand
}

// NewList creates a list source. The slice is copied; it must be non-empty.
func NewList(words []string, rng *rand.Rand) *List {
	return &List{
		words: append([]string(nil), words...),
		rng:   rng,
	}
}

// Next returns a uniformly chosen entry.
func (l *List) Next() string {
	return l.words[l.rng.Intn(len(l.words))]
}
