package words

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// EUC-TW encodes CNS 11643 plane 1 as SS2 + plane byte + two GR bytes.
// The sampler covers the level-1 hanzi block of plane 1 (0x4421-0x7D4B).
const (
	ss2       = 0x8E
	planeOne  = 0xA1
	leadMin   = 0xC4 // row 0x44
	leadMax   = 0xFD // row 0x7D
	trailMin  = 0xA1 // cell 0x21
	trailMax  = 0xFE // cell 0x7E
	lastTrail = 0xCB // cell 0x4B, upper bound on the final row

	cellsPerRow = trailMax - trailMin + 1 // 94

	// Big5 level 1 hanzi start at 0xA440. A Big5 lead byte carries 157
	// trail positions: 0x40-0x7E then 0xA1-0xFE.
	big5LeadBase  = 0xA4
	big5LowTrails = 0x7E - 0x40 + 1 // 63
	big5PerLead   = big5LowTrails + (0xFE - 0xA1 + 1)

	// latticeSize is the number of code points between 0x4421 and 0x7D4B.
	latticeSize = (leadMax-leadMin)*cellsPerRow + (lastTrail - trailMin) + 1
)

// big5Shifts maps plane 1 order onto Big5 level 1 order. From lattice index
// start on, the Big5 index is the lattice index plus delta. The two orders
// agree except where a character was moved between the standards.
var big5Shifts = []struct {
	start int
	delta int
}{
	{0, 0},       // C4A1
	{1412, 1},    // D3A3
	{1836, -424}, // D7D3
	{1837, 0},    // D7D4
	{3713, 387},  // EBD0
	{3714, -1},   // EBD1
	{4101, 0},    // EFDC
	{4626, 189},  // F5B5
	{4627, -1},   // F5B6
	{4816, 0},    // F7B7
	{4900, 146},  // F8AD
	{4901, -1},   // F8AE
	{4955, 0},    // F8E4
	{4956, -2},   // F8E5
	{4957, -1},   // F8E6
	{5047, 0},    // F9E2
}

// noBig5 holds plane 1 characters that have no Big5 code.
var noBig5 = map[int]rune{
	4732: '彞', // F6C1
}

var (
	// ErrUnmapped is returned when a byte sequence has no character.
	ErrUnmapped = errors.New("words: byte sequence maps to no character")

	// ErrOutOfRange is returned for sequences outside the sampled lattice.
	ErrOutOfRange = errors.New("words: code point outside plane 1 level 1")
)

// InLattice reports whether lead/trail address a code point of the sampled range.
func InLattice(lead, trail byte) bool {
	if lead < leadMin || lead > leadMax || trail < trailMin || trail > trailMax {
		return false
	}
	return lead != leadMax || trail <= lastTrail
}

// DecodeEUCTW converts a 4-byte EUC-TW plane 1 sequence to UTF-8.
func DecodeEUCTW(seq []byte) (string, error) {
	if len(seq) != 4 || seq[0] != ss2 || seq[1] != planeOne {
		return "", fmt.Errorf("words: % X is not an EUC-TW plane 1 sequence: %w", seq, ErrUnmapped)
	}
	lead, trail := seq[2], seq[3]
	if !InLattice(lead, trail) {
		return "", fmt.Errorf("words: % X: %w", seq, ErrOutOfRange)
	}

	r, err := decodeIndex(int(lead-leadMin)*cellsPerRow + int(trail-trailMin))
	if err != nil {
		return "", fmt.Errorf("words: % X: %w", seq, err)
	}
	return string(r), nil
}

// decodeIndex returns the character at a lattice index.
func decodeIndex(idx int) (rune, error) {
	if r, ok := noBig5[idx]; ok {
		return r, nil
	}
	out, err := traditionalchinese.Big5.NewDecoder().Bytes(big5Pair(big5Index(idx)))
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return 0, ErrUnmapped
	}
	return r, nil
}

// EncodeEUCTW converts a single character back to its EUC-TW plane 1 sequence.
func EncodeEUCTW(s string) ([]byte, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return nil, fmt.Errorf("words: %q is not a single character: %w", s, ErrUnmapped)
	}

	reverseOnce.Do(buildReverse)
	idx, ok := reverse[r]
	if !ok {
		return nil, fmt.Errorf("words: %q: %w", s, ErrOutOfRange)
	}
	lead := byte(leadMin + idx/cellsPerRow)
	trail := byte(trailMin + idx%cellsPerRow)
	return []byte{ss2, planeOne, lead, trail}, nil
}

var (
	reverseOnce sync.Once
	reverse     map[rune]int // character to lattice index
)

// buildReverse decodes the whole lattice once. The Big5 encoder can map a
// character to a duplicate code outside level 1, so it cannot be used here.
func buildReverse() {
	reverse = make(map[rune]int, latticeSize)
	for idx := 0; idx < latticeSize; idx++ {
		r, err := decodeIndex(idx)
		if err != nil {
			continue
		}
		if _, dup := reverse[r]; !dup {
			reverse[r] = idx
		}
	}
}

// big5Index converts a lattice index to a Big5 level 1 index.
func big5Index(idx int) int {
	i := sort.Search(len(big5Shifts), func(i int) bool {
		return big5Shifts[i].start > idx
	})
	return idx + big5Shifts[i-1].delta
}

// big5Pair returns the Big5 bytes of the idx-th level 1 hanzi.
func big5Pair(idx int) []byte {
	lead := byte(big5LeadBase + idx/big5PerLead)
	off := idx % big5PerLead
	if off < big5LowTrails {
		return []byte{lead, byte(0x40 + off)}
	}
	return []byte{lead, byte(0xA1 + off - big5LowTrails)}
}
