package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daviddekleer/EasyMIDI/pkg/music"
)

// ErrInvalidChord is wrapped by every chord specification error.
var ErrInvalidChord = errors.New("invalid chord")

// numerals are the allowed roman numerals, in scale-degree order.
var numerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// ChordSpec describes a roman-numeral chord symbolically. Resolve turns it
// into concrete notes; after changing any field, call Resolve again rather
// than editing a previously resolved chord.
//
// The symbol is a numeral I..VII plus an optional suffix:
//
//   - I6, I7 .. I14: add that scale-degree interval to the triad
//   - Isus2, Isus4: suspended chords
//   - Imaj7, Imin7 (or Im7), Idom7: seventh chords
//   - I-, I+: diminished and augmented
//   - I*, I**: inversions, combinable with the above (e.g. Isus2**)
type ChordSpec struct {
	Symbol   string
	Key      string
	Mode     Mode
	Octave   int
	Duration float64
	Velocity uint8

	// Inversions is added to the number of '*' marks in the symbol.
	// Negative values are rejected.
	Inversions int
}

// interval is a scale-degree step from the chord root, optionally shifted
// a chromatic semitone up (+1) or down (-1).
type interval struct {
	degree int
	shift  int
}

var defaultTriad = []interval{{1, 0}, {3, 0}, {5, 0}}

// modifierIntervals is the fixed suffix vocabulary.
var modifierIntervals = map[string][]interval{
	"sus2": {{1, 0}, {2, 0}, {5, 0}},
	"sus4": {{1, 0}, {4, 0}, {5, 0}},
	"dom7": {{1, 0}, {3, 0}, {5, 0}, {7, -1}},
	"maj7": {{1, 0}, {3, 0}, {5, 0}, {7, 0}},
	"min7": {{1, 0}, {3, -1}, {5, 0}, {7, -1}},
	"m7":   {{1, 0}, {3, -1}, {5, 0}, {7, -1}},
	"-":    {{1, 0}, {3, -1}, {5, -1}},
	"+":    {{1, 0}, {3, 0}, {5, 1}},
}

// Resolve computes the notes of the chord. Empty or zero fields take the
// usual defaults: key C, major, octave 4, quarter-note duration, velocity
// 100. Errors are reported before any notes are produced; a failed Resolve
// never returns a partial chord.
func (s ChordSpec) Resolve() (*music.Chord, error) {
	key := s.Key
	if key == "" {
		key = "C"
	}
	octave := s.Octave
	if octave == 0 {
		octave = 4
	}
	duration := s.Duration
	if duration == 0 {
		duration = music.Quarter
	}
	velocity := s.Velocity
	if velocity == 0 {
		velocity = music.DefaultVelocity
	}

	numeral, intervals, inversions, err := parseSymbol(s.Symbol)
	if err != nil {
		return nil, err
	}
	inversions += s.Inversions
	if s.Inversions < 0 || inversions < 0 {
		return nil, fmt.Errorf("%w: negative inversions are not possible", ErrInvalidChord)
	}

	scale, err := Scale(key, s.Mode)
	if err != nil {
		return nil, err
	}

	startIdx := indexIn(numerals, numeral)
	chord := music.NewChord()
	for _, iv := range intervals {
		name, noteOctave := resolveInterval(scale, startIdx, iv, octave)
		note, err := music.NewNote(name, noteOctave, duration, velocity)
		if err != nil {
			return nil, fmt.Errorf("%s in key %s: %w", s.Symbol, key, err)
		}
		chord.Add(note)
	}

	if err := invert(chord, inversions); err != nil {
		return nil, err
	}
	return chord, nil
}

// parseSymbol splits a chord symbol into its numeral, the intervals implied
// by the suffix, and the number of '*' inversion marks.
func parseSymbol(symbol string) (string, []interval, int, error) {
	end := 0
	for end < len(symbol) && symbol[end] >= 'A' && symbol[end] <= 'Z' {
		end++
	}
	numeral := symbol[:end]
	if indexIn(numerals, numeral) < 0 {
		return "", nil, 0, fmt.Errorf("%w: %q is not a roman numeral, use I, II, III, IV, V, VI or VII", ErrInvalidChord, symbol)
	}

	rest := symbol[end:]
	inversions := strings.Count(rest, "*")
	rest = strings.ReplaceAll(rest, "*", "")
	if rest == "" {
		return numeral, defaultTriad, inversions, nil
	}

	if n, err := strconv.Atoi(rest); err == nil {
		if n < 1 || n > 14 {
			return "", nil, 0, fmt.Errorf("%w: interval %d is out of range, use one between 1 and 14 (including), like V1 or V14", ErrInvalidChord, n)
		}
		return numeral, append(append([]interval{}, defaultTriad...), interval{n, 0}), inversions, nil
	}

	if intervals, ok := modifierIntervals[rest]; ok {
		return numeral, intervals, inversions, nil
	}
	return "", nil, 0, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidChord, rest, symbol)
}

// resolveInterval locates an interval's note name and octave relative to
// the scale degree the chord starts on.
func resolveInterval(scale []string, startIdx int, iv interval, baseOctave int) (string, int) {
	name := scale[(startIdx+iv.degree-1)%7]

	// The octave ticks over at the first of C, C# or D present in the
	// scale; count degree steps from there.
	anchor := 0
	for _, sign := range []string{"C", "C#", "D"} {
		if idx := indexIn(scale, sign); idx >= 0 {
			anchor = idx
			break
		}
	}
	offset := startIdx
	if anchor > 0 {
		offset += len(scale) - anchor
	}
	octave := (offset+iv.degree-1)/7 + baseOctave

	switch {
	case iv.shift > 0:
		name = chromatic[(chromaticIndex(name)+1)%12]
		if name == "C" {
			octave++
		}
	case iv.shift < 0:
		name = chromatic[(chromaticIndex(name)-1+12)%12]
		if name == "B" {
			octave--
		}
	}
	return name, octave
}

// invert applies count inversions: each one moves the lowest note up an
// octave to the end of the chord. When the moved note collapses into a
// duplicate the chord temporarily shrinks, so keep raising from the front
// until the length is restored before the next inversion.
func invert(chord *music.Chord, count int) error {
	for i := 0; i < count; i++ {
		before := chord.Len()
		after := 0
		for after < before {
			first := chord.Notes()[0]
			raised, err := music.NewNote(first.Name(), first.Octave()+1, first.Duration(), first.Velocity())
			if err != nil {
				return fmt.Errorf("inversion: %w", err)
			}
			if after == 0 {
				chord.Remove(first)
			}
			chord.Add(raised)
			after = chord.Len()
		}
	}
	return nil
}
