// Package theory derives diatonic scales from a circle-of-fifths model and
// resolves roman-numeral chord symbols into concrete notes.
package theory

import (
	"errors"
	"fmt"
)

// Mode selects between the major and minor scale of a key.
type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// ErrInvalidKey is wrapped by scale lookups for unknown tonics.
var ErrInvalidKey = errors.New("invalid key")

// chromatic is the full pitch-class cycle in the order the scale walk
// traverses it.
var chromatic = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// sharpToFlat lets flat-named keys reuse their sharp-named scales.
var sharpToFlat = map[string]string{
	"C#": "Db", "D#": "Eb", "F#": "Gb", "G#": "Ab", "A#": "Bb",
}

// sharpsByKey is the circle of fifths for major keys: which natural notes
// carry a sharp in each key.
var sharpsByKey = map[string][]string{
	"C":  {},
	"G":  {"F"},
	"D":  {"F", "C"},
	"A":  {"F", "C", "G"},
	"E":  {"F", "C", "G", "D"},
	"B":  {"F", "C", "G", "D", "A"},
	"F#": {"F", "C", "G", "D", "A", "E"},
	"C#": {"F", "C", "G", "D", "A", "E", "B"},
	"G#": {"B", "E", "A", "D"},
	"D#": {"B", "E", "A"},
	"A#": {"B", "E"},
	"F":  {"B"},
}

// flatSpelledKeys are historically written with flats; their sharped
// positions emit the note two chromatic steps back instead.
var flatSpelledKeys = map[string]bool{"G#": true, "D#": true, "A#": true, "F": true}

// relativeMinor maps each major key to the minor key that shares its notes.
var relativeMinor = map[string]string{
	"C": "A", "G": "E", "D": "B",
	"A": "F#", "E": "C#", "B": "G#",
	"F#": "D#", "C#": "A#", "G#": "F",
	"D#": "C", "A#": "G", "F": "D",
}

var (
	majorScales = buildMajorScales()
	minorScales = buildMinorScales()
)

func chromaticIndex(name string) int {
	for i, n := range chromatic {
		if n == name {
			return i
		}
	}
	return -1
}

func indexIn(scale []string, name string) int {
	for i, n := range scale {
		if n == name {
			return i
		}
	}
	return -1
}

func rotateToTonic(scale []string, tonic string) []string {
	root := indexIn(scale, tonic)
	return append(append([]string{}, scale[root:]...), scale[:root]...)
}

// buildMajorScales walks the chromatic cycle once per key, emitting the
// sharp (or flat-equivalent) spelling at each sharped position and skipping
// the following semitone except across the B-C and E-F boundaries.
func buildMajorScales() map[string][]string {
	scales := make(map[string][]string, len(sharpsByKey)+len(sharpToFlat))
	for key, sharpBases := range sharpsByKey {
		sharpBaseIdx := make(map[int]bool, len(sharpBases))
		for _, base := range sharpBases {
			sharpBaseIdx[chromaticIndex(base)] = true
		}

		var notes []string
		i := 0
		for i < len(chromatic) {
			switch {
			case sharpBaseIdx[i]:
				i++
				if flatSpelledKeys[key] {
					notes = append(notes, chromatic[(i-2+12)%12])
				} else {
					notes = append(notes, chromatic[i])
				}
				if chromatic[i] != "C" && chromatic[i] != "F" {
					i++
				}
			case chromatic[i] == "B" || chromatic[i] == "E":
				notes = append(notes, chromatic[i])
				i++
			default:
				notes = append(notes, chromatic[i])
				i += 2
			}
		}

		scales[key] = rotateToTonic(notes, key)
	}

	for sharp, flat := range sharpToFlat {
		scales[flat] = scales[sharp]
	}
	return scales
}

// buildMinorScales derives each minor scale from its relative major and
// raises the 7th degree a semitone, giving the harmonic-minor style
// leading tone.
func buildMinorScales() map[string][]string {
	scales := make(map[string][]string, len(sharpsByKey)+len(sharpToFlat))
	for _, key := range chromatic {
		notes := append([]string{}, majorScales[key]...)
		rootIdx := (indexIn(notes, key) + 5) % 7
		minorPos := (rootIdx + 6) % 7
		notes[minorPos] = chromatic[(chromaticIndex(notes[minorPos])+1)%12]

		minorKey := relativeMinor[key]
		scales[minorKey] = rotateToTonic(notes, minorKey)
	}

	for sharp, flat := range sharpToFlat {
		scales[flat] = scales[sharp]
	}
	return scales
}

// MajorScale returns the 7 note names of the major scale rooted at tonic.
func MajorScale(tonic string) ([]string, error) {
	scale, ok := majorScales[tonic]
	if !ok {
		return nil, fmt.Errorf("%w: no major scale for tonic %q", ErrInvalidKey, tonic)
	}
	return append([]string{}, scale...), nil
}

// MinorScale returns the 7 note names of the minor scale rooted at tonic.
func MinorScale(tonic string) ([]string, error) {
	scale, ok := minorScales[tonic]
	if !ok {
		return nil, fmt.Errorf("%w: no minor scale for tonic %q", ErrInvalidKey, tonic)
	}
	return append([]string{}, scale...), nil
}

// Scale returns the scale for the tonic in the given mode.
func Scale(tonic string, mode Mode) ([]string, error) {
	if mode == Minor {
		return MinorScale(tonic)
	}
	return MajorScale(tonic)
}

// Tonics returns every tonic a scale can be built on, sharps before their
// flat aliases.
func Tonics() []string {
	out := make([]string, 0, len(chromatic)+len(sharpToFlat))
	out = append(out, chromatic[:]...)
	for _, sharp := range chromatic {
		if flat, ok := sharpToFlat[sharp]; ok {
			out = append(out, flat)
		}
	}
	return out
}
