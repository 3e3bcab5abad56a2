// Package instrument maps General MIDI instrument names to program
// numbers, with fuzzy matching for loosely spelled names.
package instrument

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
)

// names holds the 128 General MIDI level 1 program names, indexed by
// program number.
var names = [128]string{
	"acoustic grand piano",
	"bright acoustic piano",
	"electric grand piano",
	"honky-tonk piano",
	"electric piano 1",
	"electric piano 2",
	"harpsichord",
	"clavinet",
	"celesta",
	"glockenspiel",
	"music box",
	"vibraphone",
	"marimba",
	"xylophone",
	"tubular bells",
	"dulcimer",
	"drawbar organ",
	"percussive organ",
	"rock organ",
	"church organ",
	"reed organ",
	"accordion",
	"harmonica",
	"tango accordion",
	"acoustic guitar (nylon)",
	"acoustic guitar (steel)",
	"electric guitar (jazz)",
	"electric guitar (clean)",
	"electric guitar (muted)",
	"overdriven guitar",
	"distortion guitar",
	"guitar harmonics",
	"acoustic bass",
	"electric bass (finger)",
	"electric bass (pick)",
	"fretless bass",
	"slap bass 1",
	"slap bass 2",
	"synth bass 1",
	"synth bass 2",
	"violin",
	"viola",
	"cello",
	"contrabass",
	"tremolo strings",
	"pizzicato strings",
	"orchestral harp",
	"timpani",
	"string ensemble 1",
	"string ensemble 2",
	"synth strings 1",
	"synth strings 2",
	"choir aahs",
	"voice oohs",
	"synth voice",
	"orchestra hit",
	"trumpet",
	"trombone",
	"tuba",
	"muted trumpet",
	"french horn",
	"brass section",
	"synth brass 1",
	"synth brass 2",
	"soprano sax",
	"alto sax",
	"tenor sax",
	"baritone sax",
	"oboe",
	"english horn",
	"bassoon",
	"clarinet",
	"piccolo",
	"flute",
	"recorder",
	"pan flute",
	"blown bottle",
	"shakuhachi",
	"whistle",
	"ocarina",
	"lead 1 (square)",
	"lead 2 (sawtooth)",
	"lead 3 (calliope)",
	"lead 4 (chiff)",
	"lead 5 (charang)",
	"lead 6 (voice)",
	"lead 7 (fifths)",
	"lead 8 (bass + lead)",
	"pad 1 (new age)",
	"pad 2 (warm)",
	"pad 3 (polysynth)",
	"pad 4 (choir)",
	"pad 5 (bowed)",
	"pad 6 (metallic)",
	"pad 7 (halo)",
	"pad 8 (sweep)",
	"fx 1 (rain)",
	"fx 2 (soundtrack)",
	"fx 3 (crystal)",
	"fx 4 (atmosphere)",
	"fx 5 (brightness)",
	"fx 6 (goblins)",
	"fx 7 (echoes)",
	"fx 8 (sci-fi)",
	"sitar",
	"banjo",
	"shamisen",
	"koto",
	"kalimba",
	"bag pipe",
	"fiddle",
	"shanai",
	"tinkle bell",
	"agogo",
	"steel drums",
	"woodblock",
	"taiko drum",
	"melodic tom",
	"synth drum",
	"reverse cymbal",
	"guitar fret noise",
	"breath noise",
	"seashore",
	"bird tweet",
	"telephone ring",
	"helicopter",
	"applause",
	"gunshot",
}

// Name returns the General MIDI name of a program number.
func Name(program uint8) string {
	return names[program%128]
}

// All returns every program name in program-number order.
func All() []string {
	return append([]string{}, names[:]...)
}

// Lookup finds the program number for an instrument description. An exact
// (case and whitespace insensitive) name matches directly; anything else
// falls back to the closest fuzzy match, which is never an error.
func Lookup(description string) (program uint8, matched string, exact bool) {
	want := strings.ToLower(strings.TrimSpace(description))
	for i, name := range names {
		if name == want {
			return uint8(i), name, true
		}
	}

	best := 0
	bestScore := -1.0
	for i, name := range names {
		score := similarity(want, name)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return uint8(best), names[best], false
}

// similarity scores a description against an instrument name by matching
// each description word with its closest name word.
func similarity(description, name string) float64 {
	nameWords := strings.Fields(name)
	var total float64
	for _, word := range strings.Fields(description) {
		best := 0.0
		for _, nameWord := range nameWords {
			if word == nameWord {
				best = 1
				break
			}
			if r := wordSimilarity(word, nameWord); r > best {
				best = r
			}
		}
		total += best
	}
	return total
}

func wordSimilarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Resolve looks up a description and reports the substitution on stderr
// when only a fuzzy match was found.
func Resolve(description string) uint8 {
	program, matched, exact := Lookup(description)
	if !exact {
		fmt.Fprintf(os.Stderr, "warning: the instrument %q isn't available as MIDI program name, selected %q instead\n",
			description, matched)
	}
	return program
}
