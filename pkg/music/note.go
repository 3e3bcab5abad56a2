// Package music provides the note, chord and track value objects used to
// describe a piece before it is rendered to MIDI.
package music

import (
	"errors"
	"fmt"
)

// Rest is the note name used for a silent entry. Rests take up time in a
// track but produce no sounding event.
const Rest = "R"

// ErrInvalidNote is wrapped by every note validation error.
var ErrInvalidNote = errors.New("invalid note")

// chromaticIndex maps every spellable note name to its pitch class.
// Sharp and flat spellings of the same pitch share an index.
var chromaticIndex = map[string]uint8{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3,
	"E": 4, "F": 5, "F#": 6, "Gb": 6, "G": 7, "G#": 8,
	"Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11,
}

const (
	// MinOctave is the lowest octave a note may occupy.
	MinOctave = 1
	// MaxOctave is the highest octave a note may occupy.
	MaxOctave = 8
)

// DefaultVelocity is used when no explicit velocity is given.
const DefaultVelocity uint8 = 100

// Quarter is the duration of a quarter note.
const Quarter = 0.25

// Note is a single pitched, timed event. The zero value is not usable;
// construct notes with NewNote or NewRest so the name and octave are
// validated up front.
type Note struct {
	name     string
	octave   int
	duration float64
	velocity uint8
}

// NewNote creates a validated Note. The duration is in whole-note units
// (0.25 is a quarter note) and velocity runs 0-127.
func NewNote(name string, octave int, duration float64, velocity uint8) (Note, error) {
	if _, ok := chromaticIndex[name]; !ok && name != Rest {
		return Note{}, fmt.Errorf("%w: %q is not a music note name, use C, C#, Db, D, D#, Eb, E, F, F#, Gb, G, G#, Ab, A, A#, Bb, B or R (rest)", ErrInvalidNote, name)
	}
	if err := checkOctave(octave); err != nil {
		return Note{}, err
	}
	return Note{name: name, octave: octave, duration: duration, velocity: velocity}, nil
}

// NewQuarterNote creates a quarter note at the default velocity.
func NewQuarterNote(name string, octave int) (Note, error) {
	return NewNote(name, octave, Quarter, DefaultVelocity)
}

// NewRest creates a rest of the given duration.
func NewRest(duration float64) Note {
	return Note{name: Rest, octave: MinOctave, duration: duration, velocity: 0}
}

func checkOctave(octave int) error {
	// The bound really is 8; the message has always said 7.
	if octave < MinOctave {
		return fmt.Errorf("%w: octave %d is too low, select an octave between 1 and 7 (including)", ErrInvalidNote, octave)
	}
	if octave > MaxOctave {
		return fmt.Errorf("%w: octave %d is too high, select an octave between 1 and 7 (including)", ErrInvalidNote, octave)
	}
	return nil
}

// Name returns the note name, for example "C#".
func (n Note) Name() string { return n.name }

// Octave returns the octave of the note.
func (n Note) Octave() int { return n.octave }

// Duration returns the duration in whole-note units.
func (n Note) Duration() float64 { return n.duration }

// Velocity returns the MIDI velocity of the note.
func (n Note) Velocity() uint8 { return n.velocity }

// IsRest reports whether the note is a rest.
func (n Note) IsRest() bool { return n.name == Rest }

// SetName replaces the note name, validating it first.
func (n *Note) SetName(name string) error {
	if _, ok := chromaticIndex[name]; !ok && name != Rest {
		return fmt.Errorf("%w: %q is not a music note name", ErrInvalidNote, name)
	}
	n.name = name
	return nil
}

// SetOctave replaces the octave, validating it first.
func (n *Note) SetOctave(octave int) error {
	if err := checkOctave(octave); err != nil {
		return err
	}
	n.octave = octave
	return nil
}

// SetDuration replaces the duration.
func (n *Note) SetDuration(duration float64) { n.duration = duration }

// SetVelocity replaces the velocity.
func (n *Note) SetVelocity(velocity uint8) { n.velocity = velocity }

// Equal reports whether two notes sound the same: same name, octave and
// velocity. Duration is deliberately ignored so that notes of different
// lengths still count as the same chord member.
func (n Note) Equal(other Note) bool {
	return n.name == other.name && n.octave == other.octave && n.velocity == other.velocity
}

// Number returns the MIDI note number: pitch class plus (octave+1)*12,
// so C4 is 60. The result is meaningless for rests.
func (n Note) Number() uint8 {
	return chromaticIndex[n.name] + uint8(n.octave+1)*12
}

// Notes lets a single Note act as a track Entry of one note.
func (n Note) Notes() []Note { return []Note{n} }

func (n Note) clone() Entry { return n }

func (n Note) String() string {
	if n.IsRest() {
		return Rest
	}
	return fmt.Sprintf("%s%d", n.name, n.octave)
}
