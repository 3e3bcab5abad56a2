package music

import "strings"

// Entry is anything a Track can hold: a single Note or a Chord of
// simultaneous notes.
type Entry interface {
	// Notes returns the sounding notes as a defensive copy.
	Notes() []Note
	// Duration returns the time the entry occupies in whole-note units.
	Duration() float64
	// Velocity returns the velocity the entry sounds at.
	Velocity() uint8

	clone() Entry
}

// Chord is an ordered, duplicate-free collection of notes that sound at
// the same time. Insertion order is preserved; a note equal to one already
// present (same name, octave and velocity) is dropped.
type Chord struct {
	notes []Note
}

// NewChord creates a chord from the given notes, deduplicating them while
// keeping first-occurrence order.
func NewChord(notes ...Note) *Chord {
	c := &Chord{}
	for _, n := range notes {
		c.Add(n)
	}
	return c
}

// Add appends a note unless an equal note is already present.
func (c *Chord) Add(n Note) {
	for _, have := range c.notes {
		if have.Equal(n) {
			return
		}
	}
	c.notes = append(c.notes, n)
}

// Remove drops the first note equal to n and reports whether one was found.
func (c *Chord) Remove(n Note) bool {
	for i, have := range c.notes {
		if have.Equal(n) {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			return true
		}
	}
	return false
}

// SetNotes replaces the chord members, deduplicating the new list.
func (c *Chord) SetNotes(notes []Note) {
	c.notes = nil
	for _, n := range notes {
		c.Add(n)
	}
}

// Notes returns a copy of the chord members.
func (c *Chord) Notes() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Len returns the number of distinct notes in the chord.
func (c *Chord) Len() int { return len(c.notes) }

// Duration returns the duration of the longest member.
func (c *Chord) Duration() float64 {
	var longest float64
	for _, n := range c.notes {
		if n.Duration() > longest {
			longest = n.Duration()
		}
	}
	return longest
}

// Velocity returns the velocity of the loudest member.
func (c *Chord) Velocity() uint8 {
	var loudest uint8
	for _, n := range c.notes {
		if n.Velocity() > loudest {
			loudest = n.Velocity()
		}
	}
	return loudest
}

// SetDuration sets the duration of every member.
func (c *Chord) SetDuration(duration float64) {
	for i := range c.notes {
		c.notes[i].SetDuration(duration)
	}
}

// SetVelocity sets the velocity of every member.
func (c *Chord) SetVelocity(velocity uint8) {
	for i := range c.notes {
		c.notes[i].SetVelocity(velocity)
	}
}

// SetOctave moves every member to the given octave.
func (c *Chord) SetOctave(octave int) error {
	if err := checkOctave(octave); err != nil {
		return err
	}
	for i := range c.notes {
		c.notes[i].octave = octave
	}
	return nil
}

func (c *Chord) clone() Entry {
	return &Chord{notes: c.Notes()}
}

func (c *Chord) String() string {
	names := make([]string, len(c.notes))
	for i, n := range c.notes {
		names[i] = n.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
