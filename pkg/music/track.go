package music

// DefaultTempo is the tempo used when none is given.
const DefaultTempo = 120

// Track is an ordered sequence of notes and chords played on a single
// instrument. Entries are laid out back to back at export time; notes that
// should sound together must be grouped into a Chord.
type Track struct {
	entries []Entry
	program uint8
	tempo   float64
}

// NewTrack creates a track for the given MIDI program number (0-127) and
// tempo in beats per minute.
func NewTrack(program uint8, tempo float64) *Track {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	return &Track{program: program, tempo: tempo}
}

// Add appends notes or chords to the track in playing order.
func (t *Track) Add(entries ...Entry) {
	t.entries = append(t.entries, entries...)
}

// Entries returns a copy of the track contents. Mutating the result does
// not affect the track.
func (t *Track) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}
	return out
}

// Len returns the number of entries in the track.
func (t *Track) Len() int { return len(t.entries) }

// Program returns the MIDI program number of the track's instrument.
func (t *Track) Program() uint8 { return t.program }

// Tempo returns the tempo in beats per minute.
func (t *Track) Tempo() float64 { return t.tempo }
