// Package midi assembles tracks into timed MIDI events and writes them out
// as a standard MIDI file.
package midi

import "io"

// Sink receives the timed events of a composition. Times and durations are
// in beats (one beat is a quarter note). The production implementation is
// SMFSink; tests substitute recording fakes.
type Sink interface {
	// AddTempo sets the tempo in beats per minute at the given beat.
	AddTempo(track int, beat float64, bpm float64)
	// AddProgramChange selects the instrument program (0-127) on a channel.
	AddProgramChange(track int, channel uint8, beat float64, program uint8)
	// AddNote schedules a sounding note.
	AddNote(track int, channel uint8, key uint8, beat, beats float64, velocity uint8)
	// WriteTo renders everything received so far to w.
	WriteTo(w io.Writer) (int64, error)
}
