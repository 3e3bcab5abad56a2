package midi

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// event is a message at an absolute tick.
type event struct {
	tick uint32
	msg  smf.Message
}

// SMFSink renders events into a standard MIDI file using gomidi.
type SMFSink struct {
	resolution uint16
	tracks     [][]event
}

// NewSMFSink creates a sink with the usual 480 ticks per quarter note.
func NewSMFSink() *SMFSink {
	return &SMFSink{resolution: 480}
}

func (s *SMFSink) tick(beat float64) uint32 {
	return uint32(math.Round(beat * float64(s.resolution)))
}

func (s *SMFSink) add(track int, ev event) {
	for len(s.tracks) <= track {
		s.tracks = append(s.tracks, nil)
	}
	s.tracks[track] = append(s.tracks[track], ev)
}

// AddTempo adds a tempo meta event (FF 51 03, microseconds per beat).
func (s *SMFSink) AddTempo(track int, beat float64, bpm float64) {
	usPerBeat := uint32(60000000.0 / bpm)
	msg := smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(usPerBeat >> 16),
		byte(usPerBeat >> 8),
		byte(usPerBeat),
	})
	s.add(track, event{tick: s.tick(beat), msg: msg})
}

// AddProgramChange adds a program change on the given channel.
func (s *SMFSink) AddProgramChange(track int, channel uint8, beat float64, program uint8) {
	s.add(track, event{tick: s.tick(beat), msg: smf.Message(midi.ProgramChange(channel, program))})
}

// AddNote adds the note on/off pair for one sounding note.
func (s *SMFSink) AddNote(track int, channel uint8, key uint8, beat, beats float64, velocity uint8) {
	s.add(track, event{tick: s.tick(beat), msg: smf.Message(midi.NoteOn(channel, key, velocity))})
	s.add(track, event{tick: s.tick(beat + beats), msg: smf.Message(midi.NoteOff(channel, key))})
}

// WriteTo sorts each track's events, converts absolute ticks to deltas and
// writes the SMF.
func (s *SMFSink) WriteTo(w io.Writer) (int64, error) {
	out := smf.New()
	out.TimeFormat = smf.MetricTicks(s.resolution)

	for _, events := range s.tracks {
		// Note offs sort before other events at the same tick so a
		// repeated pitch is released before it is struck again.
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].tick != events[j].tick {
				return events[i].tick < events[j].tick
			}
			return isNoteOff(events[i].msg) && !isNoteOff(events[j].msg)
		})

		var track smf.Track
		var last uint32
		for _, ev := range events {
			track.Add(ev.tick-last, ev.msg)
			last = ev.tick
		}
		track.Close(0)
		if err := out.Add(track); err != nil {
			return 0, fmt.Errorf("failed to add track: %w", err)
		}
	}

	n, err := out.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return n, nil
}

func isNoteOff(msg smf.Message) bool {
	return len(msg) > 0 && msg[0]&0xF0 == 0x80
}
