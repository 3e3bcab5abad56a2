package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/daviddekleer/EasyMIDI/pkg/music"
)

// MaxTracks is the number of tracks a composition can hold, one per MIDI
// channel.
const MaxTracks = 16

// beatsPerWhole converts note durations (quarter = 0.25) into beats
// (quarter = 1).
const beatsPerWhole = 4

// Composition sequences tracks into timed events and hands them to a Sink.
// Tracks are assigned channels 0-15 in the order they are added.
type Composition struct {
	sink Sink
	num  int

	// Warn receives non-fatal notices; it defaults to stderr.
	Warn func(format string, args ...any)
}

// NewComposition creates a composition writing to the given sink. A nil
// sink gets the standard MIDI file implementation.
func NewComposition(sink Sink) *Composition {
	if sink == nil {
		sink = NewSMFSink()
	}
	return &Composition{
		sink: sink,
		Warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Len returns the number of tracks added so far.
func (c *Composition) Len() int { return c.num }

// AddTracks adds multiple tracks in order.
func (c *Composition) AddTracks(tracks ...*music.Track) {
	for _, t := range tracks {
		c.AddTrack(t)
	}
}

// AddTrack sequences one track onto the next free channel. Entries are
// laid out back to back: each starts where the previous one ended, and
// rests advance the clock without sounding. Once all 16 channels are
// occupied further tracks are reported and dropped.
func (c *Composition) AddTrack(t *music.Track) bool {
	if c.num >= MaxTracks {
		c.Warn("can't add more MIDI tracks, all %d channels have been occupied", MaxTracks)
		return false
	}
	num := c.num
	channel := uint8(num)
	c.num++

	c.sink.AddTempo(num, 0, t.Tempo())
	c.sink.AddProgramChange(num, channel, 0, t.Program())

	var cursor float64
	for _, entry := range t.Entries() {
		beats := entry.Duration() * beatsPerWhole
		velocity := entry.Velocity()
		for _, note := range entry.Notes() {
			if note.IsRest() {
				continue
			}
			c.sink.AddNote(num, channel, note.Number(), cursor, beats, velocity)
		}
		cursor += beats
	}
	return true
}

// WriteTo writes the composed MIDI data to w.
func (c *Composition) WriteTo(w io.Writer) (int64, error) {
	return c.sink.WriteTo(w)
}

// WriteFile writes the composed MIDI data to the named file.
func (c *Composition) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := c.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
