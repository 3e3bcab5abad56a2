package midi

import (
	"bytes"
	"testing"
)

// TestSMFSinkRendersMessages drives the sink directly and checks the
// rendered file carries the raw tempo, program change and note on/off
// bytes for a single quarter note.
func TestSMFSinkRendersMessages(t *testing.T) {
	sink := NewSMFSink()
	sink.AddTempo(0, 0, 120)
	sink.AddProgramChange(0, 0, 0, 5)
	sink.AddNote(0, 0, 60, 0, 1, 100)

	var buf bytes.Buffer
	if _, err := sink.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	data := buf.Bytes()

	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Fatal("output is not a standard MIDI file")
	}

	tests := []struct {
		name string
		want []byte
	}{
		{"tempo meta, 500000 us per beat", []byte{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20}},
		{"program change to 5 on channel 0", []byte{0xC0, 0x05}},
		{"note on middle C at velocity 100", []byte{0x90, 0x3C, 0x64}},
		{"note off middle C", []byte{0x80, 0x3C}},
	}
	for _, tt := range tests {
		if !bytes.Contains(data, tt.want) {
			t.Errorf("output is missing %s (% X)", tt.name, tt.want)
		}
	}
}

func TestSMFSinkMultipleTracks(t *testing.T) {
	sink := NewSMFSink()
	sink.AddNote(0, 0, 60, 0, 1, 100)
	sink.AddNote(1, 1, 64, 0, 1, 100)

	var buf bytes.Buffer
	if _, err := sink.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	if got := bytes.Count(buf.Bytes(), []byte("MTrk")); got != 2 {
		t.Errorf("track chunk count = %d, want 2", got)
	}
}
