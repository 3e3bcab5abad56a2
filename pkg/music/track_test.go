package music

import "testing"

func TestTrackKeepsOrder(t *testing.T) {
	tr := NewTrack(0, 120)
	c := note(t, "C", 4)
	chord := NewChord(note(t, "E", 4), note(t, "G", 4))
	tr.Add(c, chord)

	if tr.Len() != 2 {
		t.Fatalf("track has %d entries, want 2", tr.Len())
	}
	entries := tr.Entries()
	if len(entries[0].Notes()) != 1 || len(entries[1].Notes()) != 2 {
		t.Error("entries came back in the wrong order")
	}
}

func TestTrackEntriesIsACopy(t *testing.T) {
	tr := NewTrack(0, 120)
	tr.Add(NewChord(note(t, "C", 4)))

	entries := tr.Entries()
	chord := entries[0].(*Chord)
	chord.Add(note(t, "E", 4))

	if len(tr.Entries()[0].Notes()) != 1 {
		t.Error("mutating a returned entry must not affect the track")
	}
}

func TestTrackDefaultTempo(t *testing.T) {
	tr := NewTrack(0, 0)
	if tr.Tempo() != DefaultTempo {
		t.Errorf("tempo = %v, want %v", tr.Tempo(), DefaultTempo)
	}
}
