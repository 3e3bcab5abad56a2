package music

import "testing"

func note(t *testing.T, name string, octave int) Note {
	t.Helper()
	n, err := NewQuarterNote(name, octave)
	if err != nil {
		t.Fatalf("NewQuarterNote(%q, %d) failed: %v", name, octave, err)
	}
	return n
}

func TestChordDeduplicates(t *testing.T) {
	c := note(t, "C", 4)
	e := note(t, "E", 4)
	chord := NewChord(c, e, c)

	if chord.Len() != 2 {
		t.Fatalf("chord has %d notes, want 2", chord.Len())
	}
	notes := chord.Notes()
	if notes[0].Name() != "C" || notes[1].Name() != "E" {
		t.Errorf("chord = %v, want [C4 E4] in first-occurrence order", chord)
	}
}

func TestChordDedupIgnoresDuration(t *testing.T) {
	short, _ := NewNote("C", 4, 0.25, 100)
	long, _ := NewNote("C", 4, 1, 100)
	chord := NewChord(short, long)
	if chord.Len() != 1 {
		t.Errorf("notes differing only in duration should collapse, got %d", chord.Len())
	}
}

func TestChordDerivedDurationAndVelocity(t *testing.T) {
	quiet, _ := NewNote("C", 4, 0.25, 60)
	loud, _ := NewNote("E", 4, 0.5, 110)
	chord := NewChord(quiet, loud)

	if chord.Duration() != 0.5 {
		t.Errorf("chord duration = %v, want the longest member 0.5", chord.Duration())
	}
	if chord.Velocity() != 110 {
		t.Errorf("chord velocity = %d, want the loudest member 110", chord.Velocity())
	}
}

func TestChordNotesIsACopy(t *testing.T) {
	chord := NewChord(note(t, "C", 4), note(t, "E", 4))
	notes := chord.Notes()
	notes[0].SetVelocity(1)

	if chord.Notes()[0].Velocity() != DefaultVelocity {
		t.Error("mutating the returned slice must not affect the chord")
	}
}

func TestChordRemove(t *testing.T) {
	c := note(t, "C", 4)
	chord := NewChord(c, note(t, "E", 4))

	if !chord.Remove(c) {
		t.Fatal("Remove should find C4")
	}
	if chord.Len() != 1 {
		t.Errorf("chord has %d notes after removal, want 1", chord.Len())
	}
	if chord.Remove(c) {
		t.Error("Remove should report a missing note")
	}
}

func TestChordSetOctave(t *testing.T) {
	chord := NewChord(note(t, "C", 4), note(t, "G", 5))
	if err := chord.SetOctave(3); err != nil {
		t.Fatalf("SetOctave failed: %v", err)
	}
	for _, n := range chord.Notes() {
		if n.Octave() != 3 {
			t.Errorf("%s should be in octave 3", n)
		}
	}

	if err := chord.SetOctave(0); err == nil {
		t.Error("SetOctave(0) should fail")
	}
}
