package music

import (
	"errors"
	"testing"
)

func TestNewNoteValidation(t *testing.T) {
	tests := []struct {
		name    string
		note    string
		octave  int
		wantErr bool
	}{
		{"plain", "C", 4, false},
		{"sharp", "F#", 4, false},
		{"flat", "Bb", 4, false},
		{"rest", "R", 4, false},
		{"lowest octave", "C", 1, false},
		{"highest octave", "C", 8, false},
		{"unknown name", "H", 4, true},
		{"lowercase", "c", 4, true},
		{"octave too low", "C", 0, true},
		{"octave too high", "C", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNote(tt.note, tt.octave, Quarter, DefaultVelocity)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewNote(%q, %d) error = %v, wantErr %v", tt.note, tt.octave, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidNote) {
				t.Errorf("error %v should wrap ErrInvalidNote", err)
			}
		})
	}
}

func TestNoteEqualityIgnoresDuration(t *testing.T) {
	quarter, _ := NewNote("C", 4, 0.25, 100)
	whole, _ := NewNote("C", 4, 1, 100)
	if !quarter.Equal(whole) {
		t.Error("notes differing only in duration must compare equal")
	}

	louder, _ := NewNote("C", 4, 0.25, 101)
	if quarter.Equal(louder) {
		t.Error("notes with different velocities must not compare equal")
	}
	higher, _ := NewNote("C", 5, 0.25, 100)
	if quarter.Equal(higher) {
		t.Error("notes in different octaves must not compare equal")
	}
}

func TestNoteNumber(t *testing.T) {
	tests := []struct {
		name   string
		octave int
		want   uint8
	}{
		{"C", 4, 60},
		{"A", 4, 69},
		{"C", 1, 24},
		{"B", 8, 119},
		{"C#", 4, 61},
		{"Db", 4, 61},
		{"Bb", 3, 58},
	}
	for _, tt := range tests {
		n, err := NewNote(tt.name, tt.octave, Quarter, DefaultVelocity)
		if err != nil {
			t.Fatalf("NewNote(%q, %d) failed: %v", tt.name, tt.octave, err)
		}
		if n.Number() != tt.want {
			t.Errorf("%s%d number = %d, want %d", tt.name, tt.octave, n.Number(), tt.want)
		}
	}
}

func TestNoteSetters(t *testing.T) {
	n, _ := NewNote("C", 4, Quarter, DefaultVelocity)

	if err := n.SetOctave(9); err == nil {
		t.Error("SetOctave(9) should fail")
	}
	if n.Octave() != 4 {
		t.Error("failed SetOctave must leave the note untouched")
	}

	if err := n.SetOctave(5); err != nil {
		t.Fatalf("SetOctave(5) failed: %v", err)
	}
	if n.Octave() != 5 {
		t.Errorf("octave = %d, want 5", n.Octave())
	}

	if err := n.SetName("Q"); err == nil {
		t.Error("SetName(Q) should fail")
	}
	if err := n.SetName("Eb"); err != nil {
		t.Fatalf("SetName(Eb) failed: %v", err)
	}
	if n.Name() != "Eb" {
		t.Errorf("name = %q, want Eb", n.Name())
	}
}

func TestRest(t *testing.T) {
	r := NewRest(0.5)
	if !r.IsRest() {
		t.Error("NewRest must produce a rest")
	}
	if r.Duration() != 0.5 {
		t.Errorf("rest duration = %v, want 0.5", r.Duration())
	}

	n, _ := NewQuarterNote("C", 4)
	if n.IsRest() {
		t.Error("C4 is not a rest")
	}
}
