package instrument

import "testing"

func TestLookupExact(t *testing.T) {
	tests := []struct {
		query   string
		program uint8
	}{
		{"acoustic grand piano", 0},
		{"Acoustic Grand Piano", 0},
		{"  violin  ", 40},
		{"gunshot", 127},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			program, matched, exact := Lookup(tt.query)
			if !exact {
				t.Errorf("Lookup(%q) should be an exact match", tt.query)
			}
			if program != tt.program {
				t.Errorf("Lookup(%q) = %d (%s), want %d", tt.query, program, matched, tt.program)
			}
		})
	}
}

func TestLookupFuzzy(t *testing.T) {
	tests := []struct {
		query   string
		program uint8
	}{
		{"acoustic grand pino", 0}, // the classic typo
		{"acoustic grand", 0},
		{"church orgen", 19},
		{"slap bass", 36},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			program, matched, exact := Lookup(tt.query)
			if exact {
				t.Errorf("Lookup(%q) should be fuzzy", tt.query)
			}
			if program != tt.program {
				t.Errorf("Lookup(%q) = %d (%s), want %d (%s)", tt.query, program, matched, tt.program, Name(tt.program))
			}
		})
	}
}

func TestLookupNeverFails(t *testing.T) {
	program, matched, _ := Lookup("zzzzzz")
	if matched == "" {
		t.Error("Lookup must always fall back to some instrument")
	}
	if int(program) >= len(names) {
		t.Errorf("program %d out of range", program)
	}
}

func TestAllReturnsEveryProgram(t *testing.T) {
	all := All()
	if len(all) != 128 {
		t.Fatalf("got %d instruments, want 128", len(all))
	}
	for i, name := range all {
		if Name(uint8(i)) != name {
			t.Errorf("Name(%d) = %q, want %q", i, Name(uint8(i)), name)
		}
	}
}
