package stepcmd

import "testing"

func TestEncodeDecodeInterval(t *testing.T) {
	tests := []struct {
		name string
		i0   uint32
	}{
		{"zero", 0},
		{"one", 1},
		{"minInterval", MinInterval},
		{"justBelowLowHighBoundary", 1<<14 - 1},
		{"lowHighBoundary", 1 << 14}, // the §8-S6 case
		{"justAboveBoundary", 1<<14 + 1},
		{"midRange", 1_000_000},
		{"maxInterval", MaxInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msb, lsw := EncodeInterval(tt.i0)
			got := DecodeInterval(msb, lsw)
			if got != tt.i0 {
				t.Errorf("EncodeInterval(%d) -> (%d,%#x) -> DecodeInterval = %d, want %d",
					tt.i0, msb, lsw, got, tt.i0)
			}
		})
	}
}

func TestEncodeIntervalBoundaryScheme(t *testing.T) {
	// I0 == 16384 must use the high scheme (bit 14 set), not the low
	// scheme, even though 16384 would otherwise look like a plain lsw.
	msb, lsw := EncodeInterval(16384)
	if msb != 0 {
		t.Errorf("msb = %d, want 0", msb)
	}
	if lsw != 0x4000 {
		t.Errorf("lsw = %#x, want 0x4000", lsw)
	}
	if lsw&0x4000 == 0 {
		t.Errorf("lsw %#x does not carry the high-scheme flag bit", lsw)
	}
}

func TestEncodeIntervalRoundTripSample(t *testing.T) {
	// Representative sample across the full range rather than an
	// exhaustive sweep of all ~16.7M values.
	step := uint32(997) // odd stride, avoids aliasing with power-of-two boundaries
	for i0 := uint32(1); i0 <= MaxInterval; i0 += step {
		msb, lsw := EncodeInterval(i0)
		if got := DecodeInterval(msb, lsw); got != i0 {
			t.Fatalf("round trip broke at I0=%d: got %d", i0, got)
		}
	}
}

func TestCommandAccessors(t *testing.T) {
	c := Command{Steps: (42 << 1) | 1}
	if c.StepCount() != 42 {
		t.Errorf("StepCount() = %d, want 42", c.StepCount())
	}
	if !c.FlipsDirection() {
		t.Errorf("FlipsDirection() = false, want true")
	}

	c2 := Command{Steps: 10 << 1}
	if c2.FlipsDirection() {
		t.Errorf("FlipsDirection() = true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		i0      uint32
		steps   uint8
		change  int16
		wantErr error
	}{
		{"ok simple", 1000, 10, 0, nil},
		{"zero steps", 1000, 0, 0, ErrStepsOutOfRange},
		{"steps too high", 1000, 128, 0, ErrStepsOutOfRange},
		{"interval too high", MaxInterval + 1, 10, 0, ErrIntervalTooHigh},
		{"positive change too high", 1000, 10, 3277, ErrChangeTooHigh}, // 3277*10 > 32768
		{"negative change too low magnitude", 1000, 100, -330, ErrChangeTooLow},
		{"negative change undercuts min interval", 600, 5, -30, ErrChangeTooLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.i0, tt.steps, tt.change)
			if err != tt.wantErr {
				t.Errorf("Validate(%d,%d,%d) = %v, want %v", tt.i0, tt.steps, tt.change, err, tt.wantErr)
			}
		})
	}
}
