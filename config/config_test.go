package config

import "testing"

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"channels":{"a":{"max_speed_steps_per_sec":2000}}}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	a := cfg.Channels["a"]
	if a.MaxSpeed != 2000 {
		t.Errorf("a.MaxSpeed = %v, want 2000 (explicit value preserved)", a.MaxSpeed)
	}
	if a.Accel != DefaultConfig().Channels["a"].Accel {
		t.Errorf("a.Accel = %v, want default filled in", a.Accel)
	}
	b, ok := cfg.Channels["b"]
	if !ok {
		t.Fatal("expected channel b to be defaulted in when absent")
	}
	if b.QueueLength != DefaultConfig().Channels["b"].QueueLength {
		t.Errorf("b.QueueLength = %d, want default", b.QueueLength)
	}
}

func TestMinTravelTicks(t *testing.T) {
	c := ChannelConfig{MaxSpeed: 1000}
	if got, want := c.MinTravelTicks(), uint32(16000); got != want {
		t.Errorf("MinTravelTicks() = %d, want %d", got, want)
	}

	zero := ChannelConfig{}
	if got := zero.MinTravelTicks(); got != 0 {
		t.Errorf("MinTravelTicks() with zero speed = %d, want 0", got)
	}
}

func TestLoadConfigRejectsInvalidJSON(t *testing.T) {
	if _, err := LoadConfig([]byte(`not json`)); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}
