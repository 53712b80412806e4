// Package config loads per-channel kinematics configuration from JSON,
// the way standalone/config/config.go loads a MachineConfig — same
// stdlib-only encoding/json approach, narrowed to the two stepper
// channels this engine drives instead of a full CNC axis set.
package config

import "encoding/json"

// ChannelConfig describes one channel's pins and kinematics in
// human units; MinTravelTicks converts MaxSpeed to the interval the
// planner expects.
type ChannelConfig struct {
	DirPin      string  `json:"dir_pin"`
	EnablePin   string  `json:"enable_pin"`
	AutoEnable  bool    `json:"auto_enable"`
	MaxSpeed    float64 `json:"max_speed_steps_per_sec"`
	Accel       float64 `json:"accel_steps_per_sec2"`
	QueueLength int     `json:"queue_length"`
}

// Config is the whole engine's configuration: one ChannelConfig per
// channel, keyed "a" and "b".
type Config struct {
	Channels map[string]ChannelConfig `json:"channels"`
}

// MinTravelTicks converts a channel's configured max speed into the
// interval the planner's SetDynamics expects (smaller interval = faster).
func (c ChannelConfig) MinTravelTicks() uint32 {
	if c.MaxSpeed <= 0 {
		return 0
	}
	return uint32(16_000_000.0 / c.MaxSpeed)
}

// LoadConfig parses a JSON configuration document and fills in defaults
// from DefaultConfig: a missing channel is taken whole, and a present
// channel gets defaults for a zero MaxSpeed, Accel or QueueLength (its
// pin fields are left as given).
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Channels == nil {
		cfg.Channels = make(map[string]ChannelConfig)
	}
	defaults := DefaultConfig()
	for _, id := range []string{"a", "b"} {
		ch, ok := cfg.Channels[id]
		if !ok {
			cfg.Channels[id] = defaults.Channels[id]
			continue
		}
		d := defaults.Channels[id]
		if ch.MaxSpeed == 0 {
			ch.MaxSpeed = d.MaxSpeed
		}
		if ch.Accel == 0 {
			ch.Accel = d.Accel
		}
		if ch.QueueLength == 0 {
			ch.QueueLength = d.QueueLength
		}
		cfg.Channels[id] = ch
	}
}

// DefaultConfig is a conservative two-channel starting point: 1000
// steps/s cruise, 1000 steps/s^2 acceleration, a 16-entry queue.
func DefaultConfig() *Config {
	return &Config{
		Channels: map[string]ChannelConfig{
			"a": {
				DirPin:      "gpio1",
				EnablePin:   "gpio2",
				AutoEnable:  true,
				MaxSpeed:    1000.0,
				Accel:       1000.0,
				QueueLength: 16,
			},
			"b": {
				DirPin:      "gpio3",
				EnablePin:   "gpio4",
				AutoEnable:  true,
				MaxSpeed:    1000.0,
				Accel:       1000.0,
				QueueLength: 16,
			},
		},
	}
}
