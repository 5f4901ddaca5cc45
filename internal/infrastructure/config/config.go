package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vitos/lp_wave/internal/domain"
	"gopkg.in/yaml.v3"
)

const DonationAddress = "2scUApKr4Q6A8YoXdsAnHGNjFxGPvsZKvMWadkphKzR7"

type Config struct {
	Server struct {
		Port int `yaml:"port"`
		// SessionIdleMinutes expires API sessions nobody touched or watched.
		SessionIdleMinutes int `yaml:"session_idle_minutes"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
	Animation struct {
		TickMs     int     `yaml:"tick_ms"`
		BinCount   int     `yaml:"bin_count"`
		Amount     float64 `yaml:"amount"`
		SolPercent int     `yaml:"sol_percent"`
	} `yaml:"animation"`
	Journal struct {
		Path string `yaml:"path"`
	} `yaml:"journal"`
	Banner struct {
		Text      string  `yaml:"text"`
		Speed     float64 `yaml:"speed"`
		Direction string  `yaml:"direction"`
	} `yaml:"banner"`
	Donation struct {
		Address string `yaml:"address"`
	} `yaml:"donation"`
	Terminal struct {
		FPS   int  `yaml:"fps"`
		Sound bool `yaml:"sound"`
		Trail bool `yaml:"trail"`
	} `yaml:"terminal"`
}

// Default is the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the YAML file at path (a missing file means defaults), then
// applies .env and environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			decoder := yaml.NewDecoder(f)
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LPWAVE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LPWAVE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LPWAVE_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LPWAVE_TICK_MS %q: %w", v, err)
		}
		c.Animation.TickMs = ms
	}
	if v := os.Getenv("LPWAVE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("LPWAVE_JOURNAL_PATH"); ok {
		c.Journal.Path = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.SessionIdleMinutes <= 0 {
		c.Server.SessionIdleMinutes = 30
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = "lpterm.log"
	}
	if c.Animation.TickMs <= 0 {
		c.Animation.TickMs = 100
	}
	if c.Animation.BinCount == 0 {
		c.Animation.BinCount = domain.DefaultBinCount
	}
	if c.Animation.Amount == 0 {
		c.Animation.Amount = domain.DefaultAmount
	}
	if c.Animation.SolPercent == 0 {
		c.Animation.SolPercent = domain.DefaultSolPercent
	}
	if c.Banner.Text == "" {
		c.Banner.Text = "STILL IN DEVELOPMENT"
	}
	if c.Banner.Speed == 0 {
		c.Banner.Speed = 1
	}
	if c.Banner.Direction == "" {
		c.Banner.Direction = "right"
	}
	if c.Donation.Address == "" {
		c.Donation.Address = DonationAddress
	}
	if c.Terminal.FPS <= 0 {
		c.Terminal.FPS = 30
	}
}

// TickInterval is the wave cadence.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Animation.TickMs) * time.Millisecond
}

func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.Server.SessionIdleMinutes) * time.Minute
}

// Params are the slider values a new session starts with, clamped to the
// slider domains.
func (c *Config) Params() domain.Params {
	return domain.Params{
		BinCount:   domain.ClampBinCount(c.Animation.BinCount),
		Amount:     domain.ClampAmount(c.Animation.Amount),
		SolPercent: domain.ClampSolPercent(c.Animation.SolPercent),
	}
}
