// Package config resolves runtime settings from defaults, a .env file, the environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/color-guess/audio"
	"github.com/lixenwraith/color-guess/constants"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names
const (
	EnvDelay     = "COLOR_GUESS_DELAY"
	EnvSound     = "COLOR_GUESS_SOUND"
	EnvVolume    = "COLOR_GUESS_VOLUME"
	EnvSeed      = "COLOR_GUESS_SEED"
	EnvLogLevel  = "COLOR_GUESS_LOG_LEVEL"
	EnvColorMode = "COLOR_GUESS_COLOR_MODE"
)

// Color modes
const (
	ColorModeAuto      = "auto"
	ColorModeTrueColor = "truecolor"
	ColorMode256       = "256"
)

// Config holds everything the binary needs to start a session
type Config struct {
	RevealDelay time.Duration
	Sound       bool
	Volume      int // 0-100
	Seed        int64
	LogLevel    string
	ColorMode   string
	Debug       bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		RevealDelay: constants.RevealDelay,
		Sound:       true,
		Volume:      70,
		LogLevel:    "info",
		ColorMode:   ColorModeAuto,
	}
}

// LoadDotEnv loads variables from the given files without overriding ones already set
// Missing files are ignored
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadEnv overlays environment variables onto cfg
// Unparseable values are reported, not ignored
func (cfg *Config) LoadEnv() error {
	if v := os.Getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvDelay, err)
		}
		cfg.RevealDelay = d
	}

	if v := os.Getenv(EnvSound); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSound, err)
		}
		cfg.Sound = b
	}

	if v := os.Getenv(EnvVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvVolume, err)
		}
		cfg.Volume = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSeed, err)
		}
		cfg.Seed = n
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvColorMode); v != "" {
		cfg.ColorMode = v
	}

	return nil
}

// BindFlags registers flags on fs that write into cfg; current values become the defaults
func (cfg *Config) BindFlags(fs *flag.FlagSet) {
	fs.DurationVar(&cfg.RevealDelay, "delay", cfg.RevealDelay, "Pause after a correct guess before the next round")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play feedback sounds")
	fs.IntVar(&cfg.Volume, "volume", cfg.Volume, "Sound volume 0-100")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time-based")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to logs/color-guess.log")
}

// Validate checks ranges and enumerations
func (cfg Config) Validate() error {
	if cfg.RevealDelay <= 0 || cfg.RevealDelay > constants.MaxRevealDelay {
		return fmt.Errorf("%w: delay %v outside (0, %v]", ErrInvalidConfig, cfg.RevealDelay, constants.MaxRevealDelay)
	}
	if cfg.Volume < 0 || cfg.Volume > 100 {
		return fmt.Errorf("%w: volume %d outside [0, 100]", ErrInvalidConfig, cfg.Volume)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalidConfig, cfg.LogLevel, err)
	}
	switch cfg.ColorMode {
	case ColorModeAuto, ColorModeTrueColor, ColorMode256:
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, cfg.ColorMode)
	}
	return nil
}

// Level returns the parsed log level, info when unparseable
func (cfg Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Audio converts the sound settings for the audio package
func (cfg Config) Audio() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Sound
	ac.MasterVolume = float64(cfg.Volume) / 100.0
	return ac
}

// Load resolves defaults, then .env, then the environment, then args
func Load(args []string) (Config, error) {
	cfg := Default()

	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.LoadEnv(); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("color-guess", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
