package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Audio       AudioConfig       `mapstructure:"audio"`
	Trail       TrailConfig       `mapstructure:"trail"`
	Evasion     EvasionConfig     `mapstructure:"evasion"`
	Celebration CelebrationConfig `mapstructure:"celebration"`
	UI          UIConfig          `mapstructure:"ui"`
	Log         LogConfig         `mapstructure:"log"`
}

// AudioConfig selects the background track. An empty path plays the
// built-in tune.
type AudioConfig struct {
	Path   string  `mapstructure:"path" validate:"omitempty,audiofile"`
	Volume float64 `mapstructure:"volume" validate:"gte=-5,lte=5"`
}

// TrailConfig tunes the heart trail.
type TrailConfig struct {
	Capacity       int           `mapstructure:"capacity" validate:"gte=1"`
	Lifetime       time.Duration `mapstructure:"lifetime" validate:"gt=0"`
	SampleInterval time.Duration `mapstructure:"sample_interval" validate:"gte=0"`
}

// EvasionConfig tunes the "No" control.
type EvasionConfig struct {
	Padding   float64 `mapstructure:"padding" validate:"gte=0"`
	Stiffness float64 `mapstructure:"stiffness" validate:"gt=0"`
	Damping   float64 `mapstructure:"damping" validate:"gte=0"`
}

// CelebrationConfig describes the confetti burst.
type CelebrationConfig struct {
	Count   int      `mapstructure:"count" validate:"gte=1"`
	Spread  float64  `mapstructure:"spread" validate:"gt=0,lte=360"`
	OriginX float64  `mapstructure:"origin_x" validate:"gte=0,lte=1"`
	OriginY float64  `mapstructure:"origin_y" validate:"gte=0,lte=1"`
	Colors  []string `mapstructure:"colors" validate:"min=1,dive,hexcolor"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FPS          int    `mapstructure:"fps" validate:"gte=1,lte=120"`
	Question     string `mapstructure:"question" validate:"required"`
	SuccessTitle string `mapstructure:"success_title" validate:"required"`
	SuccessNote  string `mapstructure:"success_note"`
}

// LogConfig controls the diagnostics log. The terminal is owned by the UI,
// so logs always go to a file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Path  string `mapstructure:"path" validate:"required"`
}

// Load reads configuration from file and env. Env var overrides use prefix VALENTINE_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VALENTINE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "valentine"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VALENTINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Defaults returns the configuration used when neither a file nor env
// overrides are present.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("audio.path", "")
	v.SetDefault("audio.volume", 0.0)
	v.SetDefault("trail.capacity", 16)
	v.SetDefault("trail.lifetime", 600*time.Millisecond)
	v.SetDefault("trail.sample_interval", time.Duration(0))
	v.SetDefault("evasion.padding", 6.0)
	v.SetDefault("evasion.stiffness", 300.0)
	v.SetDefault("evasion.damping", 20.0)
	v.SetDefault("celebration.count", 150)
	v.SetDefault("celebration.spread", 70.0)
	v.SetDefault("celebration.origin_x", 0.5)
	v.SetDefault("celebration.origin_y", 0.6)
	v.SetDefault("celebration.colors", []string{"#ff4d6d", "#ffb3c1", "#ffffff"})
	v.SetDefault("ui.fps", 60)
	v.SetDefault("ui.question", "Will you be my Valentine?")
	v.SetDefault("ui.success_title", "See you on the 14th!")
	v.SetDefault("ui.success_note", "I'm the luckiest guy. ❤️")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", defaultLogPath())
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "valentine", "valentine.log")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("audiofile", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(filepath.Ext(fl.Field().String())) {
		case ".mp3", ".wav":
			return true
		}
		return false
	})
	return v
}

// Validate checks c against the field rules above.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
