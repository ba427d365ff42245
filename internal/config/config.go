// Package config decodes and validates scriptorium settings.
//
// Values come from viper, which layers flags over SCRIPTORIUM_* environment
// variables over the optional .scriptorium.yaml file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scriptorium/internal/output"
)

// DefaultSeed is the first page of Lucretius, De Rerum Natura.
const DefaultSeed = "http://latin.packhum.org/loc/978/1/0"

// Config holds all settings for one run.
type Config struct {
	Debug   bool `mapstructure:"debug"`
	Quiet   bool `mapstructure:"quiet"`
	LogJSON bool `mapstructure:"log_json"`

	Output Output `mapstructure:"output"`
	PHI    PHI    `mapstructure:"phi"`
	Fetch  Fetch  `mapstructure:"fetch"`
}

// Output selects where and how results are written.
type Output struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format" validate:"output_format"`
	Pretty bool   `mapstructure:"pretty"`
}

// PHI configures the crawl.
type PHI struct {
	Seed         string        `mapstructure:"seed" validate:"required,url"`
	MaxPages     int           `mapstructure:"max_pages" validate:"min=0"`
	DetectCycles bool          `mapstructure:"detect_cycles"`
	Delay        time.Duration `mapstructure:"delay" validate:"min=0"`

	TitleSelector string `mapstructure:"title_selector"`
	LineSelector  string `mapstructure:"line_selector"`
	PrevSelector  string `mapstructure:"prev_selector"`
	NextSelector  string `mapstructure:"next_selector"`
}

// Fetch configures page retrieval.
type Fetch struct {
	Mode      string        `mapstructure:"mode" validate:"oneof=static dynamic"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", string(output.FormatText))
	v.SetDefault("output.pretty", true)
	v.SetDefault("phi.seed", DefaultSeed)
	v.SetDefault("phi.max_pages", 0)
	v.SetDefault("phi.detect_cycles", true)
	v.SetDefault("phi.delay", time.Duration(0))
	v.SetDefault("fetch.mode", "static")
	v.SetDefault("fetch.timeout", 30*time.Second)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
		return output.Format(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks field constraints and reports every failing field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
