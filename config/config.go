// Package config assembles the runtime configuration from defaults, an
// optional YAML file, the environment (with .env support) and command-line
// arguments, in increasing order of priority, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator"
	"github.com/goccy/go-yaml"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrArgs indicates the wrong number of positional arguments.
	ErrArgs = errors.New("config: expected <vertices> <distances>")

	// ErrNoPaths is wrapped alongside ErrInvalid when the input paths are the
	// only thing missing, so callers can answer with a usage line alone.
	ErrNoPaths = errors.New("config: vertices and distances paths are required")
)

// Config is the validated runtime configuration.
type Config struct {
	VerticesPath  string `yaml:"vertices" validate:"required"`
	DistancesPath string `yaml:"distances" validate:"required"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error fatal"`
	RenderTitle   string `yaml:"render_title" validate:"max=200"`

	// ClosedRoadWeight closes every road at least this long to route
	// searches. Zero keeps all roads open.
	ClosedRoadWeight int64 `yaml:"closed_road_weight" validate:"gte=0"`

	// MaxDistance treats cities farther than this as unreachable.
	// Zero means no limit.
	MaxDistance int64 `yaml:"max_distance" validate:"gte=0"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		LogLevel:    "warn",
		RenderTitle: "cityroute",
	}
}

// Params are the command-line inputs to Load.
type Params struct {
	// File is the YAML file named by -config; CITYROUTE_CONFIG when empty.
	File string

	// LogLevel from -log-level; overrides every other source when set.
	LogLevel string

	// Args are the positional arguments: none, or vertices and distances.
	Args []string
}

// Load builds a Config from every source and validates it.
func Load(p Params) (Config, error) {
	cfg := Default()

	file := p.File
	if file == "" {
		file = GetEnvString(EnvConfigFile, "")
	}
	if file != "" {
		if err := FromFile(file, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := FromEnv(&cfg); err != nil {
		return cfg, err
	}

	switch len(p.Args) {
	case 0:
	case 2:
		cfg.VerticesPath, cfg.DistancesPath = p.Args[0], p.Args[1]
	default:
		return cfg, fmt.Errorf("%w: got %d arguments", ErrArgs, len(p.Args))
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}

	return cfg, cfg.Validate()
}

// FromFile overlays the non-empty fields of the YAML file at path onto cfg.
// Unknown keys are rejected.
func FromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc Config
	if err = yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	overlay(cfg, fc)

	return nil
}

// FromEnv overlays CITYROUTE_* environment variables onto cfg. A numeric
// variable that does not parse is an ErrInvalid.
func FromEnv(cfg *Config) error {
	closed, err := GetEnvInt64(EnvClosedRoadWeight, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	maxDistance, err := GetEnvInt64(EnvMaxDistance, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	overlay(cfg, Config{
		VerticesPath:     GetEnvString(EnvVertices, ""),
		DistancesPath:    GetEnvString(EnvDistances, ""),
		LogLevel:         GetEnvString(EnvLogLevel, ""),
		RenderTitle:      GetEnvString(EnvRenderTitle, ""),
		ClosedRoadWeight: closed,
		MaxDistance:      maxDistance,
	})

	return nil
}

func overlay(dst *Config, src Config) {
	if src.VerticesPath != "" {
		dst.VerticesPath = src.VerticesPath
	}
	if src.DistancesPath != "" {
		dst.DistancesPath = src.DistancesPath
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.RenderTitle != "" {
		dst.RenderTitle = src.RenderTitle
	}
	if src.ClosedRoadWeight != 0 {
		dst.ClosedRoadWeight = src.ClosedRoadWeight
	}
	if src.MaxDistance != 0 {
		dst.MaxDistance = src.MaxDistance
	}
}

var validate = validator.New()

// Validate checks the struct tags of c. When the only failures are the
// missing input paths the error also wraps ErrNoPaths.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && onlyMissingPaths(fields) {
		return fmt.Errorf("%w: %w", ErrInvalid, ErrNoPaths)
	}

	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

func onlyMissingPaths(fields validator.ValidationErrors) bool {
	for _, f := range fields {
		switch f.StructField() {
		case "VerticesPath", "DistancesPath":
			if f.Tag() == "required" {
				continue
			}
		}
		return false
	}

	return len(fields) > 0
}
