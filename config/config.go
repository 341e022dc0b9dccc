// Package config loads CLI settings from defaults, an optional YAML file,
// RECTMAZE_* environment variables and command-line flags, in increasing
// order of priority, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rectmaze/geom"
)

// Auto selects a terminal automatically.
const Auto = "auto"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RECTMAZE"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every CLI setting.
type Config struct {
	Inputs       []string `mapstructure:"inputs" validate:"required,min=1,dive,required"`
	OutputDir    string   `mapstructure:"output_dir" validate:"required"`
	Start        string   `mapstructure:"start" validate:"required,terminal"`
	Goal         string   `mapstructure:"goal" validate:"required,terminal"`
	ClearValue   uint8    `mapstructure:"clear_value"`
	CoverAll     bool     `mapstructure:"cover_all"`
	NoPrune      bool     `mapstructure:"no_prune"`
	Verify       bool     `mapstructure:"verify"`
	Workers      int      `mapstructure:"workers" validate:"min=1,max=256"`
	LogLevel     string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ReportFormat string   `mapstructure:"report_format" validate:"oneof=yaml none"`
	GeoJSON      bool     `mapstructure:"geojson"`
	MetricsFile  string   `mapstructure:"metrics_file"`
	Watch        bool     `mapstructure:"watch"`
}

// defaults mirror the flag defaults so file and env layers see them too.
var defaults = map[string]any{
	"output_dir":    ".",
	"start":         Auto,
	"goal":          Auto,
	"clear_value":   255,
	"workers":       4,
	"log_level":     "info",
	"report_format": "yaml",
}

// flag name → config key
var flagKeys = map[string]string{
	"output-dir":    "output_dir",
	"start":         "start",
	"goal":          "goal",
	"clear-value":   "clear_value",
	"cover-all":     "cover_all",
	"no-prune":      "no_prune",
	"verify":        "verify",
	"workers":       "workers",
	"log-level":     "log_level",
	"report-format": "report_format",
	"geojson":       "geojson",
	"metrics-file":  "metrics_file",
	"watch":         "watch",
}

// NewFlagSet declares every flag. Positional arguments are input files.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fs.StringP("output-dir", "o", ".", "directory for solved images and reports")
	fs.String("start", Auto, `start cell "x,y" or "auto"`)
	fs.String("goal", Auto, `goal cell "x,y" or "auto"`)
	fs.Uint8("clear-value", 255, "gray value treated as free space")
	fs.Bool("cover-all", false, "decompose components not connected to start")
	fs.Bool("no-prune", false, "skip dead-end pruning")
	fs.Bool("verify", false, "cross-check every solution")
	fs.IntP("workers", "j", 4, "mazes solved concurrently")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("report-format", "yaml", "yaml or none")
	fs.Bool("geojson", false, "also write <name>.geojson")
	fs.String("metrics-file", "", "write Prometheus textfile metrics here")
	fs.BoolP("watch", "w", false, "re-solve inputs when they change")
	return fs
}

// Load parses args and merges every layer into a validated Config.
// pflag.ErrHelp is returned unwrapped when -h/--help is given.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("rectmaze")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("config: flags: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about
	_ = v.BindEnv("inputs")
	for _, k := range []string{"cover_all", "no_prune", "verify", "geojson", "metrics_file", "watch"} {
		_ = v.BindEnv(k)
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", name, err)
		}
	}
	if fs.NArg() > 0 {
		v.Set("inputs", fs.Args())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("terminal", func(fl validator.FieldLevel) bool {
		_, _, err := ParseTerminal(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks struct tags and returns ErrInvalid naming each bad field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// ParseTerminal reads "auto" or "x,y". auto reports whether the terminal is
// left to automatic selection.
func ParseTerminal(s string) (p geom.Point, auto bool, err error) {
	if strings.EqualFold(strings.TrimSpace(s), Auto) {
		return geom.Point{}, true, nil
	}
	p, err = geom.ParsePoint(strings.TrimSpace(s))
	if err != nil {
		return geom.Point{}, false, err
	}
	if p.X < 0 || p.Y < 0 {
		return geom.Point{}, false, fmt.Errorf("config: negative terminal %v", p)
	}
	return p, false, nil
}

// Terminals returns the explicit start and goal, nil where Auto.
func (c *Config) Terminals() (start, goal *geom.Point, err error) {
	sp, sAuto, err := ParseTerminal(c.Start)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: start: %w", ErrInvalid, err)
	}
	gp, gAuto, err := ParseTerminal(c.Goal)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: goal: %w", ErrInvalid, err)
	}
	if !sAuto {
		start = &sp
	}
	if !gAuto {
		goal = &gp
	}
	return start, goal, nil
}
