package contract

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
	"go.uber.org/zap"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultColor     = "yes"
	DefaultEmoji     = "yes"
	MaxThresholds    = 25
	MaxYear          = 9999
)

// todayFunc resolves the local calendar date when --today is not given.
var todayFunc = calendar.Today

// validate checks the struct tags of ConfigRawInput. Field names in errors are the flag names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Config holds the runtime configuration for a calculation.
// This struct is the "final, validated" config.
type Config struct {
	CurrentCount int
	StartDate    calendar.Date
	Today        calendar.Date
	Thresholds   []int
	Year         int // target of the year command

	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Locale      string // matched BCP 47 tag
	Placeholder string // shown for absent values in text and CSV
	Width       int    // Terminal width override (0 = auto-detect)
	Verbose     bool

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	CountArg string
	YearArg  string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Precision   int    `mapstructure:"precision" validate:"min=1,max=2"`
	Locale      string `mapstructure:"locale" validate:"omitempty,bcp47_language_tag"`
	Color       string `mapstructure:"color"`
	Emoji       string `mapstructure:"emoji"`
	Width       int    `mapstructure:"width" validate:"gte=0"`
	Placeholder string `mapstructure:"placeholder" validate:"max=16"`
	Verbose     bool   `mapstructure:"verbose"`
	Today       string `mapstructure:"today" validate:"omitempty,datetime=2006-01-02"`

	// --- Fields from calcCmd.Flags() ---
	Count      int    `mapstructure:"count" validate:"gte=0"`
	Start      string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02"`
	Thresholds string `mapstructure:"thresholds"`

	// --- Fields from yearCmd.Flags() ---
	Year int `mapstructure:"year" validate:"gte=0,lte=9999"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Thresholds != nil {
		clone.Thresholds = slices.Clone(c.Thresholds)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(_ context.Context, cfg *Config, input *ConfigRawInput) error {
	if err := validateRawInput(input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDates(cfg, input); err != nil {
		return err
	}
	if err := processCount(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processYear(cfg, input); err != nil {
		return err
	}

	Logger().Debug("resolved config",
		zap.Int("count", cfg.CurrentCount),
		zap.Stringer("start", cfg.StartDate),
		zap.Stringer("today", cfg.Today),
		zap.Ints("thresholds", cfg.Thresholds),
		zap.String("output", string(cfg.Output)),
		zap.String("locale", cfg.Locale),
	)
	return nil
}

// validateRawInput runs the struct tag checks and reports the first failure.
func validateRawInput(input *ConfigRawInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Errorf("invalid --%s value %v (must satisfy %s)", fe.Field(), fe.Value(), rule)
}

func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose
	cfg.Precision = input.Precision

	cfg.Placeholder = input.Placeholder
	if cfg.Placeholder == "" {
		cfg.Placeholder = schema.DefaultPlaceholder
	}

	// Parse emoji flag
	emojis, err := ParseBoolString(orDefault(input.Emoji, DefaultEmoji))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(orDefault(input.Color, DefaultColor))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}

	// --- 2. Locale ---
	cfg.Locale = calendar.MatchLocale(input.Locale).String()
	return nil
}

// processDates resolves today and the start date, defaulting start to January 1 of today's year.
func processDates(cfg *Config, input *ConfigRawInput) error {
	cfg.Today = todayFunc()
	if input.Today != "" {
		today, err := calendar.Parse(input.Today)
		if err != nil {
			return fmt.Errorf("invalid --today value: %w", err)
		}
		cfg.Today = today
	}

	cfg.StartDate = calendar.StartOfYear(cfg.Today.Year)
	if input.Start != "" {
		start, err := calendar.Parse(input.Start)
		if err != nil {
			return fmt.Errorf("invalid --start value: %w", err)
		}
		cfg.StartDate = start
	}

	if cfg.StartDate.Year != cfg.Today.Year {
		return fmt.Errorf("start date %s must fall within %d", cfg.StartDate, cfg.Today.Year)
	}
	if cfg.StartDate.After(cfg.Today) {
		return fmt.Errorf("start date %s cannot be after today (%s)", cfg.StartDate, cfg.Today)
	}
	return nil
}

// processCount bounds the count by the number of days in today's year.
func processCount(cfg *Config, input *ConfigRawInput) error {
	count := input.Count
	if input.CountArg != "" {
		n, err := strconv.Atoi(strings.TrimSpace(input.CountArg))
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", input.CountArg, err)
		}
		count = n
	}

	maxCount := calendar.DaysInYear(cfg.Today.Year)
	if count < 0 || count > maxCount {
		return fmt.Errorf("count must be between 0 and %d (received %d)", maxCount, count)
	}
	cfg.CurrentCount = count
	return nil
}

func processThresholds(cfg *Config, input *ConfigRawInput) error {
	thresholds, err := ParseThresholds(input.Thresholds)
	if err != nil {
		return fmt.Errorf("invalid --thresholds value: %w", err)
	}
	cfg.Thresholds = thresholds
	return nil
}

func processYear(cfg *Config, input *ConfigRawInput) error {
	year := input.Year
	if input.YearArg != "" {
		n, err := strconv.Atoi(strings.TrimSpace(input.YearArg))
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", input.YearArg, err)
		}
		year = n
	}
	if year == 0 {
		year = cfg.Today.Year
	}
	if year < 1 || year > MaxYear {
		return fmt.Errorf("year must be between 1 and %d (received %d)", MaxYear, year)
	}
	cfg.Year = year
	return nil
}

// ParseThresholds parses a comma-separated list of strictly ascending positive counts.
// An empty string yields schema.DefaultThresholds.
func ParseThresholds(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return slices.Clone(schema.DefaultThresholds), nil
	}

	var thresholds []int
	for part := range strings.SplitSeq(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("threshold %q is not an integer", p)
		}
		if n <= 0 {
			return nil, fmt.Errorf("threshold %d must be positive", n)
		}
		if len(thresholds) > 0 && n <= thresholds[len(thresholds)-1] {
			return nil, fmt.Errorf("thresholds must be strictly ascending (%d follows %d)", n, thresholds[len(thresholds)-1])
		}
		if len(thresholds) == MaxThresholds {
			return nil, fmt.Errorf("at most %d thresholds are allowed", MaxThresholds)
		}
		thresholds = append(thresholds, n)
	}

	if len(thresholds) == 0 {
		return nil, fmt.Errorf("no thresholds in %q", s)
	}
	return thresholds, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
