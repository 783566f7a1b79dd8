package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultInput     = "PROJECT_PLAN.md"
	defaultFontName  = "Calibri"
	defaultFontSize  = 11.0
	defaultCodeFont  = "Courier New"
	defaultCodeSize  = 9.0
	defaultLinkColor = "0563C1"

	// maxFontSize is the largest size Word accepts, in points.
	maxFontSize = 1638.0
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

type Config struct {
	// Source and destination
	Input  string
	Output string // Empty means Input with a .docx extension.

	// Fonts
	FontName string
	FontSize float64
	CodeFont string
	CodeSize float64

	// Links
	LinkColor  string
	Hyperlinks bool // Write clickable hyperlinks instead of styled runs.

	// Source handling
	FrontMatter bool
	Normalize   bool // NFC-normalize source text.

	// Re-read the saved document and compare its heading outline.
	Verify bool

	LogLevel string

	// File is the config file that was read, if any.
	File string
}

// Load reads configuration from defaults, an optional md2docx.yaml and
// MD2DOCX_* environment variables, in increasing precedence. When no paths
// are given the file is looked up in the working directory and
// ~/.config/md2docx.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	// No SetConfigType: an extensionless "md2docx" (the binary) must not match.
	v.SetConfigName("md2docx")
	if len(paths) == 0 {
		paths = append(paths, ".")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".config", "md2docx"))
		}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("MD2DOCX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Input:  v.GetString("input"),
		Output: v.GetString("output"),

		FontName: v.GetString("font_name"),
		FontSize: v.GetFloat64("font_size"),
		CodeFont: v.GetString("code_font"),
		CodeSize: v.GetFloat64("code_size"),

		LinkColor:  strings.TrimPrefix(v.GetString("link_color"), "#"),
		Hyperlinks: v.GetBool("hyperlinks"),

		FrontMatter: v.GetBool("front_matter"),
		Normalize:   v.GetBool("normalize"),
		Verify:      v.GetBool("verify"),

		LogLevel: v.GetString("log_level"),

		File: v.ConfigFileUsed(),
	}

	if strings.TrimSpace(cfg.Input) == "" {
		cfg.Input = defaultInput
	}
	if strings.TrimSpace(cfg.FontName) == "" {
		cfg.FontName = defaultFontName
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = defaultFontSize
	}
	if strings.TrimSpace(cfg.CodeFont) == "" {
		cfg.CodeFont = defaultCodeFont
	}
	if cfg.CodeSize <= 0 {
		cfg.CodeSize = defaultCodeSize
	}
	if !hexColor.MatchString(cfg.LinkColor) {
		cfg.LinkColor = defaultLinkColor
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", defaultInput)
	v.SetDefault("output", "")
	v.SetDefault("font_name", defaultFontName)
	v.SetDefault("font_size", defaultFontSize)
	v.SetDefault("code_font", defaultCodeFont)
	v.SetDefault("code_size", defaultCodeSize)
	v.SetDefault("link_color", defaultLinkColor)
	v.SetDefault("hyperlinks", false)
	v.SetDefault("front_matter", false)
	v.SetDefault("normalize", false)
	v.SetDefault("verify", true)
	v.SetDefault("log_level", "info")
}

func (c Config) Validate() error {
	if c.FontSize > maxFontSize {
		return fmt.Errorf("font_size %g exceeds %g", c.FontSize, maxFontSize)
	}
	if c.CodeSize > maxFontSize {
		return fmt.Errorf("code_size %g exceeds %g", c.CodeSize, maxFontSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// OutputPath returns Output, or Input with its extension replaced by .docx.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".docx"
}
