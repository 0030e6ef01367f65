package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds the demo's settings.
type Config struct {
	Split SplitConfig `mapstructure:"split" toml:"split"`
	UI    UIConfig    `mapstructure:"ui" toml:"ui"`
	Log   LogConfig   `mapstructure:"log" toml:"log"`
}

// SplitConfig mirrors the split panel's attribute surface.
type SplitConfig struct {
	Position      float64 `mapstructure:"position" toml:"position"`
	Orientation   string  `mapstructure:"orientation" toml:"orientation"`
	Primary       string  `mapstructure:"primary" toml:"primary"`
	Dir           string  `mapstructure:"dir" toml:"dir"`
	Snap          string  `mapstructure:"snap" toml:"snap"`
	SnapThreshold float64 `mapstructure:"snap_threshold" toml:"snap_threshold"`
	Min           float64 `mapstructure:"min" toml:"min"`
	Max           float64 `mapstructure:"max" toml:"max"`
	Disabled      bool    `mapstructure:"disabled" toml:"disabled"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor     bool   `mapstructure:"no_color" toml:"no_color"`
	Wrap        bool   `mapstructure:"wrap" toml:"wrap"`
	DiffView    string `mapstructure:"diff_view" toml:"diff_view"` // unified | side-by-side
	EditorLimit int    `mapstructure:"editor_limit" toml:"editor_limit"`
}

// LogConfig selects where logs go. An empty File discards them.
type LogConfig struct {
	File  string `mapstructure:"file" toml:"file"`
	Level string `mapstructure:"level" toml:"level"`
}

// DefaultPath is $PICOX_CONFIG, else ~/.config/pico-x/config.toml.
func DefaultPath() string {
	if p := os.Getenv("PICOX_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "pico-x", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("split.position", 50)
	v.SetDefault("split.orientation", "horizontal")
	v.SetDefault("split.primary", "")
	v.SetDefault("split.dir", "ltr")
	v.SetDefault("split.snap", "")
	v.SetDefault("split.snap_threshold", 12)
	v.SetDefault("split.min", 0)
	v.SetDefault("split.max", 100)
	v.SetDefault("split.disabled", false)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.wrap", false)
	v.SetDefault("ui.diff_view", "unified")
	v.SetDefault("ui.editor_limit", 300)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

// Load reads configuration from path (DefaultPath when empty) and the
// environment. Env var overrides use prefix PICOX_, e.g. PICOX_SPLIT_POSITION.
// A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("PICOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Attributes renders the split settings in the panel's attribute encoding.
// Empty strings and a false disabled flag are left out so the panel keeps
// its defaults.
func (s SplitConfig) Attributes() map[string]string {
	num := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	out := map[string]string{
		"position":       num(s.Position),
		"snap-threshold": num(s.SnapThreshold),
		"min":            num(s.Min),
		"max":            num(s.Max),
	}
	for k, v := range map[string]string{
		"orientation": s.Orientation,
		"primary":     s.Primary,
		"dir":         s.Dir,
		"snap":        s.Snap,
	} {
		if v != "" {
			out[k] = v
		}
	}
	if s.Disabled {
		out["disabled"] = ""
	}
	return out
}
