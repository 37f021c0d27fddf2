package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/BurntSushi/toml"
    "github.com/knadh/koanf/parsers/yaml"
    "github.com/knadh/koanf/providers/env"
    "github.com/knadh/koanf/providers/rawbytes"
    "github.com/knadh/koanf/v2"
    yamlv3 "gopkg.in/yaml.v3"

    "headroom/internal/headroom"
)

const (
    DirName  = ".headroom"
    FileName = "config.yaml"

    envPrefix   = "HEADROOM_"
    maxFileSize = 1 << 20
)

// ErrInvalidTolerance is returned when a tolerance is negative.
var ErrInvalidTolerance = errors.New("tolerance must be >= 0")

// Config is the on-disk configuration. Keys are snake_case in YAML and TOML.
type Config struct {
    Header Header `koanf:"header" yaml:"header" toml:"header"`
    UI     UI     `koanf:"ui" yaml:"ui" toml:"ui"`
    Log    Log    `koanf:"log" yaml:"log" toml:"log"`
}

type Header struct {
    Pin           bool   `koanf:"pin" yaml:"pin" toml:"pin"`
    UpTolerance   int    `koanf:"up_tolerance" yaml:"up_tolerance" toml:"up_tolerance"`
    DownTolerance int    `koanf:"down_tolerance" yaml:"down_tolerance" toml:"down_tolerance"`
    PinStart      int    `koanf:"pin_start" yaml:"pin_start" toml:"pin_start"`
    Title         string `koanf:"title" yaml:"title,omitempty" toml:"title,omitempty"`
}

type UI struct {
    FrameInterval time.Duration `koanf:"frame_interval" yaml:"frame_interval" toml:"frame_interval"`
    Animate       bool          `koanf:"animate" yaml:"animate" toml:"animate"`
    NoColor       bool          `koanf:"no_color" yaml:"no_color" toml:"no_color"`
    Follow        bool          `koanf:"follow" yaml:"follow" toml:"follow"`
}

type Log struct {
    File   string `koanf:"file" yaml:"file,omitempty" toml:"file,omitempty"`
    Level  string `koanf:"level" yaml:"level" toml:"level"`
    Format string `koanf:"format" yaml:"format" toml:"format"` // json | console
}

// Default returns the built-in configuration.
func Default() Config {
    o := headroom.DefaultOptions()
    return Config{
        Header: Header{
            Pin:           o.Pin,
            UpTolerance:   o.UpTolerance,
            DownTolerance: o.DownTolerance,
            PinStart:      o.PinStart,
        },
        UI:  UI{FrameInterval: 16 * time.Millisecond, Animate: true},
        Log: Log{Level: "info", Format: "json"},
    }
}

// DefaultPath is ./.headroom/config.yaml.
func DefaultPath() string { return filepath.Join(".", DirName, FileName) }

// Load reads path (YAML, or TOML when the extension is .toml) on top of the
// defaults and then applies HEADROOM_* environment overrides, e.g.
// HEADROOM_HEADER_UP_TOLERANCE=2. A missing file is not an error.
func Load(path string) (*Config, error) {
    k := koanf.New(".")

    if path != "" {
        data, err := os.ReadFile(path)
        switch {
        case errors.Is(err, os.ErrNotExist):
        case err != nil:
            return nil, fmt.Errorf("read config: %w", err)
        case len(data) > maxFileSize:
            return nil, fmt.Errorf("config %s exceeds %d bytes", path, maxFileSize)
        default:
            if err := k.Load(rawbytes.Provider(data), parserFor(path)); err != nil {
                return nil, fmt.Errorf("parse config %s: %w", path, err)
            }
        }
    }

    if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
        return nil, fmt.Errorf("load environment: %w", err)
    }

    c := Default()
    if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
        return nil, fmt.Errorf("decode config: %w", err)
    }
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return &c, nil
}

// envKey maps HEADROOM_HEADER_UP_TOLERANCE to header.up_tolerance: the first
// segment names the section, the rest is the field.
func envKey(s string) string {
    s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
    section, field, ok := strings.Cut(s, "_")
    if !ok {
        return s
    }
    return section + "." + field
}

func parserFor(path string) koanf.Parser {
    if strings.EqualFold(filepath.Ext(path), ".toml") {
        return tomlParser{}
    }
    return yaml.Parser()
}

// tomlParser adapts BurntSushi/toml to koanf.Parser.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
    var out map[string]interface{}
    if _, err := toml.Decode(string(b), &out); err != nil {
        return nil, err
    }
    return out, nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
    var sb strings.Builder
    if err := toml.NewEncoder(&sb).Encode(m); err != nil {
        return nil, err
    }
    return []byte(sb.String()), nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
    if c.Header.UpTolerance < 0 {
        return fmt.Errorf("header.up_tolerance=%d: %w", c.Header.UpTolerance, ErrInvalidTolerance)
    }
    if c.Header.DownTolerance < 0 {
        return fmt.Errorf("header.down_tolerance=%d: %w", c.Header.DownTolerance, ErrInvalidTolerance)
    }
    if c.UI.FrameInterval < 0 {
        return fmt.Errorf("ui.frame_interval must not be negative")
    }
    switch c.Log.Format {
    case "json", "console":
    default:
        return fmt.Errorf("log.format %q: want json or console", c.Log.Format)
    }
    return nil
}

// Options converts the header section for the controller.
func (c *Config) Options() headroom.Options {
    return headroom.Options{
        Pin:           c.Header.Pin,
        UpTolerance:   c.Header.UpTolerance,
        DownTolerance: c.Header.DownTolerance,
        PinStart:      c.Header.PinStart,
    }
}

// Save writes c as YAML, creating the parent directory.
func Save(path string, c *Config) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("create config dir: %w", err)
    }
    data, err := yamlv3.Marshal(c)
    if err != nil {
        return fmt.Errorf("encode config: %w", err)
    }
    if err := os.WriteFile(path, data, 0644); err != nil {
        return fmt.Errorf("write config: %w", err)
    }
    return nil
}
