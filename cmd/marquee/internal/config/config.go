// Package config loads the optional marquee.yaml file that configures the
// marquee CLI: engine parameters and the item list.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/marquee/pkg/marquee"
)

// FileName is the config file looked up in the working directory.
const FileName = "marquee.yaml"

// SupportedMajor is the only schema major version understood.
const SupportedMajor = "v1"

// Config represents marquee.yaml.
type Config struct {
	Version string       `yaml:"version,omitempty"`
	Engine  EngineConfig `yaml:"engine"`
	Items   []ItemConfig `yaml:"items,omitempty"`
}

// EngineConfig overrides marquee.Config fields. Unset fields keep their
// defaults.
type EngineConfig struct {
	BaseCycle           string   `yaml:"baseCycle,omitempty"`
	FastSpeed           *float64 `yaml:"fastSpeed,omitempty"`
	CompactBreakpointPx *float64 `yaml:"compactBreakpointPx,omitempty"`
	VisibilityPrerollPx *float64 `yaml:"visibilityPrerollPx,omitempty"`
	VisibilityThreshold *float64 `yaml:"visibilityThreshold,omitempty"`
}

// ItemConfig is one item of the list.
type ItemConfig struct {
	Key   string `yaml:"key"`
	Asset string `yaml:"asset,omitempty"`
	Label bool   `yaml:"label,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, empty for built-in defaults.
	Path   string
	Engine marquee.Config
	Items  []marquee.Item
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes marquee.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// LoadOptional reads marquee.yaml from dir if present.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

// Resolve loads the config at path, or marquee.yaml from the working
// directory when path is empty, and applies defaults.
func Resolve(path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg, path, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	return cfg.resolve(path)
}

func (c *Config) resolve(path string) (*Resolved, error) {
	if err := validateVersion(c.Version); err != nil {
		return nil, err
	}

	engine, err := c.Engine.apply(marquee.DefaultConfig())
	if err != nil {
		return nil, err
	}
	if err := engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine settings: %w", err)
	}

	items := SampleItems()
	if len(c.Items) > 0 {
		items = make([]marquee.Item, 0, len(c.Items))
		for i, it := range c.Items {
			key := strings.TrimSpace(it.Key)
			if key == "" {
				return nil, fmt.Errorf("item %d: key is required", i)
			}
			items = append(items, marquee.Item{DisplayKey: key, AssetRef: it.Asset, ShowLabel: it.Label})
		}
	}

	return &Resolved{Path: path, Engine: engine, Items: items}, nil
}

func (e EngineConfig) apply(cfg marquee.Config) (marquee.Config, error) {
	if s := strings.TrimSpace(e.BaseCycle); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid engine.baseCycle %q: %w", s, err)
		}
		cfg.BaseCycle = d
	}
	if e.FastSpeed != nil {
		cfg.FastSpeed = *e.FastSpeed
	}
	if e.CompactBreakpointPx != nil {
		cfg.CompactBreakpointPx = *e.CompactBreakpointPx
	}
	if e.VisibilityPrerollPx != nil {
		cfg.VisibilityPrerollPx = *e.VisibilityPrerollPx
	}
	if e.VisibilityThreshold != nil {
		cfg.VisibilityThreshold = *e.VisibilityThreshold
	}
	return cfg, nil
}

func validateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid config version %q (expected a semantic version such as v1.0.0)", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported config version %s (this build reads %s.x)", v, SupportedMajor)
	}
	return nil
}

// SampleItems is the item list used when no config provides one.
func SampleItems() []marquee.Item {
	keys := []string{
		"Go", "Postgres", "Redis", "Kafka", "NATS", "gRPC",
		"Docker", "Kubernetes", "Terraform", "Prometheus", "Grafana", "Envoy",
	}
	items := make([]marquee.Item, len(keys))
	for i, k := range keys {
		items[i] = marquee.Item{
			DisplayKey: k,
			AssetRef:   "logos/" + strings.ToLower(k) + ".svg",
			ShowLabel:  true,
		}
	}
	return items
}

// Marshal renders a resolved configuration back to marquee.yaml form.
func (r *Resolved) Marshal() ([]byte, error) {
	fast := r.Engine.FastSpeed
	compact := r.Engine.CompactBreakpointPx
	preroll := r.Engine.VisibilityPrerollPx
	threshold := r.Engine.VisibilityThreshold
	out := Config{
		Version: SupportedMajor + ".0.0",
		Engine: EngineConfig{
			BaseCycle:           r.Engine.BaseCycle.String(),
			FastSpeed:           &fast,
			CompactBreakpointPx: &compact,
			VisibilityPrerollPx: &preroll,
			VisibilityThreshold: &threshold,
		},
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, ItemConfig{Key: it.DisplayKey, Asset: it.AssetRef, Label: it.ShowLabel})
	}
	return yaml.Marshal(&out)
}
