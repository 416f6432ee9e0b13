package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"assetcreator/internal/catalog"
	"assetcreator/internal/domain"
	"assetcreator/internal/eventbus"
	"assetcreator/internal/search"
)

const (
	appName        = "assetcreator"
	configFileName = "config.toml"
	currentVersion = 1
)

// Config represents the application configuration
type Config struct {
	Version     int             `toml:"version"`
	ProjectRoot string          `toml:"project_root"` // directory the asset paths are relative to
	AssetRoot   string          `toml:"asset_root"`   // default destination inside the project
	Search      SearchSettings  `toml:"search"`
	Catalog     CatalogSettings `toml:"catalog"`
	Log         LogSettings     `toml:"log"`
}

// SearchSettings controls the query grammar
type SearchSettings struct {
	Variant           string `toml:"variant"` // "extended" or "simple"
	MatchDisplayLabel bool   `toml:"match_display_label"`
}

// CatalogSettings controls which types are offered
type CatalogSettings struct {
	ExcludeTags  []string `toml:"exclude_tags"`
	ExcludeNames []string `toml:"exclude_names"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the per-user configuration directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// NewConfigService creates a config service backed by the per-user config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), configFileName),
	}
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := &configService{bus: bus, filePath: path}
	if path == "" {
		cs.filePath = filepath.Join(Dir(), configFileName)
	}
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, or the defaults if there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		log.Debugf("No config at %s, using defaults", cs.filePath)
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = currentVersion
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	projectRoot, err := os.Getwd()
	if err != nil {
		projectRoot = "."
	}

	filter := catalog.DefaultFilter()
	tags := make([]string, len(filter.ExcludeTags))
	for i, tag := range filter.ExcludeTags {
		tags[i] = string(tag)
	}

	return &Config{
		Version:     currentVersion,
		ProjectRoot: projectRoot,
		AssetRoot:   "Assets",
		Search: SearchSettings{
			Variant: search.VariantExtended.String(),
		},
		Catalog: CatalogSettings{
			ExcludeTags:  tags,
			ExcludeNames: []string{"**/builtin.*"},
		},
		Log: LogSettings{
			File:  filepath.Join(Dir(), appName+".log"),
			Level: "info",
		},
	}
}

// Validate reports every problem in the configuration at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Version > currentVersion {
		result = multierror.Append(result, fmt.Errorf("config version %d is newer than supported version %d", c.Version, currentVersion))
	}
	if c.ProjectRoot == "" {
		result = multierror.Append(result, errors.New("project_root must be set"))
	}
	if filepath.IsAbs(c.AssetRoot) {
		result = multierror.Append(result, fmt.Errorf("asset_root %q must be relative to project_root", c.AssetRoot))
	}
	if _, err := search.ParseVariant(c.Search.Variant); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.CatalogFilter().Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := log.ParseLevel(c.levelOrDefault()); err != nil {
		result = multierror.Append(result, fmt.Errorf("log level: %w", err))
	}

	return result.ErrorOrNil()
}

// SearchOptions converts the search settings. An invalid variant falls back
// to the default; Validate reports it.
func (c *Config) SearchOptions() search.Options {
	variant, _ := search.ParseVariant(c.Search.Variant)
	return search.Options{
		Variant:           variant,
		MatchDisplayLabel: c.Search.MatchDisplayLabel,
	}
}

// CatalogFilter converts the catalog settings
func (c *Config) CatalogFilter() catalog.Filter {
	tags := make([]domain.Capability, len(c.Catalog.ExcludeTags))
	for i, tag := range c.Catalog.ExcludeTags {
		tags[i] = domain.Capability(tag)
	}
	return catalog.Filter{
		ExcludeTags:  tags,
		ExcludeNames: c.Catalog.ExcludeNames,
	}
}

func (c *Config) levelOrDefault() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// LogLevel returns the configured level, defaulting to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.levelOrDefault())
	if err != nil {
		return log.InfoLevel
	}
	return level
}
