package rewrite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tailscale/hujson"
)

// Config holds all configuration options for a rewrite pass.
type Config struct {
	// From config files (serialized)
	Root    string `json:"root" yaml:"root"`
	Include string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Search  string `json:"search,omitempty" yaml:"search,omitempty"`
	Replace string `json:"replace,omitempty" yaml:"replace,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-" yaml:"-"` // Absolute working directory (from -C flag or os.Getwd)
	RootAbs      string `json:"-" yaml:"-"` // Absolute path to the walk root

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-" yaml:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Root: ".",
	}
}

// Project config file names, probed in order.
const (
	ConfigFileName     = ".rebrand.json"
	ConfigFileNameYAML = ".rebrand.yaml"
)

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/rebrand/config.json if set, otherwise
// ~/.config/rebrand/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "rebrand", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "rebrand", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/rebrand/config.json or $XDG_CONFIG_HOME/rebrand/config.json)
// 3. Project config file at default location (.rebrand.json or .rebrand.yaml, if exists)
// 4. Explicit config file via configPath (if non-empty)
//
// CLI flag overrides are applied by the caller on top of the returned config.
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	// Resolve effective working directory
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	// Load global config if it exists
	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	// Load project/explicit config file
	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if cfg.Root == "" {
		return Config{}, fmt.Errorf("%w", ErrRootEmpty)
	}

	// Resolve all paths to absolute
	cfg.EffectiveCwd = workDir
	cfg.RootAbs = cfg.Root

	if !filepath.IsAbs(cfg.RootAbs) {
		cfg.RootAbs = filepath.Join(workDir, cfg.Root)
	}

	return cfg, nil
}

// Validate checks that the config can drive a rewrite pass.
// Called at apply time, not load time, so diagnostics commands work on
// partial configuration.
func (c Config) Validate() error {
	if c.Search == "" {
		return ErrSearchRequired
	}

	return nil
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return Config{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.rebrand.json or
// .rebrand.yaml, probed in that order) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	if configPath != "" {
		// Explicit config file - must exist
		cfgFile := configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		// Check existence first to provide a clear "not found" error
		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}

		fileCfg, _, err := loadConfigFile(cfgFile, true)
		if err != nil {
			return Config{}, "", err
		}

		return fileCfg, cfgFile, nil
	}

	// Default project config files - optional, first hit wins
	for _, name := range []string{ConfigFileName, ConfigFileNameYAML} {
		cfgFile := filepath.Join(workDir, name)

		fileCfg, loaded, err := loadConfigFile(cfgFile, false)
		if err != nil {
			return Config{}, "", err
		}

		if loaded {
			return fileCfg, cfgFile, nil
		}
	}

	return Config{}, "", nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files
// return zero config. The format is chosen by extension: .yaml/.yml parse
// as YAML, everything else as JSONC.
// Returns the config, whether the file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	var (
		cfg      Config
		parseErr error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, parseErr = parseConfigYAML(data)
	default:
		cfg, parseErr = parseConfigJSON(data)
	}

	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfigJSON(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func parseConfigYAML(data []byte) (Config, error) {
	var cfg Config

	unmarshalErr := yaml.Unmarshal(data, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", unmarshalErr)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.Root != "" {
		base.Root = overlay.Root
	}

	if overlay.Include != "" {
		base.Include = overlay.Include
	}

	if overlay.Exclude != "" {
		base.Exclude = overlay.Exclude
	}

	if overlay.Search != "" {
		base.Search = overlay.Search
	}

	if overlay.Replace != "" {
		base.Replace = overlay.Replace
	}

	return base
}
