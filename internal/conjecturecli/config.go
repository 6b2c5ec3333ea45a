package conjecturecli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/conjecture-go/pkg/conjecture"
)

// ConfigFileName is the default project-local config file name.
const ConfigFileName = ".conjecture.json"

// fileConfig is the JSONC-serializable shape of the config file. Pointer
// fields distinguish "absent" from "explicitly zero" the same way
// ticket.Config does for TicketDir.
type fileConfig struct {
	BufferSize  *int `json:"buffer_size,omitempty"`
	Mutations   *int `json:"mutations,omitempty"`
	Generations *int `json:"generations,omitempty"`
	MaxShrinks  *int `json:"max_shrinks,omitempty"`
}

// LoadConfigInput holds the inputs for LoadSettings.
type LoadConfigInput struct {
	WorkDir    string // working directory the project config is resolved against
	ConfigPath string // --config flag value; explicit path, must exist if non-empty

	// CLI overrides: a nil pointer means "flag not set".
	BufferSize  *int
	Mutations   *int
	Generations *int
	MaxShrinks  *int
}

// LoadSettings resolves engine Settings with the following precedence
// (highest wins): built-in defaults, the project config file
// (.conjecture.json, or an explicit path via --config), then CLI flags.
func LoadSettings(input LoadConfigInput) (conjecture.Settings, error) {
	settings := conjecture.DefaultSettings()

	fileCfg, _, err := loadProjectConfig(input.WorkDir, input.ConfigPath)
	if err != nil {
		return conjecture.Settings{}, err
	}

	applyFileConfig(&settings, fileCfg)
	applyOverrides(&settings, input)

	if err := validateSettings(settings); err != nil {
		return conjecture.Settings{}, err
	}

	return settings, nil
}

func applyFileConfig(settings *conjecture.Settings, cfg fileConfig) {
	if cfg.BufferSize != nil {
		settings.BufferSize = *cfg.BufferSize
	}

	if cfg.Mutations != nil {
		settings.Mutations = *cfg.Mutations
	}

	if cfg.Generations != nil {
		settings.Generations = *cfg.Generations
	}

	if cfg.MaxShrinks != nil {
		settings.MaxShrinks = *cfg.MaxShrinks
	}
}

func applyOverrides(settings *conjecture.Settings, input LoadConfigInput) {
	if input.BufferSize != nil {
		settings.BufferSize = *input.BufferSize
	}

	if input.Mutations != nil {
		settings.Mutations = *input.Mutations
	}

	if input.Generations != nil {
		settings.Generations = *input.Generations
	}

	if input.MaxShrinks != nil {
		settings.MaxShrinks = *input.MaxShrinks
	}
}

func validateSettings(s conjecture.Settings) error {
	if s.BufferSize <= 0 {
		return ErrBufferSizeNonPositive
	}

	if s.Mutations < 0 {
		return ErrMutationsNegative
	}

	if s.Generations <= 0 {
		return ErrGenerationsNonPositive
	}

	if s.MaxShrinks < 0 {
		return ErrMaxShrinksNegative
	}

	return nil
}

// loadProjectConfig loads the project config file (.conjecture.json) or an
// explicit config file. Returns the parsed config, the path it was loaded
// from (empty if none), and any error.
func loadProjectConfig(workDir, configPath string) (fileConfig, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		if _, err := os.Stat(cfgFile); err != nil {
			return fileConfig{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	return loadConfigFile(cfgFile, mustExist)
}

func loadConfigFile(path string, mustExist bool) (fileConfig, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, "", nil
		}

		return fileConfig{}, "", fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return fileConfig{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, path, nil
}

// parseConfig accepts JSONC (JSON with comments and trailing commas) via
// hujson, the same way ticket.Config does.
func parseConfig(data []byte) (fileConfig, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}
