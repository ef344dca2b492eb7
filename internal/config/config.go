package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Destination modes for merged output.
const (
	DestinationSubfolder = "subfolder"
	DestinationSource    = "source"
)

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Merge contains the grouping and output settings for a run.
type Merge struct {
	// Threshold is the minimum combined similarity score, in (0,1], for a
	// candidate to join an anchor's group.
	Threshold float64 `toml:"threshold"`
	// Destination selects where merged files are written: "subfolder" places
	// them in SubfolderName under the source directory, "source" writes them
	// next to the inputs.
	Destination   string `toml:"destination"`
	SubfolderName string `toml:"subfolder_name"`
	// ErrorReport controls whether a run that had skipped files, discarded
	// groups, or write failures leaves an error report file in the
	// destination directory.
	ErrorReport bool `toml:"error_report"`
}

// History contains configuration for the run-history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mesclador.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Merge   Merge   `toml:"merge"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DestinationDir resolves the output directory for merged files given the
// source directory being processed.
func (c *Config) DestinationDir(sourceDir string) string {
	if c.Merge.Destination == DestinationSource {
		return sourceDir
	}
	return filepath.Join(sourceDir, c.Merge.SubfolderName)
}

// EnsureDirectories creates the directories the application writes to.
func (c *Config) EnsureDirectories() error {
	if c.Paths.LogDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("ensure log directory: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mesclador/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second and third
// return values report the resolved path and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("mesclador.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes the annotated sample configuration to path, creating
// parent directories as needed. Refuses to overwrite an existing file.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}

// ExpandPath exposes tilde/relative path expansion for callers outside the
// package.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
