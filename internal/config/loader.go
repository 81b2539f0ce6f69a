package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var userHomeDir = os.UserHomeDir

// SetUserHomeDirForTest swaps the home resolver used for the global config
// and returns a func that restores it.
func SetUserHomeDirForTest(fn func() (string, error)) (restore func()) {
	prev := userHomeDir
	userHomeDir = fn
	return func() { userHomeDir = prev }
}

func LoadGlobalConfig() (RawConfig, bool, error) {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(filepath.Join(home, DirName, FileName))
}

func LoadProjectConfig(projectRoot string) (RawConfig, bool, error) {
	if projectRoot == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(filepath.Join(projectRoot, DirName, FileName))
}

// LoadConfig reads ~/.intimate/config.json and <projectRoot>/.intimate/config.json
// and returns the resolved config. Precedence per key: project > global > defaults.
//
// Recognized keys:
//
//	report.model              text-generation model name
//	report.baseUrl            API base URL, trailing slash trimmed
//	report.riskWarnThreshold  rating at or below which a risk item is flagged, clamped to 1..5
//	tui.confirmReset          ask before discarding answers on reset (default true)
//
// A file that is missing, malformed or carries another schemaVersion is
// skipped. The API credential is never read from these files; see APIKey.
func LoadConfig(projectRoot string) (ResolvedConfig, error) {
	globalCfg, _, err := LoadGlobalConfig()
	if err != nil {
		return ResolvedConfig{}, err
	}
	projectCfg, _, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return ResolvedConfig{}, err
	}
	return ResolveConfig(projectCfg, globalCfg), nil
}

// loadConfigFile returns present=false for missing, malformed or
// unsupported-version files; only read failures are errors.
func loadConfigFile(path string) (RawConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	var cfg RawConfig
	if err := dec.Decode(&cfg); err != nil {
		return RawConfig{}, false, nil
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return RawConfig{}, false, nil
	}
	if cfg.SchemaVersion != nil && *cfg.SchemaVersion != SchemaVersion {
		return RawConfig{}, false, nil
	}

	return cfg, true, nil
}
