package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultBaseURL    = "https://adventofcode.com/"
	defaultUA         = "aoc-solver (+https://github.com/aoc-solver/aoc-solver)"
	defaultMaxRetries = 4
	configFileName    = "config.json"
	appDirName        = "aoc"
)

// appConfig holds the application configuration.
type appConfig struct {
	BaseURL    string `json:"base_url" validate:"required,url"`
	UserAgent  string `json:"user_agent" validate:"required"`
	CacheDir   string `json:"cache_dir,omitempty"`
	LogFile    string `json:"log_file,omitempty"`
	Workers    int    `json:"workers" validate:"min=1"`
	MaxRetries int    `json:"max_retries" validate:"min=0"`
	SessionID  string `json:"session_id,omitempty"`
}

func defaultConfig() appConfig {
	return appConfig{
		BaseURL:    defaultBaseURL,
		UserAgent:  defaultUA,
		Workers:    max(runtime.NumCPU(), 1),
		MaxRetries: defaultMaxRetries,
	}
}

// resolveConfigPath picks the config file: the explicit flag value, then
// $AOC_HOME/config.json, then the user config directory.
func resolveConfigPath(flagPath string) (string, error) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, nil
	}
	if home := strings.TrimSpace(os.Getenv("AOC_HOME")); home != "" {
		return filepath.Join(home, configFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.SessionID = strings.TrimSpace(cfg.SessionID)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.CacheDir = strings.TrimSpace(cfg.CacheDir)
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	if !k.Exists("workers") {
		cfg.Workers = defaultConfig().Workers
	}
	if !k.Exists("max_retries") {
		cfg.MaxRetries = defaultMaxRetries
	}
	if err := cfg.validate(); err != nil {
		return appConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

func (c appConfig) validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Field(), fe.ActualTag(), fe.Value()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q must be absolute", c.BaseURL)
	}
	return nil
}

// saveConfig writes configuration to the specified path.
func saveConfig(path string, cfg appConfig) error {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
