package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type (
	Config struct {
		Language        string          `json:"language"`
		CommitType      string          `json:"commit_type"`
		GitBackend      string          `json:"git_backend"`
		GitBinary       string          `json:"git_binary,omitempty"`
		CopyToClipboard bool            `json:"copy_to_clipboard"`
		Generator       GeneratorConfig `json:"generator"`
		Cache           CacheConfig     `json:"cache"`

		PathFile string `json:"-"`
	}

	GeneratorConfig struct {
		Provider       Provider `json:"provider"`
		Command        string   `json:"command,omitempty"`
		Args           []string `json:"args,omitempty"`
		GeminiAPIKey   string   `json:"gemini_api_key,omitempty"`
		Model          Model    `json:"model,omitempty"`
		Temperature    float32  `json:"temperature"`
		MaxTokens      int32    `json:"max_tokens"`
		TimeoutSeconds int      `json:"timeout_seconds"`
		MaxDiffBytes   int      `json:"max_diff_bytes"`
	}

	CacheConfig struct {
		Enabled  bool   `json:"enabled"`
		TTLHours int    `json:"ttl_hours"`
		Dir      string `json:"dir,omitempty"`
	}
)

const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

const (
	configDirName  = ".commitlens"
	configFileName = "config.json"

	defaultLang           = LangPT
	defaultCommitType     = "feat"
	defaultBackend        = BackendCLI
	defaultGitBinary      = "git"
	defaultTemperature    = 0.3
	defaultMaxTokens      = 1024
	defaultTimeoutSeconds = 120
	defaultMaxDiffBytes   = 60000
	defaultCacheTTLHours  = 24
)

// DefaultConfigPath returns the config file location under homeDir.
func DefaultConfigPath(homeDir string) string {
	return filepath.Join(homeDir, configDirName, configFileName)
}

// DefaultCacheDir returns where generated messages are cached unless the
// config overrides it.
func (c *Config) DefaultCacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	if c.PathFile != "" {
		return filepath.Join(filepath.Dir(c.PathFile), "cache")
	}
	return filepath.Join(os.TempDir(), configDirName, "cache")
}

// LoadConfig reads the configuration. path is either a .json file or a
// directory under which .commitlens/config.json lives. A missing file is
// created with defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	configPath := path
	if filepath.Ext(path) != ".json" {
		configPath = DefaultConfigPath(path)
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return CreateDefaultConfig(configPath)
		}
		return nil, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	cfg.PathFile = configPath

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with every default applied and no
// file path.
func DefaultConfig() *Config {
	return &Config{
		Language:   defaultLang,
		CommitType: defaultCommitType,
		GitBackend: defaultBackend,
		GitBinary:  defaultGitBinary,
		Generator: GeneratorConfig{
			Provider:       ProviderNone,
			Temperature:    defaultTemperature,
			MaxTokens:      defaultMaxTokens,
			TimeoutSeconds: defaultTimeoutSeconds,
			MaxDiffBytes:   defaultMaxDiffBytes,
		},
		Cache: CacheConfig{
			Enabled:  true,
			TTLHours: defaultCacheTTLHours,
		},
	}
}

// CreateDefaultConfig writes a default configuration to path.
func CreateDefaultConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.PathFile = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	if err := SaveConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if cfg.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(cfg.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(cfg.Language) {
		return fmt.Errorf("unsupported language: %s", cfg.Language)
	}
	if strings.TrimSpace(cfg.CommitType) == "" {
		return errors.New("commit type cannot be empty")
	}

	switch cfg.GitBackend {
	case BackendCLI, BackendNative:
	default:
		return fmt.Errorf("unsupported git backend: %s", cfg.GitBackend)
	}

	if !isSupportedProvider(cfg.Generator.Provider) {
		return fmt.Errorf("unsupported generator provider: %s", cfg.Generator.Provider)
	}
	if cfg.Generator.TimeoutSeconds < 0 {
		return errors.New("generator timeout cannot be negative")
	}
	if cfg.Generator.MaxDiffBytes < 0 {
		return errors.New("max diff bytes cannot be negative")
	}
	if cfg.Cache.TTLHours < 0 {
		return errors.New("cache ttl cannot be negative")
	}
	return nil
}

// ErrUnknownKey is returned by ApplySetting for keys outside SettingKeys.
var ErrUnknownKey = errors.New("unknown configuration key")

// SettingKeys lists the keys accepted by ApplySetting.
func SettingKeys() []string {
	return []string{
		"language", "commit_type", "git_backend", "git_binary", "copy_to_clipboard",
		"generator_provider", "generator_command", "generator_args", "gemini_api_key",
		"model", "temperature", "max_tokens", "timeout_seconds", "max_diff_bytes",
		"cache_enabled", "cache_ttl_hours", "cache_dir",
	}
}

// ApplySetting parses value for key and stores it in cfg. The result is
// validated; on failure cfg is left unchanged.
func ApplySetting(cfg *Config, key, value string) error {
	next := *cfg
	next.Generator.Args = append([]string(nil), cfg.Generator.Args...)

	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case "language", "lang":
		next.Language = value
	case "commit_type", "type":
		next.CommitType = value
	case "git_backend", "backend":
		next.GitBackend = value
	case "git_binary":
		next.GitBinary = value
	case "copy_to_clipboard", "copy":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		next.CopyToClipboard = b
	case "generator_provider", "provider":
		next.Generator.Provider = Provider(value)
		if next.Generator.Provider == ProviderGemini && next.Generator.Model == "" {
			next.Generator.Model = DefaultModelForProvider(ProviderGemini)
		}
	case "generator_command", "command":
		next.Generator.Command = value
	case "generator_args", "args":
		next.Generator.Args = strings.Fields(value)
	case "gemini_api_key", "api_key":
		next.Generator.GeminiAPIKey = value
	case "model":
		next.Generator.Model = Model(value)
	case "temperature":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("invalid temperature: %s", value)
		}
		next.Generator.Temperature = float32(f)
	case "max_tokens":
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid max tokens: %s", value)
		}
		next.Generator.MaxTokens = int32(n)
	case "timeout_seconds", "timeout":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid timeout: %s", value)
		}
		next.Generator.TimeoutSeconds = n
	case "max_diff_bytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max diff bytes: %s", value)
		}
		next.Generator.MaxDiffBytes = n
	case "cache_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		next.Cache.Enabled = b
	case "cache_ttl_hours":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid cache ttl: %s", value)
		}
		next.Cache.TTLHours = n
	case "cache_dir":
		next.Cache.Dir = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := validateConfig(&next); err != nil {
		return err
	}

	*cfg = next
	return nil
}
