// Package config loads triviaz settings from an optional YAML file, a .env
// file and TRIVIAZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/trivia"
)

// Question sources.
const (
	SourceLLM     = "llm"
	SourceOpenTDB = "opentdb"
)

// EnvPrefix prefixes every environment override, e.g. TRIVIAZ_LOG_LEVEL.
const EnvPrefix = "TRIVIAZ"

type Config struct {
	// Source selects where questions come from: SourceLLM or SourceOpenTDB.
	Source string

	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string

	Log    LogConfig
	LLM    llm.Config
	Trivia TriviaConfig

	// File is the config file that was read, if any.
	File string
}

type LogConfig struct {
	Level string
	File  string
}

type TriviaConfig struct {
	Subjects    []string
	MaxAttempts int
	Difficulty  string // Open Trivia DB only
}

// Load reads configuration. path names an explicit config file; when empty,
// config.yaml is looked up in the user config dir and the working directory
// and a missing file is not an error.
func Load(path string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Source: strings.ToLower(v.GetString("source")),
		DBPath: v.GetString("db"),
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		LLM: llmConfig(v),
		Trivia: TriviaConfig{
			Subjects:    stringList(v, "trivia.subjects"),
			MaxAttempts: v.GetInt("trivia.max_attempts"),
			Difficulty:  v.GetString("trivia.difficulty"),
		},
		File: v.ConfigFileUsed(),
	}

	if cfg.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("source", SourceLLM)
	v.SetDefault("db", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.ollama.server_url", d.Ollama.ServerURL)
	v.SetDefault("llm.ollama.model", d.Ollama.Model)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)

	v.SetDefault("trivia.subjects", trivia.DefaultSubjects)
	v.SetDefault("trivia.max_attempts", trivia.DefaultConfig().MaxAttempts)
	v.SetDefault("trivia.difficulty", "")
}

// stringList reads a list setting. A YAML sequence is used as is; a plain
// string, which is what an environment variable yields, is split on commas.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// llmConfig builds the provider config. With no provider named and no key
// for the default one, the standard *_API_KEY variables are checked.
func llmConfig(v *viper.Viper) llm.Config {
	cfg := llm.DefaultConfig()

	provider := strings.ToLower(v.GetString("llm.provider"))
	if provider != "" {
		cfg.Provider = provider
	}

	cfg.Anthropic.APIKey = v.GetString("llm.anthropic.api_key")
	cfg.Anthropic.Model = v.GetString("llm.anthropic.model")
	cfg.OpenAI.APIKey = v.GetString("llm.openai.api_key")
	cfg.OpenAI.Model = v.GetString("llm.openai.model")
	cfg.OpenAI.BaseURL = v.GetString("llm.openai.base_url")
	cfg.Gemini.APIKey = v.GetString("llm.gemini.api_key")
	cfg.Gemini.Model = v.GetString("llm.gemini.model")
	cfg.OpenRouter.APIKey = v.GetString("llm.openrouter.api_key")
	cfg.OpenRouter.Model = v.GetString("llm.openrouter.model")
	cfg.OpenRouter.BaseURL = v.GetString("llm.openrouter.base_url")
	cfg.Ollama.ServerURL = v.GetString("llm.ollama.server_url")
	cfg.Ollama.Model = v.GetString("llm.ollama.model")

	cfg.Timeout = v.GetDuration("llm.timeout")
	cfg.Retry = llm.RetryConfig{
		MaxAttempts: v.GetInt("llm.retry.max_attempts"),
		InitialWait: v.GetDuration("llm.retry.initial_wait"),
		MaxWait:     v.GetDuration("llm.retry.max_wait"),
		Multiplier:  v.GetFloat64("llm.retry.multiplier"),
	}

	if provider == "" && !cfg.HasCredentials() {
		cfg, _ = llm.DiscoverConfig(cfg)
	}
	return cfg
}

// Validate checks settings that would otherwise fail later at runtime. LLM
// credentials are not checked here; a missing key only disables that source.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceLLM, SourceOpenTDB:
	default:
		return fmt.Errorf("unknown question source %q (want %q or %q)", c.Source, SourceLLM, SourceOpenTDB)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Trivia.MaxAttempts < 1 {
		return fmt.Errorf("trivia.max_attempts must be at least 1, got %d", c.Trivia.MaxAttempts)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	switch c.Trivia.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("unknown difficulty %q", c.Trivia.Difficulty)
	}
	return nil
}

// TriviaProviderConfig returns provider settings derived from c.
func (c *Config) TriviaProviderConfig() trivia.Config {
	tc := trivia.DefaultConfig()
	if len(c.Trivia.Subjects) > 0 {
		tc.Subjects = c.Trivia.Subjects
	}
	tc.MaxAttempts = c.Trivia.MaxAttempts
	tc.Timeout = c.LLM.Timeout
	return tc
}

// DefaultLogPath returns $XDG_STATE_HOME/triviaz/triviaz.log, falling back
// to ~/.local/state/triviaz/triviaz.log.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "triviaz", "triviaz.log"), nil
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "triviaz"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "triviaz"), nil
}
