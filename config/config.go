package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server struct {
		Port         int      `yaml:"port"`
		Mode         string   `yaml:"mode"`
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"server"`

	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"service"`

	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		// Temperature is nil when unset so an explicit 0 survives defaulting.
		Temperature *float32 `yaml:"temperature"`
		// APIKeyEnv names the environment variable holding the provider credential.
		// The key itself is never stored in the config file.
		APIKeyEnv string `yaml:"apiKeyEnv"`
		BaseURL   string `yaml:"baseURL"`
	} `yaml:"llm"`

	Evaluation struct {
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"evaluation"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Demo struct {
		TargetURL string `yaml:"targetURL"`
	} `yaml:"demo"`
}

// LoadConfig reads the configuration file. An empty path yields the defaults.
// Values from the environment (and a local .env file, if present) take precedence.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if t, err := strconv.ParseFloat(v, 32); err == nil {
			temperature := float32(t)
			cfg.LLM.Temperature = &temperature
		}
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if len(cfg.Server.AllowOrigins) == 0 {
		cfg.Server.AllowOrigins = []string{"*"}
	}
	if cfg.Service.Name == "" {
		cfg.Service.Name = "Cybersecurity Interview API"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = ProviderOpenAI
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.Model = "gemini-2.5-flash"
		default:
			cfg.LLM.Model = "gpt-4o"
		}
	}
	if cfg.LLM.Temperature == nil {
		temperature := float32(0.3)
		cfg.LLM.Temperature = &temperature
	}
	if cfg.LLM.APIKeyEnv == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.APIKeyEnv = "GEMINI_API_KEY"
		default:
			cfg.LLM.APIKeyEnv = "OPENAI_API_KEY"
		}
	}
	if cfg.Evaluation.TimeoutSeconds <= 0 {
		cfg.Evaluation.TimeoutSeconds = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Demo.TargetURL == "" {
		cfg.Demo.TargetURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}
}

func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", cfg.Server.Mode)
	}
	if t := *cfg.LLM.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("llm temperature %v out of range", t)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", cfg.Server.Port)
	}
	return nil
}
