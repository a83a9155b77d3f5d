package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cenv "github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	kenv "github.com/knadh/koanf/providers/env"
	kfile "github.com/knadh/koanf/providers/file"
	kraw "github.com/knadh/koanf/providers/rawbytes"
	kfn "github.com/knadh/koanf/v2"
)

const envPrefix = "GREETER_"

// Load resolves the configuration from the bootstrap environment variables.
// Content wins over a file path; with neither, defaults and env overrides apply.
func Load() (*Config, error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}

	if envCfg.ConfigContent != "" {
		return loadConfigContent(envCfg.ConfigContent, envCfg.ConfigFormat)
	}
	if envCfg.ConfigFilePath != "" {
		return loadConfigFile(envCfg.ConfigFilePath)
	}
	return finalize(kfn.New("."))
}

func loadEnvConfig() (*EnvConfig, error) {
	envCfg := &EnvConfig{}
	if err := cenv.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment configuration: %w", err)
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(envCfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return envCfg, nil
}

// loadConfigFile loads configuration from a file (YAML or JSON) and merges environment overrides.
func loadConfigFile(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if _, err = os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	var parser kfn.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return nil, &UnsupportedExtensionError{Extension: ext}
	}

	k := kfn.New(".")
	if err = k.Load(kfile.Provider(absPath), parser); err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}
	return finalize(k)
}

// loadConfigContent loads configuration from raw YAML/JSON content.
// If format is empty, JSON is assumed when the trimmed content starts with '{'.
func loadConfigContent(content string, format string) (*Config, error) {
	trimmed := strings.TrimSpace(content)
	f := strings.ToLower(strings.TrimSpace(format))
	var parser kfn.Parser
	switch f {
	case "yaml", "yml":
		parser = kyaml.Parser()
	case "json":
		parser = kjson.Parser()
	case "":
		if strings.HasPrefix(trimmed, "{") {
			parser = kjson.Parser()
		} else {
			parser = kyaml.Parser()
		}
	default:
		return nil, &UnsupportedExtensionError{Extension: f}
	}

	k := kfn.New(".")
	if err := k.Load(kraw.Provider([]byte(content)), parser); err != nil {
		return nil, fmt.Errorf("error loading config content: %w", err)
	}
	return finalize(k)
}

// finalize applies env overrides, defaults and validation to a loaded document.
func finalize(k *kfn.Koanf) (*Config, error) {
	loadEnv(k)

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set default values: %w", err)
	}
	if err := k.UnmarshalWithConf("", cfg, kfn.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(k *kfn.Koanf) {
	// GREETER_LOG__LEVEL=debug -> log.level
	_ = k.Load(kenv.Provider(envPrefix, ".", func(s string) string {
		noPrefix := strings.TrimPrefix(s, envPrefix)
		noPrefix = strings.ToLower(noPrefix)
		return strings.ReplaceAll(noPrefix, "__", ".")
	}), nil)
}

type UnsupportedExtensionError struct {
	Extension string
}

func (e *UnsupportedExtensionError) Error() string {
	return "unsupported config file extension: " + e.Extension
}
