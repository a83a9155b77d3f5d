package config

type EnvConfig struct {
	ConfigFilePath string `env:"GREETER_CONFIG_FILE_PATH" validate:"omitempty,filepath"`
	// Optional: raw configuration content (YAML or JSON). If set, it takes precedence over ConfigFilePath.
	ConfigContent string `env:"GREETER_CONFIG_CONTENT" validate:"omitempty"`
	// Optional: explicit config format when using ConfigContent. One of: yaml, yml, json.
	ConfigFormat string `env:"GREETER_CONFIG_FORMAT" validate:"omitempty,oneof=yaml yml json"`
}

type Config struct {
	Log LogConfig `yaml:"log" json:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level" json:"level" default:"warn" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" json:"format" default:"console" validate:"oneof=console json text"`
	NoColor    bool   `yaml:"nocolor" json:"nocolor"`
	TimeFormat string `yaml:"timeformat" json:"timeformat" default:"3:04PM" validate:"required"`
}
