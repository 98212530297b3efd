// Package config loads the service configuration from, in increasing
// priority: built-in defaults, a JSON config file, environment variables
// and command line flags. The resulting values are validated before use.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	RunAddr  string `env:"SERVER_ADDRESS" json:"server_address" validate:"hostname_port"`
	LogLevel string `env:"LOG_LEVEL" json:"log_level" validate:"loglevel"`
}

var defaultConfig = Config{
	RunAddr:  ":8080",
	LogLevel: "info",
}

// InitOption customizes New.
type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing skips command line parsing; tests use it so the
// `go test` flags do not leak into the config.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[fieldLevel.Field().String()]
}

func (c *Config) validate() error {
	theValidator := validator.New()

	if err := theValidator.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	return theValidator.Struct(c)
}

func applyDefaults(cfg *Config, defaults Config) {
	if cfg.RunAddr == "" {
		cfg.RunAddr = defaults.RunAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

func applyNonEmpty(cfg *Config, overrides Config) {
	if overrides.RunAddr != "" {
		cfg.RunAddr = overrides.RunAddr
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
}

func loadJSONFile(cfg *Config, fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", fileName, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %q: %w", fileName, err)
	}

	return nil
}

// New assembles the configuration from all sources and validates it.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	var valuesFromFlags Config
	configFile := os.Getenv("CONFIG")

	if !options.disableFlagsParsing {
		flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		flags.StringVar(&valuesFromFlags.RunAddr, "a", "", "address and port to run server")
		flags.StringVar(&valuesFromFlags.LogLevel, "l", "", "logger level")
		flags.StringVar(&configFile, "c", configFile, "JSON config file name")
		if err := flags.Parse(os.Args[1:]); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}

	if configFile != "" {
		if err := loadJSONFile(cfg, configFile); err != nil {
			return nil, err
		}
	}

	var valuesFromEnv Config
	if err := env.Parse(&valuesFromEnv); err != nil {
		return nil, err
	}
	applyNonEmpty(cfg, valuesFromEnv)

	applyNonEmpty(cfg, valuesFromFlags)

	applyDefaults(cfg, defaultConfig)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
