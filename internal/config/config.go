// Package config reads the pqaudit configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/mahdiidarabi/pqc-audit/pkg/log"
	"github.com/mahdiidarabi/pqc-audit/pkg/sigfootprint"
)

const (
	configDirPathEnv     = "PQAUDIT_CONFIG_DIR"
	defaultConfigDirPath = "."
)

// Config is the process configuration.
type Config struct {
	Log log.Config

	// ECDSAEncodingName is the raw PQAUDIT_ECDSA_ENCODING value.
	ECDSAEncodingName string `env:"PQAUDIT_ECDSA_ENCODING" env-default:"compact"`

	// ECDSAEncoding is ECDSAEncodingName parsed.
	ECDSAEncoding sigfootprint.SignatureEncoding

	// DotEnvPath is the .env file that was loaded, empty if there was none.
	DotEnvPath string
}

// LoadConfig loads an optional .env file from PQAUDIT_CONFIG_DIR and then reads
// the environment. Variables already set take precedence over the file.
func LoadConfig() (*Config, error) {
	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	var conf Config

	dotEnvPath := filepath.Join(configDirPath, ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
		}
		conf.DotEnvPath = dotEnvPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", dotEnvPath, err)
	}

	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	enc, err := sigfootprint.ParseSignatureEncoding(conf.ECDSAEncodingName)
	if err != nil {
		return nil, fmt.Errorf("invalid PQAUDIT_ECDSA_ENCODING: %w", err)
	}
	conf.ECDSAEncoding = enc

	return &conf, nil
}
