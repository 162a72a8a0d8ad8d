// Package configuration establishes the application configuration from
// optional Unix-type configuration files and the process environment.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/desertwitch/filestat/internal/snapshot"
)

const (
	// DefaultConfigFile is the optional configuration file read from the
	// current working directory.
	DefaultConfigFile = ".filestatrc"

	// KeySnapshotFile is the key for the path of the snapshot file.
	KeySnapshotFile = "FILESTAT_FILE"

	// KeyFollow is the key for following symbolic links by default.
	KeyFollow = "FILESTAT_FOLLOW"

	// KeyLogLevel is the key for the minimum level of logged messages.
	KeyLogLevel = "FILESTAT_LOG_LEVEL"

	defaultLogLevel = slog.LevelWarn
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type envProvider interface {
	LookupEnv(key string) (string, bool)
}

// Config is the principal structure holding the application configuration.
type Config struct {
	SnapshotFile string
	Follow       bool
	LogLevel     slog.Level
}

// Handler is the principal implementation for establishing a [Config].
type Handler struct {
	GenericHandler genericConfigProvider
	EnvHandler     envProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider, envHandler envProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
		EnvHandler:     envHandler,
	}
}

// Load establishes the [Config] from the given configuration files, of which
// missing ones are skipped, and the environment, which takes precedence.
// Invalid values are replaced with their defaults.
func (c *Handler) Load(filenames ...string) (*Config, error) {
	envMap := make(map[string]string)

	for _, filename := range filenames {
		data, err := c.ReadGeneric(filename)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("(config) failed to read %s: %w", filename, err)
		}

		for key, value := range data {
			envMap[key] = value
		}
	}

	for _, key := range []string{KeySnapshotFile, KeyFollow, KeyLogLevel} {
		if value, ok := c.EnvHandler.LookupEnv(key); ok {
			envMap[key] = value
		}
	}

	config := &Config{
		SnapshotFile: snapshot.DefaultFile,
		Follow:       true,
		LogLevel:     defaultLogLevel,
	}

	if value := c.MapKeyToString(envMap, KeySnapshotFile); value != "" {
		config.SnapshotFile = value
	}

	if value, err := c.MapKeyToBool(envMap, KeyFollow, config.Follow); err != nil {
		slog.Warn("Invalid configuration value (default was used)",
			"key", KeyFollow,
			"err", err,
		)
	} else {
		config.Follow = value
	}

	if value := c.MapKeyToString(envMap, KeyLogLevel); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			slog.Warn("Invalid configuration value (default was used)",
				"key", KeyLogLevel,
				"err", err,
			)
		} else {
			config.LogLevel = level
		}
	}

	return config, nil
}

func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

func (c *Handler) MapKeyToBool(envMap map[string]string, key string, fallback bool) (bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return fallback, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("(config) %w", err)
	}

	return boolValue, nil
}
