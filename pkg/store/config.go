package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath     = "~/.timetable.db"
	DefaultPage     = "default"
	DefaultLogLevel = "warn"

	// ConfigPathEnv names a directory searched for .timetable.yaml.
	ConfigPathEnv = "TIMETABLE_CONFIG_PATH"
)

type Config interface {
	BasePath() string
	// Page is the page key used when a command is not given one.
	Page() string
	LogLevel() string
	// File is the config file that was read, empty when none was found.
	File() string
}

// LoadConfig reads .timetable.yaml from $TIMETABLE_CONFIG_PATH or the working
// directory, overlaid with TIMETABLE_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("page", DefaultPage)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetConfigName(".timetable") // .yaml is implicit
	v.SetEnvPrefix("TIMETABLE")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Default:  v.GetString("page"),
		Level:    v.GetString("log_level"),
		Filename: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Default  string `json:"page"`
	Level    string `json:"log_level"`
	Filename string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Page() string {
	if f.Default == "" {
		return DefaultPage
	}
	return f.Default
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) File() string {
	return f.Filename
}

// StaticConfig is a Config fixed in code.
type StaticConfig struct {
	Path         string
	DefaultPage  string
	DefaultLevel string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Page() string {
	if s.DefaultPage == "" {
		return DefaultPage
	}
	return s.DefaultPage
}

func (s StaticConfig) LogLevel() string {
	if s.DefaultLevel == "" {
		return DefaultLogLevel
	}
	return s.DefaultLevel
}

func (s StaticConfig) File() string { return "" }
