// Package config handles the application configuration and its on-disk paths.
package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "portfolio-tui"
	DefaultConfigName  = "portfolio-tui"
	DefaultDBName      = "portfolio-tui.db"
	DefaultLogName     = "portfolio-tui.log"
	EnvPrefix          = "portfolio"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	// ProfileDir points at a directory of profile content (about.md,
	// projects.yaml, ...). When empty the embedded defaults are used.
	ProfileDir string `mapstructure:"profile_dir"`
	// FormEndpoint is the hosted form processor the contact form submits to.
	FormEndpoint string `mapstructure:"form_endpoint"`
	// FormSubject is sent along as the hidden subject field.
	FormSubject string `mapstructure:"form_subject"`
	// BaseURL is prepended to relative asset paths (resume, certificates)
	// when composing links. Points at the deployed static site.
	BaseURL string `mapstructure:"base_url"`
	Theme   string `mapstructure:"theme"`
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// PathData generates a path pointing to the filename under $XDG_DATA_HOME,
// overridable with DATA_DIR.
func PathData(name string) string {
	dataDir, found := os.LookupEnv("DATA_DIR")
	if found && dataDir != "" {
		return path.Join(dataDir, name)
	}

	return path.Join(xdg.DataHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
