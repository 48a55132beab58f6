package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/contact"
	"github.com/uddipan77/portfolio-tui/internal/profile"
	"github.com/uddipan77/portfolio-tui/internal/store"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio TUI",
		Long:  `portfolio - A terminal rendition of a personal portfolio site, contact form included`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about portfolio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	// Local overrides, mostly for development. Missing file is fine.
	_ = godotenv.Load()

	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath,
		"Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("portfolio - Personal Portfolio TUI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)          //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)           //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)             //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)      //nolint:forbidigo
}

// run is the main entry point of portfolio.
func run(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Make sure our config & data homes exist.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}
	if err := os.MkdirAll(path.Join(xdg.DataHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	loader := config.NewLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, slog.LevelDebug)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting portfolio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Load the profile content, either from the configured directory or the
	// embedded defaults.
	prof, errProfile := profile.Load(userConfig.ProfileDir)
	if errProfile != nil {
		return errors.Join(errProfile, errApp)
	}

	// Setup the sqlite database holding the sent message record.
	database, errDB := store.Open(ctx, config.PathData(config.DefaultDBName), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	sender := contact.NewSender(httpClient, userConfig.FormEndpoint, userConfig.FormSubject)

	done := make(chan any)

	app := NewApp(userConfig, prof, sender, store.NewMessages(database), configUpdates)

	go func() {
		if err := app.createUI(ctx).Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		done <- "done"
	}()

	app.Start(ctx, done)

	return nil
}
