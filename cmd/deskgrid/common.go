package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arkadas/deskgrid/internal/cleanup"
	"github.com/arkadas/deskgrid/internal/config"
	"github.com/arkadas/deskgrid/internal/desktop"
	"github.com/arkadas/deskgrid/internal/files"
	"github.com/arkadas/deskgrid/internal/logger"
	"github.com/arkadas/deskgrid/internal/profile"
)

// Overridable in tests.
var (
	isTerminal    = term.IsTerminal
	pickProfile   = promptProfileSelect
	osFs          = afero.NewOsFs()
	configPathFn  = config.DefaultPath
	profilesDirFn = profile.DefaultDir
	desktopDirFn  = desktop.DefaultDir
)

type globalOptions struct {
	configPath  string
	logFilePath string
	debug       bool
}

func addGlobalFlags(cmd *cobra.Command, opts *globalOptions) {
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the settings file (default ~/.deskgrid/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// environment bundles everything a command needs: parsed settings plus the
// store and scanner built from them.
type environment struct {
	cfg        config.Config
	configPath string
	store      *profile.Store
	scanner    *desktop.Scanner
}

// setup parses the settings file and initialises logging. Every RunE goes
// through here first.
func setup(opts *globalOptions) (*environment, error) {
	var logFile io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(osFs, opts.logFilePath); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFile = f
	}
	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	logger.Init(logLevel, logFile)

	configPath := opts.configPath
	if configPath == "" {
		var err error
		configPath, err = configPathFn()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(osFs, configPath)
	if err != nil {
		return nil, err
	}
	if !opts.debug && cfg.LogLevel == "debug" {
		logger.Init(logger.LevelDebug, logFile)
	}

	profilesDir := cfg.ProfilesDir
	if profilesDir == "" {
		profilesDir, err = profilesDirFn()
		if err != nil {
			return nil, err
		}
	}
	desktopDir := cfg.DesktopDir
	if desktopDir == "" {
		desktopDir, err = desktopDirFn()
		if err != nil {
			return nil, err
		}
	}

	return &environment{
		cfg:        cfg,
		configPath: configPath,
		store:      profile.NewStore(osFs, profilesDir),
		scanner:    desktop.NewScanner(osFs, desktopDir),
	}, nil
}

// resolveProfile picks the profile a command operates on: explicit flag
// first, then the configured default, then an interactive selection when
// stdin is a terminal.
func resolveProfile(env *environment, flagValue string) (string, error) {
	if flagValue != "" {
		if err := profile.ValidateName(flagValue); err != nil {
			return "", err
		}
		return flagValue, nil
	}
	if env.cfg.DefaultProfile != "" {
		return env.cfg.DefaultProfile, nil
	}

	names, err := env.store.List()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles exist yet; create one with \"deskgrid profiles create\"")
	}
	if len(names) == 1 {
		return names[0], nil
	}
	if !isTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no profile selected (non-interactive shell); use --profile or set default_profile in the settings file")
	}
	return pickProfile(names)
}

func promptProfileSelect(names []string) (string, error) {
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(name, name))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Select a profile").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return "", fmt.Errorf("profile selection cancelled: %w", err)
	}
	return selected, nil
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
