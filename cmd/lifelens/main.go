package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lifelens/lifelens/internal/cli"
	"github.com/lifelens/lifelens/internal/cli/system"
	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/errors"
	"github.com/lifelens/lifelens/internal/logger"
	"github.com/lifelens/lifelens/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .db suffix selects the SQLite backend; anything else uses the JSON backend." type:"string" default:"~/.config/lifelens/lifelens.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Checkin   cli.CheckInCmd   `cmd:"" help:"Record today's self-report and transport choice."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show scores, trend, and the current insight."`
	Insight   cli.InsightCmd   `cmd:"" help:"Show the current coach insight."`
	Mission   cli.MissionCmd   `cmd:"" help:"Show weekly mission progress."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show or edit the user profile."`
	Reset     cli.ResetCmd     `cmd:"" help:"Wipe all data and reseed the demo dataset."`
	Init      system.InitCmd   `cmd:"" help:"Initialize lifelens storage."`
	Doctor    system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui       system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness and carbon footprint companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Select the storage backend from the config path format.
	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (the init command handles
	// its own lifecycle).
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
