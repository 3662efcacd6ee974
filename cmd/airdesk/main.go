// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Command airdesk records flights and passengers and exports the passenger
// roster to a spreadsheet. Without a subcommand it opens the window.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/airdesk/buildvars"
	"github.com/toeirei/airdesk/internal/config"
	"github.com/toeirei/airdesk/internal/db"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/export"
	"github.com/toeirei/airdesk/internal/i18n"
	"github.com/toeirei/airdesk/internal/logging"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// skipStore marks commands that run without opening the database.
const skipStore = "airdesk/skip-store"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).execute(ctx, os.Args[1:]); err != nil {
		// The error is already printed by Cobra on failure.
		stop()
		os.Exit(1)
	}
}

// app carries the state one invocation shares between its commands.
type app struct {
	cfg   config.Config
	store db.Store

	in         io.Reader
	out        io.Writer
	isTerminal func() bool
}

func newApp(in io.Reader, out io.Writer) *app {
	a := &app{in: in, out: out}
	a.isTerminal = func() bool {
		f, ok := a.in.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
	return a
}

// execute runs the command line args and releases the store afterwards,
// also when a command failed.
func (a *app) execute(ctx context.Context, args []string) error {
	defer func() { _ = a.closeStore() }()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.out)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airdesk",
		Short: "Airdesk records flights and passengers and exports the roster.",
		Long: `Airdesk keeps a small database of flights and passengers and produces
the passenger roster: every passenger joined with the flight they booked.
The roster can be exported to an Excel workbook.

Running without a subcommand will open the interactive window.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeStore()
		},
		RunE: a.runWindow,
	}

	cmd.Version = compositeVersion(resolveBuildVersion(nil))

	cmd.PersistentFlags().String("config", "", "config file (default is the user config dir, /etc/airdesk or ./airdesk.yaml)")
	cmd.PersistentFlags().String("db-type", "sqlite", `Database type ("sqlite", "postgres", "mysql")`)
	cmd.PersistentFlags().String("db-dsn", "./airport.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("lang", "en", `Language ("en", "de")`)
	cmd.PersistentFlags().String("export-sheet", export.DefaultSheet, "Sheet name used for exports")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.AddCommand(
		a.flightCmd(),
		a.passengerCmd(),
		a.exportCmd(),
		a.resetCmd(),
		a.dumpCmd(),
		a.loadCmd(),
		a.maintenanceCmd(),
		a.configCmd(),
		a.debugCmd(),
		versionCmd(),
	)
	return cmd
}

// setup loads the configuration, initializes logging and i18n and opens the
// store for the command about to run.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := configPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	a.cfg, err = config.LoadConfig[config.Config](cmd, defaults, path)
	// No config file is the normal first-run case.
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a config file fall back to the defaults.
	if a.cfg.Database.Type == "" {
		a.cfg.Database.Type = defaults["database.type"].(string)
	}
	if a.cfg.Database.Dsn == "" {
		a.cfg.Database.Dsn = defaults["database.dsn"].(string)
	}
	if a.cfg.Language == "" {
		a.cfg.Language = defaults["language"].(string)
	}
	if a.cfg.Export.Sheet == "" {
		a.cfg.Export.Sheet = defaults["export.sheet"].(string)
	}
	if a.cfg.Export.Path == "" {
		a.cfg.Export.Path = defaults["export.path"].(string)
	}

	logging.SetDebug(a.cfg.Debug)
	db.SetDebug(a.cfg.Debug)
	i18n.Init(a.cfg.Language)

	if cmd.Annotations[skipStore] == "true" {
		return nil
	}
	a.store, err = db.New(cmd.Context(), a.cfg.Database.Type, a.cfg.Database.Dsn)
	if err != nil {
		return errors.New(i18n.T("config.error_init_db", err))
	}
	return nil
}

func (a *app) closeStore() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// desk returns a presenter that prints its log lines to the command output.
func (a *app) desk() *desk.Desk {
	return desk.New(a.store, export.NewExcel(a.cfg.Export.Sheet), desk.WriterJournal{W: a.out})
}

func configPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version",
		Annotations: map[string]string{skipStore: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date. If info is nil, it reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		return resolvedVersion, resolvedCommit, resolvedDate
	}

	if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		resolvedVersion = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" && resolvedCommit == "dev" {
				resolvedCommit = s.Value
			}
		case "vcs.time":
			if s.Value != "" && resolvedDate == "" {
				resolvedDate = s.Value
			}
		}
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
