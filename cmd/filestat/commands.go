package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/filestat/internal/configuration"
	"github.com/desertwitch/filestat/internal/filesystem"
	"github.com/desertwitch/filestat/internal/schema"
	"github.com/desertwitch/filestat/internal/snapshot"
	"github.com/urfave/cli/v2"
)

const (
	flagFile     = "file"
	flagVerbose  = "verbose"
	flagFollow   = "follow"
	flagNoFollow = "no-follow"
	flagForce    = "force"
)

func newCLI() *cli.App {
	return &cli.App{
		Name:            "filestat",
		Usage:           "record and restore file permissions and modification times",
		Version:         Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFile,
				Aliases: []string{"s"},
				Usage:   "path of the snapshot file (default from " + configuration.KeySnapshotFile + " or " + snapshot.DefaultFile + ")",
			},
			&cli.BoolFlag{
				Name:  flagVerbose,
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			newAddCommand(),
			newApplyCommand(),
			newStatusCommand(),
			newListCommand(),
			newRemoveCommand(),
		},
	}
}

func followFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  flagFollow,
			Usage: "operate on the targets of symbolic links (default from " + configuration.KeyFollow + " or true)",
		},
		&cli.BoolFlag{
			Name:  flagNoFollow,
			Usage: "operate on symbolic links themselves",
		},
	}
}

func newAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "record the current metadata of files into the snapshot",
		ArgsUsage: "FILE... (relative, without \"..\" segments)",
		Flags: append(followFlags(), &cli.BoolFlag{
			Name:    flagForce,
			Aliases: []string{"f"},
			Usage:   "update files that are already recorded",
		}),
		Action: func(cctx *cli.Context) error {
			if !cctx.Args().Present() {
				_ = cli.ShowSubcommandHelp(cctx)

				return ErrNoFiles
			}

			app, follow, err := setupApp(cctx)
			if err != nil {
				return err
			}

			return app.Add(cctx.Args().Slice(), follow, cctx.Bool(flagForce))
		},
	}
}

func newApplyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "restore the recorded metadata of files, or of all recorded files",
		ArgsUsage: "[FILE...]",
		Flags:     followFlags(),
		Action: func(cctx *cli.Context) error {
			app, follow, err := setupApp(cctx)
			if err != nil {
				return err
			}

			return app.Apply(cctx.Context, cctx.Args().Slice(), follow)
		},
	}
}

func newStatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "show files whose metadata differs from the snapshot",
		ArgsUsage: "[FILE...]",
		Flags:     followFlags(),
		Action: func(cctx *cli.Context) error {
			app, follow, err := setupApp(cctx)
			if err != nil {
				return err
			}

			return app.Status(cctx.Context, cctx.App.Writer, cctx.Args().Slice(), follow)
		},
	}
}

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list all recorded files with their metadata",
		Action: func(cctx *cli.Context) error {
			app, _, err := setupApp(cctx)
			if err != nil {
				return err
			}

			return app.List(cctx.App.Writer)
		},
	}
}

func newRemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "delete files from the snapshot",
		ArgsUsage: "FILE...",
		Action: func(cctx *cli.Context) error {
			if !cctx.Args().Present() {
				_ = cli.ShowSubcommandHelp(cctx)

				return ErrNoFiles
			}

			app, _, err := setupApp(cctx)
			if err != nil {
				return err
			}

			return app.Remove(cctx.Args().Slice())
		},
	}
}

// setupApp establishes the configuration, with any command-line flags taking
// precedence, and returns the [App] along with the resolved follow preference.
func setupApp(cctx *cli.Context) (*App, bool, error) {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{}, osProvider)

	config, err := configHandler.Load(configuration.DefaultConfigFile)
	if err != nil {
		return nil, false, fmt.Errorf("(app-setup) %w", err)
	}

	logLevel.Set(config.LogLevel)
	if cctx.Bool(flagVerbose) {
		logLevel.Set(slog.LevelDebug)
	}

	if cctx.IsSet(flagFile) {
		config.SnapshotFile = cctx.String(flagFile)
	}

	follow, err := resolveFollow(cctx.Bool(flagFollow), cctx.Bool(flagNoFollow), config.Follow)
	if err != nil {
		return nil, false, fmt.Errorf("(app-setup) %w", err)
	}

	fsHandler := filesystem.NewHandler(unixProvider)
	snapshotHandler := snapshot.NewHandler(osProvider)

	return NewApp(config.SnapshotFile, fsHandler, snapshotHandler), follow, nil
}

// resolveFollow returns whether to follow symbolic links, given the flags
// and the configured default.
func resolveFollow(follow bool, noFollow bool, fallback bool) (bool, error) {
	switch {
	case follow && noFollow:
		return false, ErrFollowConflict
	case follow:
		return true, nil
	case noFollow:
		return false, nil
	default:
		return fallback, nil
	}
}
