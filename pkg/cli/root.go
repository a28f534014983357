/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// New builds the mgctl root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "mgctl",
		Usage:                 "Inspect resources in an unpacked must-gather bundle",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "yaml",
				Usage:   "Output format (yaml, json, table)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			getCmd(),
			namespacesCmd(),
			kindsCmd(),
			versionCmd(),
		},
	}
}

// setupLogging configures the process-wide slog logger. Logs go to stderr so
// serialized command output stays pipeable, and every invocation carries a
// run ID for correlating lines.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cmd.Bool("log-json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler).With(slog.String("run_id", uuid.New().String())))
	return ctx, nil
}
