package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// exitCode is reported once the command returns. serve overrides it with
// 128+signal after a termination signal.
var exitCode = 0

// main is the entry point of the campaign budget tracker. Without a
// subcommand it starts the web frontend.
func main() {
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		exitCode = 1
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "campaign-tracker",
		Short:         "Campaign budget tracker",
		Long:          "Monitor and manage advertising campaign budgets and spending against the campaign API.",
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serve, newTUICmd())
	return root
}
