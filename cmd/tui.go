package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"campaign-tracker/internal/adapter/apiclient"
	"campaign-tracker/internal/adapter/tui"
	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/config"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal frontend",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// the alternate screen owns stdout; failures surface in the banner
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	list := usecase.NewCampaignList(apiclient.New(cfg.API.BaseURL()), logger)
	p := tea.NewProgram(tui.NewApp(cmd.Context(), list), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
