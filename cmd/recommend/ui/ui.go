package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/tunetexture/cmd/common"
	"github.com/gigurra/tunetexture/cmd/recommend"
	"github.com/spf13/cobra"
)

type Params struct {
	Query   string `pos:"true" optional:"true" help:"Song to search for right away"`
	BaseURL string `long:"base-url" short:"b" optional:"true" help:"Recommendation service URL (overrides config)"`
	Timeout int    `short:"t" optional:"true" help:"Request timeout in seconds (overrides config)"`
	Verbose bool   `short:"v" help:"Write debug details to the diagnostic log"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "ui [query]",
		Short: "Interactive search for songs with a similar texture",
		Long: `Open the interactive search.

Type a song you love and press Enter (or Tab to the button and press Enter/Space).
The analyzed texture of the song is shown next to the hidden gems found for it.
Tab moves focus to the gems list, where Enter/o opens a track and c copies its link.

Diagnostics are written to ~/.tunetexture/tunetexture.log.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(cmd.Context(), params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func run(ctx context.Context, params *Params) error {
	closeLog := common.SetupLogging(params.Verbose, false)
	defer closeLog()

	cfg, err := recommend.LoadConfig(recommend.Overrides{
		BaseURL:        params.BaseURL,
		TimeoutSeconds: params.Timeout,
	})
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("ui started", "base_url", cfg.BaseURL, "timeout", cfg.Timeout())
	ctrl := recommend.NewController(cfg, slog.Default())
	m := newModel(ctx, ctrl, recommend.RenderOptions(cfg), cfg.BarWidth, params.Query)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
