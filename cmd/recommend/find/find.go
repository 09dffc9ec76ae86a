package find

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/tunetexture/cmd/common"
	"github.com/gigurra/tunetexture/cmd/common/table"
	"github.com/gigurra/tunetexture/cmd/recommend"
	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/gigurra/tunetexture/cmd/recommend/render"
	"github.com/gigurra/tunetexture/cmd/recommend/search"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

type Params struct {
	Query   string `pos:"true" optional:"true" help:"Song to analyze"`
	JSON    bool   `long:"json" short:"j" help:"Print the result as JSON"`
	Plain   bool   `short:"p" help:"Print plain tables (default when stdout is not a terminal)"`
	QR      bool   `long:"qr" short:"q" help:"Also print a QR code for the top hidden gem"`
	BaseURL string `long:"base-url" short:"b" optional:"true" help:"Recommendation service URL (overrides config)"`
	Timeout int    `short:"t" optional:"true" help:"Request timeout in seconds (overrides config)"`
	Verbose bool   `short:"v" help:"Log diagnostics to stderr as well"`
}

// Replaced in tests.
var isTerminal = table.IsTerminal

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "find <query>",
		Short:       "Analyze a song once and list its hidden gems",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if strings.TrimSpace(params.Query) == "" {
				_ = cmd.Usage()
				os.Exit(1)
			}

			if err := run(cmd.Context(), params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func run(ctx context.Context, params *Params, out io.Writer) error {
	closeLog := common.SetupLogging(params.Verbose, params.Verbose)
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

	ctrl := recommend.NewController(cfg, slog.Default())
	state, ok := ctrl.Search(ctx, params.Query)
	if !ok {
		return errors.New("query is empty")
	}
	if state.Status != search.StatusSuccess {
		return fmt.Errorf("searching %q: %s", state.Submitted, api.Reason(state.Err))
	}

	view := render.Project(state, recommend.RenderOptions(cfg))
	switch {
	case params.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state.Result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case params.Plain || !isTerminal():
		render.WritePlain(out, view)
	default:
		fmt.Fprintln(out, render.Text(view, render.TextOptions{
			Width:     table.TerminalWidth(),
			BarWidth:  cfg.BarWidth,
			Selected:  -1,
			ShowLinks: true,
		}))
	}

	if params.QR {
		if len(view.Gems.Rows) == 0 {
			return errors.New("no hidden gems to encode")
		}
		top := view.Gems.Rows[0]
		fmt.Fprintf(out, "\n%s %s - %s\n", render.PlayLabel, top.Name, top.Artist)
		if err := writeQR(out, top.URL); err != nil {
			return err
		}
	}
	return nil
}

// writeQR renders text as a QR code of ANSI background blocks, black modules on white.
func writeQR(w io.Writer, text string) error {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generating qr code: %w", err)
	}

	const (
		black = "\033[40m  \033[0m"
		white = "\033[47m  \033[0m"
	)
	var b strings.Builder
	for _, row := range qr.Bitmap() {
		for _, module := range row {
			if module {
				b.WriteString(black)
			} else {
				b.WriteString(white)
			}
		}
		b.WriteString("\033[0m\n")
	}
	_, err = io.WriteString(w, b.String())
	return err
}
