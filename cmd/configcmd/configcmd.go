package configcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/tunetexture/cmd/common"
	"github.com/gigurra/tunetexture/cmd/common/config"
	"github.com/spf13/cobra"
)

func Cmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "config",
		Short: "Inspect and create the tunetexture config",
		Long: `Inspect and create the tunetexture config.

The config lives in ~/.tunetexture/config.json. Values can be overridden with
TUNETEXTURE_BASE_URL, TUNETEXTURE_PLAYBACK_URL_TEMPLATE, TUNETEXTURE_TIMEOUT_SECONDS
and TUNETEXTURE_BAR_WIDTH, from the environment or a .env file.`,
		SubCmds: []*cobra.Command{
			pathCmd(),
			showCmd(),
			initCmd(),
		},
	}.ToCobra()
}

func pathCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "path",
		Short: "Print the config file path",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			fmt.Println(config.ConfigPath())
		},
	}.ToCobra()
}

func showCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "show",
		Short: "Print the effective config, including environment overrides",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			if err := runShow(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

type InitParams struct {
	Force bool `short:"f" help:"Overwrite an existing config file"`
}

func initCmd() *cobra.Command {
	return boa.CmdT[InitParams]{
		Use:         "init",
		Short:       "Write a config file with the default values",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *InitParams, cmd *cobra.Command, args []string) {
			if err := runInit(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runShow(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func runInit(params *InitParams, out io.Writer) error {
	path := config.ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if _, err := os.Stat(path); err == nil && !params.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	_, err := fmt.Fprintf(out, "Wrote %s\n", path)
	return err
}
