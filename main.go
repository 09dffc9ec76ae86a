package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/tunetexture/cmd/configcmd"
	"github.com/gigurra/tunetexture/cmd/recommend/find"
	"github.com/gigurra/tunetexture/cmd/recommend/ui"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "tunetexture",
		Short:   "Discover music by texture, not popularity",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			ui.Cmd(),
			find.Cmd(),
			configcmd.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
