package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/miget/hello/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate PORT, the config file and the bundled assets",
	Action: func(c *cli.Context) error {
		w := c.App.Writer
		ok := color.New(color.FgGreen)
		bad := color.New(color.FgRed)
		var failed bool

		report := func(what string, err error) {
			if err != nil {
				failed = true
				bad.Fprintf(w, "✗ %s: %v\n", what, err)
				return
			}
			ok.Fprintf(w, "✓ %s\n", what)
		}

		_, err := core.PortFromEnv(os.Getenv)
		report(core.PortEnv, err)

		config, err := core.LoadConfig(c.String(ConfigFlag.Name))
		report("config", err)

		if err == nil {
			_, err = core.NewAssetSource(config.AssetsDir).Asset(core.LogoAsset)
			report(core.LogoAsset, err)

			_, err = core.NewRenderer(core.CurrentRuntime(), core.PageOptions{Minify: config.Minify})
			report("greeting page", err)
		}

		if failed {
			return cli.Exit("check failed", 1)
		}
		return nil
	},
}
