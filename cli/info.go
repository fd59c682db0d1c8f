package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/miget/hello/core"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

type infoReport struct {
	Runtime    core.RuntimeInfo `json:"runtime"`
	Port       int              `json:"port"`
	ConfigPath string           `json:"configPath"`
	Config     core.Config      `json:"config"`
}

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print runtime, port and config summary",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "print the summary as JSON"},
	},
	Action: func(c *cli.Context) error {
		port, err := core.PortFromEnv(os.Getenv)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		path := c.String(ConfigFlag.Name)
		config, err := core.LoadConfig(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		report := infoReport{
			Runtime:    core.CurrentRuntime(),
			Port:       port,
			ConfigPath: path,
			Config:     config,
		}

		w := c.App.Writer
		if c.Bool("json") {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		label := color.New(color.FgCyan)
		row := func(name string, value interface{}) {
			label.Fprintf(w, "%-14s", name)
			fmt.Fprintln(w, value)
		}

		row("Version:", report.Runtime.Version)
		row("Vendor:", report.Runtime.Vendor)
		row("Port:", report.Port)
		row("Config:", report.ConfigPath)
		row("Query mode:", config.QueryMode)
		row("Minify:", config.Minify)
		row("Gzip:", config.Gzip)
		row("Debug headers:", config.DebugHeaders)
		if config.MetricsPort != 0 {
			row("Metrics port:", config.MetricsPort)
		}
		if config.AssetsDir != "" {
			row("Assets dir:", config.AssetsDir)
		}
		return nil
	},
}
