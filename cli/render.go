package cli

import (
	"github.com/miget/hello/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var RenderCommand = &cli.Command{
	Name:  "render",
	Usage: "Print the greeting page to stdout",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "name to greet (takes precedence over --query)"},
		&cli.StringFlag{Name: "query", Usage: "raw query string, parsed the way the server does"},
	},
	Action: func(c *cli.Context) error {
		config, err := core.LoadConfig(c.String(ConfigFlag.Name))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		name := core.NameFromQuery(c.String("query"), config.QueryMode)
		if c.IsSet("name") {
			name = c.String("name")
		}

		renderer, err := core.NewRenderer(core.CurrentRuntime(), core.PageOptions{Minify: config.Minify})
		if err != nil {
			return errors.Wrap(err, "prepare greeting page")
		}

		_, err = c.App.Writer.Write(renderer.Render(name))
		return err
	},
}
