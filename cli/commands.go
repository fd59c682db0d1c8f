package cli

import (
	"os"

	"github.com/miget/hello"
	"github.com/miget/hello/core"
	"github.com/urfave/cli/v2"
)

var ConfigFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "path to the YAML config file",
	Value:   core.DefaultConfigPath,
}

var DevCommand = &cli.Command{
	Name:   "dev",
	Usage:  "Start the server in dev mode (debug logs, live reload)",
	Action: serveAction(hello.EnvDev),
}

var ProdCommand = &cli.Command{
	Name:   "prod",
	Usage:  "Start the server in production mode",
	Action: serveAction(hello.EnvProd),
}

// ServeAction is the default action when no command is given.
var ServeAction = serveAction(hello.EnvProd)

func serveAction(env string) cli.ActionFunc {
	return func(c *cli.Context) error {
		port, err := core.PortFromEnv(os.Getenv)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		hello.Start(hello.RuntimeConfig{
			Env:        env,
			Port:       port,
			ConfigPath: c.String(ConfigFlag.Name),
		})
		return nil
	}
}

func NewApp() *cli.App {
	return &cli.App{
		Name:   "hello",
		Usage:  "Serve the Miget greeting page",
		Flags:  []cli.Flag{ConfigFlag},
		Action: ServeAction,
		Commands: []*cli.Command{
			DevCommand,
			ProdCommand,
			RenderCommand,
			InfoCommand,
			CheckCommand,
		},
	}
}
