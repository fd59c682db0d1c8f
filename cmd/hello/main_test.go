package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func stubApp(t *testing.T, action cli.ActionFunc) {
	t.Helper()
	original := newApp
	newApp = func() *cli.App {
		return &cli.App{
			Name:   "hello",
			Writer: &bytes.Buffer{},
			Commands: []*cli.Command{
				{Name: "dev", Action: action},
				{Name: "prod", Action: action},
			},
			ExitErrHandler: func(*cli.Context, error) {},
		}
	}
	t.Cleanup(func() { newApp = original })
}

func Test_runApp_SuccessfulCommands(t *testing.T) {
	var ran []string
	stubApp(t, func(c *cli.Context) error {
		ran = append(ran, c.Command.Name)
		return nil
	})

	for _, cmd := range []string{"dev", "prod"} {
		require.NoError(t, runApp([]string{"hello", cmd}))
	}
	assert.Equal(t, []string{"dev", "prod"}, ran)
}

func Test_runApp_PropagatesFailure(t *testing.T) {
	stubApp(t, func(c *cli.Context) error {
		return errors.New("intentional failure")
	})

	err := runApp([]string{"hello", "prod"})
	assert.EqualError(t, err, "intentional failure")
}
