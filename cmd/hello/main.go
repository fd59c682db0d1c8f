package main

import (
	"log"
	"os"

	hellocli "github.com/miget/hello/cli"
)

var newApp = hellocli.NewApp

func runApp(args []string) error {
	return newApp().Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
