package main

import (
	"os"

	"github.com/riva-lang/riva/cmd"
)

func main() {
	app := cmd.NewApp()
	os.Exit(app.Main(os.Args[1:]))
}
