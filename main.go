package main

import (
	"os"

	"github.com/lxkasmehl/runsync-dispatch/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
