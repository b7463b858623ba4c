package main

import (
	"github.com/katalvlaran/ukpath/internal/cli"
)

var Version = "development"

func main() {
	cli.Execute(Version)
}
