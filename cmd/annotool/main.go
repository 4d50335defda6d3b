package main

import (
	"os"

	"github.com/mitchele/annotool/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
