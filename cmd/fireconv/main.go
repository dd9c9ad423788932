package main

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/fireconv/pkg/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), version, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
