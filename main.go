package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/sophiakurz/closet-coordinator/cmd"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd()

	// fang layers completions, manpages, and --version onto the cobra tree.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
