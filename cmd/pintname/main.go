// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/wuxler/pintname/pkg/commands"
)

func main() {
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = commands.New().Run(context.Background(), os.Args)
}
