// Package main starts the specrun command line.
package main

import (
	"errors"
	"os"

	"github.com/fjglira/GoSpecRunner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var status *cli.ExitStatus
		if errors.As(err, &status) {
			os.Exit(status.Code)
		}
		os.Exit(1)
	}
}
