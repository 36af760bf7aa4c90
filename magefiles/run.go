//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the tutorial named by $TUTORIAL, or the configured default. Set
// $CONFIG to pass a configuration file.
func (Run) Tutorial() error {
	if err := buildShaders(); err != nil {
		return err
	}
	args := []string{"run", "."}
	if c := os.Getenv("CONFIG"); c != "" {
		args = append(args, "-config", c)
	}
	if t := os.Getenv("TUTORIAL"); t != "" {
		args = append(args, "-tutorial", t)
	}
	return goRun(args...)
}
