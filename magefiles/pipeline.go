//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI binary with the given arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Validate builds the CLI and checks the configured dataset directory.
func Validate() error {
	mg.Deps(Build)
	return run("validate")
}

// Process builds the CLI and runs the full annotation pipeline.
func Process() error {
	mg.Deps(Build)
	return run("process")
}

// Report builds the CLI and renders the latest frequency report.
func Report() error {
	mg.Deps(Build)
	return run("report")
}
