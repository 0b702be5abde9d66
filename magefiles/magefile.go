//go:build mage

// Package main contains Mage build targets for pleadmd.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// binaries maps output names to their command packages.
var binaries = map[string]string{
	"pleadmd":         "./cmd/pleadmd",
	"pleadmd-server":  "./cmd/server",
	"pleadmd-migrate": "./cmd/migrate",
}

// Build compiles all binaries into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	for name, pkg := range binaries {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
			return fmt.Errorf("go build %s: %w", pkg, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Serve builds and starts the HTTP server.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, "pleadmd-server"))
}

// Migrate applies the postgres migrations.
func Migrate() error {
	return sh.RunV("go", "run", "./cmd/migrate", "up")
}

// Clean removes build output.
func Clean() error {
	return os.RemoveAll(binDir)
}
