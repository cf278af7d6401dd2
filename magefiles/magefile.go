//go:build mage

// Package main contains Mage build targets for list-outputs developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "list-outputs"
	cmdPkg     = "./cmd/list-outputs"
	outputsDir = "outputs"
)

// Default builds the binary when mage is run without a target.
var Default = Build

// Init creates the default outputs directory the lister reads from.
func Init() error {
	if err := os.MkdirAll(outputsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outputsDir, err)
	}
	fmt.Println("  ", outputsDir)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// List builds the binary and prints the Markdown lines for ./outputs.
func List() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}
