//go:build mage

// Package main contains Mage build targets for md2docx.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "md2docx"
	cmdPkg  = "./cmd/md2docx"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Vet)
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

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Sample converts testdata/sample.md into bin/sample.docx and prints its
// outline.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	out := filepath.Join(binDir, "sample.docx")
	if err := sh.RunV(bin, filepath.Join("testdata", "sample.md"), out); err != nil {
		return err
	}
	return sh.RunV(bin, "outline", out)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
