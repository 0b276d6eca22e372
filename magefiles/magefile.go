//go:build mage

// Package main provides build targets for the addressbook project using Mage.
//
// Usage:
//
//	mage build    Compile addressbook binary to bin/
//	mage test     Run all tests
//	mage race     Run all tests with the race detector
//	mage lint     Run golangci-lint
//	mage smoke    Build, then run init/add/list against a scratch directory
//	mage clean    Remove build artifacts
//	mage install  Install addressbook to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "addressbook"
	binaryDir  = "bin"
	cmdDir     = "./cmd/addressbook"
	modulePath = "github.com/mesh-intelligence/addressbook"
)

// Build compiles the addressbook binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version := os.Getenv("VERSION")
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if version != "" {
		args = append(args, "-ldflags", fmt.Sprintf("-X %s/internal/cli.Version=%s", modulePath, version))
	}
	return sh.RunV("go", append(args, cmdDir)...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Smoke builds the binary and exercises init, add and list in a temporary
// directory.
func Smoke() error {
	mg.Deps(Build)
	dir, err := os.MkdirTemp("", "addressbook-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin, err := filepath.Abs(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return err
	}
	common := []string{"--config-dir", filepath.Join(dir, "config"), "--file", filepath.Join(dir, "book.xml")}
	steps := [][]string{
		{"init"},
		{"add", "--postal-code", "119077", "--street", "Clementi Ave 3", "--unit", "#12-34"},
		{"list"},
	}
	for _, step := range steps {
		if err := sh.RunV(bin, append(common, step...)...); err != nil {
			return fmt.Errorf("smoke %s: %w", step[0], err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
