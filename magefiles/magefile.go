//go:build mage

// Package main provides build targets for preimage using Mage.
//
// Usage:
//
//	mage build    Compile the preimage binary to bin/
//	mage test     Run all tests with the race detector
//	mage bench    Run the engine benchmarks
//	mage lint     Run go vet and golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install preimage to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "preimage"
	binaryDir  = "bin"
	cmdDir     = "./cmd/preimage"
)

// ldflags stamps the git description into main.version.
func ldflags() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(v) == "" {
		v = "dev"
	}
	return "-X main.version=" + strings.TrimSpace(v)
}

// Build compiles the preimage binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the checksum and search benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./checksum/...", "./dfs/...", "./bfs/...")
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install builds and installs preimage to GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "-ldflags", ldflags(), cmdDir)
}
