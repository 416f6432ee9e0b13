//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// ASSETCREATOR_E2E_BIN points at a prebuilt binary and skips the build step
const binEnv = "ASSETCREATOR_E2E_BIN"

func TestMain(m *testing.M) {
	// Use an existing binary when one is provided (CI builds it once)
	if prebuilt := os.Getenv(binEnv); prebuilt != "" {
		binPath = prebuilt
		os.Exit(m.Run())
	}

	// Get the absolute path to the e2e directory
	e2eDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Set the absolute path for the binary
	binPath = e2eDir + "/assetcreator_e2e"

	// Build the test binary from the parent directory
	fmt.Println("Building test binary from main project...")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = ".." // Run from parent directory
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to build test binary: %v\n%s", err, out)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	os.Remove(binPath)
	os.Exit(code)
}
