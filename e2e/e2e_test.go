//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var binDir string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "mru-e2e-*")
	if err != nil {
		panic(err)
	}
	binDir = tmpDir

	for _, pkg := range []string{"./cmd/mru", "./cmd/mru-files"} {
		//nolint:gosec // Building binary with static arguments, not user input
		cmd := exec.Command("go", "build", "-o", binDir, pkg)
		cmd.Dir = ".."
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			panic("failed to build " + pkg + ": " + err.Error())
		}
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("MRU_HOME", filepath.Join(env.WorkDir, ".mru"))

	return nil
}
