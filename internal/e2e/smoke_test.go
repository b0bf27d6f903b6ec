package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeStoreFixture(home))

	_, stderr, err := runSCDC(t, binaryPath, home,
		"session", "add",
		"--date", "2024-06-10",
		"--type", "CHANGE_SCHEDULE",
		"--description", "Moved to hall B",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runSCDC(t, binaryPath, home, "calendar", "--month", "2024-06")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Upcoming Sessions")
	assert.Contains(t, stdout, "June 2024")
	assert.Contains(t, stdout, "ROUTINE VOLUNTEERING STILL AVAILABLE, Change in schedule")
	assert.Contains(t, stdout, "skipped 1 invalid session record")
	assert.Contains(t, stderr, "session record skipped")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "scdc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scdc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build scdc binary: %s", string(output))
	return binaryPath
}

func runSCDC(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeStoreFixture(home string) error {
	storeDir := filepath.Join(home, ".scdc")
	if err := os.MkdirAll(storeDir, 0o700); err != nil {
		return err
	}

	store := `version = 1

[[sessions]]
id = "s-1"
date = "2024-06-10"
session_type = "ROUTINE_AVAILABLE"

[[sessions]]
id = "s-2"
date = "2024-05-01"
session_type = "BOGUS"
`

	return os.WriteFile(filepath.Join(storeDir, "store.toml"), []byte(store), 0o600)
}
