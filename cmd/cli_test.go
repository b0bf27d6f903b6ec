package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarShowsMarkedDatesAndSkipsInvalidRecords(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStoreFixture(home))

	stdout, stderr, err := executeCLI(t, home, "calendar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Upcoming Sessions")
	assert.Contains(t, stdout, "days: 2")
	assert.Contains(t, stdout, "2024-06-10")
	assert.Contains(t, stdout, "2024-06-11")
	assert.Contains(t, stdout, "ROUTINE VOLUNTEERING STILL AVAILABLE, Change in schedule")
	assert.Contains(t, stdout, "skipped 2 invalid session records")
	assert.NotContains(t, stdout, "2024-05-01")

	assert.Contains(t, stderr, "session record skipped")
	assert.Contains(t, stderr, "BOGUS")
}

func TestCalendarJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStoreFixture(home))

	stdout, _, err := executeCLI(t, home, "calendar", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var payload struct {
		MarkedDates map[string]struct {
			Date string `json:"date"`
			Dots []struct {
				Key   string `json:"key"`
				Color string `json:"color"`
			} `json:"dots"`
			PrimaryColor string `json:"primaryColor"`
		} `json:"markedDates"`
		Legend []struct {
			Type  string `json:"type"`
			Label string `json:"label"`
			Color string `json:"color"`
		} `json:"legend"`
		Diagnostics []struct {
			Index       int    `json:"index"`
			Date        string `json:"date"`
			SessionType string `json:"sessionType"`
			Error       string `json:"error"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	require.Len(t, payload.MarkedDates, 2)
	day := payload.MarkedDates["2024-06-10"]
	assert.Equal(t, "2024-06-10", day.Date)
	require.Len(t, day.Dots, 2)
	assert.Equal(t, "ROUTINE_AVAILABLE", day.Dots[0].Key)
	assert.Equal(t, "blue", day.Dots[0].Color)
	assert.Equal(t, "CHANGE_SCHEDULE", day.Dots[1].Key)
	assert.Equal(t, "red", day.PrimaryColor)

	assert.Len(t, payload.Legend, 5)
	require.Len(t, payload.Diagnostics, 2)
	assert.Equal(t, 2, payload.Diagnostics[0].Index)
	assert.Equal(t, "BOGUS", payload.Diagnostics[0].SessionType)
	assert.Equal(t, 3, payload.Diagnostics[1].Index)
	assert.Equal(t, "June 11", payload.Diagnostics[1].Date)
}

func TestCalendarMonthFiltersAndDrawsGrid(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStoreFixture(home))

	stdout, _, err := executeCLI(t, home, "calendar", "--month", "2024-06")
	require.NoError(t, err)
	assert.Contains(t, stdout, "June 2024")
	assert.Contains(t, stdout, "10*")
	assert.Contains(t, stdout, "11*")

	stdout, _, err = executeCLI(t, home, "calendar", "--month", "2024-07", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"markedDates\": {}")
}

func TestCalendarRejectsInvertedRange(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStoreFixture(home))

	_, _, err := executeCLI(t, home, "calendar", "--from", "2024-06-11", "--to", "2024-06-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is after")
}

func TestCalendarWithoutStoreIsEmpty(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "calendar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "days: 0")
	assert.Contains(t, stdout, "No sessions scheduled.")
}

func TestLegendListsTypesInOrder(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "legend", "--json")
	require.NoError(t, err)

	var entries []struct {
		Type  string `json:"type"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "ROUTINE_AVAILABLE", entries[0].Type)
	assert.Equal(t, "ROUTINE_OVERBOOKED", entries[4].Type)
	assert.Equal(t, "orange", entries[4].Color)

	stdout, _, err = executeCLI(t, home, "legend")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Other Volunteering (yellow)")
}

func TestSessionAddListRemove(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "session", "add", "--date", "2024-06-12", "--type", "NEW_COMPETITIONS", "--description", "Relay heats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "added session")
	assert.Contains(t, stdout, "on 2024-06-12 (NEW_COMPETITIONS)")

	stdout, _, err = executeCLI(t, home, "session", "list", "--json")
	require.NoError(t, err)
	var sessions []struct {
		ID          string `json:"id"`
		Date        string `json:"date"`
		SessionType string `json:"sessionType"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, "Relay heats", sessions[0].Description)

	_, _, err = executeCLI(t, home, "session", "remove", sessions[0].ID)
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "session", "remove", sessions[0].ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestSessionAddRejectsUnknownTypeAndBadDate(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "add", "--date", "2024-06-12", "--type", "BOGUS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOGUS")

	_, _, err = executeCLI(t, home, "session", "add", "--date", "12/06/2024", "--type", "NEW_COMPETITIONS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12/06/2024")

	_, _, err = executeCLI(t, home, "session", "add", "--type", "NEW_COMPETITIONS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"date\" not set")
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStoreFixture(home))

	stdout, _, err := executeCLI(t, home, "announcement", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Kit collection moved to Friday")
	assert.Contains(t, lines[1], "Welcome volunteers")

	_, _, err = executeCLI(t, home, "announcement", "add", "Bring", "water")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "announcement", "list")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(stdout, "\n")[0], "Bring water")
}

func TestAnnouncementListEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "announcement", "list")
	require.NoError(t, err)
	assert.Equal(t, "No announcements available.\n", stdout)
}

func TestVideoAddAndList(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "video", "add", "--sport", "Football", "--kind", "howToPlay", "--title", "Offside explained", "--url", "https://example.org/offside")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "video", "list", "--sport", "Football", "--kind", "howToPlay")
	require.NoError(t, err)
	assert.Contains(t, stdout, "How to Play: Football")
	assert.Contains(t, stdout, "Offside explained\thttps://example.org/offside")

	stdout, _, err = executeCLI(t, home, "video", "list", "--sport", "Football", "--kind", "howToAssist")
	require.NoError(t, err)
	assert.Contains(t, stdout, "How to Assist: Football")
	assert.Contains(t, stdout, "No videos available.")

	_, _, err = executeCLI(t, home, "video", "list", "--sport", "Football", "--kind", "howToWatch")
	require.Error(t, err)
}

func TestRegisterStoresAndEchoesSubmission(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home,
		"register",
		"--name", "Chan Tai Man",
		"--email", "tm.chan@example.org",
		"--location", "Sha Tin Sports Ground",
		"--start-date", "2024-06-01",
		"--nearest-mtr", "Sha Tin",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Registration submitted successfully!")
	assert.Contains(t, stdout, "Name: Chan Tai Man")
	assert.Contains(t, stdout, "Start date: 2024-06-01")

	stdout, _, err = executeCLI(t, home, "registration", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Chan Tai Man\ttm.chan@example.org\t2024-06-01\tSha Tin")

	_, _, err = executeCLI(t, home, "register", "--name", "x", "--start-date", "soon")
	require.Error(t, err)
}

func TestStorePathFromEnvironment(t *testing.T) {
	home := t.TempDir()
	storePath := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("SCDC_STORE_PATH", storePath)

	_, _, err := executeCLI(t, home, "session", "add", "--date", "2024-06-12", "--type", "OTHER_VOLUNTEERING")
	require.NoError(t, err)

	_, err = os.Stat(storePath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".scdc", "store.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
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
date = "2024-06-10"
session_type = "CHANGE_SCHEDULE"
description = "Moved to hall B"

[[sessions]]
id = "s-3"
date = "2024-05-01"
session_type = "BOGUS"

[[sessions]]
id = "s-4"
date = "June 11"
session_type = "NEW_COMPETITIONS"

[[sessions]]
id = "s-5"
date = "2024-06-11"
session_type = "ROUTINE_OVERBOOKED"

[[announcements]]
id = "a-1"
text = "Welcome volunteers"
created_at = "2024-05-01T09:00:00Z"

[[announcements]]
id = "a-2"
text = "Kit collection moved to Friday"
created_at = "2024-05-20T09:00:00Z"
`

	return os.WriteFile(filepath.Join(storeDir, "store.toml"), []byte(store), 0o600)
}
