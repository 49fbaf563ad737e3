package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-pong/internal/storage"
)

// resetGlobals points every global flag at a scratch home directory.
func resetGlobals(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	flagConfig = ""
	flagDifficulty = ""
	flagDBPath = filepath.Join(dir, "highscore.db")
	flagLogLevel = "error"
	flagLogFile = filepath.Join(dir, "logs", "pong.log")
	return dir
}

// runFrameCmd runs a fresh frame command with args and returns its output.
func runFrameCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := &cobra.Command{Use: "frame", RunE: runFrame, SilenceUsage: true, SilenceErrors: true}
	addFrameFlags(c)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestFrameWritesBMP(t *testing.T) {
	dir := resetGlobals(t)
	path := filepath.Join(dir, "shots", "title.bmp")

	out, err := runFrameCmd(t, "--ticks", "3", "--out", path, "--ascii")
	if err != nil {
		t.Fatalf("frame error = %v", err)
	}
	if !strings.Contains(out, "after 3 ticks (state start") {
		t.Errorf("output = %q, expected a start-screen summary", out)
	}
	if !strings.Contains(out, "#") {
		t.Error("--ascii should print the frame")
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("BMP not written: %v", err)
	}
}

func TestFrameScene(t *testing.T) {
	dir := resetGlobals(t)

	out, err := runFrameCmd(t,
		"--ball", "100,50,1,1", "--hits", "4", "--misses", "2", "--ticks", "2",
		"--out", filepath.Join(dir, "scene.bmp"))
	if err != nil {
		t.Fatalf("frame error = %v", err)
	}
	if !strings.Contains(out, "state running, hits 4, misses 2") {
		t.Errorf("output = %q, expected the scene's score", out)
	}
}

func TestFrameRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero ticks", []string{"--ticks", "0"}},
		{"negative press", []string{"--press-at=-1"}},
		{"bad hold", []string{"--hold", "bogus"}},
		{"short ball", []string{"--ball", "1,2"}},
		{"negative hits", []string{"--hits=-1"}},
		{"misses at limit", []string{"--misses", "10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := resetGlobals(t)
			out := filepath.Join(dir, "never.bmp")
			if _, err := runFrameCmd(t, append(tc.args, "--out", out)...); err == nil {
				t.Fatal("frame should fail")
			}
			if _, err := os.Stat(out); err == nil {
				t.Error("no BMP should be written on failure")
			}
		})
	}
}

func TestCommandsReturnConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(*cobra.Command, []string) error
	}{
		{"frame", runFrame},
		{"serve", runServe},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := resetGlobals(t)
			flagTicks = 1
			flagConfig = filepath.Join(dir, "broken.yaml")
			if err := os.WriteFile(flagConfig, []byte("screen: [\n"), 0o600); err != nil {
				t.Fatal(err)
			}

			c := &cobra.Command{}
			c.SetOut(&bytes.Buffer{})
			if err := tc.run(c, nil); err == nil {
				t.Fatal("a broken config file should be reported as an error")
			}
			if _, err := os.Stat(flagLogFile); err != nil {
				t.Errorf("log file should have been opened: %v", err)
			}
		})
	}
}

func TestPlayRejectsBadFlags(t *testing.T) {
	resetGlobals(t)

	flagRenderer, flagScale = "opengl", 0
	if err := runPlay(nil, nil); err == nil || !strings.Contains(err.Error(), "unknown renderer") {
		t.Errorf("runPlay() = %v, expected an unknown renderer error", err)
	}

	flagRenderer, flagScale = "tea", -1
	if err := runPlay(nil, nil); err == nil {
		t.Error("runPlay() with a negative scale should fail")
	}
	flagScale = 0
}

func TestScoresShowAndReset(t *testing.T) {
	resetGlobals(t)
	flagReset = false

	show := func() string {
		t.Helper()
		c := &cobra.Command{}
		var out bytes.Buffer
		c.SetOut(&out)
		if err := runScores(c, nil); err != nil {
			t.Fatalf("runScores() error = %v", err)
		}
		return out.String()
	}

	if out := show(); !strings.Contains(out, "No high score recorded yet.") {
		t.Errorf("empty database output = %q", out)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(storage.HighScoreNamespace, storage.HighScoreKey, 42); err != nil {
		t.Fatal(err)
	}
	store.Close()

	if out := show(); !strings.Contains(out, "42") {
		t.Errorf("output = %q, expected the stored score", out)
	}

	flagReset = true
	if out := show(); !strings.Contains(out, "High score cleared.") {
		t.Errorf("reset output = %q", out)
	}
	flagReset = false

	if out := show(); !strings.Contains(out, "No high score recorded yet.") {
		t.Errorf("output after reset = %q", out)
	}
}

func TestSSHPort(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":2222", "2222"},
		{"0.0.0.0:23234", "23234"},
		{"localhost", "23234"},
		{"host:", "23234"},
	}

	for _, tc := range tests {
		if got := sshPort(tc.addr); got != tc.expected {
			t.Errorf("sshPort(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

// chdir changes the working directory to dir and restores it when the test
// finishes (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
