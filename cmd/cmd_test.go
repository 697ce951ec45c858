package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arcanaland/highcard/internal/console"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HIGHCARD_CONFIG", "")
	t.Chdir(dir)
	return dir
}

// resetFlags restores every flag in the command tree to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(in))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestRootPlaysSeededGame(t *testing.T) {
	isolate(t)
	first, err := run(t, strings.Repeat("\n", 27), "--seed", "42", "--no-color", "--no-clear")
	if err != nil {
		t.Fatalf("highcard: %v", err)
	}
	if !strings.Contains(first, "Game Over!") || !strings.Contains(first, "Hand 26:") {
		t.Errorf("game did not finish:\n%s", first)
	}
	if strings.Contains(first, "\x1b[") {
		t.Errorf("output contains escape sequences with --no-color --no-clear")
	}

	second, err := run(t, strings.Repeat("\n", 27), "--seed", "42", "--no-color", "--no-clear")
	if err != nil {
		t.Fatalf("highcard: %v", err)
	}
	if first != second {
		t.Error("same seed produced different games")
	}
}

func TestRootInputClosed(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "--seed", "1")
	if !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("highcard with closed stdin=%v, want ErrInputClosed", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	isolate(t)
	if _, err := run(t, "", "extra"); err == nil {
		t.Error("highcard extra succeeded, want error")
	}
}

func TestDeckCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "deck")
	if err != nil {
		t.Fatalf("highcard deck: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 26 {
		t.Fatalf("highcard deck printed %d lines, want 26", len(lines))
	}
	if want := " 1. 2H  vs 3H   (2 of Hearts vs 3 of Hearts)"; lines[0] != want {
		t.Errorf("first line=%q, want %q", lines[0], want)
	}

	a, err := run(t, "", "deck", "--seed", "9")
	if err != nil {
		t.Fatalf("highcard deck --seed: %v", err)
	}
	b, err := run(t, "", "deck", "--seed", "9")
	if err != nil {
		t.Fatalf("highcard deck --seed: %v", err)
	}
	if a != b {
		t.Error("highcard deck --seed is not reproducible")
	}
	if a == out {
		t.Error("highcard deck --seed did not shuffle")
	}
}

func TestShowCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "show", "qd", "--no-color")
	if err != nil {
		t.Fatalf("highcard show: %v", err)
	}
	for _, want := range []string{"│Q      │", "│   ♦   │", "Q of Diamonds", "Value: 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "", "show", "zz"); err == nil {
		t.Error("highcard show zz succeeded, want error")
	}
}

func TestConfigAndValidate(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "", "config", "path")
	if err != nil {
		t.Fatalf("highcard config path: %v", err)
	}
	path := filepath.Join(dir, "highcard", "config.toml")
	if strings.TrimSpace(out) != path {
		t.Errorf("config path=%q, want %q", strings.TrimSpace(out), path)
	}

	if _, err := run(t, "", "config", "init"); err != nil {
		t.Fatalf("highcard config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err = run(t, "", "validate")
	if err != nil {
		t.Fatalf("highcard validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("validate output:\n%s", out)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("color = \"plaid\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "", "validate", bad)
	if err == nil {
		t.Errorf("highcard validate on a bad file succeeded:\n%s", out)
	}
	if !strings.Contains(out, "unknown color mode: plaid") {
		t.Errorf("validate output missing error:\n%s", out)
	}
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	isolate(t)
	if _, err := run(t, "", "deck", "--seed", "9"); err != nil {
		t.Fatalf("highcard deck --seed: %v", err)
	}

	out, err := run(t, "", "deck")
	if err != nil {
		t.Fatalf("highcard deck: %v", err)
	}
	if !strings.HasPrefix(out, " 1. 2H  vs 3H ") {
		t.Errorf("highcard deck after --seed run is still shuffled:\n%s", out)
	}
	if RootCmd.PersistentFlags().Changed("no-color") {
		t.Error("no-color still marked as changed")
	}
}

func TestExecute(t *testing.T) {
	dir := isolate(t)
	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetArgs([]string{"config", "path"})
	RootCmd.SetOut(&out)
	if err := Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := filepath.Join(dir, "highcard", "config.toml"); strings.TrimSpace(out.String()) != want {
		t.Errorf("Execute printed %q, want %q", out.String(), want)
	}
}
