package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cratedig/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	musicDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"error\"\n",
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	musicDir := filepath.Join(base, "music")
	testsupport.WriteFile(t, filepath.Join(musicDir, "Night Drive.flp"), 2048)
	testsupport.WriteFile(t, filepath.Join(musicDir, "Song", "Song.song"), 4096)
	testsupport.WriteFile(t, filepath.Join(musicDir, "Song", "Song.wav"), 512)
	testsupport.WriteFile(t, filepath.Join(musicDir, "Backups", "Old.flp"), 128)

	return &cliTestEnv{baseDir: base, configPath: configPath, musicDir: musicDir}
}

func runCLI(t *testing.T, env *cliTestEnv, args []string, stdin string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func TestAddListFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, []string{"add", env.musicDir}, "")
	if err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}
	requireContains(t, out, "2 new")

	// Re-running the scan must not duplicate anything.
	out, err = runCLI(t, env, []string{"add", env.musicDir}, "")
	if err != nil {
		t.Fatalf("second add: %v\n%s", err, out)
	}
	requireContains(t, out, "0 new")
	requireContains(t, out, "2 already cataloged")

	out, err = runCLI(t, env, []string{"list"}, "")
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	requireContains(t, out, "Night Drive")
	requireContains(t, out, "Song")
}

func TestRefineRejectStatsFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, []string{"add", env.musicDir}, ""); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, []string{"refine", "1", "--genre", "House", "--rating", "8"}, "")
	if err != nil {
		t.Fatalf("refine: %v\n%s", err, out)
	}
	requireContains(t, out, "Promoted")

	if _, err := runCLI(t, env, []string{"refine", "1"}, ""); err == nil {
		t.Fatal("refining an already promoted project must fail")
	}

	out, err = runCLI(t, env, []string{"reject", "2", "--reason", "empty sketch"}, "")
	if err != nil {
		t.Fatalf("reject: %v\n%s", err, out)
	}
	requireContains(t, out, "Discarded")

	out, err = runCLI(t, env, []string{"list", "--curated"}, "")
	if err != nil {
		t.Fatalf("list --curated: %v\n%s", err, out)
	}
	requireContains(t, out, "House")

	out, err = runCLI(t, env, []string{"list", "--discarded"}, "")
	if err != nil {
		t.Fatalf("list --discarded: %v\n%s", err, out)
	}
	requireContains(t, out, "empty sketch")

	out, err = runCLI(t, env, []string{"stats"}, "")
	if err != nil {
		t.Fatalf("stats: %v\n%s", err, out)
	}
	requireContains(t, out, "awaiting review")

	out, err = runCLI(t, env, []string{"analytics"}, "")
	if err != nil {
		t.Fatalf("analytics: %v\n%s", err, out)
	}
	requireContains(t, out, "Lifecycle")
}

func TestRefineRatingValidation(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, []string{"add", env.musicDir}, ""); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}

	if _, err := runCLI(t, env, []string{"refine", "1", "--rating", "11"}, ""); err == nil {
		t.Fatal("rating 11 must fail validation")
	}
	if _, err := runCLI(t, env, []string{"refine", "1", "--rating", "0"}, ""); err == nil {
		t.Fatal("explicit rating 0 must fail validation")
	}
}

func TestShowCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, []string{"add", env.musicDir}, ""); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, []string{"show", "night"}, "")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	requireContains(t, out, "Night Drive")
	requireContains(t, out, "FL Studio")

	if _, err := runCLI(t, env, []string{"show", "no such thing"}, ""); err == nil {
		t.Fatal("show for an unknown project must fail")
	}
}

func TestReviewCommandScripted(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, []string{"add", env.musicDir}, ""); err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}

	// Refine the first project accepting defaults, then quit.
	stdin := "r\n\n\n\nq\n"
	out, err := runCLI(t, env, []string{"review"}, stdin)
	if err != nil {
		t.Fatalf("review: %v\n%s", err, out)
	}
	requireContains(t, out, "Promoted")
}

func TestVersionCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v\n%s", err, out)
	}
	requireContains(t, out, "cratedig "+version)
	requireContains(t, out, "cratedig.db")
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(env.baseDir, "fresh", "config.toml")
	out, err := runCLI(t, env, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}
