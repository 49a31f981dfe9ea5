package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	output, err := runCommand(t, "normalize", "測試歌曲（現場版）")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !strings.Contains(output, "canonical:   测试歌曲 (现场版)") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if !strings.Contains(output, "annotations: (现场版)") {
		t.Fatalf("expected annotation segment in output:\n%s", output)
	}
}

func TestNormalizeCommandJSON(t *testing.T) {
	output, err := runCommand(t, "--json", "normalize", "Song Title (Live)")
	if err != nil {
		t.Fatalf("normalize --json: %v", err)
	}
	if !strings.Contains(output, `"main_segment": "song title"`) {
		t.Fatalf("unexpected json output:\n%s", output)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[matching]",
		"title_weight = 0.5",
		"artist_weight = 0.5",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	output, err := runCommand(t, "config", "validate", path)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(output, "is valid") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestConfigValidateRejectsBadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[matching]",
		"title_weight = 0.9",
		"artist_weight = 0.4",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := runCommand(t, "config", "validate", path); err == nil {
		t.Fatal("expected validation failure for weights summing to 1.3")
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	output, err := runCommand(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(output, "Wrote sample configuration") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", path); err == nil {
		t.Fatal("expected second init to refuse overwriting")
	}
}

func TestMatchCommandWithCandidatesFile(t *testing.T) {
	dir := t.TempDir()
	candidatesPath := filepath.Join(dir, "candidates.json")
	candidates := `[
		{"id": "good", "title": "测试歌曲 (Live)", "artist_names": ["测试歌手"]},
		{"id": "noise", "title": "Unrelated Track", "artist_names": ["Somebody Else"]}
	]`
	if err := os.WriteFile(candidatesPath, []byte(candidates), 0o644); err != nil {
		t.Fatalf("write candidates: %v", err)
	}

	output, err := runCommand(t,
		"--config", filepath.Join(dir, "missing.toml"),
		"--json",
		"match", "測試歌曲（現場版）", "測試歌手",
		"--candidates", candidatesPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !strings.Contains(output, `"id": "good"`) {
		t.Fatalf("expected the live variant to match:\n%s", output)
	}
	if strings.Contains(output, `"id": "noise"`) {
		t.Fatalf("unrelated track should not survive matching:\n%s", output)
	}
}

func TestShouldSkipConfig(t *testing.T) {
	root := newRootCommand()
	normalize, _, err := root.Find([]string{"normalize"})
	if err != nil {
		t.Fatalf("find normalize: %v", err)
	}
	if !shouldSkipConfig(normalize) {
		t.Fatal("normalize must not require configuration")
	}
	matchCmd, _, err := root.Find([]string{"match"})
	if err != nil {
		t.Fatalf("find match: %v", err)
	}
	if shouldSkipConfig(matchCmd) {
		t.Fatal("match requires configuration")
	}
}
