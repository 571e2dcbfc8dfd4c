package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleEDL = `TITLE: DEMO SEQUENCE
FCM: NON-DROP FRAME

001  TAPE01   V     C        00:01:00:00 00:01:05:00 00:00:00:00 00:00:05:00
* FROM CLIP NAME: scene_01_take_02
* SOURCE FILE: scene_01.mov

002  TAPE02   AA/V  D    030 00:02:00:00 00:02:10:00 00:00:05:00 00:00:15:00
* FROM CLIP NAME: scene_02_wide
* SOURCE FILE: scene_02.mov

003  TAPE01   V     C        00:03:00:00 00:03:02:00 00:00:15:00 00:00:17:00
* FROM CLIP NAME: interview_guest
* SOURCE FILE: interview.mov
`

const overlappingEDL = `TITLE: OVERLAP TEST

001  TAPE01   V     C        00:01:00:00 00:01:05:00 00:00:00:00 00:00:05:00
002  TAPE01   V     C        00:02:00:00 00:02:05:00 00:00:03:00 00:00:08:00
`

const sampleRules = `categories:
  - name: Scenes
    priority: 1
    patterns:
      - field: Clip Name
        type: glob
        pattern: "scene_*"
  - name: Interviews
    patterns:
      - field: Clip Name
        type: regex
        pattern: "interview"
`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
