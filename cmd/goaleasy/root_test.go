package goaleasy

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, db string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", db, "--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\noutput: %s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaleasy.db")
	for i := 0; i < 2; i++ {
		out := runCLI(t, path, "init")
		if !strings.Contains(out, "Initialized goaleasy database") {
			t.Fatalf("init run %d: unexpected output %q", i+1, out)
		}
	}
}

func TestGoalLifecycleThroughCLI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaleasy.db")
	runCLI(t, path, "init")

	out := runCLI(t, path, "goal", "add", "--title", "Save ₹10,000", "--size", "medium")
	if !strings.Contains(out, "5 milestones") {
		t.Fatalf("expected a 5-milestone medium goal, got %q", out)
	}

	out = runCLI(t, path, "goal", "list", "--filter", "all")
	if !strings.Contains(out, "Save ₹10,000") {
		t.Fatalf("goal missing from list: %q", out)
	}

	// Creation scheduled the morning reminder.
	out = runCLI(t, path, "notify", "list")
	if !strings.Contains(out, "Good Morning") {
		t.Fatalf("expected pending morning reminder, got %q", out)
	}
}

func TestTaskToggleRaisesStreakThroughCLI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaleasy.db")
	runCLI(t, path, "init")
	runCLI(t, path, "goal", "add", "--title", "Exercise", "--size", "small")

	list := runCLI(t, path, "goal", "list", "--filter", "all")
	var goalID string
	for _, line := range strings.Split(list, "\n") {
		if strings.Contains(line, "Exercise") {
			goalID = strings.Fields(line)[0]
		}
	}
	if goalID == "" {
		t.Fatalf("goal id not found in %q", list)
	}

	show := runCLI(t, path, "goal", "show", goalID)
	var taskID string
	for _, line := range strings.Split(show, "\n") {
		if strings.Contains(line, "Start working on goal") {
			fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "[ ]"))
			taskID = fields[0]
		}
	}
	if taskID == "" {
		t.Fatalf("task id not found in %q", show)
	}

	out := runCLI(t, path, "task", "toggle", goalID, taskID)
	if !strings.Contains(out, "streak is now 1") {
		t.Fatalf("expected streak 1 after first completion, got %q", out)
	}
}

func TestDoctorCleanOnFreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaleasy.db")
	runCLI(t, path, "init")
	runCLI(t, path, "goal", "add", "--title", "Ship", "--size", "big")

	out := runCLI(t, path, "doctor")
	if !strings.Contains(out, "Milestone count drift: 0") {
		t.Fatalf("expected clean doctor report, got %q", out)
	}
}
