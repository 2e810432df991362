package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/advent-of-code-go/internal/domain"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AOC_CONFIG_PATH", "")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// --- parseDays ---

func TestParseDays(t *testing.T) {
	cases := []struct {
		args    []string
		want    []int
		wantErr bool
	}{
		{args: nil, want: []int{}},
		{args: []string{"1", "6"}, want: []int{1, 6}},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"26"}, wantErr: true},
		{args: []string{"six"}, wantErr: true},
	}
	for _, c := range cases {
		got, err := parseDays(c.args)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseDays(%v) expected an error", c.args)
			}
			continue
		}
		if err != nil || !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseDays(%v) = %v, %v; want %v", c.args, got, err, c.want)
		}
	}
}

// --- run ---

func TestRun_SingleDayFromFile(t *testing.T) {
	isolateEnv(t)
	input := writeFile(t, t.TempDir(), "pairs.txt", "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n")

	out, _, err := execute(t, "", "run", "4", "--input", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Day 04 (Camp Cleanup)") {
		t.Errorf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "pairs where one range contains the other: 2") {
		t.Errorf("missing part 1 answer in output:\n%s", out)
	}
	if !strings.Contains(out, "pairs that overlap: 4") {
		t.Errorf("missing part 2 answer in output:\n%s", out)
	}
}

func TestRun_Stdin(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n", "run", "6", "--input", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "(window 4): 7") || !strings.Contains(out, "(window 14): 19") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRun_InputDir(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "day01.txt", "1000\n2000\n\n3000\n4000\n4000\n")
	writeFile(t, dir, "day02.txt", "A Y\nB X\nC Z\n")

	out, _, err := execute(t, "", "run", "1", "2", "--input-dir", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"max calories: 11000", "top 3 calories [11000 3000]: 14000", ": 15", ": 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Day 01") > strings.Index(out, "Day 02") {
		t.Errorf("days printed out of order:\n%s", out)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	stream := writeFile(t, dir, "signal.txt", "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")
	cfg := writeFile(t, dir, "aoc.yaml", "inputs:\n  6: "+stream+"\nsignal:\n  packet_window: 2\n")

	out, _, err := execute(t, "", "run", "6", "--config", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "(window 2): 2") {
		t.Errorf("configured window was not applied:\n%s", out)
	}
}

func TestRun_MissingInput(t *testing.T) {
	isolateEnv(t)

	_, _, err := execute(t, "", "run", "3", "--input-dir", t.TempDir())
	if !errors.Is(err, domain.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestRun_MalformedRecord(t *testing.T) {
	isolateEnv(t)
	input := writeFile(t, t.TempDir(), "rps.txt", "A Y\nB\n")

	out, _, err := execute(t, "", "run", "2", "--input", input)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
	if out != "" {
		t.Errorf("no answers should be printed on failure, got:\n%s", out)
	}
}

func TestRun_InputNeedsOneDay(t *testing.T) {
	isolateEnv(t)

	if _, _, err := execute(t, "", "run", "1", "2", "--input", "x.txt"); err == nil {
		t.Error("expected an error when --input is combined with several days")
	}
}

func TestRun_UnimplementedDay(t *testing.T) {
	isolateEnv(t)

	if _, _, err := execute(t, "", "run", "5", "--input", "-"); err == nil {
		t.Error("expected an error for a day without a solver")
	}
}

func TestRun_MissingDotEnvWarns(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := execute(t, "A Y\n", "run", "2", "--input", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "WRN") || !strings.Contains(stderr, "No .env file found") {
		t.Errorf("expected a warning about the missing .env file, got:\n%s", stderr)
	}
}

// --- execute ---

func TestExecute_ReturnsError(t *testing.T) {
	isolateEnv(t)

	if err := Execute(context.Background(), []string{"run", "0"}); err == nil {
		t.Error("expected an error for an invalid day")
	}
	if err := Execute(context.Background(), []string{"list", "--input-dir", t.TempDir()}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// --- list ---

func TestList(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "", "list", "--input-dir", "puzzles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 days, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Day 01") || !strings.Contains(lines[0], filepath.Join("puzzles", "day01.txt")) {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "Day 06") {
		t.Errorf("unexpected last line: %q", lines[4])
	}
}
