package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestRunner(stdout, stderr *bytes.Buffer) *ExecRunner {
	return New(Config{Stdout: stdout, Stderr: stderr})
}

func TestRun_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	err := r.Run(context.Background(), []string{"sh", "-c", "exit 0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_ExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.Code)
	}
	if ExitCode(err) != 3 {
		t.Errorf("ExitCode helper should return 3, got %d", ExitCode(err))
	}
}

func TestRun_MissingBinary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	err := r.Run(context.Background(), []string{"devkit-no-such-binary-xyz"})
	if !errors.Is(err, ErrSpawn) {
		t.Fatalf("expected ErrSpawn, got %v", err)
	}

	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %T", err)
	}
	if spawnErr.Binary != "devkit-no-such-binary-xyz" {
		t.Errorf("spawn error should name the binary, got %q", spawnErr.Binary)
	}
}

func TestRun_EmptyArgv(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	if err := r.Run(context.Background(), nil); !errors.Is(err, ErrEmptyArgv) {
		t.Errorf("expected ErrEmptyArgv, got %v", err)
	}
	if err := r.Stream(context.Background(), "x", nil); !errors.Is(err, ErrEmptyArgv) {
		t.Errorf("expected ErrEmptyArgv, got %v", err)
	}
}

func TestStream_PrefixesBothStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	err := r.Stream(context.Background(), "node", []string{"sh", "-c", "echo hello; echo oops 1>&2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "node out | hello") {
		t.Errorf("stdout should carry prefixed line, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "node err | oops") {
		t.Errorf("stderr should carry prefixed line, got %q", stderr.String())
	}
}

func TestStream_ExitCodeAfterDrain(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	err := r.Stream(context.Background(), "job", []string{"sh", "-c", "echo partial; exit 7"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 7 {
		t.Errorf("expected exit code 7, got %d", exitErr.Code)
	}

	// Вывод до падения должен быть вычитан полностью
	if !strings.Contains(stdout.String(), "job out | partial") {
		t.Errorf("output before failure should be drained, got %q", stdout.String())
	}
}
