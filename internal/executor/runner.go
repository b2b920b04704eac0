package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// Максимальная длина одной строки вывода дочернего процесса.
const maxLineSize = 1024 * 1024

// Runner — контракт запуска внешних команд.
//
// Выделен в интерфейс, чтобы оркестратор тестировался без реальных
// процессов.
type Runner interface {
	// Run запускает команду с наследованием stdout/stderr и ждёт завершения.
	Run(ctx context.Context, argv []string) error

	// Stream запускает команду с piped stdout/stderr, выводя каждую
	// строку с префиксом label, и ждёт завершения после полного
	// вычитывания обоих потоков.
	Stream(ctx context.Context, label string, argv []string) error
}

// ExecRunner — Runner поверх os/exec.
type ExecRunner struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Config — конфигурация ExecRunner.
type Config struct {
	// Logger (опционально; если nil — используется slog.Default()).
	Logger *slog.Logger

	// Stdout/Stderr (опционально; по умолчанию — потоки процесса).
	Stdout io.Writer
	Stderr io.Writer
}

// New создаёт новый ExecRunner.
func New(cfg Config) *ExecRunner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecRunner{logger: logger, stdout: stdout, stderr: stderr}
}

// Run запускает команду, не перехватывая вывод.
func (r *ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	r.logger.Debug("running command", "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		return &SpawnError{Binary: argv[0], Err: err}
	}
	return r.wait(cmd, argv)
}

// Stream запускает команду с построчным выводом обоих потоков.
//
// Каждый поток вычитывается своей горутиной, чтобы заполненный pipe
// не блокировал процесс. Обе горутины присоединяются до Wait.
func (r *ExecRunner) Stream(ctx context.Context, label string, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	r.logger.Debug("streaming command", "label", label, "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &SpawnError{Binary: argv[0], Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &SpawnError{Binary: argv[0], Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &SpawnError{Binary: argv[0], Err: err}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.drain(stdout, r.stdout, label+" out")
	}()
	go func() {
		defer wg.Done()
		r.drain(stderr, r.stderr, label+" err")
	}()
	wg.Wait()

	return r.wait(cmd, argv)
}

// drain построчно переливает поток дочернего процесса с префиксом источника.
func (r *ExecRunner) drain(src io.Reader, dst io.Writer, prefix string) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		fmt.Fprintf(dst, "%s | %s\n", prefix, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("reading command output", "stream", prefix, "error", err)
	}
}

// wait ждёт завершения процесса и классифицирует результат.
func (r *ExecRunner) wait(cmd *exec.Cmd, argv []string) error {
	err := cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Argv: argv, Code: exitErr.ExitCode()}
	}
	return &SpawnError{Binary: argv[0], Err: err}
}
