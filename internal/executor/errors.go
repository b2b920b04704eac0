package executor

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки выполнения команд.
var (
	// ErrSpawn — процесс не удалось запустить (отсутствует бинарник,
	// нет прав). Ошибка окружения, всегда фатальная.
	ErrSpawn = errors.New("failed to start command")

	// ErrEmptyArgv — пустой argv-вектор.
	ErrEmptyArgv = errors.New("empty argv")
)

// SpawnError — команду не удалось запустить.
type SpawnError struct {
	// Binary — имя бинарника, который не удалось запустить.
	Binary string
	Err    error
}

// Error реализует интерфейс error.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot start %s: %v", e.Binary, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *SpawnError) Unwrap() error {
	return ErrSpawn
}

// ExitError — процесс завершился с ненулевым кодом выхода.
type ExitError struct {
	// Argv — запускавшаяся команда.
	Argv []string

	// Code — код выхода процесса.
	Code int
}

// Error реализует интерфейс error.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", strings.Join(e.Argv, " "), e.Code)
}

// ExitCode извлекает код выхода из ошибки выполнения.
// Возвращает -1, если ошибка не связана с кодом выхода.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}
