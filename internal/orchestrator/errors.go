package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки выполнения последовательностей.
var (
	// ErrCommandFailed — команда задачи завершилась с ненулевым кодом
	// и не была помечена allow_fail.
	ErrCommandFailed = errors.New("command failed")

	// ErrComponentFailed — установка компонента завершилась с ошибкой.
	ErrComponentFailed = errors.New("component install failed")
)

// CommandError — невосстановимый сбой команды задачи.
type CommandError struct {
	// Origin — имя задачи, объявившей команду.
	Origin string

	// Argv — команда и аргументы.
	Argv []string

	// Err — причина (обычно *executor.ExitError).
	Err error
}

// Error реализует интерфейс error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("task %s: command %q failed: %v", e.Origin, strings.Join(e.Argv, " "), e.Err)
}

// Unwrap возвращает цепочку причин.
func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}

// ComponentError — сбой детекции или установки компонента.
type ComponentError struct {
	// Component — строковый идентификатор компонента.
	Component string

	// Stage — "detect" или "install".
	Stage string

	// Err — причина.
	Err error
}

// Error реализует интерфейс error.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("component %s: %s failed: %v", e.Component, e.Stage, e.Err)
}

// Unwrap возвращает цепочку причин.
func (e *ComponentError) Unwrap() []error {
	return []error{ErrComponentFailed, e.Err}
}
