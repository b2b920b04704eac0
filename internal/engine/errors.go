package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки определения задач.
var (
	// ErrUnknownTask — ссылка на несуществующую задачу.
	ErrUnknownTask = errors.New("unknown task")

	// ErrEmptyCommand — команда с пустым argv.
	ErrEmptyCommand = errors.New("empty command")

	// ErrBadStep — шаг неподдерживаемой формы.
	ErrBadStep = errors.New("unsupported command value")

	// ErrCycle — цикл в ссылках задач.
	ErrCycle = errors.New("task recursion detected")
)

// UnknownTaskError — задача с таким именем не определена.
type UnknownTaskError struct {
	Name string
}

// Error реализует интерфейс error.
func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q", e.Name)
}

// Unwrap возвращает базовую ошибку.
func (e *UnknownTaskError) Unwrap() error {
	return ErrUnknownTask
}

// EmptyCommandError — задача содержит команду с пустым argv.
type EmptyCommandError struct {
	Task string
}

// Error реализует интерфейс error.
func (e *EmptyCommandError) Error() string {
	return fmt.Sprintf("task %q contains an empty command", e.Task)
}

// Unwrap возвращает базовую ошибку.
func (e *EmptyCommandError) Unwrap() error {
	return ErrEmptyCommand
}

// CycleError — раскрытие задачи вернулось к задаче, уже находящейся
// на стеке раскрытия.
type CycleError struct {
	// Path — цепочка имён от первого вхождения до повтора.
	// Начинается и заканчивается повторившимся именем: a -> b -> a.
	Path []string
}

// Error реализует интерфейс error.
func (e *CycleError) Error() string {
	return "task recursion detected: " + strings.Join(e.Path, " -> ")
}

// Unwrap возвращает базовую ошибку.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
