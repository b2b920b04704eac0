package setup

import (
	"errors"
	"fmt"
)

// Ошибки выборки и разрешения компонентов.
var (
	// ErrNoComponents — пустая выборка.
	ErrNoComponents = errors.New("no components specified")

	// ErrUnknownComponent — имя не входит в каталог.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrDuplicateComponent — компонент запрошен дважды.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrCircularDependency — цикл в таблице зависимостей.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrPrerequisite — отсутствует бинарник, необходимый для установки.
	ErrPrerequisite = errors.New("missing prerequisite")
)

// UnknownComponentError — имя компонента не входит в закрытый каталог.
type UnknownComponentError struct {
	Name string
}

// Error реализует интерфейс error.
func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component %q", e.Name)
}

// Unwrap возвращает базовую ошибку.
func (e *UnknownComponentError) Unwrap() error {
	return ErrUnknownComponent
}

// DuplicateComponentError — компонент встречается в выборке дважды.
type DuplicateComponentError struct {
	Component Component
}

// Error реализует интерфейс error.
func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("duplicate component %q", string(e.Component))
}

// Unwrap возвращает базовую ошибку.
func (e *DuplicateComponentError) Unwrap() error {
	return ErrDuplicateComponent
}

// CircularDependencyError — при обходе зависимостей узел встретился
// в состоянии "in progress".
type CircularDependencyError struct {
	Component Component
}

// Error реализует интерфейс error.
func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency involving %q", string(e.Component))
}

// Unwrap возвращает базовую ошибку.
func (e *CircularDependencyError) Unwrap() error {
	return ErrCircularDependency
}

// PrerequisiteError — для установки компонента нужен бинарник,
// которого нет на машине. Ошибка окружения, фатальная.
type PrerequisiteError struct {
	Component Component
	Binary    string
}

// Error реализует интерфейс error.
func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s: %s is required but not installed", string(e.Component), e.Binary)
}

// Unwrap возвращает базовую ошибку.
func (e *PrerequisiteError) Unwrap() error {
	return ErrPrerequisite
}
