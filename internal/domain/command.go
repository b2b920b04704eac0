package domain

import "strings"

// CommandSpec — одна конкретная команда, полученная при разворачивании
// задачи (flatten).
//
// CommandSpec создаётся заново при каждом вызове Flatten и нигде
// не кэшируется между запусками CLI.
type CommandSpec struct {
	// Origin — имя задачи, которая непосредственно содержала команду.
	Origin string

	// Argv — вектор аргументов команды. Никогда не пуст.
	Argv []string

	// AllowFail — политика отказа: логическое ИЛИ флага задачи-источника
	// и всех задач-предков по цепочке ссылок.
	AllowFail bool
}

// Rendered возвращает команду в виде одной строки для вывода пользователю.
// Argv не интерпретируется как shell-синтаксис, это только отображение.
func (c CommandSpec) Rendered() string {
	return strings.Join(c.Argv, " ")
}
