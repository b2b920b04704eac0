package engine

import (
	"fmt"
	"sort"

	"github.com/Bakobiibizo/devkit/internal/config"
	"github.com/Bakobiibizo/devkit/internal/domain"
)

// TaskIndex — неизменяемый набор определений задач.
//
// Строится один раз за запуск CLI из конфигурации и далее только
// читается. Результаты Flatten не кэшируются между вызовами.
type TaskIndex struct {
	tasks map[string]taskDef
}

// taskDef — разобранное определение задачи.
type taskDef struct {
	allowFail bool
	steps     []taskStep
}

// taskStep — один шаг задачи. Для ссылки argv == nil и ref содержит имя
// задачи; для команды argv не nil (возможно, пустой — это ошибка,
// которую обнаружит Flatten).
type taskStep struct {
	ref  string
	argv []string
}

// TaskSummary — краткое описание задачи для `dev list`.
type TaskSummary struct {
	Name      string
	Steps     int
	AllowFail bool
}

// FromConfig разбирает таблицу задач конфигурации в TaskIndex.
//
// Ошибки формы шагов — ошибки определения: они возвращаются здесь,
// до какого-либо выполнения.
func FromConfig(cfg *config.DevConfig) (*TaskIndex, error) {
	index := &TaskIndex{tasks: make(map[string]taskDef, len(cfg.Tasks))}

	for name, task := range cfg.Tasks {
		def, err := parseTask(name, task)
		if err != nil {
			return nil, err
		}
		index.tasks[name] = def
	}

	return index, nil
}

// parseTask превращает нетипизированные значения шагов в taskStep.
func parseTask(name string, task config.Task) (taskDef, error) {
	def := taskDef{allowFail: task.AllowFail}

	for _, value := range task.Commands {
		switch v := value.(type) {
		case string:
			def.steps = append(def.steps, taskStep{ref: v})
		case []any:
			argv := make([]string, 0, len(v))
			for _, item := range v {
				arg, ok := item.(string)
				if !ok {
					return taskDef{}, fmt.Errorf("task %q contains non-string command argument %v: %w", name, item, ErrBadStep)
				}
				argv = append(argv, arg)
			}
			def.steps = append(def.steps, taskStep{argv: argv})
		default:
			return taskDef{}, fmt.Errorf("task %q contains unsupported command value %v: %w", name, value, ErrBadStep)
		}
	}

	return def, nil
}

// IsEmpty возвращает true, если задач не определено.
func (x *TaskIndex) IsEmpty() bool {
	return len(x.tasks) == 0
}

// List возвращает сводки всех задач в алфавитном порядке.
func (x *TaskIndex) List() []TaskSummary {
	names := make([]string, 0, len(x.tasks))
	for name := range x.tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TaskSummary, 0, len(names))
	for _, name := range names {
		def := x.tasks[name]
		out = append(out, TaskSummary{Name: name, Steps: len(def.steps), AllowFail: def.allowFail})
	}
	return out
}

// Flatten рекурсивно раскрывает задачу в линейный список команд.
//
// Порядок команд — порядок объявления шагов с рекурсивным инлайном
// ссылок (pre-order). Результат детерминирован: повторные вызовы с теми
// же определениями дают идентичную последовательность.
func (x *TaskIndex) Flatten(task string) ([]domain.CommandSpec, error) {
	stack := make([]string, 0, 8)
	return x.flatten(task, false, stack)
}

// flatten — рекурсивное раскрытие с явным стеком текущей цепочки имён.
func (x *TaskIndex) flatten(task string, inheritedAllowFail bool, stack []string) ([]domain.CommandSpec, error) {
	for i, name := range stack {
		if name == task {
			path := append(append([]string{}, stack[i:]...), task)
			return nil, &CycleError{Path: path}
		}
	}

	def, ok := x.tasks[task]
	if !ok {
		return nil, &UnknownTaskError{Name: task}
	}

	stack = append(stack, task)
	allowFail := inheritedAllowFail || def.allowFail

	var commands []domain.CommandSpec
	for _, step := range def.steps {
		if step.argv == nil {
			nested, err := x.flatten(step.ref, allowFail, stack)
			if err != nil {
				return nil, err
			}
			commands = append(commands, nested...)
			continue
		}

		if len(step.argv) == 0 {
			return nil, &EmptyCommandError{Task: task}
		}
		commands = append(commands, domain.CommandSpec{
			Origin:    task,
			Argv:      step.argv,
			AllowFail: allowFail,
		})
	}

	return commands, nil
}
