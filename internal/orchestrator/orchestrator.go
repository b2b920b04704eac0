package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Bakobiibizo/devkit/internal/domain"
	"github.com/Bakobiibizo/devkit/internal/engine"
	"github.com/Bakobiibizo/devkit/internal/executor"
	"github.com/Bakobiibizo/devkit/internal/setup"
	"github.com/Bakobiibizo/devkit/internal/telemetry"
)

// Components — детекция и установка компонентов. Абстракция над
// setup.Context нужна тестам: прогон последовательности проверяется
// без обращения к машине.
type Components interface {
	Detect(ctx context.Context, c setup.Component) (domain.InstallState, error)
	Install(ctx context.Context, c setup.Component) error
}

// systemComponents — боевая реализация Components поверх setup.Context.
type systemComponents struct {
	sys *setup.Context
}

// SystemComponents возвращает Components, работающий с реальной машиной.
func SystemComponents(sys *setup.Context) Components {
	return &systemComponents{sys: sys}
}

func (s *systemComponents) Detect(ctx context.Context, c setup.Component) (domain.InstallState, error) {
	return c.Detect(ctx, s.sys)
}

func (s *systemComponents) Install(ctx context.Context, c setup.Component) error {
	return c.Install(ctx, s.sys)
}

// Orchestrator выполняет последовательности команд и установок.
type Orchestrator struct {
	runner     executor.Runner
	components Components
	logger     *slog.Logger
	out        io.Writer
}

// Config — конфигурация Orchestrator.
type Config struct {
	// Runner для команд задач (опционально; если nil — executor.New
	// с умолчаниями).
	Runner executor.Runner

	// Components для setup-прогонов (опционально; без него доступны
	// только задачи).
	Components Components

	// Logger (опционально; если nil — slog.Default()).
	Logger *slog.Logger

	// Out — сток строк прогресса (опционально; если nil — os.Stdout).
	Out io.Writer
}

// New создаёт Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = executor.New(executor.Config{Logger: logger})
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Orchestrator{
		runner:     runner,
		components: cfg.Components,
		logger:     logger,
		out:        out,
	}
}

// TaskOptions — режимы выполнения задачи.
type TaskOptions struct {
	// DryRun — печатать команды без запуска.
	DryRun bool
}

// RunTask разворачивает задачу и выполняет её команды по порядку.
//
// Развёртка выполняется целиком до запуска чего-либо: ошибка
// определения в любой ветке дерева означает, что ни одна команда
// не стартует. Команда с allow_fail при ненулевом коде выхода
// логируется как предупреждение, остальные прерывают прогон.
func (o *Orchestrator) RunTask(ctx context.Context, index *engine.TaskIndex, task string, opts TaskOptions) (domain.RunSummary, error) {
	logger := telemetry.WithTask(telemetry.WithRunID(o.logger, uuid.NewString()), task)

	commands, err := index.Flatten(task)
	if err != nil {
		return domain.RunSummary{}, err
	}

	summary := domain.RunSummary{Total: len(commands)}
	if summary.IsNoop() {
		logger.Info("task has no commands, nothing to do")
		return summary, nil
	}

	logger.Debug("task flattened", "commands", len(commands), "dry_run", opts.DryRun)

	for i, cmd := range commands {
		progress := fmt.Sprintf("[%d/%d] %s :: %s", i+1, len(commands), cmd.Origin, cmd.Rendered())

		if opts.DryRun {
			fmt.Fprintln(o.out, "[dry-run] "+progress)
			summary.Simulated++
			continue
		}

		fmt.Fprintln(o.out, progress)
		if err := o.runner.Run(ctx, cmd.Argv); err != nil {
			if cmd.AllowFail {
				logger.Warn("command failed, continuing",
					"origin", cmd.Origin,
					"command", cmd.Rendered(),
					"exit_code", executor.ExitCode(err),
				)
				summary.Executed++
				summary.Warned++
				continue
			}
			return summary, &CommandError{Origin: cmd.Origin, Argv: cmd.Argv, Err: err}
		}
		summary.Executed++
	}

	return summary, nil
}

// SetupOptions — режимы setup-прогона.
type SetupOptions struct {
	// DryRun — печатать план установки без детекции и установки.
	DryRun bool

	// NoDeps — не добавлять зависимости в выборку.
	NoDeps bool

	// SkipInstalled — детектировать каждый компонент и пропускать
	// уже установленные.
	SkipInstalled bool
}

// RunSetup разрешает выборку компонентов и устанавливает их по порядку.
//
// В dry-run план печатается без единого вызова detect/install. При
// SkipInstalled пропускаются только компоненты в состоянии INSTALLED:
// PARTIAL и PRESENT_BUT_UNKNOWN переустанавливаются. Сбой установки
// прерывает прогон — дальнейшие компоненты могли зависеть от упавшего.
func (o *Orchestrator) RunSetup(ctx context.Context, components []setup.Component, opts SetupOptions) (domain.RunSummary, error) {
	logger := telemetry.WithRunID(o.logger, uuid.NewString())

	ordered, err := setup.Resolve(components, opts.NoDeps)
	if err != nil {
		return domain.RunSummary{}, err
	}

	summary := domain.RunSummary{Total: len(ordered)}
	logger.Debug("setup plan resolved", "components", len(ordered), "dry_run", opts.DryRun)

	for i, c := range ordered {
		progress := fmt.Sprintf("[%d/%d] %s", i+1, len(ordered), c.Name())

		if opts.DryRun {
			fmt.Fprintln(o.out, "[dry-run] "+progress)
			summary.Simulated++
			continue
		}

		clog := telemetry.WithComponent(logger, c.Name())

		if opts.SkipInstalled {
			state, err := o.components.Detect(ctx, c)
			if err != nil {
				return summary, &ComponentError{Component: c.Name(), Stage: "detect", Err: err}
			}
			if state.IsInstalled() {
				clog.Info("already installed, skipping", "version", state.Version)
				summary.Skipped++
				continue
			}
		}

		fmt.Fprintln(o.out, progress)
		clog.Info("installing component")
		if err := o.components.Install(ctx, c); err != nil {
			return summary, &ComponentError{Component: c.Name(), Stage: "install", Err: err}
		}
		clog.Info("component installed")
		summary.Executed++
	}

	return summary, nil
}

// ComponentStatus — результат детекции одного компонента.
type ComponentStatus struct {
	Component setup.Component
	State     domain.InstallState
}

// Status детектирует состояние каждого компонента выборки, ничего
// не устанавливая. Порядок результата повторяет порядок выборки.
func (o *Orchestrator) Status(ctx context.Context, components []setup.Component) ([]ComponentStatus, error) {
	out := make([]ComponentStatus, 0, len(components))
	for _, c := range components {
		state, err := o.components.Detect(ctx, c)
		if err != nil {
			return nil, &ComponentError{Component: c.Name(), Stage: "detect", Err: err}
		}
		out = append(out, ComponentStatus{Component: c, State: state})
	}
	return out, nil
}
