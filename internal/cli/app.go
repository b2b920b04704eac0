package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Bakobiibizo/devkit/internal/config"
	"github.com/Bakobiibizo/devkit/internal/engine"
	"github.com/Bakobiibizo/devkit/internal/orchestrator"
	"github.com/Bakobiibizo/devkit/internal/setup"
	"github.com/Bakobiibizo/devkit/internal/telemetry"
)

// Options — глобальные флаги, собранные корневой командой.
type Options struct {
	// File — явный путь к конфигурации (флаг --file).
	File string

	// DryRun — печатать действия без выполнения.
	DryRun bool

	// Verbose — понизить уровень логирования до DEBUG.
	Verbose bool

	// NoColor — отключить цвета в выводе.
	NoColor bool
}

// App — собранное окружение одного запуска CLI.
type App struct {
	Config     *config.DevConfig
	ConfigPath string
	Logger     *slog.Logger
	Out        *Output
	DryRun     bool
}

// NewApp инициализирует логгер, цветовой профиль и конфигурацию.
func NewApp(opts Options) (*App, error) {
	if opts.NoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := telemetry.SetupLogger(opts.Verbose)

	path := config.Locate(opts.File)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Debug("no config file found, using defaults")
	} else {
		logger.Debug("config loaded", "path", path)
	}

	return &App{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		Out:        NewOutput(),
		DryRun:     opts.DryRun,
	}, nil
}

// TaskIndex строит индекс задач из конфигурации.
func (a *App) TaskIndex() (*engine.TaskIndex, error) {
	return engine.FromConfig(a.Config)
}

// TaskOrchestrator собирает оркестратор для выполнения задач.
func (a *App) TaskOrchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(orchestrator.Config{
		Logger: a.Logger,
		Out:    a.Out.Writer(),
	})
}

// SetupOrchestrator собирает оркестратор установки компонентов.
//
// Возвращаемая функция закрывает файловый сток журнала (no-op, если
// log_file не настроен); вызывающий обязан её вызвать.
func (a *App) SetupOrchestrator() (*orchestrator.Orchestrator, func(), error) {
	logger := a.Logger
	closeSink := func() {}

	// Журнал setup-прогона дублируется в файл, если он настроен
	if path := a.Config.Setup.LogFile; path != "" {
		sink, err := telemetry.FileSink(path)
		if err != nil {
			return nil, nil, err
		}
		logger = telemetry.NewFileLogger(io.MultiWriter(os.Stderr, sink))
		closeSink = func() { sink.Close() }
	}

	sys, err := setup.NewContext(setup.Config{
		NodeVersion: a.Config.Setup.NodeVersion,
		CudaVersion: a.Config.Setup.CudaVersion,
		Logger:      logger,
	})
	if err != nil {
		closeSink()
		return nil, nil, err
	}

	orch := orchestrator.New(orchestrator.Config{
		Components: orchestrator.SystemComponents(sys),
		Logger:     logger,
		Out:        a.Out.Writer(),
	})
	return orch, closeSink, nil
}

// DefaultComponents возвращает неявную выборку компонентов:
// default_components минус skip_components.
func (a *App) DefaultComponents() ([]setup.Component, error) {
	selected, err := setup.ParseList(a.Config.Setup.DefaultComponents)
	if err != nil {
		return nil, err
	}
	skip, err := setup.ParseList(a.Config.Setup.SkipComponents)
	if err != nil {
		return nil, err
	}
	return setup.Subtract(selected, skip), nil
}

// AllComponents возвращает весь каталог минус skip_components.
func (a *App) AllComponents() ([]setup.Component, error) {
	skip, err := setup.ParseList(a.Config.Setup.SkipComponents)
	if err != nil {
		return nil, err
	}
	return setup.Subtract(setup.All(), skip), nil
}
