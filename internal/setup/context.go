package setup

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Bakobiibizo/devkit/internal/executor"
)

// Architecture — архитектура машины.
type Architecture string

const (
	ArchX86_64  Architecture = "x86_64"
	ArchAarch64 Architecture = "aarch64"
)

// DetectArchitecture определяет архитектуру текущей машины.
func DetectArchitecture() (Architecture, error) {
	switch runtime.GOARCH {
	case "amd64":
		return ArchX86_64, nil
	case "arm64":
		return ArchAarch64, nil
	default:
		return "", &UnsupportedArchError{Arch: runtime.GOARCH}
	}
}

// UnsupportedArchError — архитектура, для которой каталог не собран.
type UnsupportedArchError struct {
	Arch string
}

// Error реализует интерфейс error.
func (e *UnsupportedArchError) Error() string {
	return "unsupported architecture: " + e.Arch
}

// Platform — дистрибутив машины.
type Platform string

const (
	PlatformUbuntu  Platform = "ubuntu"
	PlatformDebian  Platform = "debian"
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform определяет дистрибутив по /etc/os-release.
// Неопознанный дистрибутив — не ошибка: установка пойдёт с apt
// по умолчанию.
func DetectPlatform() Platform {
	raw, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return PlatformUnknown
	}
	content := string(raw)
	if strings.Contains(content, "ID=ubuntu") {
		return PlatformUbuntu
	}
	if strings.Contains(content, "ID=debian") {
		return PlatformDebian
	}
	return PlatformUnknown
}

// PackageManager возвращает менеджер пакетов платформы.
func (p Platform) PackageManager() string {
	return "apt"
}

// Context — окружение машины, передаваемое в detect/install компонентов.
type Context struct {
	Arch     Architecture
	Platform Platform

	// Sudo — доступен ли беспарольный sudo.
	Sudo bool

	// NodeVersion — мажорная версия node для nvm (из конфигурации).
	NodeVersion string

	// CudaVersion — версия CUDA toolkit (пусто — версия платформы).
	CudaVersion string

	logger *slog.Logger
	runner executor.Runner
}

// Config — конфигурация Context.
type Config struct {
	NodeVersion string
	CudaVersion string

	// Logger (опционально; если nil — slog.Default()).
	Logger *slog.Logger

	// Runner для установочных команд (опционально; если nil —
	// executor.New с умолчаниями).
	Runner executor.Runner
}

// NewContext определяет окружение машины и собирает Context.
func NewContext(cfg Config) (*Context, error) {
	arch, err := DetectArchitecture()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = executor.New(executor.Config{Logger: logger})
	}

	return &Context{
		Arch:        arch,
		Platform:    DetectPlatform(),
		Sudo:        checkSudo(),
		NodeVersion: cfg.NodeVersion,
		CudaVersion: cfg.CudaVersion,
		logger:      logger,
		runner:      runner,
	}, nil
}

// checkSudo проверяет доступность sudo без запроса пароля.
func checkSudo() bool {
	return exec.Command("sudo", "-n", "true").Run() == nil
}

// Logger возвращает логгер окружения.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// CommandExists проверяет наличие бинарника в PATH.
func (c *Context) CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Capture запускает команду и возвращает обрезанный stdout.
// ok=false означает "команда отсутствует или завершилась неуспешно" —
// для детекции это состояние, а не ошибка.
func (c *Context) Capture(ctx context.Context, argv ...string) (string, bool) {
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// Execute запускает установочную команду с потоковым выводом,
// помеченным именем компонента.
func (c *Context) Execute(ctx context.Context, component Component, argv ...string) error {
	return c.runner.Stream(ctx, string(component), argv)
}

// Shell запускает команду через sh -c (для установочных скриптов
// вида curl | sh, где pipeline — часть инсталлятора, а не наша
// интерпретация shell-синтаксиса).
func (c *Context) Shell(ctx context.Context, component Component, script string) error {
	return c.Execute(ctx, component, "sh", "-c", script)
}
