package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/Bakobiibizo/devkit/internal/setup"
)

// DevConfig — корневой документ конфигурации.
type DevConfig struct {
	// Tasks — таблица задач: имя → определение.
	Tasks map[string]Task `toml:"tasks"`

	// Setup — настройки установки компонентов.
	Setup Setup `toml:"setup"`
}

// Task — декларативное определение задачи.
type Task struct {
	// Commands — упорядоченные шаги. Каждый элемент: строка (ссылка на
	// задачу) или массив строк (argv команды). Значения остаются
	// нетипизированными до разбора в engine.
	Commands []any `toml:"commands"`

	// AllowFail — ненулевой код выхода команд этой задачи логируется
	// как предупреждение, а не прерывает последовательность.
	AllowFail bool `toml:"allow_fail"`
}

// Setup — настройки setup-подсистемы.
type Setup struct {
	// DefaultComponents — компоненты для `dev setup run` без аргументов.
	DefaultComponents []string `toml:"default_components"`

	// SkipComponents — компоненты, исключаемые из неявных выборок
	// (run без аргументов, all). Явно названные компоненты не фильтруются.
	SkipComponents []string `toml:"skip_components"`

	// NodeVersion — мажорная версия node для установки через nvm.
	NodeVersion string `toml:"node_version"`

	// CudaVersion — версия CUDA toolkit (пусто — версия из репозитория
	// платформы).
	CudaVersion string `toml:"cuda_version"`

	// LogFile — путь к файлу журнала setup-прогонов (пусто — без файла).
	LogFile string `toml:"log_file"`
}

// DefaultSetup возвращает setup-умолчания для типовой dev-машины.
// Список компонентов — явное конфигурационное значение, а не скрытое
// глобальное состояние: CLI передаёт его в оркестратор как обычные данные.
func DefaultSetup() Setup {
	return Setup{
		DefaultComponents: []string{
			"system_packages",
			"git_lfs",
			"uv",
			"rustup",
			"node",
			"pnpm",
		},
		NodeVersion: "22",
	}
}

// Locate определяет путь к конфигурационному файлу.
//
// Порядок: explicit (флаг --file), $DEV_CONFIG, ./dev.toml,
// ~/.dev/config.toml. Возвращает пустую строку, если ничего не найдено.
func Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("DEV_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat("dev.toml"); err == nil {
		return "dev.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, ".dev", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Load читает и валидирует конфигурацию по указанному пути.
//
// Пустой путь означает "файл не найден": возвращается конфигурация
// с setup-умолчаниями и без задач.
func Load(path string) (*DevConfig, error) {
	if path == "" {
		return &DevConfig{Setup: DefaultSetup()}, nil
	}

	// Декодирование в нулевой Setup: отличить "поле не задано" (nil)
	// от заданного можно только без предзаполнения умолчаниями
	cfg := &DevConfig{}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Явно заданный [setup] может быть частичным: пустые поля
	// добираются из умолчаний. Список умолчаний подставляется после
	// валидации: проверка пересечения default/skip относится только
	// к спискам, написанным пользователем, иначе skip_components
	// любого компонента из умолчаний был бы невыразим.
	defaults := DefaultSetup()
	if cfg.Setup.NodeVersion == "" {
		cfg.Setup.NodeVersion = defaults.NodeVersion
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.Setup.DefaultComponents == nil {
		cfg.Setup.DefaultComponents = defaults.DefaultComponents
	}
	return cfg, nil
}

// validate проверяет форму значений до какого-либо выполнения.
func (c *DevConfig) validate() error {
	// Задача без команд допустима: её выполнение — no-op
	for name, task := range c.Tasks {
		for _, step := range task.Commands {
			switch v := step.(type) {
			case string:
				// ссылка на задачу
			case []any:
				for _, item := range v {
					if _, ok := item.(string); !ok {
						return fmt.Errorf("task %q contains non-string command argument: %v", name, item)
					}
				}
			default:
				return fmt.Errorf("task %q contains unsupported command value: %v", name, step)
			}
		}
	}

	for _, name := range c.Setup.DefaultComponents {
		if _, err := setup.FromString(name); err != nil {
			return fmt.Errorf("setup.default_components: %w", err)
		}
		for _, skipped := range c.Setup.SkipComponents {
			if name == skipped {
				return fmt.Errorf("component %q appears in both default_components and skip_components", name)
			}
		}
	}
	for _, name := range c.Setup.SkipComponents {
		if _, err := setup.FromString(name); err != nil {
			return fmt.Errorf("setup.skip_components: %w", err)
		}
	}
	if c.Setup.NodeVersion == "" {
		return fmt.Errorf("setup.node_version cannot be empty")
	}

	return nil
}

// TaskNames возвращает отсортированный список имён задач.
func (c *DevConfig) TaskNames() []string {
	names := make([]string, 0, len(c.Tasks))
	for name := range c.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
