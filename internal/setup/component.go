package setup

import (
	"context"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

// Component — один устанавливаемый компонент системы.
//
// Набор закрыт и известен на этапе компиляции; диспетчеризация
// detect/install — switch по идентификатору, по одной ветке на
// компонент, без виртуальных вызовов.
type Component string

const (
	// SystemPackages — базовые apt-пакеты (git, curl, build-essential).
	SystemPackages Component = "system_packages"

	// GitLFS — расширение git для больших файлов.
	GitLFS Component = "git_lfs"

	// UV — менеджер пакетов и окружений Python.
	UV Component = "uv"

	// Rustup — тулчейн-менеджер Rust.
	Rustup Component = "rustup"

	// Node — node.js через nvm.
	Node Component = "node"

	// Pnpm — менеджер пакетов node.
	Pnpm Component = "pnpm"

	// Pm2 — процесс-менеджер node-сервисов.
	Pm2 Component = "pm2"

	// Docker — контейнерный рантайм.
	Docker Component = "docker"

	// Cuda — CUDA toolkit.
	Cuda Component = "cuda"

	// Zoxide — замена cd с ранжированием каталогов.
	Zoxide Component = "zoxide"

	// Atuin — история shell с синхронизацией.
	Atuin Component = "atuin"

	// Ngrok — туннели к локальным портам.
	Ngrok Component = "ngrok"
)

// all — канонический порядок каталога (для status/list/all).
var all = []Component{
	SystemPackages,
	GitLFS,
	UV,
	Rustup,
	Node,
	Pnpm,
	Pm2,
	Docker,
	Cuda,
	Zoxide,
	Atuin,
	Ngrok,
}

// dependencies — статическая таблица зависимостей. Не редактируется
// пользователем; зависимости всегда ставятся раньше зависимого.
var dependencies = map[Component][]Component{
	SystemPackages: nil,
	GitLFS:         {SystemPackages},
	UV:             {SystemPackages},
	Rustup:         {SystemPackages},
	Node:           {SystemPackages},
	Pnpm:           {Node},
	Pm2:            {Node, Pnpm},
	Docker:         {SystemPackages},
	Cuda:           {SystemPackages},
	Zoxide:         {Rustup},
	Atuin:          {SystemPackages},
	Ngrok:          {SystemPackages},
}

// All возвращает весь каталог в каноническом порядке.
func All() []Component {
	out := make([]Component, len(all))
	copy(out, all)
	return out
}

// FromString сопоставляет строковый идентификатор с компонентом каталога.
func FromString(name string) (Component, error) {
	c := Component(name)
	if _, ok := dependencies[c]; !ok {
		return "", &UnknownComponentError{Name: name}
	}
	return c, nil
}

// ParseList сопоставляет список имён с компонентами, сохраняя порядок.
func ParseList(names []string) ([]Component, error) {
	out := make([]Component, 0, len(names))
	for _, name := range names {
		c, err := FromString(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Subtract возвращает list без компонентов из skip, сохраняя порядок.
// Применяется только к неявным выборкам (run без аргументов, all).
func Subtract(list, skip []Component) []Component {
	out := make([]Component, 0, len(list))
	for _, c := range list {
		skipped := false
		for _, s := range skip {
			if c == s {
				skipped = true
				break
			}
		}
		if !skipped {
			out = append(out, c)
		}
	}
	return out
}

// Name возвращает строковый идентификатор компонента.
func (c Component) Name() string {
	return string(c)
}

// Dependencies возвращает статические зависимости компонента.
func (c Component) Dependencies() []Component {
	deps := dependencies[c]
	out := make([]Component, len(deps))
	copy(out, deps)
	return out
}

// Detect классифицирует текущее состояние компонента на машине.
//
// Никогда не возвращает ошибку для "не найдено" — только для
// неожиданных сбоев ввода-вывода.
func (c Component) Detect(ctx context.Context, sys *Context) (domain.InstallState, error) {
	switch c {
	case SystemPackages:
		return detectSystemPackages(ctx, sys)
	case GitLFS:
		return detectGitLFS(ctx, sys)
	case UV:
		return detectUV(ctx, sys)
	case Rustup:
		return detectRustup(ctx, sys)
	case Node:
		return detectNode(ctx, sys)
	case Pnpm:
		return detectPnpm(ctx, sys)
	case Pm2:
		return detectPm2(ctx, sys)
	case Docker:
		return detectDocker(ctx, sys)
	case Cuda:
		return detectCuda(ctx, sys)
	case Zoxide:
		return detectZoxide(ctx, sys)
	case Atuin:
		return detectAtuin(ctx, sys)
	case Ngrok:
		return detectNgrok(ctx, sys)
	default:
		return domain.InstallState{}, &UnknownComponentError{Name: string(c)}
	}
}

// Install устанавливает компонент. Зависимости к этому моменту уже
// установлены (порядок гарантирует Resolve).
func (c Component) Install(ctx context.Context, sys *Context) error {
	switch c {
	case SystemPackages:
		return installSystemPackages(ctx, sys)
	case GitLFS:
		return installGitLFS(ctx, sys)
	case UV:
		return installUV(ctx, sys)
	case Rustup:
		return installRustup(ctx, sys)
	case Node:
		return installNode(ctx, sys)
	case Pnpm:
		return installPnpm(ctx, sys)
	case Pm2:
		return installPm2(ctx, sys)
	case Docker:
		return installDocker(ctx, sys)
	case Cuda:
		return installCuda(ctx, sys)
	case Zoxide:
		return installZoxide(ctx, sys)
	case Atuin:
		return installAtuin(ctx, sys)
	case Ngrok:
		return installNgrok(ctx, sys)
	default:
		return &UnknownComponentError{Name: string(c)}
	}
}
