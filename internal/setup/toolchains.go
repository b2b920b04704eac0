package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

func detectUV(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("uv") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "uv", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}
	return domain.Installed(version), nil
}

func installUV(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: UV, Binary: "curl"}
	}
	return sys.Shell(ctx, UV, "curl -LsSf https://astral.sh/uv/install.sh | sh")
}

func detectRustup(ctx context.Context, sys *Context) (domain.InstallState, error) {
	hasRustup := sys.CommandExists("rustup")
	hasCargo := sys.CommandExists("cargo")

	switch {
	case !hasRustup && !hasCargo:
		return domain.NotInstalled(), nil
	case hasRustup && !hasCargo:
		return domain.Partial("rustup present but no default toolchain installed"), nil
	case !hasRustup && hasCargo:
		// cargo из дистрибутива без rustup — рабочая, но не наша установка
		return domain.PresentButUnknown("cargo present without rustup (distribution toolchain?)"), nil
	}

	version, ok := sys.Capture(ctx, "rustup", "--version")
	if !ok {
		return domain.Partial("rustup present but not responding"), nil
	}
	return domain.Installed(version), nil
}

func installRustup(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: Rustup, Binary: "curl"}
	}
	return sys.Shell(ctx, Rustup,
		"curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y")
}

// nvmDir возвращает каталог nvm текущего пользователя.
func nvmDir() string {
	if dir := os.Getenv("NVM_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nvm")
}

func detectNode(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if sys.CommandExists("node") {
		version, ok := sys.Capture(ctx, "node", "--version")
		if !ok {
			return domain.Partial("node present but not responding"), nil
		}
		return domain.Installed(version), nil
	}

	// Файловый маркер: nvm установлен, но node в нём — нет
	if dir := nvmDir(); dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "nvm.sh")); err == nil {
			return domain.Partial("nvm present but no node version installed"), nil
		}
	}
	return domain.NotInstalled(), nil
}

func installNode(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: Node, Binary: "curl"}
	}

	dir := nvmDir()
	if _, err := os.Stat(filepath.Join(dir, "nvm.sh")); err != nil {
		script := "curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.1/install.sh | bash"
		if err := sys.Shell(ctx, Node, script); err != nil {
			return err
		}
	}

	install := fmt.Sprintf(". %q && nvm install %s && nvm alias default %s",
		filepath.Join(dir, "nvm.sh"), sys.NodeVersion, sys.NodeVersion)
	if err := sys.Shell(ctx, Node, install); err != nil {
		return err
	}

	sys.logger.Warn("restart your shell or source nvm.sh to put node on PATH")
	return nil
}

func detectPnpm(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("pnpm") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "pnpm", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}
	return domain.Installed("v" + version), nil
}

func installPnpm(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("npm") {
		return &PrerequisiteError{Component: Pnpm, Binary: "npm"}
	}
	return sys.Execute(ctx, Pnpm, "npm", "install", "-g", "pnpm")
}

func detectPm2(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("pm2") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "pm2", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}
	return domain.Installed("v" + version), nil
}

func installPm2(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("pnpm") {
		return &PrerequisiteError{Component: Pm2, Binary: "pnpm"}
	}
	return sys.Execute(ctx, Pm2, "pnpm", "add", "-g", "pm2")
}
