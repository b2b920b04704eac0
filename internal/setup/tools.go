package setup

import (
	"context"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

func detectZoxide(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("zoxide") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "zoxide", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}
	return domain.Installed(version), nil
}

func installZoxide(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("cargo") {
		return &PrerequisiteError{Component: Zoxide, Binary: "cargo"}
	}
	if err := sys.Execute(ctx, Zoxide, "cargo", "install", "zoxide", "--locked"); err != nil {
		return err
	}
	sys.logger.Warn("add `eval \"$(zoxide init bash)\"` to your shell rc to activate zoxide")
	return nil
}

func detectAtuin(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("atuin") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "atuin", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}
	return domain.Installed(version), nil
}

func installAtuin(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: Atuin, Binary: "curl"}
	}
	script := "curl --proto '=https' --tlsv1.2 -LsSf https://setup.atuin.sh | sh"
	if err := sys.Shell(ctx, Atuin, script); err != nil {
		return err
	}
	sys.logger.Warn("run `atuin import auto` to import existing shell history")
	return nil
}

func detectNgrok(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("ngrok") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "ngrok", "version")
	if !ok {
		return domain.NotInstalled(), nil
	}

	// Без authtoken туннели не поднимутся
	if _, ok := sys.Capture(ctx, "ngrok", "config", "check"); !ok {
		return domain.Partial("ngrok binary present but no authtoken configured"), nil
	}
	return domain.Installed(version), nil
}

func installNgrok(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: Ngrok, Binary: "curl"}
	}

	script := "curl -fsSL https://ngrok-agent.s3.amazonaws.com/ngrok.asc" +
		" | sudo tee /etc/apt/trusted.gpg.d/ngrok.asc >/dev/null" +
		" && echo \"deb https://ngrok-agent.s3.amazonaws.com buster main\"" +
		" | sudo tee /etc/apt/sources.list.d/ngrok.list >/dev/null"
	if err := sys.Shell(ctx, Ngrok, script); err != nil {
		return err
	}
	if err := sys.Execute(ctx, Ngrok, "sudo", "apt", "update"); err != nil {
		return err
	}
	if err := sys.Execute(ctx, Ngrok, "sudo", "apt", "install", "-y", "ngrok"); err != nil {
		return err
	}
	sys.logger.Warn("run `ngrok config add-authtoken <token>` before starting tunnels")
	return nil
}
