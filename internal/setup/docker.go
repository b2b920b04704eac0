package setup

import (
	"context"
	"os/user"
	"strings"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

func detectDocker(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("docker") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "docker", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}

	var reasons []string
	if _, ok := sys.Capture(ctx, "docker", "info", "--format", "{{.ServerVersion}}"); !ok {
		reasons = append(reasons, "docker daemon is not reachable")
	}
	if !userInDockerGroup(ctx, sys) {
		reasons = append(reasons, "current user is not in the docker group")
	}
	if len(reasons) > 0 {
		return domain.Partial(reasons...), nil
	}
	return domain.Installed(version), nil
}

func userInDockerGroup(ctx context.Context, sys *Context) bool {
	groups, ok := sys.Capture(ctx, "id", "-nG")
	if !ok {
		return false
	}
	for _, g := range strings.Fields(groups) {
		if g == "docker" {
			return true
		}
	}
	return false
}

func installDocker(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("curl") {
		return &PrerequisiteError{Component: Docker, Binary: "curl"}
	}

	if err := sys.Shell(ctx, Docker, "curl -fsSL https://get.docker.com | sudo sh"); err != nil {
		return err
	}

	if u, err := user.Current(); err == nil {
		if err := sys.Execute(ctx, Docker, "sudo", "usermod", "-aG", "docker", u.Username); err != nil {
			return err
		}
		sys.logger.Warn("log out and back in for docker group membership to take effect")
	}

	return sys.Execute(ctx, Docker, "sudo", "systemctl", "enable", "--now", "docker")
}
