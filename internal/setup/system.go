package setup

import (
	"context"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

// Базовый набор apt-пакетов для dev-машины.
var systemPackages = []string{
	"git",
	"curl",
	"build-essential",
	"pkg-config",
	"unzip",
}

// Бинарники-маркеры, по которым детектируется system_packages.
var systemMarkers = []string{"git", "curl", "make"}

func detectSystemPackages(ctx context.Context, sys *Context) (domain.InstallState, error) {
	var missing []string
	for _, marker := range systemMarkers {
		if !sys.CommandExists(marker) {
			missing = append(missing, marker+" not found")
		}
	}

	switch {
	case len(missing) == 0:
		return domain.Installed("", "base packages present"), nil
	case len(missing) == len(systemMarkers):
		return domain.NotInstalled(), nil
	default:
		return domain.Partial(missing...), nil
	}
}

func installSystemPackages(ctx context.Context, sys *Context) error {
	sys.logger.Info("installing base system packages", "manager", sys.Platform.PackageManager())

	if err := sys.Execute(ctx, SystemPackages, "sudo", "apt", "update"); err != nil {
		return err
	}

	argv := append([]string{"sudo", "apt", "install", "-y"}, systemPackages...)
	return sys.Execute(ctx, SystemPackages, argv...)
}

func detectGitLFS(ctx context.Context, sys *Context) (domain.InstallState, error) {
	if !sys.CommandExists("git-lfs") {
		return domain.NotInstalled(), nil
	}
	version, ok := sys.Capture(ctx, "git-lfs", "--version")
	if !ok {
		return domain.NotInstalled(), nil
	}

	// Бинарник есть, но hooks могут быть не прописаны в git config
	if _, ok := sys.Capture(ctx, "git", "config", "--global", "--get", "filter.lfs.clean"); !ok {
		return domain.Partial("git-lfs binary present but `git lfs install` has not been run"), nil
	}
	return domain.Installed(version), nil
}

func installGitLFS(ctx context.Context, sys *Context) error {
	if !sys.CommandExists("git") {
		return &PrerequisiteError{Component: GitLFS, Binary: "git"}
	}

	if err := sys.Execute(ctx, GitLFS, "sudo", "apt", "install", "-y", "git-lfs"); err != nil {
		return err
	}
	return sys.Execute(ctx, GitLFS, "git", "lfs", "install")
}
