package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

func detectCuda(ctx context.Context, sys *Context) (domain.InstallState, error) {
	hasNvcc := sys.CommandExists("nvcc")
	hasSmi := sys.CommandExists("nvidia-smi")

	if !hasNvcc && !hasSmi {
		return domain.NotInstalled(), nil
	}

	if !hasNvcc {
		// Драйверный стек вендора без toolkit: работает, но поставлен
		// не нами, и апгрейд поверх него может его сломать
		driver, _ := sys.Capture(ctx, "nvidia-smi", "--query-gpu=driver_version", "--format=csv,noheader")
		reason := "nvidia driver present without CUDA toolkit"
		if driver != "" {
			reason = fmt.Sprintf("nvidia driver %s present without CUDA toolkit", driver)
		}
		return domain.PresentButUnknown(reason), nil
	}

	out, ok := sys.Capture(ctx, "nvcc", "--version")
	if !ok {
		return domain.Partial("nvcc present but not responding"), nil
	}
	version := parseNvccRelease(out)

	if !hasSmi {
		return domain.Partial("CUDA toolkit present but nvidia driver is missing"), nil
	}
	return domain.Installed(version), nil
}

// parseNvccRelease извлекает "release X.Y" из вывода nvcc --version.
func parseNvccRelease(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if idx := strings.Index(line, "release "); idx >= 0 {
			rest := line[idx+len("release "):]
			if comma := strings.Index(rest, ","); comma >= 0 {
				rest = rest[:comma]
			}
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func installCuda(ctx context.Context, sys *Context) error {
	if sys.Platform != PlatformUbuntu {
		sys.logger.Warn("CUDA install path is tuned for ubuntu; proceeding anyway",
			"platform", string(sys.Platform))
	}

	// Keyring репозитория NVIDIA регистрирует apt-источник toolkit'а
	keyring := "cuda-keyring_1.1-1_all.deb"
	url := "https://developer.download.nvidia.com/compute/cuda/repos/ubuntu2204/x86_64/" + keyring
	if sys.Arch == ArchAarch64 {
		url = "https://developer.download.nvidia.com/compute/cuda/repos/ubuntu2204/sbsa/" + keyring
	}

	script := fmt.Sprintf("curl -fsSLO %s && sudo dpkg -i %s && rm -f %s", url, keyring, keyring)
	if err := sys.Shell(ctx, Cuda, script); err != nil {
		return err
	}
	if err := sys.Execute(ctx, Cuda, "sudo", "apt", "update"); err != nil {
		return err
	}

	pkg := "cuda-toolkit"
	if sys.CudaVersion != "" {
		// apt-пакеты версионируются как cuda-toolkit-12-4
		pkg = "cuda-toolkit-" + strings.ReplaceAll(sys.CudaVersion, ".", "-")
	}
	return sys.Execute(ctx, Cuda, "sudo", "apt", "install", "-y", pkg)
}
