package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bakobiibizo/devkit/internal/setup"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Tasks)
	assert.Equal(t, DefaultSetup().DefaultComponents, cfg.Setup.DefaultComponents)
	assert.Equal(t, "22", cfg.Setup.NodeVersion)
}

func TestLoad_Tasks(t *testing.T) {
	path := writeConfig(t, `
[tasks.lint]
commands = [["go", "vet", "./..."]]

[tasks.ci]
commands = ["lint", ["go", "test", "./..."]]
allow_fail = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Tasks, 2)
	assert.True(t, cfg.Tasks["ci"].AllowFail)
	assert.False(t, cfg.Tasks["lint"].AllowFail)
	assert.Equal(t, []string{"ci", "lint"}, cfg.TaskNames())
}

func TestLoad_PartialSetupBackfilledFromDefaults(t *testing.T) {
	path := writeConfig(t, `
[setup]
skip_components = ["rustup"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"rustup"}, cfg.Setup.SkipComponents)
	assert.Equal(t, DefaultSetup().DefaultComponents, cfg.Setup.DefaultComponents)
	assert.Equal(t, "22", cfg.Setup.NodeVersion)
}

func TestLoad_ExplicitSetupOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[setup]
default_components = ["system_packages", "docker"]
node_version = "20"
cuda_version = "12.4"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"system_packages", "docker"}, cfg.Setup.DefaultComponents)
	assert.Equal(t, "20", cfg.Setup.NodeVersion)
	assert.Equal(t, "12.4", cfg.Setup.CudaVersion)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[tasks.broken\ncommands = []")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoad_TaskWithoutCommandsIsAllowed(t *testing.T) {
	path := writeConfig(t, `
[tasks.empty]
commands = []
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Tasks["empty"].Commands)
}

func TestLoad_NonStringCommandArgument(t *testing.T) {
	path := writeConfig(t, `
[tasks.bad]
commands = [["sleep", 5]]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "non-string command argument")
}

func TestLoad_UnsupportedCommandValue(t *testing.T) {
	path := writeConfig(t, `
[tasks.bad]
commands = [42]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported command value")
}

func TestLoad_SkipOnlySetupLoadsWithFullDefaults(t *testing.T) {
	// skip_components может называть компонент из встроенных умолчаний;
	// вычитание происходит при выборке, а не при загрузке
	path := writeConfig(t, `
[setup]
skip_components = ["rustup", "node"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"rustup", "node"}, cfg.Setup.SkipComponents)
	assert.Contains(t, cfg.Setup.DefaultComponents, "rustup")
}

func TestLoad_UnknownComponentInDefaults(t *testing.T) {
	path := writeConfig(t, `
[setup]
default_components = ["node", "emacs"]
`)

	_, err := Load(path)
	require.ErrorIs(t, err, setup.ErrUnknownComponent)
	assert.ErrorContains(t, err, "setup.default_components")
	assert.ErrorContains(t, err, `"emacs"`)
}

func TestLoad_UnknownComponentInSkip(t *testing.T) {
	path := writeConfig(t, `
[setup]
skip_components = ["vim"]
`)

	_, err := Load(path)
	require.ErrorIs(t, err, setup.ErrUnknownComponent)
	assert.ErrorContains(t, err, "setup.skip_components")
}

func TestLoad_DefaultAndSkipOverlap(t *testing.T) {
	path := writeConfig(t, `
[setup]
default_components = ["node", "uv"]
skip_components = ["uv"]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "both default_components and skip_components")
}

func TestLocate_ExplicitWinsOverEnv(t *testing.T) {
	t.Setenv("DEV_CONFIG", "/from/env.toml")
	assert.Equal(t, "/explicit.toml", Locate("/explicit.toml"))
}

func TestLocate_EnvWinsOverWorkingDir(t *testing.T) {
	t.Setenv("DEV_CONFIG", "/from/env.toml")
	assert.Equal(t, "/from/env.toml", Locate(""))
}

func TestLocate_WorkingDirFile(t *testing.T) {
	t.Setenv("DEV_CONFIG", "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dev.toml"), []byte(""), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "dev.toml", Locate(""))
}
