// dev — инструмент командной строки для повседневных задач разработки:
// декларативные задачи из TOML-конфигурации и установка компонентов
// dev-машины.
//
// Использование:
//
//	dev [--file PATH] [--dry-run] [--verbose] [--no-color] <command> [flags]
//
// Команды:
//
//	run     Выполнение задачи из конфигурации
//	list    Список задач
//	setup   Установка и инспекция компонентов машины
//	config  Просмотр и проверка конфигурации
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bakobiibizo/devkit/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:           "dev",
		Short:         "dev — task runner and machine setup tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "Config file path (default: $DEV_CONFIG, ./dev.toml, ~/.dev/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print actions without executing them")
	rootCmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	appFn := func() (*cli.App, error) { return cli.NewApp(opts) }

	rootCmd.AddCommand(
		cli.NewRunCmd(appFn),
		cli.NewListCmd(appFn),
		cli.NewSetupCmd(appFn),
		cli.NewConfigCmd(appFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
