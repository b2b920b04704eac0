package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bakobiibizo/devkit/internal/orchestrator"
	"github.com/Bakobiibizo/devkit/internal/setup"
)

// NewSetupCmd создаёт группу команд установки компонентов.
func NewSetupCmd(appFn func() (*App, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install and inspect dev machine components",
	}

	cmd.AddCommand(
		newSetupRunCmd(appFn),
		newSetupAllCmd(appFn),
		newSetupStatusCmd(appFn),
		newSetupListCmd(appFn),
		newSetupConfigCmd(appFn),
	)

	return cmd
}

func newSetupRunCmd(appFn func() (*App, error)) *cobra.Command {
	var noDeps bool
	var skipInstalled bool

	cmd := &cobra.Command{
		Use:   "run [COMPONENT...]",
		Short: "Install components",
		Long: "Install components.\n\n" +
			"Without arguments the configured default set is installed,\n" +
			"minus skip_components. Explicitly named components are always\n" +
			"installed, even when listed in skip_components.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			var components []setup.Component
			if len(args) > 0 {
				// Явная выборка: skip_components не применяется
				components, err = setup.ParseList(args)
			} else {
				components, err = app.DefaultComponents()
			}
			if err != nil {
				return err
			}

			return runSetup(cmd, app, components, noDeps, skipInstalled)
		},
	}

	cmd.Flags().BoolVar(&noDeps, "no-deps", false, "Do not add dependencies to the selection")
	cmd.Flags().BoolVar(&skipInstalled, "skip-installed", false, "Detect each component and skip those already installed")

	return cmd
}

func newSetupAllCmd(appFn func() (*App, error)) *cobra.Command {
	var noDeps bool
	var skipInstalled bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Install every catalog component (minus skip_components)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			components, err := app.AllComponents()
			if err != nil {
				return err
			}

			return runSetup(cmd, app, components, noDeps, skipInstalled)
		},
	}

	cmd.Flags().BoolVar(&noDeps, "no-deps", false, "Do not add dependencies to the selection")
	cmd.Flags().BoolVar(&skipInstalled, "skip-installed", false, "Detect each component and skip those already installed")

	return cmd
}

// runSetup — общий хвост run/all: сборка оркестратора и прогон.
func runSetup(cmd *cobra.Command, app *App, components []setup.Component, noDeps, skipInstalled bool) error {
	orch, closeSink, err := app.SetupOrchestrator()
	if err != nil {
		return err
	}
	defer closeSink()

	summary, err := orch.RunSetup(cmd.Context(), components, orchestrator.SetupOptions{
		DryRun:        app.DryRun,
		NoDeps:        noDeps,
		SkipInstalled: skipInstalled,
	})
	if err != nil {
		return err
	}

	app.Out.Summary(summary)
	return nil
}

func newSetupStatusCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "status [COMPONENT...]",
		Short: "Detect the install state of components",
		Long: "Detect the install state of components.\n\n" +
			"Without arguments the whole catalog is inspected. Detection\n" +
			"never installs anything.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			components := setup.All()
			if len(args) > 0 {
				components, err = setup.ParseList(args)
				if err != nil {
					return err
				}
			}

			orch, closeSink, err := app.SetupOrchestrator()
			if err != nil {
				return err
			}
			defer closeSink()

			statuses, err := orch.Status(cmd.Context(), components)
			if err != nil {
				return err
			}

			rows := make([][]string, len(statuses))
			for i, s := range statuses {
				icon, text := renderState(s.State)
				rows[i] = []string{icon, s.Component.Name(), text, stateDetails(s.State)}
			}

			app.Out.Table([]string{"", "COMPONENT", "STATE", "DETAILS"}, rows)
			return nil
		},
	}
}

func newSetupListCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog components and their dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			catalog := setup.All()
			rows := make([][]string, len(catalog))
			for i, c := range catalog {
				deps := make([]string, 0, len(c.Dependencies()))
				for _, d := range c.Dependencies() {
					deps = append(deps, d.Name())
				}
				rows[i] = []string{c.Name(), strings.Join(deps, ", ")}
			}

			app.Out.Table([]string{"COMPONENT", "DEPENDS_ON"}, rows)
			return nil
		},
	}
}

func newSetupConfigCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective setup configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			s := app.Config.Setup
			rows := [][]string{
				{"default_components", strings.Join(s.DefaultComponents, ", ")},
				{"skip_components", strings.Join(s.SkipComponents, ", ")},
				{"node_version", s.NodeVersion},
				{"cuda_version", s.CudaVersion},
				{"log_file", s.LogFile},
			}

			app.Out.Table([]string{"SETTING", "VALUE"}, rows)
			return nil
		},
	}
}
