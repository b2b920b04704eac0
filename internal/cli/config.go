package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewConfigCmd создаёт группу команд работы с конфигурацией.
func NewConfigCmd(appFn func() (*App, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate the config",
	}

	cmd.AddCommand(
		newConfigShowCmd(appFn),
		newConfigCheckCmd(appFn),
	)

	return cmd
}

func newConfigShowCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			path := app.ConfigPath
			if path == "" {
				path = "(built-in defaults)"
			}
			fmt.Fprintln(app.Out.Writer(), "config: "+path)
			fmt.Fprintln(app.Out.Writer())

			index, err := app.TaskIndex()
			if err != nil {
				return err
			}
			if index.IsEmpty() {
				app.Out.Warn("no tasks defined")
			} else {
				rows := make([][]string, 0, len(index.List()))
				for _, s := range index.List() {
					allowFail := ""
					if s.AllowFail {
						allowFail = "yes"
					}
					rows = append(rows, []string{s.Name, strconv.Itoa(s.Steps), allowFail})
				}
				app.Out.Table([]string{"TASK", "STEPS", "ALLOW_FAIL"}, rows)
			}

			return nil
		},
	}
}

func newConfigCheckCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config without running anything",
		Long: "Validate the config without running anything.\n\n" +
			"Beyond the shape checks done on load, every task is flattened\n" +
			"to surface unknown references, recursion and empty commands.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			index, err := app.TaskIndex()
			if err != nil {
				return err
			}

			for _, s := range index.List() {
				if _, err := index.Flatten(s.Name); err != nil {
					return fmt.Errorf("task %q: %w", s.Name, err)
				}
			}

			path := app.ConfigPath
			if path == "" {
				path = "built-in defaults"
			}
			app.Out.Success(fmt.Sprintf("config ok (%s, %d tasks)", path, len(index.List())))
			return nil
		},
	}
}
