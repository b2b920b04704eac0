package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Bakobiibizo/devkit/internal/orchestrator"
)

// NewRunCmd создаёт команду выполнения задачи.
func NewRunCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run TASK",
		Short: "Run a task from the config",
		Long: "Run a task from the config.\n\n" +
			"The task is flattened into a linear command sequence first:\n" +
			"referenced tasks are inlined recursively in declaration order.\n" +
			"Definition errors (unknown task, recursion, empty command) are\n" +
			"reported before anything is executed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			index, err := app.TaskIndex()
			if err != nil {
				return err
			}

			orch := app.TaskOrchestrator()
			summary, err := orch.RunTask(cmd.Context(), index, args[0], orchestrator.TaskOptions{
				DryRun: app.DryRun,
			})
			if err != nil {
				return err
			}

			app.Out.Summary(summary)
			return nil
		},
	}
}

// NewListCmd создаёт команду вывода списка задач.
func NewListCmd(appFn func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks defined in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFn()
			if err != nil {
				return err
			}

			index, err := app.TaskIndex()
			if err != nil {
				return err
			}
			if index.IsEmpty() {
				app.Out.Warn("no tasks defined")
				return nil
			}

			summaries := index.List()
			rows := make([][]string, len(summaries))
			for i, s := range summaries {
				allowFail := ""
				if s.AllowFail {
					allowFail = "yes"
				}
				rows[i] = []string{s.Name, strconv.Itoa(s.Steps), allowFail}
			}

			app.Out.Table([]string{"TASK", "STEPS", "ALLOW_FAIL"}, rows)
			return nil
		},
	}
}
