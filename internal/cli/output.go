package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Bakobiibizo/devkit/internal/domain"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	w    io.Writer // stdout для данных
	errW io.Writer // stderr для сообщений
}

// NewOutput создаёт Output поверх стандартных потоков.
func NewOutput() *Output {
	return &Output{w: os.Stdout, errW: os.Stderr}
}

// Writer возвращает сток данных (для строк прогресса оркестратора).
func (o *Output) Writer() io.Writer {
	return o.w
}

// Table выводит данные в виде таблицы через tabwriter.
func (o *Output) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, passStyle.Render(iconPass)+" "+msg)
}

// Warn выводит предупреждение в stderr.
func (o *Output) Warn(msg string) {
	fmt.Fprintln(o.errW, warnStyle.Render(iconWarn)+" "+msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, failStyle.Render(iconFail)+" "+msg)
}

// Summary выводит итоговую строку прогона.
func (o *Output) Summary(s domain.RunSummary) {
	if s.IsNoop() {
		o.Success("nothing to do")
		return
	}

	parts := []string{fmt.Sprintf("%d executed", s.Executed)}
	if s.Simulated > 0 {
		parts = append(parts, fmt.Sprintf("%d simulated", s.Simulated))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	if s.Warned > 0 {
		parts = append(parts, fmt.Sprintf("%d warned", s.Warned))
	}

	msg := fmt.Sprintf("done: %s (of %d)", strings.Join(parts, ", "), s.Total)
	if s.Warned > 0 {
		o.Warn(msg)
		return
	}
	o.Success(msg)
}

// renderState возвращает иконку и текст состояния компонента.
func renderState(state domain.InstallState) (icon, text string) {
	switch state.Kind {
	case domain.StateInstalled:
		return passStyle.Render(iconPass), passStyle.Render("installed")
	case domain.StatePartial:
		return warnStyle.Render(iconWarn), warnStyle.Render("partial")
	case domain.StatePresentButUnknown:
		return warnStyle.Render(iconWarn), warnStyle.Render("present (unmanaged)")
	default:
		return muteStyle.Render(iconSkip), muteStyle.Render("not installed")
	}
}

// stateDetails сводит версию и причины состояния в одну колонку.
func stateDetails(state domain.InstallState) string {
	var parts []string
	if state.Version != "" {
		parts = append(parts, state.Version)
	}
	parts = append(parts, state.Details...)
	parts = append(parts, state.Reasons...)
	return strings.Join(parts, "; ")
}
