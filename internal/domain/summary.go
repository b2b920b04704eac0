package domain

// RunSummary — итог выполнения последовательности команд или компонентов.
type RunSummary struct {
	// Total — количество единиц выполнения в последовательности.
	Total int

	// Executed — сколько реально запускалось.
	Executed int

	// Simulated — сколько пропущено в режиме dry-run.
	Simulated int

	// Skipped — сколько пропущено как уже установленные (--skip-installed).
	Skipped int

	// Warned — сколько команд завершилось с ошибкой, но было продолжено
	// из-за allow_fail.
	Warned int
}

// IsNoop возвращает true, если последовательность была пустой.
func (s RunSummary) IsNoop() bool {
	return s.Total == 0
}
