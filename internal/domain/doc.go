// Package domain содержит основные типы данных devkit.
//
// Включает:
//   - command.go — CommandSpec, результат разворачивания задачи
//   - state.go   — InstallState, состояние установки компонента
//   - summary.go — итоги выполнения последовательности
//
// Типы domain не зависят от других внутренних пакетов и описывают
// контракты между графами (engine, setup) и оркестратором.
package domain
