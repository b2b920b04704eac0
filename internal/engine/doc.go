// Package engine содержит граф задач и его разворачивание.
//
// Включает:
//   - tasks.go  — TaskIndex: разбор определений и Flatten
//   - errors.go — ошибки определения и структуры графа
//
// Задача — именованная последовательность шагов: либо argv конкретной
// команды, либо ссылка на другую задачу. Flatten рекурсивно раскрывает
// ссылки в линейный список domain.CommandSpec (pre-order, в порядке
// объявления шагов), обнаруживает циклы по явному стеку раскрытия и
// наследует флаг allow_fail вниз по цепочке ссылок.
//
// Все ошибки определения и структуры обнаруживаются до запуска первой
// команды: Flatten вычисляет последовательность целиком.
package engine
