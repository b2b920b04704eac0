// Package executor запускает внешние команды.
//
// Два режима, оба принимают argv-вектор (shell-синтаксис не
// интерпретируется):
//
//   - Run    — запуск с наследованием stdout/stderr терминала; для
//     коротких команд основной последовательности задач, чей вывод и так
//     идёт пользователю напрямую.
//   - Stream — запуск с piped stdout/stderr и построчным выводом с
//     префиксом источника; для долгих установочных команд, чтобы
//     чередующийся вывод оставался читаемым и ничего не буферизовалось
//     неограниченно в памяти.
//
// Единственная конкурентность во всём devkit — две горутины-читателя
// внутри Stream, сливающие stdout и stderr дочернего процесса
// параллельно, чтобы ни один pipe не блокировал другой. Обе
// присоединяются (sync.WaitGroup) до Wait, и управление не возвращается,
// пока процесс не завершён и не вычитан полностью.
//
// В режиме dry-run executor не вызывается вовсе: оркестратор обходит
// запуск и только логирует команду.
package executor
