// Package telemetry настраивает структурированное логирование devkit.
//
// Логгер строится на log/slog. Формат и уровень управляются переменными
// окружения LOG_FORMAT (text/json) и LOG_LEVEL (DEBUG/INFO/WARN/ERROR);
// флаг --verbose принудительно включает DEBUG.
//
// Диагностика пишется в stderr, чтобы не смешиваться с выводом
// выполняемых команд и таблицами CLI в stdout. Для setup-прогонов
// дополнительно доступен append-only файловый сток (setup.log_file).
package telemetry
