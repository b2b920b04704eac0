// Package setup содержит каталог устанавливаемых компонентов системы.
//
// Включает:
//   - component.go — закрытый набор компонентов и таблица зависимостей
//   - resolve.go   — топологическое упорядочивание выборки
//   - context.go   — окружение машины (arch, platform, sudo) и запуск команд
//   - system.go, toolchains.go, docker.go, cuda.go, tools.go —
//     detect/install по компонентам
//
// Каталог фиксирован в коде и не расширяется пользователем; строковые
// идентификаторы используются в конфигурации (default/skip-списки) и
// аргументах CLI. Зависимости компонентов статичны.
//
// Detect всегда выполняется заново по живой машине и возвращает
// domain.InstallState; "не найдено" — это состояние, а не ошибка.
package setup
