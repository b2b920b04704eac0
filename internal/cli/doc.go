// Package cli содержит команды инструмента dev.
//
// Команды строятся фабричными функциями, получающими ленивый
// конструктор приложения: конфигурация читается и валидируется один
// раз на запуск, в момент выполнения команды, а не при сборке дерева
// cobra.
package cli
