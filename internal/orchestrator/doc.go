// Package orchestrator последовательно выполняет развёрнутые задачи
// и установку компонентов.
//
// Оркестратор не знает о CLI и конфигурации: он получает готовый
// TaskIndex или выборку компонентов, разворачивает её целиком до
// первого побочного эффекта и затем выполняет шаг за шагом. Ошибки
// определения (неизвестная задача, цикл, пустая команда) всегда
// опережают выполнение.
package orchestrator
