// Package config загружает конфигурацию devkit из TOML-файла.
//
// Схема:
//
//	[tasks.<имя>]
//	commands = [ "другая_задача", ["cargo", "clippy"] ]
//	allow_fail = false
//
//	[setup]
//	default_components = ["system_packages", "node"]
//	skip_components = []
//	node_version = "22"
//	log_file = "/tmp/dev-setup.log"
//
// Элемент commands — либо строка (ссылка на другую задачу), либо массив
// строк (argv команды). Разбор шагов в исполняемую форму выполняет
// пакет engine; config проверяет форму значений и принадлежность имён
// из default/skip-списков каталогу компонентов.
//
// Порядок поиска файла: --file/-f, $DEV_CONFIG, ./dev.toml,
// ~/.dev/config.toml. Отсутствующий файл — не ошибка: CLI работает
// с пустым набором задач и setup-умолчаниями.
package config
