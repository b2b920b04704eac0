package domain

// InstallStateKind — дискриминант варианта InstallState.
type InstallStateKind string

const (
	// StateNotInstalled — компонент отсутствует на машине.
	StateNotInstalled InstallStateKind = "NOT_INSTALLED"

	// StatePartial — бинарники есть, но конфигурация не завершена
	// (например, сервис не активен или пользователь не в нужной группе).
	StatePartial InstallStateKind = "PARTIAL"

	// StateInstalled — компонент установлен и работоспособен.
	StateInstalled InstallStateKind = "INSTALLED"

	// StatePresentButUnknown — нестандартная, но, возможно, рабочая
	// установка (например, vendor-поставленный драйвер). Молча
	// перезаписывать такую установку нельзя.
	StatePresentButUnknown InstallStateKind = "PRESENT_BUT_UNKNOWN"
)

// InstallState — классификация текущего состояния компонента на машине.
//
// Детекция всегда выполняется заново, состояние нигде не персистится.
// InstallState используется только для решения skip-vs-install.
type InstallState struct {
	// Kind — вариант состояния.
	Kind InstallStateKind

	// Version — версия установленного компонента (только для Installed,
	// может быть пустой, если версия неизвестна).
	Version string

	// Details — дополнительные сведения об установке (только Installed).
	Details []string

	// Reasons — причины классификации (Partial и PresentButUnknown).
	Reasons []string
}

// NotInstalled возвращает состояние "не установлен".
func NotInstalled() InstallState {
	return InstallState{Kind: StateNotInstalled}
}

// Partial возвращает состояние "частично установлен" с причинами.
func Partial(reasons ...string) InstallState {
	return InstallState{Kind: StatePartial, Reasons: reasons}
}

// Installed возвращает состояние "установлен" с версией и деталями.
func Installed(version string, details ...string) InstallState {
	return InstallState{Kind: StateInstalled, Version: version, Details: details}
}

// PresentButUnknown возвращает состояние "присутствует, но не опознан".
func PresentButUnknown(reasons ...string) InstallState {
	return InstallState{Kind: StatePresentButUnknown, Reasons: reasons}
}

// IsInstalled возвращает true, если компонент полностью установлен.
// Только это состояние позволяет пропустить установку при --skip-installed.
func (s InstallState) IsInstalled() bool {
	return s.Kind == StateInstalled
}
