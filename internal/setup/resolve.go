package setup

// Resolve упорядочивает выборку компонентов для последовательной установки.
//
// Выборка проверяется на пустоту и дубликаты (линейный скан —
// каталог насчитывает дюжину элементов). При noDeps запрошенный список
// возвращается как есть: зависимости — забота вызывающего.
//
// Иначе выполняется классический трёхцветный DFS (unvisited /
// in-progress / done) по запрошенным компонентам и их статическим
// рёбрам: зависимости всегда оказываются раньше зависимого, компоненты
// обрабатываются в порядке запроса, уже размещённые узлы не дублируются.
func Resolve(components []Component, noDeps bool) ([]Component, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	for i, c := range components {
		for _, prev := range components[:i] {
			if prev == c {
				return nil, &DuplicateComponentError{Component: c}
			}
		}
	}

	if noDeps {
		out := make([]Component, len(components))
		copy(out, components)
		return out, nil
	}

	result := make([]Component, 0, len(components))
	visited := make(map[Component]bool)
	visiting := make(map[Component]bool)

	for _, c := range components {
		var err error
		result, err = visit(c, result, visited, visiting)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// visit — шаг DFS. Повторный вход в узел in-progress означает цикл.
func visit(c Component, result []Component, visited, visiting map[Component]bool) ([]Component, error) {
	if visited[c] {
		return result, nil
	}
	if visiting[c] {
		return nil, &CircularDependencyError{Component: c}
	}

	visiting[c] = true
	for _, dep := range dependencies[c] {
		var err error
		result, err = visit(dep, result, visited, visiting)
		if err != nil {
			return nil, err
		}
	}
	delete(visiting, c)

	visited[c] = true
	return append(result, c), nil
}
