package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Bakobiibizo/devkit/internal/config"
)

// buildIndex — хелпер: собирает TaskIndex из таблицы задач.
func buildIndex(t *testing.T, tasks map[string]config.Task) *TaskIndex {
	t.Helper()
	index, err := FromConfig(&config.DevConfig{Tasks: tasks})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return index
}

func cmd(argv ...string) []any {
	out := make([]any, len(argv))
	for i, a := range argv {
		out[i] = a
	}
	return out
}

func TestFlatten_SingleCommand(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"lint": {Commands: []any{cmd("cargo", "clippy")}},
	})

	specs, err := index.Flatten("lint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(specs) != 1 {
		t.Fatalf("expected 1 command, got %d", len(specs))
	}
	if specs[0].Origin != "lint" {
		t.Errorf("expected origin lint, got %s", specs[0].Origin)
	}
	if !reflect.DeepEqual(specs[0].Argv, []string{"cargo", "clippy"}) {
		t.Errorf("unexpected argv: %v", specs[0].Argv)
	}
	if specs[0].AllowFail {
		t.Error("allow_fail should default to false")
	}
}

func TestFlatten_NestedReferences(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"lint": {Commands: []any{cmd("cargo", "clippy")}},
		"test": {Commands: []any{cmd("cargo", "test")}},
		"ci":   {Commands: []any{"lint", "test"}},
	})

	specs, err := index.Flatten("ci")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(specs))
	}

	// Origin указывает на задачу, непосредственно содержавшую команду
	if specs[0].Origin != "lint" || specs[1].Origin != "test" {
		t.Errorf("unexpected origins: %s, %s", specs[0].Origin, specs[1].Origin)
	}
	if !reflect.DeepEqual(specs[0].Argv, []string{"cargo", "clippy"}) {
		t.Errorf("unexpected first argv: %v", specs[0].Argv)
	}
	if !reflect.DeepEqual(specs[1].Argv, []string{"cargo", "test"}) {
		t.Errorf("unexpected second argv: %v", specs[1].Argv)
	}
}

func TestFlatten_DeclarationOrder(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"prep":  {Commands: []any{cmd("echo", "a"), cmd("echo", "b")}},
		"build": {Commands: []any{"prep", cmd("echo", "c"), "post"}},
		"post":  {Commands: []any{cmd("echo", "d")}},
	})

	specs, err := index.Flatten("build")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, s := range specs {
		got = append(got, s.Argv[1])
	}
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected pre-order %v, got %v", want, got)
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"lint": {Commands: []any{cmd("cargo", "clippy")}},
		"test": {Commands: []any{cmd("cargo", "test")}},
		"ci":   {Commands: []any{"lint", "test"}},
	})

	first, err := index.Flatten("ci")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := index.Flatten("ci")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("flatten is not deterministic: %v vs %v", first, again)
		}
	}
}

func TestFlatten_AllowFailInheritance(t *testing.T) {
	// A (allow_fail=true) → B (allow_fail=false): команды B наследуют true
	index := buildIndex(t, map[string]config.Task{
		"a": {Commands: []any{"b"}, AllowFail: true},
		"b": {Commands: []any{cmd("cargo", "test")}},
	})

	specs, err := index.Flatten("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("expected 1 command, got %d", len(specs))
	}
	if !specs[0].AllowFail {
		t.Error("commands expanded under allow_fail task should inherit allow_fail")
	}

	// Прямое раскрытие B наследования не даёт
	direct, err := index.Flatten("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if direct[0].AllowFail {
		t.Error("direct expansion of b should not carry allow_fail")
	}
}

func TestFlatten_DirectCycle(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"a": {Commands: []any{"b"}},
		"b": {Commands: []any{"a"}},
	})

	_, err := index.Flatten("a")
	if err == nil {
		t.Fatal("expected cycle error")
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %T", err)
	}
	want := []string{"a", "b", "a"}
	if !reflect.DeepEqual(cycleErr.Path, want) {
		t.Errorf("expected path %v, got %v", want, cycleErr.Path)
	}
}

func TestFlatten_SelfCycle(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"loop": {Commands: []any{"loop"}},
	})

	_, err := index.Flatten("loop")
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	want := []string{"loop", "loop"}
	if !reflect.DeepEqual(cycleErr.Path, want) {
		t.Errorf("expected path %v, got %v", want, cycleErr.Path)
	}
}

func TestFlatten_CyclePathStartsAtFirstOccurrence(t *testing.T) {
	// root не входит в цикл: путь начинается с повторившегося имени
	index := buildIndex(t, map[string]config.Task{
		"root": {Commands: []any{"a"}},
		"a":    {Commands: []any{"b"}},
		"b":    {Commands: []any{"a"}},
	})

	_, err := index.Flatten("root")
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	want := []string{"a", "b", "a"}
	if !reflect.DeepEqual(cycleErr.Path, want) {
		t.Errorf("expected path %v, got %v", want, cycleErr.Path)
	}
}

func TestFlatten_UnknownTask(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"ci": {Commands: []any{"missing"}},
	})

	_, err := index.Flatten("ci")
	if !errors.Is(err, ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}

	_, err = index.Flatten("nope")
	var unknownErr *UnknownTaskError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTaskError, got %v", err)
	}
	if unknownErr.Name != "nope" {
		t.Errorf("expected name nope, got %s", unknownErr.Name)
	}
}

func TestFlatten_EmptyCommand(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"bad": {Commands: []any{cmd()}},
	})

	_, err := index.Flatten("bad")
	var emptyErr *EmptyCommandError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyCommandError, got %v", err)
	}
	if emptyErr.Task != "bad" {
		t.Errorf("expected task bad, got %s", emptyErr.Task)
	}
}

func TestFromConfig_BadStepValue(t *testing.T) {
	_, err := FromConfig(&config.DevConfig{
		Tasks: map[string]config.Task{
			"bad": {Commands: []any{int64(42)}},
		},
	})
	if !errors.Is(err, ErrBadStep) {
		t.Errorf("expected ErrBadStep, got %v", err)
	}

	_, err = FromConfig(&config.DevConfig{
		Tasks: map[string]config.Task{
			"bad": {Commands: []any{[]any{"ok", int64(1)}}},
		},
	})
	if !errors.Is(err, ErrBadStep) {
		t.Errorf("expected ErrBadStep for non-string argv item, got %v", err)
	}
}

func TestList_SortedSummaries(t *testing.T) {
	index := buildIndex(t, map[string]config.Task{
		"test": {Commands: []any{cmd("cargo", "test")}},
		"ci":   {Commands: []any{"lint", "test"}, AllowFail: true},
		"lint": {Commands: []any{cmd("cargo", "clippy")}},
	})

	list := index.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	if list[0].Name != "ci" || list[1].Name != "lint" || list[2].Name != "test" {
		t.Errorf("expected alphabetical order, got %v", list)
	}
	if list[0].Steps != 2 || !list[0].AllowFail {
		t.Errorf("unexpected summary for ci: %+v", list[0])
	}
}
