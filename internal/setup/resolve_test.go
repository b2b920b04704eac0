package setup

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve_DependenciesComeFirst(t *testing.T) {
	got, err := Resolve([]Component{Pm2}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Component{SystemPackages, Node, Pnpm, Pm2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolve_PreservesRequestOrder(t *testing.T) {
	got, err := Resolve([]Component{UV, GitLFS}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Component{SystemPackages, UV, GitLFS}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolve_NoDuplicatesWhenDependencyShared(t *testing.T) {
	got, err := Resolve([]Component{Node, Rustup}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[Component]int)
	for _, c := range got {
		seen[c]++
	}
	for c, n := range seen {
		if n > 1 {
			t.Fatalf("component %s appears %d times in %v", c, n, got)
		}
	}
	if seen[SystemPackages] != 1 {
		t.Fatalf("expected shared dependency to appear exactly once, got %v", got)
	}
}

func TestResolve_FullCatalog(t *testing.T) {
	got, err := Resolve(All(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(All()) {
		t.Fatalf("expected %d components, got %d", len(All()), len(got))
	}

	pos := make(map[Component]int, len(got))
	for i, c := range got {
		pos[c] = i
	}
	for _, c := range got {
		for _, dep := range c.Dependencies() {
			if pos[dep] > pos[c] {
				t.Errorf("dependency %s placed after %s", dep, c)
			}
		}
	}
}

func TestResolve_NoDepsPassthrough(t *testing.T) {
	got, err := Resolve([]Component{Pm2, UV}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Component{Pm2, UV}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolve_EmptySelection(t *testing.T) {
	if _, err := Resolve(nil, false); !errors.Is(err, ErrNoComponents) {
		t.Fatalf("expected ErrNoComponents, got %v", err)
	}
}

func TestResolve_DuplicateSelection(t *testing.T) {
	_, err := Resolve([]Component{Docker, Docker}, false)

	var dupErr *DuplicateComponentError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateComponentError, got %v", err)
	}
	if dupErr.Component != Docker {
		t.Fatalf("expected duplicate component %s, got %s", Docker, dupErr.Component)
	}
}

func TestResolve_DuplicateCheckedBeforeNoDeps(t *testing.T) {
	if _, err := Resolve([]Component{UV, UV}, true); !errors.Is(err, ErrDuplicateComponent) {
		t.Fatalf("expected ErrDuplicateComponent, got %v", err)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve(All(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Resolve(All(), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("resolution order changed between runs: %v vs %v", first, again)
		}
	}
}
