package candidates_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tsmls/internal/candidates"
)

func TestListReturnsSortedEntries(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"dir_c", "dir_a", "dir_b"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	names := candidates.List(root)
	want := []string{"dir_a", "dir_b", "dir_c"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestListSwallowsErrors(t *testing.T) {
	if names := candidates.List(filepath.Join(t.TempDir(), "missing")); len(names) != 0 {
		t.Errorf("expected empty listing for missing directory, got %v", names)
	}
}

func TestSetMembership(t *testing.T) {
	set := candidates.NewSet([]string{"dir_a", "dir_a", "dir_b"})

	if len(set) != 2 {
		t.Errorf("expected deduplicated set of 2, got %d", len(set))
	}
	if !set.Contains("dir_a") {
		t.Error("expected dir_a to be a member")
	}
	// Pure string equality: no case-folding, no trimming.
	if set.Contains("Dir_A") || set.Contains("dir_a ") {
		t.Error("membership must be exact")
	}
	if want := []string{"dir_a", "dir_b"}; !reflect.DeepEqual(set.Names(), want) {
		t.Errorf("expected %v, got %v", want, set.Names())
	}
}
