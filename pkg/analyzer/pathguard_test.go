package analyzer

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_resolveRoot_Containment(t *testing.T) {
	ws := t.TempDir()
	ws, _ = filepath.EvalSymlinks(ws)

	out := resolveRoot("../../etc", ws)
	if out.withinWorkspace {
		t.Fatal("escape via .. must be rejected")
	}

	if err := os.MkdirAll(filepath.Join(ws, "src"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	out = resolveRoot("src", ws)
	if !out.withinWorkspace || !out.directoryExists {
		t.Fatalf("src should resolve: %+v", out)
	}

	out = resolveRoot("", ws)
	if !out.withinWorkspace || !out.directoryExists {
		t.Fatalf("empty root means workspace itself: %+v", out)
	}
	if out.path != ws {
		t.Fatalf("path %s want %s", out.path, ws)
	}
}

func Test_resolveRoot_MissingDirectory(t *testing.T) {
	ws := t.TempDir()
	out := resolveRoot("no/such/dir", ws)
	if !out.withinWorkspace {
		t.Fatal("missing dir inside workspace is still contained")
	}
	if out.directoryExists {
		t.Fatal("missing dir must report directoryExists=false")
	}
}

func Test_contains_Boundary(t *testing.T) {
	ws := filepath.Join(string(filepath.Separator), "workspace")
	if !contains(ws, ws) {
		t.Fatal("equal paths are contained")
	}
	if !contains(ws, filepath.Join(ws, "sub")) {
		t.Fatal("subdirectory is contained")
	}
	// 共享前缀但不在分隔符边界上
	if contains(ws, ws+"Evil") {
		t.Fatal("sibling with shared prefix must not be contained")
	}
}

func Test_resolveRoot_Symlink(t *testing.T) {
	ws := t.TempDir()
	ws, _ = filepath.EvalSymlinks(ws)
	outside := t.TempDir()
	link := filepath.Join(ws, "escape")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlink: %v", err)
	}
	out := resolveRoot("escape", ws)
	if out.withinWorkspace {
		t.Fatal("symlink escaping workspace must be rejected")
	}
}
