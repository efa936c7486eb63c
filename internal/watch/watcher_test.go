package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher(dir, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(w.Stop)
	return w
}

func TestWatcher_DeliversNewJSONFile(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte(`{"app":{}}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case f := <-w.Files:
		if f.Path != path {
			t.Errorf("expected %s, got %s", path, f.Path)
		}
		if f.Err != nil {
			t.Errorf("unexpected read error: %v", f.Err)
		}
		if string(f.Data) != `{"app":{}}` {
			t.Errorf("unexpected data %q", f.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for import file")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	for _, name := range []string{"notes.txt", ".hidden.json", "report.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	select {
	case f := <-w.Files:
		t.Errorf("unexpected file event: %+v", f)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "inbox", "imports")
	startWatcher(t, dir)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected dir to exist: %v", err)
	}
}

func TestIsImportFile(t *testing.T) {
	cases := map[string]bool{
		"/x/backup.json": true,
		"/x/BACKUP.JSON": true,
		"/x/.tmp.json":   false,
		"/x/data.csv":    false,
		"/x/json":        false,
	}
	for in, want := range cases {
		if got := IsImportFile(in); got != want {
			t.Errorf("IsImportFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWatcher_StartFailureReleasesWatcher(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	w, err := NewWatcher(filepath.Join(blocker, "inbox"), nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Fatal("expected Start to fail below a regular file")
	}

	select {
	case _, ok := <-w.Files:
		if ok {
			t.Fatal("expected Files to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("Files was left open after a failed Start")
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w := startWatcher(t, t.TempDir())
	w.Stop()
	w.Stop()
	if _, ok := <-w.Files; ok {
		t.Fatal("expected Files to be closed")
	}
}
