package watcher

import (
	"sort"
	"testing"
	"time"
)

const testInterval = 50 * time.Millisecond

func receiveBatch(t *testing.T, d *Debouncer, timeout time.Duration) []Change {
	t.Helper()
	select {
	case batch := <-d.Output():
		return batch
	case <-time.After(timeout):
		t.Fatal("timed out waiting for debouncer batch")
		return nil
	}
}

func Test_Debouncer_SingleChange(t *testing.T) {
	d := NewDebouncer(testInterval)

	d.Add("main.py", OpWrite)

	batch := receiveBatch(t, d, 500*time.Millisecond)

	if len(batch) != 1 {
		t.Fatalf("expected 1 change, got %d", len(batch))
	}
	if batch[0].Path != "main.py" {
		t.Errorf("expected path 'main.py', got '%s'", batch[0].Path)
	}
	if batch[0].Op != OpWrite {
		t.Errorf("expected OpWrite, got %v", batch[0].Op)
	}
}

func Test_Debouncer_ChangeCollapsing(t *testing.T) {
	d := NewDebouncer(testInterval)

	// Same path twice collapses to one change with the latest op.
	d.Add("main.py", OpCreate)
	d.Add("main.py", OpWrite)

	batch := receiveBatch(t, d, 500*time.Millisecond)

	if len(batch) != 1 {
		t.Fatalf("expected 1 change (collapsed), got %d", len(batch))
	}
	if batch[0].Op != OpWrite {
		t.Errorf("expected latest op OpWrite, got %v", batch[0].Op)
	}
}

func Test_Debouncer_MultiplePaths(t *testing.T) {
	d := NewDebouncer(testInterval)

	d.Add("main.py", OpWrite)
	d.Add("util.py", OpCreate)
	d.Add("legacy.py", OpRemove)

	batch := receiveBatch(t, d, 500*time.Millisecond)

	if len(batch) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(batch))
	}

	sort.Slice(batch, func(i, j int) bool {
		return batch[i].Path < batch[j].Path
	})

	expectedPaths := []string{"legacy.py", "main.py", "util.py"}
	for i, expected := range expectedPaths {
		if batch[i].Path != expected {
			t.Errorf("change[%d]: expected path '%s', got '%s'", i, expected, batch[i].Path)
		}
	}
}

func Test_Debouncer_TimerReset(t *testing.T) {
	d := NewDebouncer(testInterval)

	d.Add("main.py", OpWrite)

	// A change inside the quiet window restarts the timer, so both land
	// in a single batch.
	time.Sleep(testInterval / 2)
	d.Add("util.py", OpWrite)

	batch := receiveBatch(t, d, 500*time.Millisecond)

	if len(batch) != 2 {
		t.Fatalf("expected 2 changes in single batch, got %d", len(batch))
	}

	paths := make(map[string]bool)
	for _, c := range batch {
		paths[c.Path] = true
	}
	if !paths["main.py"] || !paths["util.py"] {
		t.Errorf("expected both main.py and util.py in batch, got: %v", batch)
	}
}

func Test_ChangeOp_String(t *testing.T) {
	cases := map[ChangeOp]string{
		OpCreate: "create",
		OpWrite:  "write",
		OpRemove: "remove",
		OpRename: "rename",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("ChangeOp(%d).String() = %s, want %s", op, got, want)
		}
	}
}
