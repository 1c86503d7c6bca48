package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, ch <-chan any, want Op) *Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case v, ok := <-ch:
			require.True(t, ok, "events channel closed")
			switch ev := v.(type) {
			case error:
				require.NoError(t, ev)
			case *Event:
				if ev.Op.HasAny(want) {
					return ev
				}
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %v", want)
			return nil
		}
	}
}

func TestFileWatcher1(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "sessions.json")

	fw, err := NewFileWatcher(filename)
	require.NoError(t, err)
	defer fw.Close()

	// other files in the same directory are filtered
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filename, []byte("{}"), 0644))

	ev := waitEvent(t, fw.Events(), Create|Modify)
	abs, _ := filepath.Abs(filename)
	assert.Equal(t, abs, ev.Name)

	require.NoError(t, os.Remove(filename))
	ev = waitEvent(t, fw.Events(), Remove)
	assert.Equal(t, abs, ev.Name)
}

func TestFileWatcherClose(t *testing.T) {
	fw, err := NewFileWatcher(filepath.Join(t.TempDir(), "a.toml"))
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	select {
	case _, ok := <-fw.Events():
		for ok {
			_, ok = <-fw.Events()
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "create|modify", (Create | Modify).String())
	assert.Equal(t, "attrib|create|modify|remove|rename", AllOps.String())

	op := AllOps
	op.Remove(Attrib | Rename)
	assert.True(t, op.HasAny(Remove))
	assert.False(t, op.HasAny(Attrib))
}
