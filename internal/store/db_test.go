package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d := NewDB()
	require.NoError(t, d.Open(filepath.Join(t.TempDir(), "nested", "arbor.db")))
	t.Cleanup(d.Close)
	return d
}

func TestSaveAndSettings(t *testing.T) {
	d := openTestDB(t)

	require.NoError(t, d.Save(KeyViewMode, "grid"))
	require.NoError(t, d.Save(KeyViewMode, "list"))
	require.NoError(t, d.Save(KeyLastSeed, "/tmp/x"))

	settings, err := d.Settings()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyViewMode: "list", KeyLastSeed: "/tmp/x"}, settings)
}

func TestClosedDB(t *testing.T) {
	d := NewDB()
	assert.Error(t, d.Save("k", "v"))
	_, err := d.Settings()
	assert.Error(t, err)
}

func receive(t *testing.T, d *DB) Response {
	t.Helper()
	select {
	case resp := <-d.ResponseChan:
		return resp
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for store response")
		return Response{}
	}
}

func TestWorker(t *testing.T) {
	d := openTestDB(t)
	go d.Start()
	t.Cleanup(func() { close(d.RequestChan) })

	d.RequestChan <- Request{Op: FetchSettings}
	resp := receive(t, d)
	require.NoError(t, resp.Err)
	assert.Equal(t, FetchSettings, resp.Op)
	assert.Empty(t, resp.Settings)

	d.RequestChan <- Request{Op: SaveSetting, Key: KeyViewMode, Value: "list"}
	resp = receive(t, d)
	require.NoError(t, resp.Err)
	assert.Equal(t, SaveSetting, resp.Op)
	assert.Equal(t, "list", resp.Settings[KeyViewMode])
}
