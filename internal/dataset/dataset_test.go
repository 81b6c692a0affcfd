package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookup/internal/domain"
	"lookup/internal/eventbus"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "items.json", `[{"title": "Apple", "id": 1}, {"title": "Banana", "id": 2}]`},
		{"yaml", "items.yaml", "- title: Apple\n  id: 1\n- title: Banana\n  id: 2\n"},
		{"yml", "items.yml", "- title: Apple\n  id: 1\n- title: Banana\n  id: 2\n"},
		{"toml", "items.toml", "[[items]]\ntitle = \"Apple\"\nid = 1\n\n[[items]]\ntitle = \"Banana\"\nid = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			items, err := Load(path)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, "Apple", items[0]["title"])
			assert.Equal(t, "Banana", items[1]["title"])
			assert.Contains(t, items[1], "id")
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "items.csv", "title\nApple\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "broken.json", `[{"title": `))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "object.json", `{"title": "Apple"}`))
	assert.Error(t, err, "a single object is not a list")
}

func TestDecodeSkipsNullEntries(t *testing.T) {
	items, err := Decode([]byte(`[{"title": "Apple"}, null]`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFromLines(t *testing.T) {
	items, err := FromLines(strings.NewReader("Apple\r\n\n  \nBanana split\n"), "name")
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{"name": "Apple"}, {"name": "Banana split"}}, items)

	items, err = FromLines(strings.NewReader("Grape"), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{"title": "Grape"}}, items)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.json", `[{"title": "Apple"}]`)

	got := make(chan []domain.Item, 4)
	ws := NewWatchService(nil, logr.Discard())
	require.NoError(t, ws.StartWatch(context.Background(), path, func(items []domain.Item) { got <- items }))
	defer ws.StopWatch()

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.json", `[]`)
	writeFile(t, dir, "items.json", `[{"title": "Apple"}, {"title": "Kiwi"}]`)

	select {
	case items := <-got:
		assert.Len(t, items, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchPublishesLoadFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.json", `[]`)

	bus := eventbus.New(logr.Discard())
	var mu sync.Mutex
	var failures []eventbus.DataLoadFailedEvent
	bus.Subscribe(eventbus.EventDataLoadFailed, func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, e.(eventbus.DataLoadFailedEvent))
	})

	called := false
	ws := NewWatchService(bus, logr.Discard())
	require.NoError(t, ws.StartWatch(context.Background(), path, func([]domain.Item) { called = true }))
	defer ws.StopWatch()

	writeFile(t, dir, "items.json", `[{"title": `)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(failures) > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.False(t, called)
}

func TestWatchStopsWithContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "items.json", `[]`)
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWatchService(nil, logr.Discard())
	require.NoError(t, ws.StartWatch(ctx, path, func([]domain.Item) {}))
	assert.Error(t, ws.StartWatch(ctx, path, func([]domain.Item) {}), "one watch at a time")

	cancel()
	ws.StopWatch()

	// the service can be started again once stopped
	require.NoError(t, ws.StartWatch(context.Background(), path, func([]domain.Item) {}))
	ws.StopWatch()
}

func TestWatchMissingDirectory(t *testing.T) {
	ws := NewWatchService(nil, logr.Discard())
	err := ws.StartWatch(context.Background(), filepath.Join(t.TempDir(), "nope", "items.json"), func([]domain.Item) {})
	assert.Error(t, err)
}
