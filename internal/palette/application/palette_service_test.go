package palette

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/swatch/internal/authority"
	"github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/pubsub"
	"github.com/zjrosen/swatch/internal/render"
)

// stubHost simulates a prior accessor implementation holding entries
// the service has to migrate in.
type stubHost struct {
	count  int
	colors map[int][]palette.Color
}

func (h *stubHost) ColorCount() int { return h.count }

func (h *stubHost) ColorsAt(index int) ([]palette.Color, bool) {
	c, ok := h.colors[index]
	return c, ok
}

func builtinStubHost() *stubHost {
	host := &stubHost{count: 9, colors: make(map[int][]palette.Color)}
	for _, b := range palette.Builtins() {
		colors := b.Colors
		host.colors[b.Index] = colors[:]
	}
	return host
}

// memorySnapshots is an in-memory palette.SnapshotRepository.
type memorySnapshots struct {
	records []palette.SnapshotRecord
	saves   int
	closed  bool
}

func (m *memorySnapshots) SaveSnapshot(records []palette.SnapshotRecord) error {
	m.records = append([]palette.SnapshotRecord(nil), records...)
	m.saves++
	return nil
}

func (m *memorySnapshots) LoadSnapshot() ([]palette.SnapshotRecord, error) {
	return m.records, nil
}

func (m *memorySnapshots) Close() error {
	m.closed = true
	return nil
}

func defSlots() map[palette.Slot]palette.Color {
	slots := make(map[palette.Slot]palette.Color, palette.NumSlots)
	for i, s := range palette.SlotOrder {
		slots[s] = palette.Color{R: i * 10, G: i * 20, B: i * 30}
	}
	return slots
}

func newTestService(opts Options) (*Service, *authority.Slot) {
	opts.SkipFileCache = true
	reg := palette.NewRegistry("0.4.0")
	slot := authority.NewSlot()
	mgr := authority.NewManager(reg, slot, nil)
	return NewService(reg, mgr, opts), slot
}

func recvGrowth(t *testing.T, ch <-chan pubsub.Event[Growth]) Growth {
	t.Helper()
	select {
	case ev := <-ch:
		require.Equal(t, pubsub.GrowthEvent, ev.Type)
		return ev.Payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for growth event")
		return Growth{}
	}
}

func requireNoGrowth(t *testing.T, ch <-chan pubsub.Event[Growth]) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected growth event: %+v", ev.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestService_RegisterPublishesGrowth(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := svc.Subscribe(ctx)

	added, err := svc.Register(ctx, "storm-gray", "Storm Gray", defSlots())
	require.NoError(t, err)
	require.True(t, added)

	growth := recvGrowth(t, events)
	require.Equal(t, 1, growth.Added)
	require.Equal(t, 1, growth.Count)
	require.Equal(t, []string{"storm-gray"}, growth.IDs)
	require.Equal(t, "register", growth.Source)
}

func TestService_RegisterDuplicateNoEvent(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	added, err := svc.Register(ctx, "storm-gray", "Storm Gray", defSlots())
	require.NoError(t, err)
	require.True(t, added)

	events := svc.Subscribe(ctx)
	added, err = svc.Register(ctx, "storm-gray", "Renamed", defSlots())
	require.NoError(t, err)
	require.False(t, added)
	requireNoGrowth(t, events)
}

func TestService_RegisterValidationError(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	ctx := context.Background()
	slots := defSlots()
	slots[palette.SlotBase] = palette.Color{R: 999}

	added, err := svc.Register(ctx, "broken", "", slots)
	require.ErrorIs(t, err, palette.ErrValidation)
	require.False(t, added)
	require.Equal(t, 0, svc.Registry().Count())
}

// Migration pulled in by the authority check and the newly registered
// entry commit as one batch: one event, one descriptor range pass.
func TestService_MigrationAndRegisterCommitAsOneBatch(t *testing.T) {
	reg := palette.NewRegistry("0.4.0")
	slot := authority.NewSlot()
	slot.Install(builtinStubHost())
	mgr := authority.NewManager(reg, slot, nil)

	hero := &render.Descriptor{
		SpritePathPrefix: render.PaletteAssetPrefix + "hero",
		FrameHeight:      9,
	}
	svc := NewService(reg, mgr, Options{
		Descriptors:   func() []*render.Descriptor { return []*render.Descriptor{hero} },
		SkipFileCache: true,
	})
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := svc.Subscribe(ctx)

	added, err := svc.Register(ctx, "storm-gray", "Storm Gray", defSlots())
	require.NoError(t, err)
	require.True(t, added)

	growth := recvGrowth(t, events)
	require.Equal(t, 10, growth.Added, "9 migrated + 1 registered")
	require.Equal(t, 10, growth.Count)
	require.Len(t, growth.IDs, 10)
	require.Equal(t, "archive-olive", growth.IDs[0])
	require.Equal(t, "storm-gray", growth.IDs[9])
	require.Equal(t, 1, growth.Synced)
	require.Equal(t, 10, hero.FrameHeight)

	requireNoGrowth(t, events)
}

func TestService_RegisterBuiltins(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	ctx := context.Background()
	require.Equal(t, 9, svc.RegisterBuiltins(ctx))
	require.Equal(t, 9, svc.Registry().Count())

	id, ok := svc.Registry().IDAt(1)
	require.True(t, ok)
	require.Equal(t, "archive-olive", id)

	// Idempotent.
	require.Equal(t, 0, svc.RegisterBuiltins(ctx))
	require.Equal(t, 9, svc.Registry().Count())
}

func TestService_EnsureAuthorityCommitsMigration(t *testing.T) {
	reg := palette.NewRegistry("0.4.0")
	slot := authority.NewSlot()
	slot.Install(builtinStubHost())
	mgr := authority.NewManager(reg, slot, nil)
	svc := NewService(reg, mgr, Options{SkipFileCache: true})
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := svc.Subscribe(ctx)

	require.Equal(t, 9, svc.EnsureAuthority(ctx))
	growth := recvGrowth(t, events)
	require.Equal(t, 9, growth.Added)
	require.Equal(t, "migration", growth.Source)

	// Already owned: nothing to do, nothing published.
	require.Equal(t, 0, svc.EnsureAuthority(ctx))
	requireNoGrowth(t, events)
}

func TestService_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writePaletteFile(t, filepath.Join(dir, "team.yaml"), `palettes:
  - id: storm-gray
    name: Storm Gray
    colors:
      outline: "#1A1B1E"
      shadow: "#2E2F33"
      base: "#6B7280"
      baseLight: "#9CA3AF"
      trim: "#4B5563"
      trimLight: "#D1D5DB"
      accent: "#60A5FA"
      highlight: "#F3F4F6"
  - id: moss-green
    colors:
      outline: "#14261A"
      shadow: "#1E3A26"
      base: "#3F6212"
      baseLight: "#84CC16"
      trim: "#365314"
      trimLight: "#BEF264"
      accent: "#FACC15"
      highlight: "#F7FEE7"
`)
	// Malformed colors are skipped, not fatal.
	writePaletteFile(t, filepath.Join(dir, "broken.yaml"), `palettes:
  - id: broken
    colors:
      outline: "not-a-color"
`)
	// Non-palette files are ignored.
	writePaletteFile(t, filepath.Join(dir, "notes.txt"), "not yaml")

	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	ctx := context.Background()
	registered, err := svc.LoadDir(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, 2, registered)

	entry, ok := svc.Registry().Get("storm-gray")
	require.True(t, ok)
	require.Equal(t, "Storm Gray", entry.Name())
	c, ok := entry.ColorFor(palette.SlotAccent)
	require.True(t, ok)
	require.Equal(t, "#60A5FA", c.Hex())

	// Name defaults to the id.
	entry, ok = svc.Registry().Get("moss-green")
	require.True(t, ok)
	require.Equal(t, "moss-green", entry.Name())

	// Reloading the same directory adds nothing.
	registered, err = svc.LoadDir(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, 0, registered)
}

func TestService_LoadDirMissing(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	registered, err := svc.LoadDir(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Equal(t, 0, registered)
}

func TestService_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solo.yaml")
	writePaletteFile(t, path, `palettes:
  - id: dusk-orange
    name: Dusk Orange
    colors:
      outline: "#1F1109"
      shadow: "#3B2008"
      base: "#C2410C"
      baseLight: "#FB923C"
      trim: "#7C2D12"
      trimLight: "#FDBA74"
      accent: "#FDE68A"
      highlight: "#FFF7ED"
`)

	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	registered, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, registered)

	_, err = svc.LoadFile(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestService_SnapshotSaveAndRestore(t *testing.T) {
	store := &memorySnapshots{}
	svc, _ := newTestService(Options{Snapshots: store})

	ctx := context.Background()
	svc.RegisterBuiltins(ctx)
	_, err := svc.Register(ctx, "storm-gray", "Storm Gray", defSlots())
	require.NoError(t, err)
	require.Equal(t, 2, store.saves)
	require.Len(t, store.records, 10)
	require.NoError(t, svc.Close())
	require.True(t, store.closed)

	// A fresh process replays the snapshot before doing anything else.
	next, _ := newTestService(Options{Snapshots: store})
	restored, err := next.Restore(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, restored)
	require.Equal(t, 10, next.Registry().Count())

	id, ok := next.Registry().IDAt(1)
	require.True(t, ok)
	require.Equal(t, "archive-olive", id)

	entry, ok := next.Registry().Get("storm-gray")
	require.True(t, ok)
	require.Equal(t, 10, entry.Index())
	require.Equal(t, "Storm Gray", entry.Name())
}

func TestService_RestoreWithoutStore(t *testing.T) {
	svc, _ := newTestService(Options{})
	defer func() { _ = svc.Close() }()

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, restored)
}

func writePaletteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
