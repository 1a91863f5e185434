package palette

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/swatch/internal/authority"
	"github.com/zjrosen/swatch/internal/cachemanager"
	"github.com/zjrosen/swatch/internal/log"
	"github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/pubsub"
	"github.com/zjrosen/swatch/internal/render"
	"github.com/zjrosen/swatch/internal/tracing"
)

// fileLoadTTL bounds how long a parsed palette file is served from
// cache. Cache keys carry the file's modtime, so edits always miss.
const fileLoadTTL = 5 * time.Minute

// Growth describes one committed batch of new registry entries.
type Growth struct {
	Added  int      // entries added in this batch
	Count  int      // registry count after the batch
	IDs    []string // ids added, in index order
	Source string   // what triggered the batch
	Synced int      // render descriptors brought up to date
}

// Options configures optional service collaborators.
type Options struct {
	// Snapshots persists the registry across runs. Nil disables
	// persistence.
	Snapshots palette.SnapshotRepository

	// Descriptors returns the live render descriptors to keep in step
	// with registry growth. Nil means no descriptor syncing.
	Descriptors func() []*render.Descriptor

	// Synchronizer overrides the default descriptor synchronizer,
	// e.g. to use a custom sprite path prefix.
	Synchronizer *render.Synchronizer

	// Tracer records spans around registration batches. Nil means
	// tracing is off.
	Tracer trace.Tracer

	// SkipFileCache disables the parsed-file cache. Used in tests.
	SkipFileCache bool
}

// Service is the application-layer facade over the domain registry.
// All mutating entry points take authority first and commit growth
// from migration and registration as a single batch: descriptors see
// one range extension and subscribers one event per call.
type Service struct {
	reg          *palette.Registry
	auth         *authority.Manager
	synchronizer *render.Synchronizer
	descriptors  func() []*render.Descriptor
	snapshots    palette.SnapshotRepository
	growth       *pubsub.Broker[Growth]
	tracer       trace.Tracer
	files        *cachemanager.ReadThroughCache[string, []PaletteDef, string]
}

// NewService wires a registry and its authority manager into a
// service.
func NewService(reg *palette.Registry, auth *authority.Manager, opts Options) *Service {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("palette")
	}
	synchronizer := opts.Synchronizer
	if synchronizer == nil {
		synchronizer = render.NewSynchronizer()
	}

	cache := cachemanager.NewInMemoryCacheManager[string, []PaletteDef](
		"palette-files", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return &Service{
		reg:          reg,
		auth:         auth,
		synchronizer: synchronizer,
		descriptors:  opts.Descriptors,
		snapshots:    opts.Snapshots,
		growth:       pubsub.NewBroker[Growth](),
		tracer:       tracer,
		files:        cachemanager.NewReadThroughCache(cache, readPaletteFile, opts.SkipFileCache),
	}
}

// Registry exposes the underlying registry for read-side consumers.
func (s *Service) Registry() *palette.Registry {
	return s.reg
}

// Synchronizer exposes the descriptor synchronizer so composition code
// can mark base descriptors.
func (s *Service) Synchronizer() *render.Synchronizer {
	return s.synchronizer
}

// Subscribe returns a channel of growth events. The channel closes
// when ctx is cancelled.
func (s *Service) Subscribe(ctx context.Context) <-chan pubsub.Event[Growth] {
	return s.growth.Subscribe(ctx)
}

// Close shuts down the growth broker and the snapshot store.
func (s *Service) Close() error {
	s.growth.Close()
	if s.snapshots != nil {
		return s.snapshots.Close()
	}
	return nil
}

// Register validates and registers a single palette, taking authority
// first. Returns true if a new entry was added, false for an already
// registered id.
func (s *Service) Register(ctx context.Context, id, name string, slots map[palette.Slot]palette.Color) (bool, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanRegister,
		trace.WithAttributes(attribute.String(tracing.AttrPaletteID, id)))
	defer span.End()

	batch := s.auth.EnsureAuthority()

	added, err := s.reg.Register(id, name, slots)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		// Entries migrated before the failure still committed.
		s.commit(batch, "register")
		return false, err
	}
	if added {
		batch++
	}
	span.SetAttributes(attribute.Bool(tracing.AttrPaletteAdded, added))
	s.commit(batch, "register")
	return added, nil
}

// RegisterDefinitions registers a batch of loaded definitions as one
// growth batch. Invalid definitions are logged and skipped; the rest
// of the batch still commits. Returns the number of new entries.
func (s *Service) RegisterDefinitions(ctx context.Context, defs []PaletteDef, source string) int {
	_, span := s.tracer.Start(ctx, tracing.SpanRegisterBatch,
		trace.WithAttributes(
			attribute.Int(tracing.AttrBatchSize, len(defs)),
			attribute.String(tracing.AttrBatchSource, source)))
	defer span.End()

	batch := s.auth.EnsureAuthority()
	registered := 0
	for _, def := range defs {
		slots, err := def.Slots()
		if err != nil {
			log.Warn(log.CatLoader, "skipping invalid palette definition",
				"id", def.ID, "file", def.Source, "error", err.Error())
			continue
		}
		added, err := s.reg.Register(def.ID, def.Name, slots)
		if err != nil {
			log.Warn(log.CatLoader, "skipping rejected palette definition",
				"id", def.ID, "file", def.Source, "error", err.Error())
			continue
		}
		if added {
			batch++
			registered++
		}
	}

	span.SetAttributes(attribute.Int(tracing.AttrRegistered, registered))
	s.commit(batch, source)
	return registered
}

// RegisterBuiltins registers the nine stock palettes as one batch.
// Entries already present, e.g. migrated in from a previous authority,
// are left untouched.
func (s *Service) RegisterBuiltins(ctx context.Context) int {
	_, span := s.tracer.Start(ctx, tracing.SpanRegisterBuiltin)
	defer span.End()

	batch := s.auth.EnsureAuthority()
	added := 0
	for _, b := range palette.Builtins() {
		slots := make(map[palette.Slot]palette.Color, palette.NumSlots)
		for i, slot := range palette.SlotOrder {
			slots[slot] = b.Colors[i]
		}
		ok, err := s.reg.Register(b.ID, b.Name, slots)
		if err != nil {
			log.ErrorErr(log.CatRegistry, "built-in palette rejected", err, "id", b.ID)
			continue
		}
		if ok {
			batch++
			added++
		}
	}

	s.commit(batch, "builtin")
	return added
}

// EnsureAuthority takes the accessor slot if not already held and
// commits any migrated entries as one growth batch. Returns the number
// of entries migrated in.
func (s *Service) EnsureAuthority(ctx context.Context) int {
	_, span := s.tracer.Start(ctx, tracing.SpanEnsureAuthority)
	defer span.End()

	migrated := s.auth.EnsureAuthority()
	span.SetAttributes(attribute.Int(tracing.AttrMigrated, migrated))
	s.commit(migrated, "migration")
	return migrated
}

// LoadDir loads every palette definition file directly under dir and
// registers them as one batch. A missing directory is not an error.
func (s *Service) LoadDir(ctx context.Context, dir string) (int, error) {
	defs, err := s.loadDirDefs(ctx, dir)
	if err != nil {
		return 0, err
	}
	if len(defs) == 0 {
		return 0, nil
	}
	return s.RegisterDefinitions(ctx, defs, "dir:"+filepath.Base(dir)), nil
}

// LoadFile loads and registers a single palette file. Used by the
// directory watcher on create and write events.
func (s *Service) LoadFile(ctx context.Context, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat palette file: %w", err)
	}

	defs, err := s.files.Get(ctx, fileCacheKey(path, info.ModTime()), path, fileLoadTTL)
	if err != nil {
		return 0, err
	}
	return s.RegisterDefinitions(ctx, defs, "file:"+filepath.Base(path)), nil
}

// LoadUserPalettes loads palettes from ~/.swatch/palettes and
// registers them as one batch.
func (s *Service) LoadUserPalettes(ctx context.Context) int {
	defs, _, err := LoadUserPalettesFromDir(UserPaletteBaseDir())
	if err != nil || len(defs) == 0 {
		return 0
	}
	return s.RegisterDefinitions(ctx, defs, "user")
}

// Restore replays the persisted snapshot into the registry in index
// order. It runs at startup before any registration, so the replay
// starts at index 1. A record that no longer applies stops the replay,
// mirroring migration's gap handling. Restore does not publish growth;
// it reestablishes prior state rather than extending it.
func (s *Service) Restore(ctx context.Context) (int, error) {
	if s.snapshots == nil {
		return 0, nil
	}

	_, span := s.tracer.Start(ctx, tracing.SpanRestore)
	defer span.End()

	records, err := s.snapshots.LoadSnapshot()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("load snapshot: %w", err)
	}

	restored := 0
	for _, rec := range records {
		if err := s.reg.RegisterAt(rec.ID, rec.Index, rec.Name, rec.Colors[:]); err != nil {
			log.ErrorErr(log.CatStore, "snapshot replay stopped", err,
				"index", rec.Index, "id", rec.ID)
			break
		}
		restored++
	}

	if restored > 0 {
		log.Info(log.CatStore, "registry restored from snapshot", "entries", restored)
	}
	span.SetAttributes(attribute.Int(tracing.AttrRestored, restored))
	return restored, nil
}

// commit runs the post-growth fanout for a batch of added entries: one
// synchronizer pass over the live descriptors, one snapshot save, one
// growth event. A zero batch is a no-op.
func (s *Service) commit(added int, source string) {
	if added <= 0 {
		return
	}

	count := s.reg.Count()
	synced := 0
	if s.descriptors != nil {
		synced = s.synchronizer.SyncAfterGrowth(count, added, s.descriptors())
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(s.reg.Snapshot()); err != nil {
			log.ErrorErr(log.CatStore, "saving registry snapshot", err)
		}
	}

	ids := make([]string, 0, added)
	for i := count - added + 1; i <= count; i++ {
		if id, ok := s.reg.IDAt(i); ok {
			ids = append(ids, id)
		}
	}

	s.growth.Publish(pubsub.GrowthEvent, Growth{
		Added:  added,
		Count:  count,
		IDs:    ids,
		Source: source,
		Synced: synced,
	})
	log.Info(log.CatRegistry, "growth batch committed",
		"added", added, "count", count, "source", source, "synced", synced)
}

// loadDirDefs collects parsed definitions from every palette file
// directly under dir, serving unchanged files from cache.
func (s *Service) loadDirDefs(ctx context.Context, dir string) ([]PaletteDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read palette dir: %w", err)
	}

	var defs []PaletteDef
	for _, entry := range entries {
		if entry.IsDir() || !isPaletteFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fileDefs, err := s.files.Get(ctx, fileCacheKey(path, info.ModTime()), path, fileLoadTTL)
		if err != nil {
			log.Warn(log.CatLoader, "skipping unreadable palette file",
				"file", path, "error", err.Error())
			continue
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

// fileCacheKey builds a cache key that changes whenever the file does.
func fileCacheKey(path string, modTime time.Time) string {
	return fmt.Sprintf("%s|%d", path, modTime.UnixNano())
}

// readPaletteFile is the cache-miss loader for a single palette file.
func readPaletteFile(_ context.Context, path string) ([]PaletteDef, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- paths come from configured palette directories
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	return parsePaletteDefs(content, path)
}
