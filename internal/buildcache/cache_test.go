package buildcache

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala"
	"github.com/msto63/koala/foundation/koala/codegen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Config{
		Path:   filepath.Join(t.TempDir(), "cache", "koala.db"),
		Logger: mdwlog.Discard(),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleArtifact() *codegen.Artifact {
	return &codegen.Artifact{
		ModuleName: "main.koala",
		Backend:    "llvm",
		IR:         "define i32 @main() {\nentry:\n\tret i32 42\n}\n",
		Functions:  []string{"main"},
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	store := openTestStore(t)

	if _, err := os.Stat(store.Path()); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	if got := DefaultConfig().Path; got != filepath.Join(".koala", "cache.db") {
		t.Errorf("DefaultConfig().Path = %q", got)
	}
}

func TestStore_PutGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if a, ok, err := store.Get(ctx, "missing"); err != nil || ok || a != nil {
		t.Fatalf("Get(missing) = %v, %v, %v", a, ok, err)
	}

	want := sampleArtifact()
	if err := store.Put(ctx, "k1", "id-1", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := store.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("Get(k1) = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get(k1) = %+v, want %+v", got, want)
	}

	id, ok, err := store.CompilationID(ctx, "k1")
	if err != nil || !ok || id != "id-1" {
		t.Errorf("CompilationID(k1) = %q, %v, %v", id, ok, err)
	}
	if _, ok, err := store.CompilationID(ctx, "missing"); ok || err != nil {
		t.Errorf("CompilationID(missing) = %v, %v", ok, err)
	}
}

func TestStore_PutReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := sampleArtifact()
	second := sampleArtifact()
	second.IR = "; replaced\n"
	second.Functions = nil

	if err := store.Put(ctx, "k", "id-1", first); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "k", "id-2", second); err != nil {
		t.Fatal(err)
	}

	got, _, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if got.IR != "; replaced\n" || len(got.Functions) != 0 {
		t.Errorf("Get(k) = %+v", got)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
}

func TestStore_PutNil(t *testing.T) {
	store := openTestStore(t)

	err := store.Put(context.Background(), "k", "id", nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Put(nil) error = %v", err)
	}
}

func TestStore_StatsAndPurge(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if empty.Entries != 0 || empty.IRBytes != 0 || !empty.Oldest.IsZero() {
		t.Errorf("empty Stats() = %+v", empty)
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := store.Put(ctx, key, "id-"+key, sampleArtifact()); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 3 || stats.IRBytes != int64(3*len(sampleArtifact().IR)) {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.Newest.Before(stats.Oldest) {
		t.Errorf("Newest %v before Oldest %v", stats.Newest, stats.Oldest)
	}

	// nothing is an hour old yet
	n, err := store.Purge(ctx, time.Hour)
	if err != nil || n != 0 {
		t.Errorf("Purge(1h) = %d, %v", n, err)
	}

	n, err = store.Purge(ctx, 0)
	if err != nil || n != 3 {
		t.Errorf("Purge(0) = %d, %v", n, err)
	}
	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Error("purged entry still present")
	}
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := Open(Config{Path: path, Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "k", "id", sampleArtifact()); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(Config{Path: path, Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if _, ok, err := reopened.Get(ctx, "k"); !ok || err != nil {
		t.Errorf("entry lost after reopen: %v, %v", ok, err)
	}
}

func TestStore_ClosedErrors(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	_, _, err := store.Get(context.Background(), "k")
	if !mdwerror.HasCode(err, mdwerror.CodeCacheError) {
		t.Errorf("Get() on closed store error = %v, want CACHE_ERROR", err)
	}
}

func TestStore_WithEngine(t *testing.T) {
	store := openTestStore(t)
	logger := mdwlog.Discard()
	engine := koala.New(koala.Options{
		Logger:  logger,
		Backend: codegen.NewLLVMBackend(codegen.LLVMOptions{Logger: logger}),
		Cache:   store,
	})
	ctx := context.Background()
	source := "define main() { return 5; }"

	first, err := engine.Compile(ctx, "main", source)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := engine.Compile(ctx, "main", source)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if first.Cached || !second.Cached {
		t.Errorf("cached = %v, %v; want false, true", first.Cached, second.Cached)
	}
	if second.Artifact.IR != first.Artifact.IR || !reflect.DeepEqual(second.Artifact.Functions, []string{"main"}) {
		t.Errorf("cached artifact = %+v", second.Artifact)
	}
}
