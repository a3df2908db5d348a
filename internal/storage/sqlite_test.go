package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSpec(seed int64) pathfind.Spec {
	spec := pathfind.DefaultSpec(25, 25)
	spec.Seed = seed
	return spec
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	spec := testSpec(42)
	spec.ObstacleProbability = 0.25
	spec.Start = pathfind.P(2, 3)

	id, err := store.SaveBookmark(BookmarkFromSpec("maze", spec))
	if err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveBookmark() id = %d, expected positive", id)
	}

	b, err := store.BookmarkByName("maze")
	if err != nil {
		t.Fatalf("BookmarkByName() failed: %v", err)
	}
	if b == nil {
		t.Fatal("BookmarkByName() = nil, expected bookmark")
	}
	if b.ID != id {
		t.Errorf("ID = %d, expected %d", b.ID, id)
	}
	if b.Spec() != spec {
		t.Errorf("Spec() = %+v, expected %+v", b.Spec(), spec)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreBookmarkReplaysGrid(t *testing.T) {
	store := openTestStore(t)

	spec := testSpec(7)
	if _, err := store.SaveBookmark(BookmarkFromSpec("seven", spec)); err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	b, err := store.BookmarkByName("seven")
	if err != nil || b == nil {
		t.Fatalf("BookmarkByName() = %v, %v", b, err)
	}

	want, _ := pathfind.Generate(spec)
	got, err := pathfind.Generate(b.Spec())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if len(got.ObstaclePositions()) != len(want.ObstaclePositions()) {
		t.Fatalf("replayed grid has %d walls, expected %d", len(got.ObstaclePositions()), len(want.ObstaclePositions()))
	}
	for i, p := range want.ObstaclePositions() {
		if got.ObstaclePositions()[i] != p {
			t.Fatalf("wall %d = %v, expected %v", i, got.ObstaclePositions()[i], p)
		}
	}
}

func TestStoreSaveReplacesByName(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveBookmark(BookmarkFromSpec("dup", testSpec(1)))
	if err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	second, err := store.SaveBookmark(BookmarkFromSpec("dup", testSpec(2)))
	if err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	if first != second {
		t.Errorf("upsert changed id from %d to %d", first, second)
	}

	n, err := store.BookmarkCount()
	if err != nil {
		t.Fatalf("BookmarkCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("BookmarkCount() = %d, expected 1", n)
	}

	b, _ := store.BookmarkByName("dup")
	if b == nil || b.Seed != 2 {
		t.Errorf("BookmarkByName() = %+v, expected seed 2", b)
	}
}

func TestStoreSaveRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveBookmark(BookmarkFromSpec("", testSpec(1))); err == nil {
		t.Error("SaveBookmark() expected error for empty name")
	}

	bad := testSpec(1)
	bad.Goal = pathfind.P(99, 99)
	if _, err := store.SaveBookmark(BookmarkFromSpec("bad", bad)); err == nil {
		t.Error("SaveBookmark() expected error for goal outside grid")
	}
}

func TestStoreBookmarksLimit(t *testing.T) {
	store := openTestStore(t)

	names := []string{"a", "b", "c", "d", "e"}
	for i, name := range names {
		if _, err := store.SaveBookmark(BookmarkFromSpec(name, testSpec(int64(i+1)))); err != nil {
			t.Fatalf("SaveBookmark(%s) failed: %v", name, err)
		}
	}

	entries, err := store.Bookmarks(3)
	if err != nil {
		t.Fatalf("Bookmarks() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 bookmarks with limit, got %d", len(entries))
	}
	// Same-second timestamps fall back to id order, newest first.
	if entries[0].Name != "e" || entries[1].Name != "d" || entries[2].Name != "c" {
		t.Errorf("Bookmarks not in expected order: %v", entries)
	}

	all, err := store.Bookmarks(0)
	if err != nil {
		t.Fatalf("Bookmarks(0) failed: %v", err)
	}
	if len(all) != len(names) {
		t.Errorf("Bookmarks(0) returned %d, expected %d", len(all), len(names))
	}
}

func TestStoreBookmarkByNameMissing(t *testing.T) {
	store := openTestStore(t)

	b, err := store.BookmarkByName("nope")
	if err != nil {
		t.Fatalf("BookmarkByName() failed: %v", err)
	}
	if b != nil {
		t.Errorf("BookmarkByName() = %+v, expected nil", b)
	}
}

func TestStoreDeleteBookmark(t *testing.T) {
	store := openTestStore(t)

	store.SaveBookmark(BookmarkFromSpec("keep", testSpec(1)))
	store.SaveBookmark(BookmarkFromSpec("drop", testSpec(2)))

	deleted, err := store.DeleteBookmark("drop")
	if err != nil {
		t.Fatalf("DeleteBookmark() failed: %v", err)
	}
	if !deleted {
		t.Error("DeleteBookmark() = false, expected true")
	}

	deleted, err = store.DeleteBookmark("drop")
	if err != nil {
		t.Fatalf("DeleteBookmark() failed: %v", err)
	}
	if deleted {
		t.Error("DeleteBookmark() of missing bookmark = true, expected false")
	}

	if b, _ := store.BookmarkByName("keep"); b == nil {
		t.Error("unrelated bookmark was deleted")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
