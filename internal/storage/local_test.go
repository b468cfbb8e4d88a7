package storage

import (
	"context"
	"testing"
	"time"
)

func snapshotTime() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func TestLocalStoreAndGetFile(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("Expected client to initialize, got: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	ts := snapshotTime()

	if err := client.StoreFile(ctx, []byte("<html>profile</html>"), "jane", "index.html", ts); err != nil {
		t.Fatalf("Expected store to succeed, got: %v", err)
	}

	path := SnapshotFolderPath("jane", ts) + "/index.html"
	data, err := client.GetFile(ctx, path)
	if err != nil {
		t.Fatalf("Expected get to succeed, got: %v", err)
	}
	if string(data) != "<html>profile</html>" {
		t.Errorf("Expected stored content round-tripped, got %q", string(data))
	}
}

func TestLocalGetFileMissing(t *testing.T) {
	client, _ := NewLocalClient(t.TempDir())
	defer client.Close()

	if _, err := client.GetFile(context.Background(), "2024/01/01/missing/index.html"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLocalListSnapshots(t *testing.T) {
	client, _ := NewLocalClient(t.TempDir())
	defer client.Close()
	ctx := context.Background()

	times := []time.Time{
		time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		if err := client.StoreFile(ctx, []byte("page"), "jane", "index.html", ts); err != nil {
			t.Fatalf("Expected store to succeed, got: %v", err)
		}
		// bundle.json must not show up in the listing
		if err := client.StoreFile(ctx, []byte("{}"), "jane", "bundle.json", ts); err != nil {
			t.Fatalf("Expected store to succeed, got: %v", err)
		}
	}
	client.StoreFile(ctx, []byte("page"), "alex", "index.html", times[0])

	snapshots, err := client.ListSnapshots(ctx, "jane", 0)
	if err != nil {
		t.Fatalf("Expected list to succeed, got: %v", err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("Expected 3 snapshots for jane, got %d", len(snapshots))
	}

	// Newest first
	want := SnapshotFolderPath("jane", times[2]) + "/index.html"
	if snapshots[0] != want {
		t.Errorf("Expected newest snapshot first (%s), got %s", want, snapshots[0])
	}
}

func TestLocalListSnapshotsLimit(t *testing.T) {
	client, _ := NewLocalClient(t.TempDir())
	defer client.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ts := time.Date(2024, 6, 10+i, 9, 0, 0, 0, time.UTC)
		client.StoreFile(ctx, []byte("page"), "jane", "index.html", ts)
	}

	snapshots, err := client.ListSnapshots(ctx, "jane", 2)
	if err != nil {
		t.Fatalf("Expected list to succeed, got: %v", err)
	}
	if len(snapshots) != 2 {
		t.Errorf("Expected limit applied, got %d snapshots", len(snapshots))
	}
}

func TestLocalListSnapshotsEmpty(t *testing.T) {
	client, _ := NewLocalClient(t.TempDir())
	defer client.Close()

	snapshots, err := client.ListSnapshots(context.Background(), "jane", 0)
	if err != nil {
		t.Fatalf("Expected list to succeed, got: %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("Expected no snapshots, got %v", snapshots)
	}
}
