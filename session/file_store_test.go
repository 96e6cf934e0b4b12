package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpilot/prompt-pilot-service/types"
)

func testSession() *types.Session {
	return &types.Session{
		Input: types.GoalInput{
			GoalDescription: "Learn Go",
			UseCaseType:     types.UseCaseLearnTopic,
		},
		ClarificationQuestions: []string{"Why?"},
		ClarificationAnswers:   []types.ClarificationAnswer{{Question: "Why?", Answer: "Career"}},
		Roadmap: &types.PromptRoadmapResponse{
			Summary: []string{"Start small"},
			Stages:  []types.RoadmapStage{{ID: "s1", Index: 1, Name: "Foundations"}},
			Tips:    []string{"Iterate"},
		},
		CreatedAt: "2026-01-15T10:00:00Z",
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "", testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a session, got nil")
	}
	if loaded.Input.GoalDescription != "Learn Go" {
		t.Errorf("Unexpected goal: %q", loaded.Input.GoalDescription)
	}
	if loaded.Roadmap == nil || len(loaded.Roadmap.Stages) != 1 {
		t.Errorf("Roadmap did not survive the round trip: %+v", loaded.Roadmap)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	loaded, err := store.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error for a missing session, got %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for a missing session, got %+v", loaded)
	}
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "", testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, ""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "session.json")); !os.IsNotExist(err) {
		t.Error("Expected session file removed")
	}

	// Deleting again is not an error
	if err := store.Delete(ctx, ""); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}

func TestFileStore_KeyedPaths(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "abc-123", testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "abc-123.json")); err != nil {
		t.Errorf("Expected keyed session file, got %v", err)
	}

	loaded, err := store.Load(ctx, "abc-123")
	if err != nil || loaded == nil {
		t.Fatalf("Expected keyed session back, got %v, %v", loaded, err)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "id-1", testSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "id-1")
	if err != nil || loaded == nil {
		t.Fatalf("Expected session back, got %v, %v", loaded, err)
	}

	// Mutating the loaded copy must not affect the stored one.
	loaded.Input.GoalDescription = "changed"
	again, _ := store.Load(ctx, "id-1")
	if again.Input.GoalDescription != "Learn Go" {
		t.Error("Expected stored session isolated from caller mutation")
	}

	if err := store.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	gone, err := store.Load(ctx, "id-1")
	if err != nil || gone != nil {
		t.Errorf("Expected nil after delete, got %v, %v", gone, err)
	}
}
