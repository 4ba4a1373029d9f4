package store

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

func TestRecordRoundTrip(t *testing.T) {
	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	rec, err := NewRecord("id-1", "parent-1", doc{Name: "weekly plan", Count: 3})
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if rec.ID != "id-1" || rec.ParentID != "parent-1" {
		t.Errorf("record keys = %q/%q", rec.ID, rec.ParentID)
	}

	var out doc
	if err := rec.Decode(&out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Name != "weekly plan" || out.Count != 3 {
		t.Errorf("decoded = %+v", out)
	}
}

func TestRecordDecodeInvalidPayload(t *testing.T) {
	rec := Record{ID: "x", Data: []byte("not json")}
	var out map[string]any
	err := rec.Decode(&out)
	var storeErr *apperrors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
}

func TestValidCollectionRejectsUnknownNames(t *testing.T) {
	for _, known := range []string{CollectionProfiles, CollectionTopics, CollectionScripts, CollectionBatchPlans} {
		if err := validCollection(known); err != nil {
			t.Errorf("validCollection(%q) = %v", known, err)
		}
	}
	if err := validCollection("users; DROP TABLE studio_topics"); err == nil {
		t.Error("expected unknown collection to be rejected")
	}
}

func TestRebindConvertsPlaceholders(t *testing.T) {
	s := &sqlStore{placeholders: true, logger: zap.NewNop()}
	got := s.rebind("INSERT INTO t (a, b, c) VALUES (?, ?, ?)")
	want := "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)"
	if got != want {
		t.Errorf("rebind = %q, want %q", got, want)
	}

	s.placeholders = false
	passthrough := "SELECT * FROM t WHERE id = ?"
	if got := s.rebind(passthrough); got != passthrough {
		t.Errorf("rebind without placeholders changed query: %q", got)
	}
}
