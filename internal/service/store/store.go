package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AndrewK67/shorts-studio/pkg/errors"
)

// Collections known to the store. Table names are derived from these, so
// anything else is rejected before it reaches SQL.
const (
	CollectionProfiles   = "profiles"
	CollectionTopics     = "topics"
	CollectionScripts    = "scripts"
	CollectionBatchPlans = "batch_plans"
)

var collections = map[string]bool{
	CollectionProfiles:   true,
	CollectionTopics:     true,
	CollectionScripts:    true,
	CollectionBatchPlans: true,
}

// Record is a stored document. ParentID groups records under an owning
// entity (topics and scripts under a project, profiles under a user).
type Record struct {
	ID        string
	ParentID  string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecord marshals value into a Record ready for insertion.
func NewRecord(id, parentID string, value any) (Record, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Record{}, errors.NewStoreError("marshal failed", "", "marshal", err)
	}
	return Record{ID: id, ParentID: parentID, Data: data}, nil
}

// Decode unmarshals the record payload into dest.
func (r Record) Decode(dest any) error {
	if err := json.Unmarshal(r.Data, dest); err != nil {
		return errors.NewStoreError("unmarshal failed", "", "unmarshal", err)
	}
	return nil
}

// Store persists records by collection.
type Store interface {
	Create(ctx context.Context, collection string, rec Record) error
	CreateMany(ctx context.Context, collection string, recs []Record) error
	FindByID(ctx context.Context, collection, id string) (*Record, error)
	FindByParentID(ctx context.Context, collection, parentID string) ([]Record, error)
	Update(ctx context.Context, collection string, rec Record) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
	Close() error
}

func validCollection(collection string) error {
	if !collections[collection] {
		return errors.NewStoreError("unknown collection", collection, "validate", nil)
	}
	return nil
}
