package generator

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/region"
	"github.com/AndrewK67/shorts-studio/internal/service/ai"
	"github.com/AndrewK67/shorts-studio/internal/service/dedupe"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

// fakeModel unmarshals a canned JSON payload into dest, or fails.
type fakeModel struct {
	payload string
	err     error
	meta    ai.GenerateMetadata
	prompts []string
}

func (f *fakeModel) GenerateJSON(ctx context.Context, prompt string, preset ai.ModelPreset, dest any, opts *ai.GenerateOptions) (*ai.GenerateMetadata, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	if err := json.Unmarshal([]byte(f.payload), dest); err != nil {
		return nil, apperrors.NewParseError("invalid payload", f.payload, err)
	}
	meta := f.meta
	if meta.Provider == "" {
		meta.Provider = "gemini"
		meta.Model = "test-model"
	}
	return &meta, nil
}

type memStore struct {
	records map[string]map[string]store.Record
	order   map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		records: map[string]map[string]store.Record{},
		order:   map[string][]string{},
	}
}

func (m *memStore) bucket(collection string) map[string]store.Record {
	if m.records[collection] == nil {
		m.records[collection] = map[string]store.Record{}
	}
	return m.records[collection]
}

func (m *memStore) Create(ctx context.Context, collection string, rec store.Record) error {
	m.bucket(collection)[rec.ID] = rec
	m.order[collection] = append(m.order[collection], rec.ID)
	return nil
}

func (m *memStore) CreateMany(ctx context.Context, collection string, recs []store.Record) error {
	for _, rec := range recs {
		if err := m.Create(ctx, collection, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) FindByID(ctx context.Context, collection, id string) (*store.Record, error) {
	rec, ok := m.bucket(collection)[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) FindByParentID(ctx context.Context, collection, parentID string) ([]store.Record, error) {
	var out []store.Record
	for _, id := range m.order[collection] {
		rec := m.bucket(collection)[id]
		if rec.ParentID == parentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memStore) Update(ctx context.Context, collection string, rec store.Record) error {
	m.bucket(collection)[rec.ID] = rec
	return nil
}

func (m *memStore) Delete(ctx context.Context, collection, id string) error {
	delete(m.bucket(collection), id)
	return nil
}

func (m *memStore) Ping(ctx context.Context) error { return nil }
func (m *memStore) Close() error                   { return nil }

func newTestGenerator(model ModelClient, st store.Store) *Generator {
	logger := zap.NewNop()
	return New(
		region.NewResolver(region.NewCatalog()),
		model,
		dedupe.NewDeduplicator(constants.Generation.TitleSimilarityThreshold, logger),
		st,
		nil,
		logger,
	)
}

func testProfile() *domain.CreatorProfile {
	return &domain.CreatorProfile{
		ID:       "profile-1",
		UserID:   "user-1",
		Niche:    "personal finance",
		Audience: "young professionals",
		ToneMix: []domain.ToneShare{
			{Tone: "educational", Percent: 60},
			{Tone: "humor", Percent: 40},
		},
		CreatorCountry: "US",
		TargetCountry:  "GB",
	}
}
