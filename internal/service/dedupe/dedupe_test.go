package dedupe

import (
	"testing"

	"github.com/AndrewK67/shorts-studio/internal/domain"
	"go.uber.org/zap"
)

func candidate(title string) domain.TopicCandidate {
	return domain.TopicCandidate{Title: title, Hook: "h", CoreValue: "v"}
}

func newDedup() *Deduplicator {
	return NewDeduplicator(0.80, zap.NewNop())
}

func titles(candidates []domain.TopicCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Title)
	}
	return out
}

func TestFilterUniqueDropsMissingRequiredFields(t *testing.T) {
	dedup := newDedup()

	in := []domain.TopicCandidate{
		{Title: "Has everything", Hook: "h", CoreValue: "v"},
		{Title: "", Hook: "h", CoreValue: "v"},
		{Title: "No hook", Hook: "", CoreValue: "v"},
		{Title: "No value", Hook: "h", CoreValue: ""},
		{Title: "   ", Hook: "h", CoreValue: "v"},
	}

	out := dedup.FilterUnique(in, nil)
	if len(out) != 1 || out[0].Title != "Has everything" {
		t.Errorf("FilterUnique = %v, want only the complete candidate", titles(out))
	}
}

func TestFilterUniqueRejectsCaseInsensitiveExactMatch(t *testing.T) {
	dedup := newDedup()

	out := dedup.FilterUnique(
		[]domain.TopicCandidate{candidate("5 Morning Habits That Changed My Life")},
		[]string{"5 morning habits that changed my life"},
	)
	if len(out) != 0 {
		t.Errorf("case-insensitive exact duplicate accepted: %v", titles(out))
	}
}

func TestFilterUniqueCollapsesWhitespaceBeforeComparing(t *testing.T) {
	dedup := newDedup()

	out := dedup.FilterUnique(
		[]domain.TopicCandidate{candidate("5  morning habits\nthat changed my life")},
		[]string{"5 morning habits that changed my life"},
	)
	if len(out) != 0 {
		t.Errorf("whitespace-variant duplicate accepted: %v", titles(out))
	}
}

func TestFilterUniqueRejectsNearDuplicateAgainstHistory(t *testing.T) {
	dedup := newDedup()

	// Similarity is 36/37 ≈ 0.973, which exceeds the 0.80 threshold
	out := dedup.FilterUnique(
		[]domain.TopicCandidate{candidate("How I Gained 10K Followers in 30 Days")},
		[]string{"How I Gained 10K Followers in 60 Days"},
	)
	if len(out) != 0 {
		t.Errorf("near-duplicate accepted: %v", titles(out))
	}
}

func TestFilterUniqueChecksIntraBatch(t *testing.T) {
	dedup := newDedup()

	out := dedup.FilterUnique([]domain.TopicCandidate{
		candidate("How I Gained 10K Followers in 30 Days"),
		candidate("How I Gained 10K Followers in 60 Days"),
		candidate("Completely unrelated topic about sourdough"),
	}, nil)

	got := titles(out)
	if len(got) != 2 {
		t.Fatalf("expected first-seen-wins intra-batch dedup, got %v", got)
	}
	if got[0] != "How I Gained 10K Followers in 30 Days" {
		t.Errorf("first candidate should win, got %v", got)
	}
	if got[1] != "Completely unrelated topic about sourdough" {
		t.Errorf("distinct candidate dropped: %v", got)
	}
}

func TestFilterUniquePreservesInputOrder(t *testing.T) {
	dedup := newDedup()

	in := []domain.TopicCandidate{
		candidate("Alpha topic about budgeting"),
		candidate("Beta topic about meal prep"),
		candidate("Gamma topic about sleep schedules"),
	}
	out := dedup.FilterUnique(in, nil)

	if len(out) != 3 {
		t.Fatalf("expected all distinct candidates accepted, got %v", titles(out))
	}
	for i := range in {
		if out[i].Title != in[i].Title {
			t.Errorf("order changed at %d: %q", i, out[i].Title)
		}
	}
}

func TestFilterUniqueIsIdempotent(t *testing.T) {
	dedup := newDedup()

	in := []domain.TopicCandidate{
		candidate("How I Gained 10K Followers in 30 Days"),
		candidate("How I Gained 10K Followers in 60 Days"),
		candidate("Why I Quit My 9 to 5"),
		candidate("why i quit my 9 to 5"),
		candidate("The One Gadget I Regret Buying"),
	}

	once := dedup.FilterUnique(in, nil)
	twice := dedup.FilterUnique(once, nil)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed the set: %v vs %v", titles(once), titles(twice))
	}
	for i := range once {
		if once[i].Title != twice[i].Title {
			t.Errorf("second pass changed entry %d: %q vs %q", i, once[i].Title, twice[i].Title)
		}
	}
}

func TestFilterUniqueThresholdIsTunable(t *testing.T) {
	strict := NewDeduplicator(0.5, zap.NewNop())
	lax := NewDeduplicator(0.99, zap.NewNop())

	in := []domain.TopicCandidate{candidate("How I Gained 10K Followers in 30 Days")}
	history := []string{"How I Gained 10K Followers in 60 Days"}

	if out := strict.FilterUnique(in, history); len(out) != 0 {
		t.Error("strict threshold should reject the near-duplicate")
	}
	if out := lax.FilterUnique(in, history); len(out) != 1 {
		t.Error("0.99 threshold should accept a 0.973-similar title")
	}
}

func TestNewDeduplicatorRejectsNonsenseThreshold(t *testing.T) {
	dedup := NewDeduplicator(-3, zap.NewNop())
	if dedup.threshold != 0.80 {
		t.Errorf("invalid threshold should fall back to 0.80, got %v", dedup.threshold)
	}
}
