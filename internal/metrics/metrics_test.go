package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/presets"
)

var berlin = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return time.FixedZone("CET", 3600)
	}
	return loc
}()

func day(now time.Time, offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestDaysUntilBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, berlin)

	cases := []struct {
		offset int
	}{{0}, {1}, {7}, {8}, {-1}, {-30}}
	for _, tc := range cases {
		got, ok := DaysUntil(day(now, tc.offset), now)
		require.True(t, ok)
		assert.Equal(t, tc.offset, got)
	}

	for _, bad := range []string{"", "  ", "tomorrow", "2026-13-01", "2026-03-10T00:00:00"} {
		_, ok := DaysUntil(bad, now)
		assert.False(t, ok, "%q should not parse", bad)
	}
}

func TestDaysUntilAcrossDSTChange(t *testing.T) {
	// Europe/Berlin switches to summer time on 2026-03-29.
	now := time.Date(2026, 3, 28, 12, 0, 0, 0, berlin)
	got, ok := DaysUntil("2026-03-30", now)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestComputeEmptyChecklist(t *testing.T) {
	state := model.Empty()
	got := Compute(state, nil, time.Now())
	assert.Equal(t, Metrics{}, got)
}

func TestComputeCounters(t *testing.T) {
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	state := model.Empty()
	state.Sections = []model.Section{
		{ID: "a", Name: "A", Items: []model.ChecklistItem{
			{ID: "1", Title: "today", Due: day(now, 0)},
			{ID: "2", Title: "week", Due: day(now, 7), IsSuggested: true},
			{ID: "3", Title: "later", Due: day(now, 8)},
			{ID: "4", Title: "late", Due: day(now, -1)},
			{ID: "5", Title: "late but done", Due: day(now, -3), Done: true},
		}},
		{ID: "b", Name: "B", Items: []model.ChecklistItem{
			{ID: "6", Title: "no date", IsSuggested: true},
			{ID: "7", Title: "garbage date", Due: "soon"},
			{ID: "8", Title: "done", Done: true, IsSuggested: true},
		}},
	}

	got := Compute(state, nil, now)
	assert.Equal(t, 8, got.Total)
	assert.Equal(t, 2, got.Done)
	assert.Equal(t, 6, got.Remaining)
	assert.Equal(t, 25, got.ProgressPct)
	assert.Equal(t, 2, got.DueSoon)
	assert.Equal(t, 1, got.Overdue)
	assert.Equal(t, 2, got.SuggestedRemaining)
	assert.Equal(t, 0, got.MissingRecommendedCount)
}

func TestComputeProgressRounds(t *testing.T) {
	state := model.Empty()
	state.Sections = []model.Section{{ID: "a", Name: "A", Items: []model.ChecklistItem{
		{ID: "1", Done: true}, {ID: "2"}, {ID: "3"},
	}}}
	assert.Equal(t, 33, Compute(state, nil, time.Now()).ProgressPct)

	state.Sections[0].Items[1].Done = true
	assert.Equal(t, 67, Compute(state, nil, time.Now()).ProgressPct)
}

func TestMissingRecommendedIsTitleBased(t *testing.T) {
	list := []model.PresetSection{
		{Key: "rec", Recommended: true, Items: []string{"A", "B"}},
		{Key: "other", Recommended: true, Items: []string{"C", "D", "E"}},
		{Key: "optional", Recommended: false, Items: []string{"F"}},
	}
	state := model.Empty()
	state.Sections = []model.Section{
		{ID: "s1", Key: model.KeyPtr("rec"), Name: "Rec", Items: []model.ChecklistItem{{ID: "i", Title: "a"}}},
	}

	assert.Equal(t, 1+3, MissingRecommended(state, list))

	state.Sections[0].Items = append(state.Sections[0].Items, model.ChecklistItem{ID: "j", Title: " b  "})
	assert.Equal(t, 3, MissingRecommended(state, list))

	state.Sections[0].Items[0].Title = "A."
	assert.Equal(t, 4, MissingRecommended(state, list), "near matches do not count")
}

func TestMissingRecommendedWithCatalog(t *testing.T) {
	list := presets.For(model.LangEN, model.CountryWorld)
	want := 0
	for _, p := range list {
		if p.Recommended {
			want += len(p.Items)
		}
	}
	got := Compute(model.Empty(), list, time.Now())
	assert.Equal(t, want, got.MissingRecommendedCount)
	assert.Positive(t, want)
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "02 Jan 2026", DateLabel("2026-01-02", model.LangEN))
	assert.Equal(t, "02.01.2026", DateLabel("2026-01-02", model.LangDE))
	assert.Equal(t, "whenever", DateLabel("whenever", model.LangEN))
	assert.Equal(t, "", DateLabel("", model.LangDE))
}
