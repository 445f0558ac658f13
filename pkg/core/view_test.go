package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/quicknotes/pkg/core"
)

func titles(notes []core.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func fixture() ([]core.Note, core.Category) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	at := func(n core.Note, h int) core.Note { return n.Touch(base.Add(time.Duration(h) * time.Hour)) }

	return []core.Note{
		at(core.NewNote("banana", "yellow fruit"), 1),
		at(core.NewNote("Apple", "red fruit").WithCategory(work), 2),
		at(core.NewNote("cherry", "Pinned and red").WithPinned(true), 3),
		at(core.NewNote("date", "archived").WithArchived(true), 4),
		at(core.NewNote("elder", "done").WithCompleted(true).WithCategory(work), 5),
	}, work
}

func TestFilterNotes_DefaultHidesArchivedAndCompleted(t *testing.T) {
	notes, _ := fixture()
	got := core.FilterNotes(notes, core.ListFilter{})
	assert.Equal(t, []string{"cherry", "Apple", "banana"}, titles(got))
}

func TestFilterNotes_ShowAll(t *testing.T) {
	notes, _ := fixture()
	got := core.FilterNotes(notes, core.ListFilter{ShowArchivedAndCompleted: true})
	assert.Equal(t, []string{"cherry", "elder", "date", "Apple", "banana"}, titles(got))
}

func TestFilterNotes_Category(t *testing.T) {
	notes, work := fixture()
	got := core.FilterNotes(notes, core.ListFilter{CategoryID: work.ID})
	assert.Equal(t, []string{"Apple"}, titles(got))

	got = core.FilterNotes(notes, core.ListFilter{CategoryID: uuid.New()})
	assert.Empty(t, got)
}

func TestFilterNotes_Query(t *testing.T) {
	notes, _ := fixture()

	got := core.FilterNotes(notes, core.ListFilter{Query: "  RED "})
	assert.Equal(t, []string{"cherry", "Apple"}, titles(got))

	got = core.FilterNotes(notes, core.ListFilter{Query: "   "})
	assert.Len(t, got, 3, "blank query disables the text filter")
}

func TestFilterNotes_SortOrders(t *testing.T) {
	notes, _ := fixture()
	tests := []struct {
		order core.SortOrder
		want  []string
	}{
		{core.SortNewestFirst, []string{"cherry", "Apple", "banana"}},
		{core.SortOldestFirst, []string{"cherry", "banana", "Apple"}},
		{core.SortTitleAscending, []string{"cherry", "Apple", "banana"}},
		{core.SortTitleDescending, []string{"cherry", "banana", "Apple"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			got := core.FilterNotes(notes, core.ListFilter{Sort: tt.order})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterNotes_DoesNotMutateInput(t *testing.T) {
	notes, _ := fixture()
	before := titles(notes)
	_ = core.FilterNotes(notes, core.ListFilter{Sort: core.SortTitleDescending})
	assert.Equal(t, before, titles(notes))
}

func TestSearchNotes(t *testing.T) {
	notes, _ := fixture()

	got := core.SearchNotes(notes, "")
	assert.Equal(t, []string{"cherry", "elder", "date", "Apple", "banana"}, titles(got))

	got = core.SearchNotes(notes, "ARCH")
	assert.Equal(t, []string{"date"}, titles(got), "search keeps archived notes")

	got = core.SearchNotes(notes, "nothing matches")
	assert.Empty(t, got)
}

func TestSortCategoriesByName(t *testing.T) {
	cats := []core.Category{
		core.NewCategory("work", "", ""),
		core.NewCategory("Ideas", "", ""),
		core.NewCategory("personal", "", ""),
	}
	core.SortCategoriesByName(cats)
	assert.Equal(t, "Ideas", cats[0].Name)
	assert.Equal(t, "personal", cats[1].Name)
	assert.Equal(t, "work", cats[2].Name)
}

func TestFilterNotes_PinnedBeforeNewer(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := core.NewNote("A", "").WithArchived(true).Touch(base.Add(5 * time.Second))
	b := core.NewNote("B", "").WithPinned(true).Touch(base.Add(10 * time.Second))
	c := core.NewNote("C", "").Touch(base.Add(1 * time.Second))

	got := core.FilterNotes([]core.Note{a, b, c}, core.ListFilter{})
	assert.Equal(t, []string{"B", "C"}, titles(got))
}

func TestSearchNotes_TitleOrContent(t *testing.T) {
	notes := []core.Note{core.NewNote("Shopping List", "milk")}

	for _, q := range []string{"shop", "SHOP", "milk"} {
		assert.Len(t, core.SearchNotes(notes, q), 1, q)
	}
	assert.Empty(t, core.SearchNotes(notes, "bananas"))
}
