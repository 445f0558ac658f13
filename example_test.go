package quicknotes_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/quicknotes"
	"github.com/aretw0/quicknotes/pkg/core"
)

// Example_basic creates a note in an empty in-memory store and lists it.
func Example_basic() {
	ctx := context.Background()

	svc, err := quicknotes.New(ctx, "", quicknotes.WithSeed(false))
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	if _, err := svc.CreateNote(ctx, core.NoteDraft{Title: "Groceries", Content: "Milk, bread"}); err != nil {
		log.Fatal(err)
	}

	notes, err := svc.ListNotes(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range notes {
		fmt.Println(n.Title, "-", n.Content)
	}
	// Output: Groceries - Milk, bread
}

// Example_deleteCategory shows that deleting a category keeps its notes.
func Example_deleteCategory() {
	ctx := context.Background()
	svc, err := quicknotes.New(ctx, "", quicknotes.WithSeed(false))
	if err != nil {
		log.Fatal(err)
	}

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	if err := svc.AddCategory(ctx, work); err != nil {
		log.Fatal(err)
	}
	note, _ := svc.CreateNote(ctx, core.NoteDraft{Title: "Standup", CategoryID: work.ID})

	if err := svc.DeleteCategory(ctx, work.ID); err != nil {
		log.Fatal(err)
	}

	got, _, _ := svc.GetNote(ctx, note.ID)
	fmt.Println(got.Title, got.Category == nil)
	// Output: Standup true
}

// Example_filter derives the main list the way the note list screen does.
func Example_filter() {
	ctx := context.Background()
	svc, err := quicknotes.New(ctx, "")
	if err != nil {
		log.Fatal(err)
	}

	notes, _ := svc.ListNotes(ctx)
	for _, n := range core.FilterNotes(notes, core.ListFilter{Query: "shop"}) {
		fmt.Println(n.Title)
	}
	// Output: Shopping List
}
