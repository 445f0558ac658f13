package core

// DefaultCategories returns the fixture categories used to populate an empty store.
// Every call yields fresh IDs.
func DefaultCategories() []Category {
	return []Category{
		NewCategory("Work", "briefcase.fill", "F59E0B"),
		NewCategory("Personal", "person.fill", "3B82F6"),
		NewCategory("Ideas", "lightbulb.fill", "10B981"),
	}
}

// DefaultNotes returns the fixture notes, assigning categories by name.
// Names absent from categories leave the note uncategorized.
func DefaultNotes(categories []Category) []Note {
	byName := make(map[string]Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}
	in := func(n Note, name string) Note {
		if c, ok := byName[name]; ok {
			return n.WithCategory(c)
		}
		return n
	}

	return []Note{
		NewNote("Welcome to QuickNotes", "First note. Swipe, tap, ignore the other 83 apps. You're in charge here.").WithPinned(true),
		in(NewNote("Shopping List", "Milk, bread, more coffee. Also that thing from the other aisle. You know the one."), "Personal"),
		in(NewNote("Meeting Notes", "Agenda: 3 items. Discussion: 47 tangents. Decisions made: zero. Snacks: good."), "Work"),
		in(NewNote("Project Alpha ideas", "MVP scope: everything. Timeline: soon. 'Soon' is not a date. We know."), "Ideas"),
		in(NewNote("Weekly standup", "• Yesterday: meetings\n• Today: more meetings\n• Blockers: need time to actually do work"), "Work"),
		in(NewNote("Books to read", "Stack by the bed. One bookmarked at page 12 since March. It's fine. I'm fine."), "Personal"),
		in(NewNote("Feature brainstorm", "Voice notes (so I can forget to listen), cloud sync (lose things everywhere), AI summary (not read my own notes)."), "Ideas"),
		in(NewNote("Vacation packing", "Phone, charger, backup charger. If I forget pants I'll buy some there. Priorities."), "Personal"),
		in(NewNote("Sprint retrospective", "Went well: nobody cried. To improve: everything else. Action items: same as last retro. We'll get to them."), "Work"),
		in(NewNote("App name ideas", "Noteworthy (taken), JotBot (sounds like a vacuum), Noteify (sounds like notify). Back to the whiteboard."), "Ideas"),
	}
}
