package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service handles the business logic for notes and categories.
// It is the only surface the presentation layer calls.
type Service struct {
	notes      NoteRepository
	categories CategoryRepository
	logger     *slog.Logger
	now        func() time.Time
	closers    []io.Closer

	mu      sync.RWMutex
	seeded  bool
	backend string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used by the service. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp modifications.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCloser registers a resource released by Close (e.g. a database handle).
func WithCloser(c io.Closer) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.closers = append(s.closers, c)
		}
	}
}

// WithBackendName records the backend name reported by State.
func WithBackendName(name string) ServiceOption {
	return func(s *Service) {
		s.backend = name
	}
}

// NewService creates a new Service over the given repositories.
func NewService(notes NoteRepository, categories CategoryRepository, opts ...ServiceOption) *Service {
	s := &Service{
		notes:      notes,
		categories: categories,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        Now,
		backend:    "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the resources registered with WithCloser.
func (s *Service) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// --- Notes ---

// ListNotes retrieves all notes, most recently modified first.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.notes.FetchNotes(ctx)
}

// GetNote retrieves a note. The boolean is false when no such note exists.
func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (Note, bool, error) {
	return s.notes.FetchNote(ctx, id)
}

// SaveNote saves a note with business validation: the trimmed title must not be empty.
// The note is stored as given; callers stamp ModifiedAt themselves.
func (s *Service) SaveNote(ctx context.Context, n Note) error {
	if strings.TrimSpace(n.Title) == "" {
		return invalid("title", ErrEmptyTitle)
	}
	if err := s.notes.SaveNote(ctx, n); err != nil {
		return fmt.Errorf("save note %s: %w", n.ID, err)
	}
	s.logger.Debug("note saved", "id", n.ID)
	return nil
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if err := s.notes.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// NoteDraft describes a note about to be created.
type NoteDraft struct {
	Title      string
	Content    string
	CategoryID uuid.UUID // uuid.Nil leaves the note uncategorized
	Pinned     bool
}

// CreateNote builds a new note from d and saves it.
func (s *Service) CreateNote(ctx context.Context, d NoteDraft) (Note, error) {
	now := s.now()
	n := NewNote(strings.TrimSpace(d.Title), d.Content).WithPinned(d.Pinned)
	n.CreatedAt, n.ModifiedAt = now, now

	c, err := s.resolveCategory(ctx, d.CategoryID)
	if err != nil {
		return Note{}, err
	}
	if c != nil {
		n = n.WithCategory(*c)
	}
	if err := s.SaveNote(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

// NoteEdit lists the fields to change on an existing note. Nil fields are kept.
type NoteEdit struct {
	Title      *string
	Content    *string
	CategoryID *uuid.UUID // points to uuid.Nil to clear the category
	Pinned     *bool
}

// EditNote applies e to the stored note, keeping its ID, creation time and
// archive/completion flags, and stamps ModifiedAt.
func (s *Service) EditNote(ctx context.Context, id uuid.UUID, e NoteEdit) (Note, error) {
	n, err := s.mustGetNote(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if e.Title != nil {
		n = n.WithTitle(strings.TrimSpace(*e.Title))
	}
	if e.Content != nil {
		n = n.WithContent(*e.Content)
	}
	if e.CategoryID != nil {
		c, err := s.resolveCategory(ctx, *e.CategoryID)
		if err != nil {
			return Note{}, err
		}
		if c == nil {
			n = n.WithoutCategory()
		} else {
			n = n.WithCategory(*c)
		}
	}
	if e.Pinned != nil {
		n = n.WithPinned(*e.Pinned)
	}
	n = n.Touch(s.now())
	if err := s.SaveNote(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

// TogglePinned flips the pinned flag of a note.
func (s *Service) TogglePinned(ctx context.Context, id uuid.UUID) (Note, error) {
	return s.toggle(ctx, id, func(n Note) Note { return n.WithPinned(!n.Pinned) })
}

// ToggleArchived flips the archived flag of a note.
func (s *Service) ToggleArchived(ctx context.Context, id uuid.UUID) (Note, error) {
	return s.toggle(ctx, id, func(n Note) Note { return n.WithArchived(!n.Archived) })
}

// ToggleCompleted flips the completed flag of a note.
func (s *Service) ToggleCompleted(ctx context.Context, id uuid.UUID) (Note, error) {
	return s.toggle(ctx, id, func(n Note) Note { return n.WithCompleted(!n.Completed) })
}

func (s *Service) toggle(ctx context.Context, id uuid.UUID, flip func(Note) Note) (Note, error) {
	n, err := s.mustGetNote(ctx, id)
	if err != nil {
		return Note{}, err
	}
	updated := flip(n).Touch(s.now())
	if err := s.SaveNote(ctx, updated); err != nil {
		return Note{}, err
	}
	return updated, nil
}

func (s *Service) mustGetNote(ctx context.Context, id uuid.UUID) (Note, error) {
	n, ok, err := s.notes.FetchNote(ctx, id)
	if err != nil {
		return Note{}, fmt.Errorf("fetch note %s: %w", id, err)
	}
	if !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return n, nil
}

func (s *Service) resolveCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	c, ok, err := s.categories.FetchCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch category %s: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	return &c, nil
}

// --- Categories ---

// ListCategories retrieves all categories sorted by name.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.FetchCategories(ctx)
}

// GetCategory retrieves a category. The boolean is false when absent.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (Category, bool, error) {
	return s.categories.FetchCategory(ctx, id)
}

// AddCategory validates and stores a new category.
func (s *Service) AddCategory(ctx context.Context, c Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	if err := s.categories.AddCategory(ctx, c); err != nil {
		return fmt.Errorf("add category %s: %w", c.ID, err)
	}
	s.logger.Debug("category added", "id", c.ID, "name", c.Name)
	return nil
}

// UpdateCategory validates and replaces an existing category.
func (s *Service) UpdateCategory(ctx context.Context, c Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	if err := s.categories.UpdateCategory(ctx, c); err != nil {
		return fmt.Errorf("update category %s: %w", c.ID, err)
	}
	s.logger.Debug("category updated", "id", c.ID)
	return nil
}

// DeleteCategory deletes a category and unassigns it from every note that used it.
//
// Notes are rewritten first, each with its category cleared and ModifiedAt
// stamped; the category record is removed only once all of them are saved.
// Backends without a cascading foreign key would otherwise keep dangling
// references. The sequence is not atomic: a failure part way leaves the
// category in place and some notes already unassigned. Deleting uuid.Nil
// is a no-op.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	// uuid.Nil is what uncategorized notes report from CategoryID.
	if id == uuid.Nil {
		return nil
	}
	notes, err := s.notes.FetchNotes(ctx)
	if err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}
	unassigned := 0
	for _, n := range notes {
		if n.CategoryID() != id {
			continue
		}
		updated := n.WithoutCategory().Touch(s.now())
		if err := s.notes.SaveNote(ctx, updated); err != nil {
			return fmt.Errorf("unassign note %s: %w", n.ID, err)
		}
		unassigned++
	}
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	s.logger.Debug("category deleted", "id", id, "unassigned_notes", unassigned)
	return nil
}

func validateCategory(c Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", ErrEmptyCategoryName)
	}
	if _, err := ParseColorHex(c.ColorHex); err != nil {
		return invalid("color", err)
	}
	if !IsKnownIcon(c.Icon) {
		return invalid("icon", fmt.Errorf("%w: %q", ErrUnknownIcon, c.Icon))
	}
	return nil
}

// --- Profile ---

// Stats summarizes the store for the profile view.
type Stats struct {
	Notes         int `json:"notes"`
	Pinned        int `json:"pinned"`
	Archived      int `json:"archived"`
	Completed     int `json:"completed"`
	Uncategorized int `json:"uncategorized"`
	Categories    int `json:"categories"`
}

// Stats counts notes by status and the number of categories.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	notes, err := s.notes.FetchNotes(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("fetch notes: %w", err)
	}
	categories, err := s.categories.FetchCategories(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("fetch categories: %w", err)
	}
	st := Stats{Notes: len(notes), Categories: len(categories)}
	for _, n := range notes {
		if n.Pinned {
			st.Pinned++
		}
		if n.Archived {
			st.Archived++
		}
		if n.Completed {
			st.Completed++
		}
		if n.Category == nil {
			st.Uncategorized++
		}
	}
	return st, nil
}

// --- Seeding ---

// SeedIfNeeded populates an empty store with the default categories and notes.
// It is best-effort: any failure is logged and swallowed, nothing is retried.
// It reports whether fixtures were written.
func (s *Service) SeedIfNeeded(ctx context.Context) bool {
	if err := s.seed(ctx); err != nil {
		if errors.Is(err, errAlreadySeeded) {
			s.logger.Debug("seed skipped", "reason", err)
		} else {
			s.logger.Warn("seed failed", "error", err)
		}
		return false
	}
	s.mu.Lock()
	s.seeded = true
	s.mu.Unlock()
	s.logger.Info("store seeded with default notes")
	return true
}

var errAlreadySeeded = errors.New("store already has notes")

func (s *Service) seed(ctx context.Context) error {
	notes, err := s.notes.FetchNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) > 0 {
		return errAlreadySeeded
	}
	for _, c := range DefaultCategories() {
		if err := s.AddCategory(ctx, c); err != nil {
			return err
		}
	}
	categories, err := s.categories.FetchCategories(ctx)
	if err != nil {
		return err
	}
	for _, n := range DefaultNotes(categories) {
		if err := s.SaveNote(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
