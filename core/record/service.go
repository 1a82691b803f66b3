package record

import (
	"context"
	"errors"
	"sync"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/kat-co/vala"
	pkgerrors "github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/grading"
)

var (
	// errors
	ErrUnknownSemester = errors.New("semester is not part of the record")
	ErrClosed          = errors.New("record store is closed")
)

const defaultWriteTimeout = 3 * time.Second

type Option func(*Store)

// WithWriteTimeout bounds every write to the storage slot.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithValidator sets the validator used to check imported entries.
func WithValidator(validate *validator.Validate, translator ut.Translator) Option {
	return func(s *Store) {
		s.validate = validate
		s.translator = translator
	}
}

// Store owns a student's Record and keeps the storage slot in sync with it.
// Reads return copies; every mutation is visible immediately while the slot is written in the background.
type Store struct {
	layout       Layout
	catalog      *catalog.Catalog
	slot         core.Slot
	log          core.Logger
	validate     *validator.Validate
	translator   ut.Translator
	writeTimeout time.Duration

	mu     sync.RWMutex
	rec    Record
	closed bool
	w      *writer
}

// NewStore loads the record held by slot, or starts a new one.
// A slot that cannot be read or decoded is reported and replaced by a new record; it never fails the store.
func NewStore(layout Layout, cat *catalog.Catalog, slot core.Slot, logger core.Logger, opts ...Option) (*Store, error) {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(cat, "catalog"),
		vala.IsNotNil(slot, "slot"),
		vala.IsNotNil(logger, "logger"),
		vala.GreaterThan(layout.Years, 0, "layout.Years"),
		vala.GreaterThan(layout.SemestersPerYear, 0, "layout.SemestersPerYear"),
	).Check(); err != nil {
		return nil, err
	}

	s := &Store{
		layout:       layout,
		catalog:      cat,
		slot:         slot,
		log:          logger,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validate == nil {
		s.validate, s.translator = core.NewValidator()
	}

	s.rec = s.loadOrInit()
	s.w = newWriter(slot, logger, s.writeTimeout)
	return s, nil
}

func (s *Store) loadOrInit() Record {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	blob, err := s.slot.Load(ctx)
	if err != nil {
		if err != core.ErrSlotEmpty {
			s.log.Error("record: reading storage failed; starting a new record", err)
		}
		return NewRecord(s.layout)
	}

	rec, err := Unmarshal(blob)
	if err != nil {
		s.log.Error("record: stored data is corrupted; starting a new record", err)
		return NewRecord(s.layout)
	}
	rec.normalize(s.layout)
	return rec
}

func (s *Store) Layout() Layout {
	return s.layout
}

func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Record returns a snapshot of the whole record.
func (s *Store) Record() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.Clone()
}

// Semester returns a snapshot of one semester.
func (s *Store) Semester(key SemesterKey) (Semester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sem, ok := s.rec[key]
	if !ok {
		return nil, ErrUnknownSemester
	}
	return sem.clone(), nil
}

// Has reports whether the semester holds the course.
func (s *Store) Has(key SemesterKey, code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rec[key][core.CleanCode(code)]
	return ok
}

// AddCourse adds the catalog entry of course to the semester, ungraded.
// Adding a course the semester already holds changes nothing.
func (s *Store) AddCourse(key SemesterKey, course catalog.Course) error {
	return s.AddCourseByCode(key, course.Code)
}

func (s *Store) AddCourseByCode(key SemesterKey, code string) error {
	c, err := s.catalog.ByCode(code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sem, err := s.semester(key)
	if err != nil {
		return err
	}
	if _, exists := sem[c.Code]; exists {
		return nil
	}
	sem[c.Code] = newGradedCourse(c)
	s.persist()
	return nil
}

// RemoveCourse drops the course from the semester. Removing an absent course changes nothing.
func (s *Store) RemoveCourse(key SemesterKey, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, err := s.semester(key)
	if err != nil {
		return err
	}
	code = core.CleanCode(code)
	if _, exists := sem[code]; !exists {
		return nil
	}
	delete(sem, code)
	s.persist()
	return nil
}

// SetGrade stores grade as is on a course of the semester; an empty grade clears it.
// Grading a course the semester does not hold changes nothing.
func (s *Store) SetGrade(key SemesterKey, code string, grade null.String) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, err := s.semester(key)
	if err != nil {
		return err
	}
	code = core.CleanCode(code)
	c, exists := sem[code]
	if !exists {
		return nil
	}
	grade = normalizeGrade(grade)
	if c.Grade == grade {
		return nil
	}
	c.Grade = grade
	sem[code] = c
	s.persist()
	return nil
}

// ResetAll replaces the record with a new, empty one and clears the storage slot.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.rec = NewRecord(s.layout)
	s.w.submit(writeOp{clear: true})
	return nil
}

// Import replaces the record with rec, typically a previous export.
// Entries must be well-formed courses; missing slots of the layout are added.
func (s *Store) Import(rec Record) error {
	rec = rec.Normalized(s.layout)
	if err := s.validateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.rec = rec
	s.persist()
	return nil
}

func (s *Store) validateRecord(rec Record) error {
	for _, key := range rec.Keys() {
		for code, c := range rec[key] {
			if err := s.validate.Struct(c.Course); err != nil {
				err = core.TranslateErrors(err, s.translator)
				return pkgerrors.Wrapf(err, "%s: %s", key, code)
			}
			if c.Code != code {
				return core.NewValidationError(
					pkgerrors.Errorf("%s: entry %q holds course %q", key, code, c.Code),
					core.FieldError{Field: "code", Error: "does not match its entry"},
				)
			}
		}
	}
	return nil
}

// Flush waits for pending writes and returns the last write error.
func (s *Store) Flush(ctx context.Context) error {
	return s.w.flush(ctx)
}

// PersistError returns the error of the last write to the storage slot, if it failed.
func (s *Store) PersistError() error {
	return s.w.lastErr()
}

// Close writes pending changes and stops the background writer. The slot is not closed.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.w.stop(ctx)
}

// semester returns the live semester; callers hold the write lock.
func (s *Store) semester(key SemesterKey) (Semester, error) {
	if s.closed {
		return nil, ErrClosed
	}
	sem, ok := s.rec[key]
	if !ok {
		return nil, ErrUnknownSemester
	}
	return sem, nil
}

// persist hands the current state to the writer; callers hold the write lock.
func (s *Store) persist() {
	blob, err := Marshal(s.rec)
	if err != nil {
		s.log.Error("record: encoding record failed", err)
		return
	}
	s.w.submit(writeOp{blob: blob})
}

func newGradedCourse(c catalog.Course) grading.GradedCourse {
	return grading.GradedCourse{Course: c}
}
