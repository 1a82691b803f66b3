package catalog

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/gpatracker/core"
)

var (
	// errors
	ErrNotFound      = errors.New("course not found in catalog")
	ErrDuplicateCode = errors.New("duplicate course code")
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Catalog is a read-only, ordered set of courses with lookup by code.
type Catalog struct {
	courses []Course
	byCode  map[string]int
}

// New validates the given courses and builds a Catalog preserving their order.
// Codes are normalized with core.CleanCode before validation.
// A nil validate uses core.NewValidator().
func New(courses []Course, validate *validator.Validate) (*Catalog, error) {
	translator := core.NewTranslator()
	if validate == nil {
		validate, translator = core.NewValidator()
	}

	cat := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byCode:  make(map[string]int, len(courses)),
	}
	for i, c := range courses {
		c.Code = core.CleanCode(c.Code)
		c.Title = core.CleanString(c.Title)
		if err := validate.Struct(c); err != nil {
			return nil, pkgerrors.Wrapf(core.TranslateErrors(err, translator), "course #%d (%s)", i+1, c.Code)
		}
		if _, exists := cat.byCode[c.Code]; exists {
			return nil, pkgerrors.Wrap(ErrDuplicateCode, c.Code)
		}
		cat.byCode[c.Code] = len(cat.courses)
		cat.courses = append(cat.courses, c)
	}
	return cat, nil
}

// MustNew is like New but panics on error.
func MustNew(courses []Course, validate *validator.Validate) *Catalog {
	cat, err := New(courses, validate)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return cat
}

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(defaultCourses, nil)
	})
	return defaultCatalog
}

type catalogFile struct {
	Courses []Course `yaml:"courses"`
}

// Load reads a YAML catalog:
//
//	courses:
//	  - code: MAT 101
//	    title: Elementary Mathematics I
//	    creditUnit: 3
//	    year: 1
//	    semester: 1
//	    category: core
func Load(r io.Reader, validate *validator.Validate) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return New(nil, validate)
		}
		return nil, pkgerrors.Wrap(err, "decoding catalog")
	}
	return New(f.Courses, validate)
}

func (cat *Catalog) Len() int {
	return len(cat.courses)
}

// All returns every course in catalog order.
func (cat *Catalog) All() []Course {
	all := make([]Course, len(cat.courses))
	copy(all, cat.courses)
	return all
}

func (cat *Catalog) ByCode(code string) (Course, error) {
	idx, ok := cat.byCode[core.CleanCode(code)]
	if !ok {
		return Course{}, ErrNotFound
	}
	return cat.courses[idx], nil
}

// ForSemester returns the courses recommended for the given year and semester.
func (cat *Catalog) ForSemester(year, semester int) []Course {
	courses := make([]Course, 0)
	for _, c := range cat.courses {
		if c.Year == year && c.Semester == semester {
			courses = append(courses, c)
		}
	}
	return courses
}

// Available returns the courses of ForSemester minus the codes in taken.
func (cat *Catalog) Available(year, semester int, taken map[string]bool) []Course {
	courses := make([]Course, 0)
	for _, c := range cat.ForSemester(year, semester) {
		if !taken[c.Code] {
			courses = append(courses, c)
		}
	}
	return courses
}
