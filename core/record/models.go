package record

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core/grading"
)

var errBadKey = errors.New(`semester key must look like "<year>-<semester>"`)

// SemesterKey identifies one semester of one academic year.
// Its text form is "<year>-<semester>", e.g. "2-1".
type SemesterKey struct {
	Year     int
	Semester int
}

func (k SemesterKey) String() string {
	return strconv.Itoa(k.Year) + "-" + strconv.Itoa(k.Semester)
}

func (k SemesterKey) Less(other SemesterKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Semester < other.Semester
}

func (k SemesterKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SemesterKey) UnmarshalText(text []byte) error {
	key, err := ParseSemesterKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

func ParseSemesterKey(s string) (SemesterKey, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return SemesterKey{}, errors.Wrap(errBadKey, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return SemesterKey{}, errors.Wrap(errBadKey, s)
	}
	sem, err := strconv.Atoi(parts[1])
	if err != nil || sem < 1 {
		return SemesterKey{}, errors.Wrap(errBadKey, s)
	}
	return SemesterKey{Year: year, Semester: sem}, nil
}

// Layout is the set of semester slots a record is created with.
type Layout struct {
	Years            int
	SemestersPerYear int
}

func DefaultLayout() Layout {
	return Layout{Years: 4, SemestersPerYear: 2}
}

// Keys returns the layout's slots in chronological order.
func (l Layout) Keys() []SemesterKey {
	keys := make([]SemesterKey, 0, l.Years*l.SemestersPerYear)
	for y := 1; y <= l.Years; y++ {
		for s := 1; s <= l.SemestersPerYear; s++ {
			keys = append(keys, SemesterKey{Year: y, Semester: s})
		}
	}
	return keys
}

func (l Layout) Contains(key SemesterKey) bool {
	return key.Year >= 1 && key.Year <= l.Years && key.Semester >= 1 && key.Semester <= l.SemestersPerYear
}

// Semester holds the graded courses of one semester, keyed by course code.
type Semester map[string]grading.GradedCourse

// Courses returns the semester's entries ordered by code.
func (s Semester) Courses() []grading.GradedCourse {
	courses := make([]grading.GradedCourse, 0, len(s))
	for _, c := range s {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses
}

func (s Semester) clone() Semester {
	sem := make(Semester, len(s))
	for code, c := range s {
		sem[code] = c
	}
	return sem
}

// Record is a student's academic record: every semester slot with its graded courses.
type Record map[SemesterKey]Semester

// NewRecord returns a record with an empty semester for every slot of layout.
func NewRecord(layout Layout) Record {
	rec := make(Record, layout.Years*layout.SemestersPerYear)
	for _, key := range layout.Keys() {
		rec[key] = make(Semester)
	}
	return rec
}

// Keys returns the record's slots in chronological order.
func (r Record) Keys() []SemesterKey {
	keys := make([]SemesterKey, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	rec := make(Record, len(r))
	for key, sem := range r {
		rec[key] = sem.clone()
	}
	return rec
}

// Flatten returns every entry of the record, semester by semester.
func (r Record) Flatten() []grading.GradedCourse {
	courses := make([]grading.GradedCourse, 0)
	for _, key := range r.Keys() {
		courses = append(courses, r[key].Courses()...)
	}
	return courses
}

// Normalized returns a normalized copy of the record: the missing slots of layout are added,
// empty grades become null and entries without a code take the one of their key.
func (r Record) Normalized(layout Layout) Record {
	rec := r.Clone()
	rec.normalize(layout)
	return rec
}

// normalize adds the missing slots of layout and brings every entry to its canonical form.
// Slots outside layout are kept.
func (r Record) normalize(layout Layout) {
	for _, key := range layout.Keys() {
		if r[key] == nil {
			r[key] = make(Semester)
		}
	}
	for key, sem := range r {
		if sem == nil {
			r[key] = make(Semester)
			continue
		}
		for code, c := range sem {
			if c.Code == "" {
				c.Code = code
			}
			c.Grade = normalizeGrade(c.Grade)
			sem[code] = c
		}
	}
}

// normalizeGrade maps the empty grade to null, the one "ungraded" value.
func normalizeGrade(grade null.String) null.String {
	if grade.Valid && grade.String == "" {
		return null.String{}
	}
	return grade
}

// Marshal serializes the record to its persisted JSON form.
func Marshal(r Record) ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal parses a persisted record. The result is not normalized.
func Unmarshal(blob []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, errors.Wrap(err, "decoding record")
	}
	if rec == nil {
		return nil, errors.New("decoding record: not a JSON object")
	}
	return rec, nil
}
