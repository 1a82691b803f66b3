package catalog

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gpatracker/core"
)

func TestDefault(t *testing.T) {
	cat := Default()
	assert.Equal(t, len(defaultCourses), cat.Len())
	assert.Same(t, cat, Default())

	mat, err := cat.ByCode("MAT 101")
	require.NoError(t, err)
	assert.Equal(t, "Elementary Mathematics I", mat.Title)
	assert.Equal(t, 3, mat.CreditUnit)
	assert.Equal(t, CategoryCore, mat.Category)
}

func TestNew(t *testing.T) {
	valid := Course{Code: "MAT 101", Title: "Maths", CreditUnit: 3, Year: 1, Semester: 1}

	tests := []struct {
		name      string
		courses   []Course
		wantField string
		wantErr   error
	}{
		{name: "empty", courses: nil},
		{name: "valid", courses: []Course{valid}},
		{
			name:      "bad code",
			courses:   []Course{{Code: "maths", Title: "Maths", CreditUnit: 3, Year: 1, Semester: 1}},
			wantField: "code",
		},
		{
			name:      "blank title",
			courses:   []Course{{Code: "MAT 101", Title: "  ", CreditUnit: 3, Year: 1, Semester: 1}},
			wantField: "title",
		},
		{
			name:      "zero credit",
			courses:   []Course{{Code: "MAT 101", Title: "Maths", Year: 1, Semester: 1}},
			wantField: "creditUnit",
		},
		{
			name:      "no year",
			courses:   []Course{{Code: "MAT 101", Title: "Maths", CreditUnit: 3, Semester: 1}},
			wantField: "year",
		},
		{
			name:      "unknown category",
			courses:   []Course{{Code: "MAT 101", Title: "Maths", CreditUnit: 3, Year: 1, Semester: 1, Category: "sport"}},
			wantField: "category",
		},
		{
			name:    "duplicate code",
			courses: []Course{valid, {Code: " mat  101", Title: "Maths again", CreditUnit: 2, Year: 2, Semester: 1}},
			wantErr: ErrDuplicateCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := New(tt.courses, nil)
			switch {
			case tt.wantField != "":
				require.Error(t, err)
				vErr, ok := errors.Cause(err).(*core.ValidationError)
				require.True(t, ok, "want *core.ValidationError, got %T", errors.Cause(err))
				assert.Contains(t, vErr.FieldMap(), tt.wantField)
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, len(tt.courses), cat.Len())
			}
		})
	}
}

func TestCatalog_ByCode(t *testing.T) {
	cat := MustNew([]Course{
		{Code: "MAT 101", Title: "Maths", CreditUnit: 3, Year: 1, Semester: 1},
		{Code: "EEE 301", Title: "Circuits", CreditUnit: 3, Year: 3, Semester: 1},
	}, nil)

	tests := []struct {
		name     string
		code     string
		wantCode string
		wantErr  error
	}{
		{name: "exact", code: "MAT 101", wantCode: "MAT 101"},
		{name: "normalized", code: "  eee   301 ", wantCode: "EEE 301"},
		{name: "unknown", code: "XYZ 999", wantErr: ErrNotFound},
		{name: "empty", code: "", wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := cat.ByCode(tt.code)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, c.Code)
		})
	}
}

func TestCatalog_ForSemester(t *testing.T) {
	cat := Default()

	courses := cat.ForSemester(1, 1)
	require.NotEmpty(t, courses)
	for _, c := range courses {
		assert.Equal(t, 1, c.Year)
		assert.Equal(t, 1, c.Semester)
	}
	// catalog order is kept
	assert.Equal(t, "GSS 101", courses[0].Code)

	assert.Empty(t, cat.ForSemester(9, 1))
}

func TestCatalog_Available(t *testing.T) {
	cat := Default()
	all := cat.ForSemester(1, 1)

	avail := cat.Available(1, 1, map[string]bool{"MAT 101": true, "GSS 101": true})
	assert.Len(t, avail, len(all)-2)
	for _, c := range avail {
		assert.NotEqual(t, "MAT 101", c.Code)
		assert.NotEqual(t, "GSS 101", c.Code)
	}

	assert.Len(t, cat.Available(1, 1, nil), len(all))
}

func TestCatalog_All(t *testing.T) {
	cat := Default()
	all := cat.All()
	all[0].Title = "changed"

	first, err := cat.ByCode(all[0].Code)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", first.Title)
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		src := `
courses:
  - code: MAT 101
    title: Elementary Mathematics I
    creditUnit: 3
    year: 1
    semester: 1
    category: core
  - code: eee 401
    title: Power Systems
    creditUnit: 3
    year: 4
    semester: 2
`
		cat, err := Load(strings.NewReader(src), nil)
		require.NoError(t, err)
		require.Equal(t, 2, cat.Len())

		c, err := cat.ByCode("EEE 401")
		require.NoError(t, err)
		assert.Equal(t, 4, c.Year)
		assert.Equal(t, Category(""), c.Category)
	})

	t.Run("empty file", func(t *testing.T) {
		cat, err := Load(strings.NewReader(""), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cat.Len())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(strings.NewReader("courses: [oops"), nil)
		assert.Error(t, err)
	})

	t.Run("invalid course", func(t *testing.T) {
		_, err := Load(strings.NewReader("courses:\n  - code: MAT 101\n    title: Maths\n"), nil)
		assert.Error(t, err)
	})
}
