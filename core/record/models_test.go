package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/grading"
)

func TestParseSemesterKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SemesterKey
		wantErr bool
	}{
		{in: "1-1", want: SemesterKey{Year: 1, Semester: 1}},
		{in: "4-2", want: SemesterKey{Year: 4, Semester: 2}},
		{in: "12-3", want: SemesterKey{Year: 12, Semester: 3}},
		{in: "", wantErr: true},
		{in: "1", wantErr: true},
		{in: "1-", wantErr: true},
		{in: "a-1", wantErr: true},
		{in: "0-1", wantErr: true},
		{in: "1-0", wantErr: true},
		{in: "1-2-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSemesterKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestLayout(t *testing.T) {
	l := Layout{Years: 2, SemestersPerYear: 3}
	assert.Equal(t, []SemesterKey{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}}, l.Keys())
	assert.True(t, l.Contains(SemesterKey{2, 3}))
	assert.False(t, l.Contains(SemesterKey{3, 1}))
	assert.False(t, l.Contains(SemesterKey{1, 4}))
	assert.False(t, l.Contains(SemesterKey{0, 1}))

	assert.Len(t, DefaultLayout().Keys(), 8)
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(DefaultLayout())
	require.Len(t, rec, 8)
	for _, key := range DefaultLayout().Keys() {
		sem, ok := rec[key]
		require.True(t, ok, key.String())
		assert.NotNil(t, sem)
		assert.Empty(t, sem)
	}
}

func testCourse(code string, credit int, grade null.String) grading.GradedCourse {
	return grading.GradedCourse{
		Course: catalog.Course{Code: code, Title: "Course " + code, CreditUnit: credit, Year: 1, Semester: 1, Category: catalog.CategoryCore},
		Grade:  grade,
	}
}

func TestMarshal(t *testing.T) {
	rec := NewRecord(Layout{Years: 1, SemestersPerYear: 1})
	rec[SemesterKey{1, 1}]["MAT 101"] = testCourse("MAT 101", 3, null.StringFrom("A"))
	rec[SemesterKey{1, 1}]["PHY 101"] = testCourse("PHY 101", 2, null.String{})

	blob, err := Marshal(rec)
	require.NoError(t, err)

	var raw map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &raw))
	require.Contains(t, raw, "1-1")
	mat := raw["1-1"]["MAT 101"]
	assert.Equal(t, "MAT 101", mat["code"])
	assert.Equal(t, "Course MAT 101", mat["title"])
	assert.Equal(t, float64(3), mat["creditUnit"])
	assert.Equal(t, float64(1), mat["year"])
	assert.Equal(t, float64(1), mat["semester"])
	assert.Equal(t, "core", mat["category"])
	assert.Equal(t, "A", mat["grade"])

	phy := raw["1-1"]["PHY 101"]
	assert.Contains(t, phy, "grade")
	assert.Nil(t, phy["grade"])

	got, err := Unmarshal(blob)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		wantErr bool
	}{
		{name: "empty object", blob: `{}`},
		{name: "legacy record", blob: `{"1-1":{"MAT 101":{"code":"MAT 101","title":"Maths","creditUnit":3,"year":1,"semester":1,"grade":""}}}`},
		{name: "not json", blob: `{{{`, wantErr: true},
		{name: "null", blob: `null`, wantErr: true},
		{name: "array", blob: `[1,2]`, wantErr: true},
		{name: "bad key", blob: `{"first":{}}`, wantErr: true},
		{name: "bad entry", blob: `{"1-1":{"MAT 101":"A"}}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.blob))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecord_normalize(t *testing.T) {
	rec, err := Unmarshal([]byte(`{
		"1-1": {"MAT 101": {"title":"Maths","creditUnit":3,"year":1,"semester":1,"grade":""}},
		"9-1": {"EEE 901": {"code":"EEE 901","title":"Extra","creditUnit":2,"year":9,"semester":1,"grade":"B"}},
		"1-2": null
	}`))
	require.NoError(t, err)

	rec.normalize(DefaultLayout())

	assert.Len(t, rec, 9) // 8 configured slots + the extra one
	mat := rec[SemesterKey{1, 1}]["MAT 101"]
	assert.Equal(t, "MAT 101", mat.Code)
	assert.False(t, mat.Grade.Valid)
	assert.NotNil(t, rec[SemesterKey{1, 2}])
	assert.Equal(t, null.StringFrom("B"), rec[SemesterKey{9, 1}]["EEE 901"].Grade)
}

func TestRecord_Clone(t *testing.T) {
	rec := NewRecord(DefaultLayout())
	rec[SemesterKey{1, 1}]["MAT 101"] = testCourse("MAT 101", 3, null.StringFrom("A"))

	cp := rec.Clone()
	require.Equal(t, rec, cp)

	cp[SemesterKey{1, 1}]["PHY 101"] = testCourse("PHY 101", 2, null.String{})
	delete(cp, SemesterKey{4, 2})
	assert.Len(t, rec[SemesterKey{1, 1}], 1)
	assert.Len(t, rec, 8)
}

func TestRecord_Flatten(t *testing.T) {
	rec := NewRecord(DefaultLayout())
	rec[SemesterKey{2, 1}]["EEE 201"] = testCourse("EEE 201", 3, null.String{})
	rec[SemesterKey{1, 1}]["PHY 101"] = testCourse("PHY 101", 2, null.String{})
	rec[SemesterKey{1, 1}]["MAT 101"] = testCourse("MAT 101", 3, null.String{})

	var codes []string
	for _, c := range rec.Flatten() {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"MAT 101", "PHY 101", "EEE 201"}, codes)
}
