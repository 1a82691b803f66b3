package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/record"
)

var (
	y1s1 = record.SemesterKey{Year: 1, Semester: 1}
	y1s2 = record.SemesterKey{Year: 1, Semester: 2}
)

func Test_recordApi_retrieve(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101")

	tt := httpTest{path: "/v1/record", wantData: marshallObj(t, store.Record())}
	checkCodeAndData(t, tt, serve(tt))
}

func Test_recordApi_semester(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101", "PHY 101")
	require.NoError(t, store.SetGrade(y1s1, "MAT 101", null.StringFrom("A")))

	tests := []httpTest{
		{name: "graded semester", path: "/v1/semesters/1/1", wantData: semesterSummary(t, y1s1)},
		{name: "empty semester", path: "/v1/semesters/1/2", wantData: semesterSummary(t, y1s2)},
		{name: "unknown semester", path: "/v1/semesters/9/1", wantCode: http.StatusNotFound, wantData: marshallObj(t, errUnknownSemester)},
		{name: "bad semester", path: "/v1/semesters/one/1", wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func Test_recordApi_available(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101", "GSS 101")

	taken := map[string]bool{"MAT 101": true, "GSS 101": true}
	tt := httpTest{path: "/v1/semesters/1/1/available", wantData: marshallObj(t, catalog.Default().Available(1, 1, taken))}
	checkCodeAndData(t, tt, serve(tt))
}

func Test_recordApi_addCourse(t *testing.T) {
	resetRecord(t)

	unknownCode := marshallObj(t, map[string]string{"code": catalog.ErrNotFound.Error()})

	tests := []struct {
		httpTest
		wantCodes []string
	}{
		{
			httpTest:  httpTest{name: "empty body", body: []byte(`{}`), wantCode: http.StatusBadRequest, wantData: []byte(`{"code":"this field is required"}`)},
			wantCodes: []string{},
		},
		{
			httpTest:  httpTest{name: "malformed code", body: []byte(`{"code":"math!"}`), wantCode: http.StatusBadRequest},
			wantCodes: []string{},
		},
		{
			httpTest:  httpTest{name: "unknown code", body: []byte(`{"code":"XYZ 999"}`), wantCode: http.StatusBadRequest, wantData: unknownCode},
			wantCodes: []string{},
		},
		{
			httpTest:  httpTest{name: "catalog course", body: []byte(`{"code":"MAT 101"}`)},
			wantCodes: []string{"MAT 101"},
		},
		{
			httpTest:  httpTest{name: "missing space", body: []byte(`{"code":"phy101"}`), wantCode: http.StatusBadRequest, wantData: unknownCode},
			wantCodes: []string{"MAT 101"},
		},
		{
			httpTest:  httpTest{name: "messy code", body: []byte(`{"code":" phy   101 "}`)},
			wantCodes: []string{"MAT 101", "PHY 101"},
		},
		{
			httpTest:  httpTest{name: "already added", body: []byte(`{"code":"MAT 101"}`)},
			wantCodes: []string{"MAT 101", "PHY 101"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/v1/semesters/1/1/courses"
			rec := serve(tt.httpTest)
			if tt.wantCode == 0 {
				// the response is the updated semester
				tt.wantData = semesterSummary(t, y1s1)
			}
			checkCodeAndData(t, tt.httpTest, rec)

			sem, err := store.Semester(y1s1)
			require.NoError(t, err)
			codes := make([]string, 0, len(sem))
			for _, c := range sem.Courses() {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func Test_recordApi_addCourse_response(t *testing.T) {
	resetRecord(t)

	tt := httpTest{method: http.MethodPost, path: "/v1/semesters/1/2/courses", body: []byte(`{"code":"MAT 102"}`)}
	rec := serve(tt)
	tt.wantData = semesterSummary(t, y1s2)
	checkCodeAndData(t, tt, rec)
}

func Test_recordApi_removeCourse(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101", "PHY 101")

	tests := []struct {
		httpTest
		wantCodes []string
	}{
		{
			httpTest: httpTest{
				name: "missing code", path: "/v1/semesters/1/1/courses", wantCode: http.StatusBadRequest,
				wantData: []byte(`{"code":"this field is required"}`),
			},
			wantCodes: []string{"MAT 101", "PHY 101"},
		},
		{
			httpTest:  httpTest{name: "absent course", path: "/v1/semesters/1/1/courses?code=GSS%20101"},
			wantCodes: []string{"MAT 101", "PHY 101"},
		},
		{
			httpTest:  httpTest{name: "messy code", path: "/v1/semesters/1/1/courses?code=%20mat%20101"},
			wantCodes: []string{"PHY 101"},
		},
		{
			httpTest:  httpTest{name: "last course", path: "/v1/semesters/1/1/courses?code=PHY%20101"},
			wantCodes: []string{},
		},
		{
			httpTest: httpTest{
				name: "unknown semester", path: "/v1/semesters/7/3/courses?code=PHY%20101",
				wantCode: http.StatusNotFound, wantData: marshallObj(t, errUnknownSemester),
			},
			wantCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodDelete
			checkCodeAndData(t, tt.httpTest, serve(tt.httpTest))

			sem, err := store.Semester(y1s1)
			require.NoError(t, err)
			codes := make([]string, 0, len(sem))
			for _, c := range sem.Courses() {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func Test_recordApi_setGrade(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101")

	gradeErr := `{"grade":"must be one of A, B, C, D, E, F or empty"}`

	tests := []struct {
		httpTest
		wantGrade null.String
	}{
		{httpTest: httpTest{name: "grade A", body: []byte(`{"code":"MAT 101","grade":"A"}`)}, wantGrade: null.StringFrom("A")},
		{httpTest: httpTest{name: "padded grade", body: []byte(`{"code":"mat 101","grade":" B "}`)}, wantGrade: null.StringFrom("B")},
		{
			httpTest:  httpTest{name: "unknown letter", body: []byte(`{"code":"MAT 101","grade":"Z"}`), wantCode: http.StatusBadRequest, wantData: []byte(gradeErr)},
			wantGrade: null.StringFrom("B"),
		},
		{
			httpTest:  httpTest{name: "lowercase letter", body: []byte(`{"code":"MAT 101","grade":"a"}`), wantCode: http.StatusBadRequest, wantData: []byte(gradeErr)},
			wantGrade: null.StringFrom("B"),
		},
		{
			httpTest:  httpTest{name: "course not in semester", body: []byte(`{"code":"PHY 101","grade":"A"}`)},
			wantGrade: null.StringFrom("B"),
		},
		{httpTest: httpTest{name: "empty grade clears", body: []byte(`{"code":"MAT 101","grade":""}`)}, wantGrade: null.String{}},
		{httpTest: httpTest{name: "grade F", body: []byte(`{"code":"MAT 101","grade":"F"}`)}, wantGrade: null.StringFrom("F")},
		{httpTest: httpTest{name: "null grade clears", body: []byte(`{"code":"MAT 101","grade":null}`)}, wantGrade: null.String{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPut
			tt.path = "/v1/semesters/1/1/grades"
			rec := serve(tt.httpTest)
			if tt.wantData == nil {
				tt.wantData = semesterSummary(t, y1s1)
			}
			checkCodeAndData(t, tt.httpTest, rec)

			sem, err := store.Semester(y1s1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGrade, sem["MAT 101"].Grade)
		})
	}
}

func Test_recordApi_summary(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101", "PHY 101")
	addCourses(t, y1s2, "MAT 102")
	require.NoError(t, store.SetGrade(y1s1, "MAT 101", null.StringFrom("A")))
	require.NoError(t, store.SetGrade(y1s1, "PHY 101", null.StringFrom("B")))

	rec := serve(httpTest{path: "/v1/summary"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got record.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4.5, got.CGPA)
	assert.Equal(t, "4.50", got.CGPAText)
	assert.Equal(t, "First Class", got.Standing.Label)
	assert.Equal(t, 3, got.Stats.TotalCourses)
	assert.Equal(t, 2, got.Stats.GradedCourses)
	assert.Len(t, got.Semesters, len(record.DefaultLayout().Keys()))
	assert.Equal(t, y1s1, got.Semesters[0].Key)
	assert.Nil(t, got.Semesters[1].Standing)
}

func Test_recordApi_reset(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101")
	flushStore(t)

	rec := serve(httpTest{method: http.MethodDelete, path: "/v1/record"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, record.NewRecord(record.DefaultLayout()), store.Record())
	flushStore(t)
	_, err := slot.Load(context.Background())
	assert.Error(t, err, "slot should be cleared")
}

func Test_recordApi_export(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101")
	require.NoError(t, store.SetGrade(y1s1, "MAT 101", null.StringFrom("A")))

	t.Run("json", func(t *testing.T) {
		rec := serve(httpTest{path: "/v1/export?format=json"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="gpa-report-20240301-123000.json"`, rec.Header().Get("Content-Disposition"))

		var exp record.Export
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exp))
		assert.Equal(t, 1, exp.TotalCourses)
		assert.Equal(t, 1, exp.TotalCompletedCourses)
		assert.Equal(t, 5.0, exp.CGPA)
		assert.Equal(t, record.SchemaVersion, exp.SchemaVersion)
		assert.True(t, now.Equal(exp.ExportTimestamp))
		assert.Equal(t, store.Record(), exp.Record)
	})

	t.Run("default format", func(t *testing.T) {
		rec := serve(httpTest{path: "/v1/export"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasSuffix(rec.Header().Get("Content-Disposition"), `.json"`))
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := serve(httpTest{path: "/v1/export?format=xlsx"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="gpa-report-20240301-123000.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("unknown format", func(t *testing.T) {
		tt := httpTest{
			path: "/v1/export?format=pdf", wantCode: http.StatusBadRequest,
			wantData: []byte(`{"format":"must be one of json, xlsx"}`),
		}
		checkCodeAndData(t, tt, serve(tt))
	})
}

func Test_recordApi_importRecord(t *testing.T) {
	resetRecord(t)
	addCourses(t, y1s1, "MAT 101", "PHY 101")
	require.NoError(t, store.SetGrade(y1s1, "MAT 101", null.StringFrom("A")))
	exported := marshallObj(t, record.NewExport(store.Record(), now))
	want := store.Record()
	resetRecord(t)

	tests := []httpTest{
		{name: "not json", body: []byte(`nope`), wantCode: http.StatusBadRequest},
		{name: "missing data", body: []byte(`{"version":"1.0.0"}`), wantCode: http.StatusBadRequest},
		{
			name: "newer major version", body: []byte(`{"semestersData":{},"version":"2.0.0"}`), wantCode: http.StatusBadRequest,
			wantData: []byte(`{"version":"unsupported export version 2.0.0"}`),
		},
		{
			name: "mismatched entry", wantCode: http.StatusBadRequest,
			body: []byte(`{"semestersData":{"1-1":{"MAT 101":{"code":"PHY 101","title":"General Physics I","creditUnit":3,"year":1,"semester":1,"grade":null}}}}`),
			wantData: []byte(`{"code":"does not match its entry"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/v1/import"
			checkCodeAndData(t, tt, serve(tt))
			assert.Equal(t, record.NewRecord(record.DefaultLayout()), store.Record())
		})
	}

	t.Run("exported record", func(t *testing.T) {
		rec := serve(httpTest{method: http.MethodPost, path: "/v1/import", body: exported})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, store.Record())
	})
}

func Test_storageWarning(t *testing.T) {
	resetRecord(t)

	slot.FailSave(errors.New("disk full"))
	rec := serve(httpTest{method: http.MethodPost, path: "/v1/semesters/1/1/courses", body: []byte(`{"code":"MAT 101"}`)})
	assert.Equal(t, http.StatusOK, rec.Code, "the change is kept in memory")
	flushStore(t)

	rec = serve(httpTest{path: "/v1/semesters/1/1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "changes could not be saved: disk full", rec.Header().Get("X-Storage-Warning"))
	assert.True(t, store.Has(y1s1, "MAT 101"))

	// the next successful write clears the warning
	slot.FailSave(nil)
	rec = serve(httpTest{method: http.MethodPut, path: "/v1/semesters/1/1/grades", body: []byte(`{"code":"MAT 101","grade":"C"}`)})
	assert.Equal(t, http.StatusOK, rec.Code)
	flushStore(t)

	rec = serve(httpTest{path: "/v1/semesters/1/1"})
	assert.Empty(t, rec.Header().Get("X-Storage-Warning"))
}
