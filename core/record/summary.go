package record

import (
	"time"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/grading"
)

// SchemaVersion is the version of the export bundle.
const SchemaVersion = "1.0.0"

type SemesterSummary struct {
	Key              SemesterKey            `json:"key"`
	GPA              float64                `json:"gpa"`
	GPAText          string                 `json:"gpaText"`
	Standing         *grading.Standing      `json:"standing"` // nil until the semester has a GPA
	TotalCredits     int                    `json:"totalCredits"`
	CompletedCredits int                    `json:"completedCredits"`
	Courses          []grading.GradedCourse `json:"courses"`
}

// Summary is the read model shown next to the record.
type Summary struct {
	CGPA      float64           `json:"cgpa"`
	CGPAText  string            `json:"cgpaText"`
	Standing  grading.Standing  `json:"standing"`
	Stats     grading.Stats     `json:"stats"`
	Semesters []SemesterSummary `json:"semesters"`
}

// Summarize computes the semester GPAs, the CGPA and the progress stats of rec.
func Summarize(rec Record) Summary {
	all := rec.Flatten()
	cgpa := grading.ComputeGPA(all)
	sum := Summary{
		CGPA:      cgpa,
		CGPAText:  grading.FormatGPA(cgpa),
		Standing:  grading.Classify(cgpa),
		Stats:     grading.ComputeStats(all),
		Semesters: make([]SemesterSummary, 0, len(rec)),
	}

	for _, key := range rec.Keys() {
		sum.Semesters = append(sum.Semesters, SummarizeSemester(key, rec[key]))
	}
	return sum
}

// SummarizeSemester computes the GPA and credits of one semester.
func SummarizeSemester(key SemesterKey, sem Semester) SemesterSummary {
	courses := sem.Courses()
	gpa := grading.ComputeGPA(courses)
	stats := grading.ComputeStats(courses)
	ss := SemesterSummary{
		Key:              key,
		GPA:              gpa,
		GPAText:          grading.FormatGPA(gpa),
		TotalCredits:     stats.TotalCredits,
		CompletedCredits: stats.CompletedCredits,
		Courses:          courses,
	}
	if gpa > 0 {
		standing := grading.Classify(gpa)
		ss.Standing = &standing
	}
	return ss
}

// Export is the bundle handed to document renderers.
type Export struct {
	Record                Record    `json:"semestersData"`
	TotalCourses          int       `json:"totalCourses"`
	TotalCompletedCourses int       `json:"totalCompletedCourses"`
	CGPA                  float64   `json:"cgpa"`
	ExportTimestamp       time.Time `json:"exportDate"`
	SchemaVersion         string    `json:"version"`
}

// NewExport bundles a snapshot of rec taken at now.
// A course counts as completed when its grade is on the grading scale.
func NewExport(rec Record, now time.Time) Export {
	all := rec.Flatten()
	stats := grading.ComputeStats(all)
	return Export{
		Record:                rec.Clone(),
		TotalCourses:          stats.TotalCourses,
		TotalCompletedCourses: stats.GradedCourses,
		CGPA:                  grading.ComputeGPA(all),
		ExportTimestamp:       now.UTC(),
		SchemaVersion:         SchemaVersion,
	}
}

// Renderer turns an export bundle into a document.
type Renderer interface {
	Render(exp Export) (*core.Document, error)
}
