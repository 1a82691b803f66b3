package grading

// Stats are progress figures derived from a flattened record.
type Stats struct {
	TotalCourses       int     `json:"totalCourses"`
	GradedCourses      int     `json:"gradedCourses"`
	TotalCredits       int     `json:"totalCredits"`
	CompletedCredits   int     `json:"completedCredits"`
	ProgressPercentage float64 `json:"progressPercentage"`
	// Distribution counts courses per recognized letter. Its iteration order carries no meaning.
	Distribution map[string]int `json:"distribution"`
}

// ComputeStats derives Stats on the DefaultScale.
func ComputeStats(courses []GradedCourse) Stats {
	return DefaultScale.Stats(courses)
}

// Stats derives the progress figures of courses.
// Only grades known to the scale complete credits or enter the distribution.
func (s Scale) Stats(courses []GradedCourse) Stats {
	st := Stats{
		TotalCourses: len(courses),
		Distribution: make(map[string]int),
	}
	for _, c := range courses {
		st.TotalCredits += c.CreditUnit
		if !c.IsGraded() {
			continue
		}
		if _, ok := s.Lookup(c.Grade.String); !ok {
			continue
		}
		st.GradedCourses++
		st.CompletedCredits += c.CreditUnit
		st.Distribution[c.Grade.String]++
	}
	if st.TotalCredits > 0 {
		st.ProgressPercentage = float64(st.CompletedCredits) / float64(st.TotalCredits) * 100
	}
	return st
}
