package grading

// Letter grades
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeE = "E"
	GradeF = "F"
)

// GradePoint maps a letter grade to its point value.
type GradePoint struct {
	Letter      string  `json:"letter"`
	Points      float64 `json:"points"`
	Description string  `json:"description"`
}

// Scale is a grade scale ordered by points, highest first.
type Scale []GradePoint

// DefaultScale is the 5-point scale.
var DefaultScale = Scale{
	{Letter: GradeA, Points: 5, Description: "Excellent"},
	{Letter: GradeB, Points: 4, Description: "Very Good"},
	{Letter: GradeC, Points: 3, Description: "Good"},
	{Letter: GradeD, Points: 2, Description: "Fair"},
	{Letter: GradeE, Points: 1, Description: "Pass"},
	{Letter: GradeF, Points: 0, Description: "Fail"},
}

// Lookup returns the grade point for letter. Letters are case-sensitive.
func (s Scale) Lookup(letter string) (GradePoint, bool) {
	for _, gp := range s {
		if gp.Letter == letter {
			return gp, true
		}
	}
	return GradePoint{}, false
}

// Letters returns the scale's letters in scale order.
func (s Scale) Letters() []string {
	letters := make([]string, len(s))
	for i, gp := range s {
		letters[i] = gp.Letter
	}
	return letters
}

func (s Scale) MaxPoints() float64 {
	var max float64
	for _, gp := range s {
		if gp.Points > max {
			max = gp.Points
		}
	}
	return max
}
