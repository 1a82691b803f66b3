package catalog

// Category groups catalog courses the way a faculty handbook does.
type Category string

// Categories
const (
	CategoryCore     Category = "core"
	CategoryElective Category = "elective"
	CategoryFaculty  Category = "faculty"
	CategoryGSS      Category = "gss" // general studies
)

// Course is an immutable catalog entry.
type Course struct {
	Code       string   `json:"code" yaml:"code" validate:"required,coursecode"`
	Title      string   `json:"title" yaml:"title" validate:"notblank"`
	CreditUnit int      `json:"creditUnit" yaml:"creditUnit" validate:"gt=0"`
	Year       int      `json:"year" yaml:"year" validate:"gte=1"`
	Semester   int      `json:"semester" yaml:"semester" validate:"gte=1"`
	Category   Category `json:"category,omitempty" yaml:"category,omitempty" validate:"omitempty,oneof=core elective faculty gss"`
}
