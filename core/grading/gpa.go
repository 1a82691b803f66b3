package grading

import (
	"strconv"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core/catalog"
)

// GradedCourse is a catalog course with an optional grade.
// An invalid (null) Grade means "not graded yet".
type GradedCourse struct {
	catalog.Course
	Grade null.String `json:"grade"`
}

// IsGraded reports whether the course holds a non-empty grade (recognized or not).
func (gc GradedCourse) IsGraded() bool {
	return gc.Grade.Valid && gc.Grade.String != ""
}

// Standing is an academic classification band.
type Standing struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// bands are evaluated top to bottom; thresholds are inclusive.
var bands = []struct {
	min      float64
	standing Standing
}{
	{min: 4.5, standing: Standing{Label: "First Class", Description: "Excellent"}},
	{min: 3.5, standing: Standing{Label: "Second Class Upper", Description: "Very Good"}},
	{min: 2.5, standing: Standing{Label: "Second Class Lower", Description: "Good"}},
	{min: 1.5, standing: Standing{Label: "Third Class", Description: "Fair"}},
	{min: 1.0, standing: Standing{Label: "Pass", Description: "Pass"}},
}

var failStanding = Standing{Label: "Fail", Description: "Fail"}

// ComputeGPA computes the credit-weighted GPA on the DefaultScale.
func ComputeGPA(courses []GradedCourse) float64 {
	return DefaultScale.GPA(courses)
}

// GPA returns sum(points * credit) / sum(credit) over the courses holding a grade known to the scale.
// Ungraded courses and unknown grades count in neither sum. It returns 0 when no course qualifies.
func (s Scale) GPA(courses []GradedCourse) float64 {
	var points float64
	var credits int
	for _, c := range courses {
		if !c.IsGraded() {
			continue
		}
		gp, ok := s.Lookup(c.Grade.String)
		if !ok {
			continue
		}
		points += gp.Points * float64(c.CreditUnit)
		credits += c.CreditUnit
	}
	if credits == 0 {
		return 0
	}
	return points / float64(credits)
}

// Classify returns the standing band of gpa.
func Classify(gpa float64) Standing {
	for _, b := range bands {
		if gpa >= b.min {
			return b.standing
		}
	}
	return failStanding
}

// FormatGPA renders gpa with two decimals, always with a '.' separator.
func FormatGPA(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', 2, 64)
}
