package exportsvc

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/grading"
	"github.com/trezcool/gpatracker/core/record"
)

// sheet names
const (
	sheetSummary   = "Summary"
	sheetSemesters = "Semesters"
	sheetCourses   = "Courses"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	semesterHeaders = []string{"Semester", "Courses", "Credits", "Completed Credits", "GPA", "Standing"}
	courseHeaders   = []string{"Year", "Semester", "Code", "Title", "Credit Unit", "Category", "Grade", "Points"}
)

type xlsxRenderer struct{}

var _ record.Renderer = xlsxRenderer{}

// Render writes the bundle as a workbook with a summary, a semesters and a courses sheet.
func (xlsxRenderer) Render(exp record.Export) (*core.Document, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetSummary)
	if err != nil {
		return nil, errors.Wrap(err, "creating summary sheet")
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	sum := record.Summarize(exp.Record)
	if err = writeSummary(f, exp, sum, headerStyle); err != nil {
		return nil, err
	}
	if err = writeSemesters(f, sum, headerStyle); err != nil {
		return nil, err
	}
	if err = writeCourses(f, exp.Record, headerStyle); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err = f.Write(buf); err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return &core.Document{
		Content:     buf,
		ContentType: xlsxContentType,
		Filename:    filename(exp, FormatXLSX),
	}, nil
}

func writeSummary(f *excelize.File, exp record.Export, sum record.Summary, headerStyle int) error {
	rows := [][]interface{}{
		{"Academic Report"},
		{"CGPA", grading.FormatGPA(exp.CGPA)},
		{"Standing", sum.Standing.Label + " (" + sum.Standing.Description + ")"},
		{"Total Courses", exp.TotalCourses},
		{"Completed Courses", exp.TotalCompletedCourses},
		{"Total Credits", sum.Stats.TotalCredits},
		{"Completed Credits", sum.Stats.CompletedCredits},
		{"Progress (%)", fmt.Sprintf("%.1f", sum.Stats.ProgressPercentage)},
		{"Exported At", formatDate(exp.ExportTimestamp)},
		{"Version", exp.SchemaVersion},
	}
	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	_ = f.MergeCell(sheetSummary, "A1", "B1")
	_ = f.SetCellStyle(sheetSummary, "A1", "B1", headerStyle)
	_ = f.SetColWidth(sheetSummary, "A", "A", 20)
	_ = f.SetColWidth(sheetSummary, "B", "B", 32)

	// grade distribution, in scale order
	row := len(rows) + 2
	if err := setRow(f, sheetSummary, row, []interface{}{"Grade", "Count"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheetSummary, cell("A", row), cell("B", row), headerStyle)
	for _, letter := range grading.DefaultScale.Letters() {
		row++
		if err := setRow(f, sheetSummary, row, []interface{}{letter, sum.Stats.Distribution[letter]}); err != nil {
			return err
		}
	}
	return nil
}

func writeSemesters(f *excelize.File, sum record.Summary, headerStyle int) error {
	if _, err := f.NewSheet(sheetSemesters); err != nil {
		return errors.Wrap(err, "creating semesters sheet")
	}
	if err := writeHeader(f, sheetSemesters, semesterHeaders, headerStyle); err != nil {
		return err
	}
	for i, ss := range sum.Semesters {
		standing := "-"
		if ss.Standing != nil {
			standing = ss.Standing.Label
		}
		row := []interface{}{
			fmt.Sprintf("Year %d, Semester %d", ss.Key.Year, ss.Key.Semester),
			len(ss.Courses), ss.TotalCredits, ss.CompletedCredits, ss.GPAText, standing,
		}
		if err := setRow(f, sheetSemesters, i+2, row); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheetSemesters, "A", "A", 24)
	_ = f.SetColWidth(sheetSemesters, "B", "F", 18)
	return nil
}

func writeCourses(f *excelize.File, rec record.Record, headerStyle int) error {
	if _, err := f.NewSheet(sheetCourses); err != nil {
		return errors.Wrap(err, "creating courses sheet")
	}
	if err := writeHeader(f, sheetCourses, courseHeaders, headerStyle); err != nil {
		return err
	}
	row := 2
	for _, key := range rec.Keys() {
		for _, c := range rec[key].Courses() {
			grade, points := "-", "-"
			if c.IsGraded() {
				grade = c.Grade.String
				if gp, ok := grading.DefaultScale.Lookup(c.Grade.String); ok {
					points = fmt.Sprintf("%g", gp.Points)
				}
			}
			vals := []interface{}{key.Year, key.Semester, c.Code, c.Title, c.CreditUnit, string(c.Category), grade, points}
			if err := setRow(f, sheetCourses, row, vals); err != nil {
				return err
			}
			row++
		}
	}
	_ = f.SetColWidth(sheetCourses, "C", "C", 12)
	_ = f.SetColWidth(sheetCourses, "D", "D", 40)
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	vals := make([]interface{}, len(headers))
	for i, h := range headers {
		vals[i] = h
	}
	if err := setRow(f, sheet, 1, vals); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetCellStyle(sheet, "A1", last+"1", style)
}

func setRow(f *excelize.File, sheet string, row int, vals []interface{}) error {
	for i, v := range vals {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, name, v); err != nil {
			return errors.Wrapf(err, "writing %s!%s", sheet, name)
		}
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
