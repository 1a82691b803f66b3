package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/volatiletech/null/v8"

	echoapi "github.com/trezcool/gpatracker/apps/api/echo"
	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/record"
)

func (cli *commandLine) showSummary() error {
	sum := record.Summarize(cli.store.Record())
	st := sum.Stats

	fmt.Fprintf(cli.out, "CGPA: %s (%s)\n", sum.CGPAText, sum.Standing.Label)
	fmt.Fprintf(cli.out, "Courses: %d, graded: %d\n", st.TotalCourses, st.GradedCourses)
	fmt.Fprintf(cli.out, "Credits: %d/%d completed (%.2f%%)\n\n", st.CompletedCredits, st.TotalCredits, st.ProgressPercentage)

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEMESTER\tGPA\tSTANDING\tCOURSES\tCREDITS")
	for _, ss := range sum.Semesters {
		standing := "-"
		if ss.Standing != nil {
			standing = ss.Standing.Label
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\n",
			ss.Key, ss.GPAText, standing, len(ss.Courses), ss.CompletedCredits, ss.TotalCredits)
	}
	return w.Flush()
}

func (cli *commandLine) showSemester(key record.SemesterKey) error {
	sem, err := cli.store.Semester(key)
	if err != nil {
		return err
	}
	ss := record.SummarizeSemester(key, sem)

	fmt.Fprintf(cli.out, "Semester %s: GPA %s\n\n", key, ss.GPAText)
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTITLE\tUNITS\tGRADE")
	for _, c := range ss.Courses {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.Code, c.Title, c.CreditUnit, c.Grade.String)
	}
	return w.Flush()
}

func (cli *commandLine) addCourse(key record.SemesterKey, code string) error {
	req := echoapi.CourseRequest{Code: code}
	if err := req.Validate(cli.validate); err != nil {
		return core.TranslateErrors(err, cli.translator)
	}
	if err := cli.store.AddCourseByCode(key, req.Code); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: %s added\n", key, req.Code)
	return nil
}

func (cli *commandLine) removeCourse(key record.SemesterKey, code string) error {
	code = core.CleanCode(code)
	if !cli.store.Has(key, code) {
		if _, err := cli.store.Semester(key); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s: %s is not in the semester\n", key, code)
		return nil
	}
	if err := cli.store.RemoveCourse(key, code); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: %s removed\n", key, code)
	return nil
}

func (cli *commandLine) setGrade(key record.SemesterKey, code, grade string) error {
	req := echoapi.GradeRequest{Code: code, Grade: null.StringFrom(grade)}
	if err := req.Validate(cli.validate); err != nil {
		return core.TranslateErrors(err, cli.translator)
	}
	if !cli.store.Has(key, req.Code) {
		if _, err := cli.store.Semester(key); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s: %s is not in the semester\n", key, req.Code)
		return nil
	}
	if err := cli.store.SetGrade(key, req.Code, req.Grade); err != nil {
		return err
	}
	if req.Grade.String == "" {
		fmt.Fprintf(cli.out, "%s: %s grade cleared\n", key, req.Code)
	} else {
		fmt.Fprintf(cli.out, "%s: %s graded %s\n", key, req.Code, req.Grade.String)
	}
	return nil
}

func (cli *commandLine) reset() error {
	if err := cli.store.ResetAll(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "record erased")
	return nil
}

func (cli *commandLine) confirm(prompt string) bool {
	fmt.Fprint(cli.out, prompt)
	answer, _ := bufio.NewReader(cli.in).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
