package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/record"
)

func (cli *commandLine) listCatalog(semester string) error {
	cat := cli.store.Catalog()
	courses := cat.All()
	if semester != "" {
		key, err := record.ParseSemesterKey(semester)
		if err != nil {
			return err
		}
		courses = cat.ForSemester(key.Year, key.Semester)
	}
	return printCourses(cli.out, courses)
}

func printCourses(out io.Writer, courses []catalog.Course) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTITLE\tUNITS\tSEMESTER\tCATEGORY")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d-%d\t%s\n", c.Code, c.Title, c.CreditUnit, c.Year, c.Semester, c.Category)
	}
	return w.Flush()
}
