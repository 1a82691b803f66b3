package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/gpatracker/core/record"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	stdinFd        = int(os.Stdin.Fd())

	errHelp      = errors.New("help provided")
	errCancelled = errors.New("cancelled")
)

type commandLine struct {
	store      *record.Store
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
	in         io.Reader
	now        func() time.Time
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  show [-semester Y-S]                              - print the summary, or the courses of a semester")
	fmt.Fprintln(cli.out, "  catalog [-semester Y-S]                           - list catalog courses")
	fmt.Fprintln(cli.out, "  add -semester Y-S -code CODE                      - add a catalog course to a semester")
	fmt.Fprintln(cli.out, "  remove -semester Y-S -code CODE                   - remove a course from a semester")
	fmt.Fprintln(cli.out, "  grade -semester Y-S -code CODE [-grade LETTER]    - set (or clear) the grade of a course")
	fmt.Fprintln(cli.out, "  reset [-yes]                                      - erase the whole record")
	fmt.Fprintln(cli.out, "  export [-format json|xlsx] [-out PATH]            - write a report")
	fmt.Fprintln(cli.out, "  import -file PATH [-dry-run]                      - replace the record with an exported one")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	showCmd := cli.newFlagSet("show")
	showSemester := showCmd.String("semester", "", "The semester to show, as YEAR-SEMESTER (e.g. 1-2).")

	catalogCmd := cli.newFlagSet("catalog")
	catalogSemester := catalogCmd.String("semester", "", "Only list the courses recommended for YEAR-SEMESTER.")

	addCmd := cli.newFlagSet("add")
	addSemester := addCmd.String("semester", "", "The semester, as YEAR-SEMESTER.")
	addCode := addCmd.String("code", "", "The catalog code of the course (e.g. 'MAT 101').")

	removeCmd := cli.newFlagSet("remove")
	removeSemester := removeCmd.String("semester", "", "The semester, as YEAR-SEMESTER.")
	removeCode := removeCmd.String("code", "", "The code of the course.")

	gradeCmd := cli.newFlagSet("grade")
	gradeSemester := gradeCmd.String("semester", "", "The semester, as YEAR-SEMESTER.")
	gradeCode := gradeCmd.String("code", "", "The code of the course.")
	gradeLetter := gradeCmd.String("grade", "", "The grade letter. Leave empty to clear the grade.")

	resetCmd := cli.newFlagSet("reset")
	resetYes := resetCmd.Bool("yes", false, "Do not ask for confirmation.")

	exportCmd := cli.newFlagSet("export")
	exportFormat := exportCmd.String("format", "json", "The report format: json or xlsx.")
	exportOut := exportCmd.String("out", "", "The output file. Defaults to the report name in the working directory.")

	importCmd := cli.newFlagSet("import")
	importFile := importCmd.String("file", "", "The exported JSON file.")
	importDryRun := importCmd.Bool("dry-run", false, "Only print what would change.")

	switch args[1] {
	case "show":
		if err := showCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *showSemester == "" {
			return cli.showSummary()
		}
		key, err := record.ParseSemesterKey(*showSemester)
		if err != nil {
			return err
		}
		return cli.showSemester(key)

	case "catalog":
		if err := catalogCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.listCatalog(*catalogSemester)

	case "add":
		if err := addCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addSemester == "" || *addCode == "" {
			addCmd.Usage()
			return errHelp
		}
		key, err := record.ParseSemesterKey(*addSemester)
		if err != nil {
			return err
		}
		return cli.addCourse(key, *addCode)

	case "remove":
		if err := removeCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *removeSemester == "" || *removeCode == "" {
			removeCmd.Usage()
			return errHelp
		}
		key, err := record.ParseSemesterKey(*removeSemester)
		if err != nil {
			return err
		}
		return cli.removeCourse(key, *removeCode)

	case "grade":
		if err := gradeCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *gradeSemester == "" || *gradeCode == "" {
			gradeCmd.Usage()
			return errHelp
		}
		key, err := record.ParseSemesterKey(*gradeSemester)
		if err != nil {
			return err
		}
		return cli.setGrade(key, *gradeCode, *gradeLetter)

	case "reset":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if !*resetYes {
			if !isTerminalFunc(stdinFd) {
				fmt.Fprintln(cli.out, "refusing to reset without confirmation; pass -yes")
				return errHelp
			}
			if !cli.confirm("This erases every semester of the record. Type 'yes' to continue: ") {
				return errCancelled
			}
		}
		return cli.reset()

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.export(*exportFormat, *exportOut)

	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importRecord(*importFile, *importDryRun)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}
