package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	echoapi "github.com/trezcool/gpatracker/apps/api/echo"
	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/record"
	exportsvc "github.com/trezcool/gpatracker/services/export"
)

func (cli *commandLine) export(format, out string) error {
	renderer, err := exportsvc.NewRenderer(format)
	if err != nil {
		return errors.Wrap(err, format)
	}
	doc, err := renderer.Render(record.NewExport(cli.store.Record(), cli.now()))
	if err != nil {
		return errors.Wrap(err, "rendering export")
	}

	if out == "" {
		out = doc.Filename
	}
	if err := os.WriteFile(out, doc.Content.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "writing export")
	}
	fmt.Fprintf(cli.out, "report written to %s\n", out)
	return nil
}

func (cli *commandLine) importRecord(path string, dryRun bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening export")
	}
	defer f.Close()

	var data echoapi.ImportRequest
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return errors.Wrap(err, "decoding export")
	}
	if err := data.Validate(cli.validate); err != nil {
		return core.TranslateErrors(err, cli.translator)
	}

	if dryRun {
		diff, err := recordDiff(cli.store.Record(), data.Record.Normalized(cli.store.Layout()))
		if err != nil {
			return err
		}
		if diff == "" {
			fmt.Fprintln(cli.out, "no changes")
		} else {
			fmt.Fprint(cli.out, diff)
		}
		return nil
	}

	if err := cli.store.Import(data.Record); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "record imported from %s\n", path)
	return nil
}

// recordDiff returns a unified diff of the indented JSON forms of two records.
func recordDiff(current, next record.Record) (string, error) {
	a, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding current record")
	}
	b, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding imported record")
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a) + "\n"),
		B:        difflib.SplitLines(string(b) + "\n"),
		FromFile: "current",
		ToFile:   "imported",
		Context:  2,
	})
}
