package exportsvc

import (
	"errors"
	"strings"
	"time"

	"github.com/trezcool/gpatracker/core/record"
)

// formats
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")

	Formats = []string{FormatJSON, FormatXLSX}
)

// NewRenderer returns the renderer of format (json or xlsx).
func NewRenderer(format string) (record.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		return jsonRenderer{}, nil
	case FormatXLSX:
		return xlsxRenderer{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

func filename(exp record.Export, ext string) string {
	return "gpa-report-" + exp.ExportTimestamp.Format("20060102-150405") + "." + ext
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
