package exportsvc

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/record"
)

type jsonRenderer struct{}

var _ record.Renderer = jsonRenderer{}

// Render writes the bundle as indented JSON. The output can be imported back.
func (jsonRenderer) Render(exp record.Export) (*core.Document, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exp); err != nil {
		return nil, errors.Wrap(err, "encoding export")
	}
	return &core.Document{
		Content:     buf,
		ContentType: "application/json",
		Filename:    filename(exp, FormatJSON),
	}, nil
}
