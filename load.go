package devm

import (
	"fmt"
	"os"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/parse"
)

// Load reads and parses the file at path.  A nil f infers the format from
// the extension.  The file is closed before parsing.
func (t *Tool) Load(path string, f *format.Format) (*ir.Node, error) {
	var fmat format.Format
	if f != nil {
		fmat = *f
	} else {
		var err error
		fmat, err = format.FromPath(path)
		if err != nil {
			return nil, err
		}
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	t.log().Debug("loaded", "source", path, "format", fmat, "bytes", len(d))
	return parse.Parse(d,
		parse.ParseFormat(fmat),
		parse.ParseSource(path),
		parse.ParseLogger(t.log()))
}
