package devm

import (
	"bytes"
	"fmt"
	"os"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func mustYAML(node *ir.Node) string {
	s, err := encodeString(node, format.YAMLFormat)
	if err != nil {
		return encode.MustString(node)
	}
	return s
}

// Write encodes node in format f to out.  An empty out or "-" writes to the
// tool's standard output.  A file must not already exist.
func (t *Tool) Write(node *ir.Node, out string, f format.Format) error {
	if out == "" || out == "-" {
		opts := []encode.EncodeOption{encode.EncodeFormat(f)}
		if t.Colors != nil {
			opts = append(opts, encode.EncodeColors(t.Colors))
		}
		return encode.Encode(node, t.stdout(), opts...)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(f)); err != nil {
		return err
	}
	return writeNew(out, buf.Bytes())
}

// writeNew creates path exclusively and writes d to it.
func writeNew(path string, d []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if _, err := f.Write(d); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}
	return nil
}

func encodeString(node *ir.Node, f format.Format) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(f)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
