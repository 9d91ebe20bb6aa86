package mergeop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/monodev/devm/ir"
)

// Source is a named document.  Position in the list given to Merge is
// precedence: later sources win.
type Source struct {
	Name string
	Doc  *ir.Node
}

type merger struct {
	policy Policy
	log    *slog.Logger
}

// pending is an object pair whose keys have yet to be merged.
type pending struct {
	dst, src *ir.Node
	path     *path
}

// Merge merges srcs in order into a new document.
func Merge(srcs []Source, opts ...Option) (*ir.Node, error) {
	m := &merger{policy: Overwrite}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	if len(srcs) == 0 {
		return ir.Object(), nil
	}
	var (
		acc   *ir.Node
		names []string
	)
	for _, src := range srcs {
		if src.Doc == nil || src.Doc.Type == ir.NullType {
			m.log.Debug("skipping null document", "source", src.Name)
			continue
		}
		if acc == nil {
			acc = src.Doc.Clone()
			names = append(names, src.Name)
			continue
		}
		var err error
		acc, err = m.mergeRoot(acc, strings.Join(names, ", "), src)
		if err != nil {
			return nil, err
		}
		names = append(names, src.Name)
	}
	if acc == nil {
		return ir.Null(), nil
	}
	return acc, nil
}

// Docs merges unnamed documents.  Sources are named by position in errors.
func Docs(docs ...*ir.Node) (*ir.Node, error) {
	srcs := make([]Source, len(docs))
	for i, d := range docs {
		srcs[i] = Source{Name: fmt.Sprintf("#%d", i), Doc: d}
	}
	return Merge(srcs)
}

func (m *merger) mergeRoot(acc *ir.Node, accName string, src Source) (*ir.Node, error) {
	m.log.Debug("merging", "source", src.Name, "type", src.Doc.Type)
	switch {
	case acc.Type == ir.ObjectType && src.Doc.Type == ir.ObjectType:
		if err := m.mergeObjects(acc, src.Doc, src.Name, accName); err != nil {
			return nil, err
		}
		return acc, nil
	case acc.Type == ir.ArrayType && src.Doc.Type == ir.ArrayType:
		acc.Append(cloneAll(src.Doc.Values)...)
		return acc, nil
	case acc.Type.IsLeaf() && src.Doc.Type.IsLeaf():
		return src.Doc.Clone(), nil
	}
	return nil, &TypeConflictError{
		Target:     acc.Type,
		Source:     src.Doc.Type,
		TargetName: accName,
		SourceName: src.Name,
	}
}

// mergeObjects merges src into dst, which must be owned by the merge.
func (m *merger) mergeObjects(dst, src *ir.Node, srcName, dstName string) error {
	debug := m.log.Enabled(context.Background(), slog.LevelDebug)
	work := []pending{{dst: dst, src: src}}
	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]
		if debug {
			m.log.Debug("merge object", "source", srcName, "path", w.path.kpath().String(),
				"keys", len(w.src.Fields))
		}
		index := make(map[string]int, len(w.dst.Fields))
		for i, f := range w.dst.Fields {
			index[f.String] = i
		}
		for i, f := range w.src.Fields {
			key := f.String
			sv := w.src.Values[i]
			j, ok := index[key]
			if !ok {
				index[key] = len(w.dst.Fields)
				w.dst.Fields = append(w.dst.Fields, ir.FromString(key))
				w.dst.Values = append(w.dst.Values, sv.Clone())
				continue
			}
			dv := w.dst.Values[j]
			switch {
			case dv.Type == ir.ObjectType && sv.Type == ir.ObjectType:
				work = append(work, pending{dst: dv, src: sv, path: w.path.child(key)})
			case dv.Type == ir.ArrayType && sv.Type == ir.ArrayType:
				dv.Append(cloneAll(sv.Values)...)
			default:
				if m.policy == Strict && conflicts(dv.Type, sv.Type) {
					return &TypeConflictError{
						Path:       w.path.child(key).kpath(),
						Target:     dv.Type,
						Source:     sv.Type,
						TargetName: dstName,
						SourceName: srcName,
					}
				}
				w.dst.Values[j] = sv.Clone()
			}
		}
	}
	return nil
}

func conflicts(a, b ir.Type) bool {
	if a == b || a == ir.NullType || b == ir.NullType {
		return false
	}
	return true
}

func cloneAll(ns []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}
