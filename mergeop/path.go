package mergeop

import "github.com/monodev/devm/ir/kpath"

// path is a field path stored leaf first, so that pushing a child shares
// its parent's path.
type path struct {
	parent *path
	field  string
}

func (p *path) child(field string) *path {
	return &path{parent: p, field: field}
}

func (p *path) kpath() *kpath.KPath {
	var segs []*kpath.KPath
	for q := p; q != nil; q = q.parent {
		segs = append(segs, kpath.Field(q.field))
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return kpath.Join(segs...)
}
