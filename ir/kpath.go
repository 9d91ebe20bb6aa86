package ir

import (
	"fmt"

	"github.com/monodev/devm/ir/kpath"
)

// GetKPath navigates a node tree using a kinded path.
//
// Example:
//
//	rootNode.GetKPath("a.b[0]") returns the first element of the array at a.b
//
// Returns an error wrapping ErrNotFound if the path doesn't exist and ErrType
// if a segment kind does not match the node it is applied to.
func (node *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.getKPath(p)
}

func (node *Node) getKPath(p *kpath.KPath) (*Node, error) {
	res := node
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: field %q of %s", ErrType, *x.Field, res.Type)
			}
			next := Get(res, *x.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: field %q", ErrNotFound, *x.Field)
			}
			res = next
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: index %d of %s", ErrType, *x.Index, res.Type)
			}
			if *x.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrNotFound, *x.Index, len(res.Values))
			}
			res = res.Values[*x.Index]
		}
	}
	return res, nil
}

// FromKPath builds the smallest object tree that holds val at the field path
// p.  Index segments are rejected: there is no single array that places a
// value at an index when merged.
func FromKPath(p *kpath.KPath, val *Node) (*Node, error) {
	if p == nil {
		return val, nil
	}
	segs := p.Segments()
	res := val
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if seg.Field == nil {
			return nil, fmt.Errorf("%w: index segment in %q", ErrType, p)
		}
		obj := Object()
		obj.Set(*seg.Field, res)
		res = obj
	}
	return res, nil
}

// SetKPath sets the value at p within node, replacing any value there.
// Missing fields are created as objects; array indices must exist.  The root
// cannot be replaced, so p must be non-empty.
func (node *Node) SetKPath(p *kpath.KPath, val *Node) error {
	if p == nil {
		return fmt.Errorf("%w: cannot set the root", ErrType)
	}
	cur := node
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if cur.Type == NullType {
				*cur = *Object()
			}
			if cur.Type != ObjectType {
				return fmt.Errorf("%w: field %q of %s in %q", ErrType, *x.Field, cur.Type, p)
			}
			if x.Next == nil {
				cur.Set(*x.Field, val)
				return nil
			}
			next := Get(cur, *x.Field)
			if next == nil {
				sub, err := FromKPath(x.Next, val)
				if err != nil {
					return err
				}
				cur.Set(*x.Field, sub)
				return nil
			}
			cur = next
		case x.Index != nil:
			if cur.Type != ArrayType {
				return fmt.Errorf("%w: index %d of %s in %q", ErrType, *x.Index, cur.Type, p)
			}
			if *x.Index >= len(cur.Values) {
				return fmt.Errorf("%w: index %d out of range (len %d) in %q", ErrNotFound, *x.Index, len(cur.Values), p)
			}
			if x.Next == nil {
				cur.Values[*x.Index] = val
				return nil
			}
			cur = cur.Values[*x.Index]
		}
	}
	return nil
}
