package ir

import (
	"fmt"

	"github.com/signadot/mother/ir/kpath"
)

// SetKPath writes v at kp below y, creating missing containers on the way.
//
// Navigation segments that name an absent field, or an array element that
// is null or a scalar, get a fresh container whose kind is chosen by the
// following segment: an array if it is an index, an object otherwise.
// Arrays are padded with nulls up to the addressed index. The target field
// is inserted or overwritten in place and the target index is overwritten
// without shifting other elements.
//
// Descending into a node of the wrong kind fails with ErrTypeMismatch. The
// whole path is checked before anything is written, so a failed SetKPath
// leaves y unchanged.
func (y *Node) SetKPath(kp kpath.KPath, v *Node) error {
	if len(kp) == 0 {
		return fmt.Errorf("%w: empty path", kpath.ErrSyntax)
	}
	if err := y.setKPath(kp, v, false); err != nil {
		return err
	}
	return y.setKPath(kp, v, true)
}

// setKPath walks kp. With apply unset it only checks the walk against the
// existing tree, stopping as soon as the rest of the path would be created.
func (y *Node) setKPath(kp kpath.KPath, v *Node, apply bool) error {
	cur := y
	for i, seg := range kp.Parent() {
		if cur == nil {
			return nil
		}
		next := kp[i+1]
		switch seg.Kind {
		case kpath.FieldEntry:
			if cur.Type != ObjectType {
				return mismatch(kp[:i+1], ObjectType, cur.Type)
			}
			child := cur.Get(seg.Field)
			if child == nil || child.Type == NullType {
				if !apply {
					cur = nil
					continue
				}
				child = containerFor(next)
				cur.Put(seg.Field, child)
			}
			cur = child
		case kpath.ArrayEntry:
			if cur.Type != ArrayType {
				return mismatch(kp[:i+1], ArrayType, cur.Type)
			}
			var elt *Node
			if seg.Index < len(cur.Values) {
				elt = cur.Values[seg.Index]
			}
			if elt == nil || elt.Type.IsLeaf() {
				if !apply {
					cur = nil
					continue
				}
				cur.padTo(seg.Index)
				elt = containerFor(next)
				cur.Values[seg.Index] = elt
			}
			cur = elt
		default:
			return fmt.Errorf("%w: segment kind %s", errInternal, seg.Kind)
		}
	}
	if cur == nil {
		return nil
	}
	last := kp.Last()
	switch last.Kind {
	case kpath.FieldEntry:
		if cur.Type != ObjectType {
			return mismatch(kp, ObjectType, cur.Type)
		}
		if apply {
			cur.Put(last.Field, v)
		}
	case kpath.ArrayEntry:
		if cur.Type != ArrayType {
			return mismatch(kp, ArrayType, cur.Type)
		}
		if apply {
			cur.padTo(last.Index)
			cur.Values[last.Index] = v
		}
	default:
		return fmt.Errorf("%w: segment kind %s", errInternal, last.Kind)
	}
	return nil
}

// containerFor returns a new container able to hold seg.
func containerFor(seg kpath.Segment) *Node {
	if seg.IsIndex() {
		return Array()
	}
	return Object()
}

func mismatch(at kpath.KPath, want, got Type) error {
	return fmt.Errorf("%w: %q expects %s, got %s", ErrTypeMismatch, at.String(), want, got)
}

// RemoveKPath removes the target of kp below y.
//
// Every navigation segment must resolve against the existing tree, otherwise
// RemoveKPath fails with ErrPathNotFound and nothing changes. An absent
// target field or an out of range target index is not an error. Removing an
// array element shifts the following elements left.
func (y *Node) RemoveKPath(kp kpath.KPath) error {
	if len(kp) == 0 {
		return fmt.Errorf("%w: empty path", kpath.ErrSyntax)
	}
	cur, err := y.resolve(kp.Parent())
	if err != nil {
		return err
	}
	last := kp.Last()
	switch last.Kind {
	case kpath.FieldEntry:
		if cur.Type != ObjectType {
			return notFound(kp, "object", cur.Type)
		}
		cur.Delete(last.Field)
	case kpath.ArrayEntry:
		if cur.Type != ArrayType {
			return notFound(kp, "array", cur.Type)
		}
		if last.Index < len(cur.Values) {
			cur.removeAt(last.Index)
		}
	}
	return nil
}

// GetKPath returns a copy of the node at kp below y. Any segment that does
// not resolve, the target included, yields ErrPathNotFound.
func (y *Node) GetKPath(kp kpath.KPath) (*Node, error) {
	res, err := y.resolve(kp)
	if err != nil {
		return nil, err
	}
	return res.Clone(), nil
}

// resolve navigates kp strictly, never creating anything.
func (y *Node) resolve(kp kpath.KPath) (*Node, error) {
	cur := y
	for i, seg := range kp {
		switch seg.Kind {
		case kpath.FieldEntry:
			if cur.Type != ObjectType {
				return nil, notFound(kp[:i+1], "object", cur.Type)
			}
			child := cur.Get(seg.Field)
			if child == nil {
				return nil, fmt.Errorf("%w: %q has no field %q", ErrPathNotFound, kp[:i].String(), seg.Field)
			}
			cur = child
		case kpath.ArrayEntry:
			if cur.Type != ArrayType {
				return nil, notFound(kp[:i+1], "array", cur.Type)
			}
			if seg.Index >= len(cur.Values) {
				return nil, fmt.Errorf("%w: %q index out of bounds (len %d)", ErrPathNotFound, kp[:i+1].String(), len(cur.Values))
			}
			cur = cur.Values[seg.Index]
		}
	}
	return cur, nil
}

func notFound(at kpath.KPath, want string, got Type) error {
	return fmt.Errorf("%w: %q expects %s, got %s", ErrPathNotFound, at.String(), want, got)
}
