package mother

import (
	"fmt"
	"slices"

	"github.com/signadot/mother/debug"
	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/ir"
	"github.com/signadot/mother/ir/kpath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// SetWhere sets path, relative to the first element of the array at
// arrayPath for which predicate holds, to v. An empty path replaces the
// element itself.
//
// predicate is an expr-lang boolean expression. The fields of an object
// element are variables; it is the element and index its position.
func (m *Mother) SetWhere(arrayPath, predicate, path string, v any) error {
	akp, arr, err := m.array(arrayPath)
	if err != nil {
		return err
	}
	matches, err := matching(arr, predicate, true)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: no element of %q matches %q", ErrPathNotFound, akp.String(), predicate)
	}
	kp := akp.Append(kpath.Index(matches[0]))
	if path != "" {
		rel, err := kpath.Parse(path)
		if err != nil {
			return err
		}
		kp = kp.Append(rel...)
	}
	return m.setKPath(kp, v)
}

// RemoveWhere removes every element of the array at arrayPath for which
// predicate holds and returns how many were removed.
func (m *Mother) RemoveWhere(arrayPath, predicate string) (int, error) {
	akp, arr, err := m.array(arrayPath)
	if err != nil {
		return 0, err
	}
	matches, err := matching(arr, predicate, false)
	if err != nil {
		return 0, err
	}
	for _, i := range slices.Backward(matches) {
		if err := m.doc.RemoveKPath(akp.Append(kpath.Index(i))); err != nil {
			return 0, err
		}
	}
	if debug.Mutate() {
		debug.Logf("removed %d elements of %s\n", len(matches), akp)
	}
	return len(matches), nil
}

func (m *Mother) array(path string) (kpath.KPath, *ir.Node, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, nil, err
	}
	arr, err := m.doc.GetKPath(kp)
	if err != nil {
		return nil, nil, err
	}
	if arr.Type != ir.ArrayType {
		return nil, nil, fmt.Errorf("%w: %q expects array, got %s", ErrTypeMismatch, kp.String(), arr.Type)
	}
	return kp, arr, nil
}

// matching returns the indices of the elements of arr satisfying predicate,
// stopping at the first if first is set.
func matching(arr *ir.Node, predicate string, first bool) ([]int, error) {
	prg, err := expr.Compile(predicate, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPredicate, err)
	}
	res := []int{}
	for i, elt := range arr.Values {
		ok, err := holds(prg, elt, i)
		if err != nil {
			return nil, fmt.Errorf("%w: %q on element %d: %w", ErrPredicate, predicate, i, err)
		}
		if debug.Where() {
			debug.Logf("%q on [%d] %v: %t\n", predicate, i, elt, ok)
		}
		if !ok {
			continue
		}
		res = append(res, i)
		if first {
			break
		}
	}
	return res, nil
}

func holds(prg *vm.Program, elt *ir.Node, i int) (bool, error) {
	it := encode.ToAny(elt)
	env := map[string]any{}
	if obj, ok := it.(map[string]any); ok {
		for k, v := range obj {
			env[k] = v
		}
	}
	env["it"] = it
	env["index"] = i
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("result is %T, not bool", res)
	}
	return b, nil
}
