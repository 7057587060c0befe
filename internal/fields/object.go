package fields

import "github.com/chaisql/firevalue/internal/sortedmap"

// ObjectValue is an immutable map from string to field value, ordered by
// raw key comparison. It is backed by a persistent treap so that
// structural operations (Set/Delete) only reallocate nodes on the path to
// the touched key.
type ObjectValue struct {
	m *sortedmap.SortedMap[Value]
}

// EmptyObject is the shared empty Object.
var EmptyObject = ObjectValue{m: sortedmap.Empty[Value]()}

// NewObject builds an Object holding every entry of fieldsMap. The result
// is ordered by key, whatever the map's iteration order.
func NewObject(fieldsMap map[string]Value) ObjectValue {
	v := EmptyObject
	for k, val := range fieldsMap {
		v = v.Set([]string{k}, val)
	}
	return v
}

func (ObjectValue) TypeOrder() TypeOrder { return TypeOrderObject }

func (v ObjectValue) Len() int { return v.m.Len() }

// InorderFields visits every top-level field in ascending key order. fn
// returning false stops the traversal early.
func (v ObjectValue) InorderFields(fn func(key string, val Value) bool) {
	v.m.InorderTraversal(fn)
}

func (v ObjectValue) Value(opts *Options) any {
	out := make(map[string]any, v.m.Len())
	v.m.InorderTraversal(func(k string, val Value) bool {
		out[k] = val.Value(opts)
		return true
	})
	return out
}

func (v ObjectValue) Equals(other Value) bool {
	o, ok := other.(ObjectValue)
	if !ok || v.m.Len() != o.m.Len() {
		return false
	}
	it1, it2 := v.m.Iterator(), o.m.Iterator()
	for it1.HasNext() && it2.HasNext() {
		k1, val1 := it1.Next()
		k2, val2 := it2.Next()
		if k1 != k2 || !val1.Equals(val2) {
			return false
		}
	}
	return true
}

// Compare iterates both maps in key order in lockstep. A key mismatch
// charges the lower-key side's value cost (computed against the budget
// remaining after the key comparison itself) and stops; a value mismatch
// at equal keys stops with the bytes consumed so far. Exhausting one side
// first makes the side with leftover entries the greater one.
func (v ObjectValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(ObjectValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}

	initial := bytesRemaining
	budget := bytesRemaining

	it1, it2 := v.m.Iterator(), o.m.Iterator()
	have1, have2 := it1.HasNext(), it2.HasNext()
	var k1, k2 string
	var val1, val2 Value
	if have1 {
		k1, val1 = it1.Next()
	}
	if have2 {
		k2, val2 = it2.Next()
	}

	for have1 && have2 && budget > 0 {
		keyCmp := stringCompare(budget, NewString(k1), NewString(k2))
		if keyCmp.Bytes > budget {
			budget = 0
		} else {
			budget -= keyCmp.Bytes
		}

		if keyCmp.Cmp != 0 {
			loserVal := val1
			if keyCmp.Cmp > 0 {
				loserVal = val2
			}
			cost := loserVal.TruncatedSize(budget)
			if cost > budget {
				budget = 0
			} else {
				budget -= cost
			}
			return SizedComparison{Cmp: keyCmp.Cmp, Bytes: initial - budget}
		}

		valCmp := val1.Compare(val2, budget)
		if valCmp.Bytes > budget {
			budget = 0
		} else {
			budget -= valCmp.Bytes
		}
		if valCmp.Cmp != 0 {
			return SizedComparison{Cmp: valCmp.Cmp, Bytes: initial - budget}
		}

		have1, have2 = it1.HasNext(), it2.HasNext()
		if have1 {
			k1, val1 = it1.Next()
		}
		if have2 {
			k2, val2 = it2.Next()
		}
	}

	if have1 && have2 {
		// budget ran out before the walk could settle either side
		return SizedComparison{Cmp: 0, Bytes: initial - budget}
	}

	switch {
	case have1 && !have2:
		return SizedComparison{Cmp: 1, Bytes: initial - budget}
	case !have1 && have2:
		return SizedComparison{Cmp: -1, Bytes: initial - budget}
	default:
		return SizedComparison{Cmp: 0, Bytes: initial - budget}
	}
}

func (v ObjectValue) TruncatedSize(bytesRemaining uint) uint {
	var total uint
	v.m.InorderTraversal(func(k string, val Value) bool {
		if bytesRemaining == 0 {
			return false
		}
		_, keyBytes := NewString(k).table().Truncate(int(bytesRemaining))
		kc := uint(keyBytes)
		if kc > bytesRemaining {
			kc = bytesRemaining
		}
		total += kc
		bytesRemaining -= kc
		if bytesRemaining == 0 {
			return false
		}
		vc := val.TruncatedSize(bytesRemaining)
		if vc > bytesRemaining {
			vc = bytesRemaining
		}
		total += vc
		bytesRemaining -= vc
		return bytesRemaining > 0
	})
	return total
}

func (v ObjectValue) String() string {
	s := "{"
	first := true
	v.m.InorderTraversal(func(k string, val Value) bool {
		if !first {
			s += ", "
		}
		first = false
		s += k + ": " + val.String()
		return true
	})
	return s + "}"
}

// Field walks path, returning the value at the end of it and whether it
// was found. Any non-Object intermediate along the path makes the field
// absent.
func (v ObjectValue) Field(path []string) (Value, bool) {
	if len(path) == 0 {
		panic(emptyPathPanic("Field"))
	}
	val, ok := v.m.Get(path[0])
	if !ok {
		return nil, false
	}
	if len(path) == 1 {
		return val, true
	}
	child, ok := val.(ObjectValue)
	if !ok {
		return nil, false
	}
	return child.Field(path[1:])
}

// Set returns a new Object with value inserted at path. Intermediate
// non-Object children are replaced by fresh empty objects before
// recursing; the receiver is never mutated.
func (v ObjectValue) Set(path []string, value Value) ObjectValue {
	if len(path) == 0 {
		panic(emptyPathPanic("Set"))
	}
	if len(path) == 1 {
		return ObjectValue{m: v.m.Insert(path[0], value)}
	}

	child, ok := v.m.Get(path[0])
	childObj, isObj := child.(ObjectValue)
	if !ok || !isObj {
		childObj = EmptyObject
	}
	updated := childObj.Set(path[1:], value)
	return ObjectValue{m: v.m.Insert(path[0], updated)}
}

// Delete returns a new Object with the field at path removed. If any
// intermediate segment does not resolve to an Object, v is returned
// unchanged.
func (v ObjectValue) Delete(path []string) ObjectValue {
	if len(path) == 0 {
		panic(emptyPathPanic("Delete"))
	}
	if len(path) == 1 {
		return ObjectValue{m: v.m.Remove(path[0])}
	}

	child, ok := v.m.Get(path[0])
	if !ok {
		return v
	}
	childObj, ok := child.(ObjectValue)
	if !ok {
		return v
	}
	updated := childObj.Delete(path[1:])
	return ObjectValue{m: v.m.Insert(path[0], updated)}
}
