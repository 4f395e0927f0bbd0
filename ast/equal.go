package ast

import (
	"reflect"

	"github.com/sqlc-dev/obsql/token"
)

var (
	positionType = reflect.TypeOf(token.Position{})
	nodeType     = reflect.TypeOf((*Node)(nil)).Elem()
)

// Equal reports whether a and b are structurally equal. Source positions
// are ignored at every level; nil and empty slices compare equal.
func Equal(a, b Node) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		if a.Type() == positionType {
			return true
		}
		for i := 0; i < a.NumField(); i++ {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return a.Equal(b)
}

// Children returns the direct child nodes of n in field order.
func Children(n Node) []Node {
	v := reflect.ValueOf(n)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil
	}
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return nil
	}
	var out []Node
	for i := 0; i < v.NumField(); i++ {
		out = collectNodes(out, v.Field(i))
	}
	return out
}

func collectNodes(out []Node, v reflect.Value) []Node {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return out
		}
		return collectNodes(out, v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			return out
		}
		if v.Type().Implements(nodeType) {
			return append(out, v.Interface().(Node))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			out = collectNodes(out, v.Index(i))
		}
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first order. It calls
// f(node) for each node; if f returns false, the children of that node
// are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
