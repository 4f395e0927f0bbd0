package parser

import "github.com/sqlc-dev/obsql/ast"

// attachSuffix places the trailing ORDER BY, LIMIT and locking clause of a
// query. It is the only place the parser changes a subtree after building
// it.
//
// When the body is a single SELECT, parenthesized or not, the suffix fills
// in the clauses that SELECT left unset; the SELECT's own clauses win. For
// any other body the suffix stays on the Query. When the body is a set
// operation whose rightmost operand is a bare SELECT, that operand's
// clauses apply to the whole operation, so they are moved to the Query and
// cleared on the operand.
func attachSuffix(q *ast.Query, s querySuffix) {
	switch body := q.Body.(type) {
	case *ast.QuerySpecification:
		foldInto(body, s)
		return
	case *ast.TableSubquery:
		if spec := unwrapSpecification(body); spec != nil {
			q.Body = spec
			foldInto(spec, s)
			return
		}
	case ast.SetOperation:
		promoteRightmost(body, &s)
	}
	q.OrderBy, q.Limit, q.Lock = s.orderBy, s.limit, s.lock
}

func foldInto(spec *ast.QuerySpecification, s querySuffix) {
	if spec.OrderBy == nil {
		spec.OrderBy = s.orderBy
	}
	if spec.Limit == nil {
		spec.Limit = s.limit
	}
	if spec.Lock == nil {
		spec.Lock = s.lock
	}
}

// unwrapSpecification returns the SELECT inside (SELECT ...) when nothing
// else is attached to the inner query.
func unwrapSpecification(ts *ast.TableSubquery) *ast.QuerySpecification {
	inner := ts.Query
	if inner == nil || inner.With != nil || inner.OrderBy != nil || inner.Limit != nil || inner.Lock != nil {
		return nil
	}
	spec, _ := inner.Body.(*ast.QuerySpecification)
	return spec
}

func rightmostOperand(op ast.SetOperation) ast.QueryBody {
	_, right := op.Operands()
	for {
		next, ok := right.(ast.SetOperation)
		if !ok {
			return right
		}
		_, right = next.Operands()
	}
}

func promoteRightmost(op ast.SetOperation, s *querySuffix) {
	spec, ok := rightmostOperand(op).(*ast.QuerySpecification)
	if !ok {
		return
	}
	if s.orderBy == nil {
		s.orderBy = spec.OrderBy
	}
	if s.limit == nil {
		s.limit = spec.Limit
	}
	if s.lock == nil {
		s.lock = spec.Lock
	}
	spec.OrderBy, spec.Limit, spec.Lock = nil, nil, nil
}
