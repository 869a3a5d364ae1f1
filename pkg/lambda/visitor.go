package lambda

import (
	"fmt"
	"iter"
)

// Visitor computes a result of type R for each term variant. Handlers
// receive the variant with its children unvisited; a visitor chooses its
// own recursion through Accept, or none at all.
type Visitor[R any] interface {
	VisitVariable(Variable) R
	VisitAbstraction(Abstraction) R
	VisitApplication(Application) R
}

// Accept dispatches t to the handler matching its variant. The variant
// set is sealed, so new operations over terms are added by writing new
// Visitors rather than new variants.
func Accept[R any](t Term, v Visitor[R]) R {
	switch t := t.(type) {
	case Variable:
		return v.VisitVariable(t)
	case Abstraction:
		return v.VisitAbstraction(t)
	case Application:
		return v.VisitApplication(t)
	default:
		panic(fmt.Sprintf("lambda: unhandled term %T", t))
	}
}

// BottomUp adapts three functions into a Visitor that folds a term from
// the leaves up: each handler receives the already-computed results of
// its children.
type BottomUp[R any] struct {
	Variable    func(Variable) R
	Abstraction func(Abstraction, R) R
	Application func(Application, R, R) R
}

func (b BottomUp[R]) VisitVariable(v Variable) R {
	return b.Variable(v)
}

func (b BottomUp[R]) VisitAbstraction(a Abstraction) R {
	return b.Abstraction(a, Accept(a.Body, b))
}

func (b BottomUp[R]) VisitApplication(a Application) R {
	return b.Application(a, Accept(a.Fn, b), Accept(a.Arg, b))
}

// Walk visits t and its subterms in pre-order, function positions before
// arguments. fn returning false skips the children of the current term.
func Walk(t Term, fn func(Term) bool) {
	if !fn(t) {
		return
	}
	switch t := t.(type) {
	case Abstraction:
		Walk(t.Body, fn)
	case Application:
		Walk(t.Fn, fn)
		Walk(t.Arg, fn)
	}
}

// Subterms yields every subterm of t in post-order: children before
// parents, function positions before arguments, t itself last.
func Subterms(t Term) iter.Seq[Term] {
	return Accept(t, BottomUp[iter.Seq[Term]]{
		Variable: func(v Variable) iter.Seq[Term] {
			return func(yield func(Term) bool) {
				yield(v)
			}
		},
		Abstraction: func(a Abstraction, body iter.Seq[Term]) iter.Seq[Term] {
			return func(yield func(Term) bool) {
				for sub := range body {
					if !yield(sub) {
						return
					}
				}
				yield(a)
			}
		},
		Application: func(a Application, fn, arg iter.Seq[Term]) iter.Seq[Term] {
			return func(yield func(Term) bool) {
				for sub := range fn {
					if !yield(sub) {
						return
					}
				}
				for sub := range arg {
					if !yield(sub) {
						return
					}
				}
				yield(a)
			}
		},
	})
}
