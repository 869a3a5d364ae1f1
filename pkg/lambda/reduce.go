package lambda

import (
	"iter"
	"log/slog"
)

// Step performs one normal-order beta reduction, contracting the
// leftmost-outermost redex. The second result reports whether a redex
// was found; when it is false, t is in beta normal form and is returned
// unchanged.
func Step(t Term) (Term, bool) {
	return step(t, 0)
}

func step(t Term, depth int) (Term, bool) {
	depth = deeper(depth)
	switch t := t.(type) {
	case Variable:
		return t, false
	case Abstraction:
		if body, ok := step(t.Body, depth); ok {
			return Abstraction{Param: t.Param, Body: body}, true
		}
		return t, false
	case Application:
		if abs, ok := t.Fn.(Abstraction); ok {
			return Substitute(abs.Body, abs.Param, t.Arg), true
		}
		if fn, ok := step(t.Fn, depth); ok {
			return Application{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := step(t.Arg, depth); ok {
			return Application{Fn: t.Fn, Arg: arg}, true
		}
		return t, false
	default:
		return t, false
	}
}

// IsNormal reports whether t contains no redex.
func IsNormal(t Term) bool {
	return isNormal(t, 0)
}

func isNormal(t Term, depth int) bool {
	depth = deeper(depth)
	switch t := t.(type) {
	case Abstraction:
		return isNormal(t.Body, depth)
	case Application:
		return !t.IsRedex() && isNormal(t.Fn, depth) && isNormal(t.Arg, depth)
	default:
		return true
	}
}

// Reduction is a resumable normal-order reduction. Its only state is the
// term it is paused at, so walking away and coming back later resumes
// exactly where it stopped, and dropping it loses nothing but that term.
type Reduction struct {
	current Term
	done    bool
}

// NewReduction starts a reduction at t.
func NewReduction(t Term) *Reduction {
	return &Reduction{current: t}
}

// Current returns the term the reduction is paused at.
func (r *Reduction) Current() Term {
	return r.current
}

// Next advances by one beta step and returns the new current term. It
// returns false once the current term is in normal form, after which the
// reduction stays put.
func (r *Reduction) Next() (Term, bool) {
	if r.done {
		return r.current, false
	}
	next, ok := Step(r.current)
	if !ok {
		r.done = true
		return r.current, false
	}
	r.current = next
	return next, true
}

// Seq yields the current term, then every successive reduct. Each pull
// performs at most one beta step, and the sequence is finite exactly
// when the term has a normal form. Breaking out leaves the Reduction
// paused at the last yielded term.
func (r *Reduction) Seq() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		if !yield(r.current) {
			return
		}
		for {
			next, ok := r.Next()
			if !ok {
				return
			}
			if !yield(next) {
				return
			}
		}
	}
}

// Reduce yields t and then each of its normal-order reducts, lazily.
func Reduce(t Term) iter.Seq[Term] {
	return NewReduction(t).Seq()
}

// Normalize drives t to beta normal form, discarding intermediates. It
// does not return for terms without a normal form; callers that need a
// ceiling should pull from Reduce with their own cap.
func Normalize(t Term) Term {
	steps := 0
	current := t
	for {
		next, ok := Step(current)
		if !ok {
			slog.Debug("reached beta normal form", "steps", steps)
			return current
		}
		current = next
		steps++
	}
}
