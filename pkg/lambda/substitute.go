package lambda

import "slices"

// MaxDepth bounds recursion over term structure during substitution and
// reduction. Operations that descend past it panic with a *DepthError.
const MaxDepth = 1 << 20

func deeper(depth int) int {
	if depth >= MaxDepth {
		panic(&DepthError{Depth: depth})
	}
	return depth + 1
}

// Substitute returns t with every free occurrence of name replaced by
// replacement. Binders in t that would capture a free variable of
// replacement are renamed first, taking the first of param1, param2, …
// not otherwise in play, so the result never captures and is always the
// same for the same inputs.
func Substitute(t Term, name string, replacement Term) Term {
	return substitute(t, name, replacement, FreeVariables(replacement), 0)
}

func substitute(t Term, name string, replacement Term, replFree NameSet, depth int) Term {
	depth = deeper(depth)
	switch t := t.(type) {
	case Variable:
		if t.Name == name {
			return replacement
		}
		return t
	case Application:
		return Application{
			Fn:  substitute(t.Fn, name, replacement, replFree, depth),
			Arg: substitute(t.Arg, name, replacement, replFree, depth),
		}
	case Abstraction:
		switch {
		case t.Param == name:
			// name is shadowed below this binder
			return t
		case !replFree.Contains(t.Param):
			return Abstraction{
				Param: t.Param,
				Body:  substitute(t.Body, name, replacement, replFree, depth),
			}
		default:
			// the binder would capture a free variable of the
			// replacement, so rename it out of the way first
			avoid := FreeVariables(t.Body).Union(replFree)
			avoid.Add(name)
			fresh := FreshName(t.Param, avoid)
			renamed := substitute(t.Body, t.Param, Variable{Name: fresh}, NewNameSet(fresh), depth)
			return Abstraction{
				Param: fresh,
				Body:  substitute(renamed, name, replacement, replFree, depth),
			}
		}
	default:
		return t
	}
}

// SubstituteChecked is Substitute without renaming: when a free variable
// of replacement would be captured by a binder in t, it fails with a
// *CollisionError naming the variables that collided.
func SubstituteChecked(t Term, name string, replacement Term) (Term, error) {
	sub := &checkedSubstitution{
		name:  name,
		value: replacement,
		free:  FreeVariables(replacement),
		bound: map[string]int{},
	}
	return sub.apply(t, 0)
}

type checkedSubstitution struct {
	name  string
	value Term
	free  NameSet
	bound map[string]int
}

func (s *checkedSubstitution) apply(t Term, depth int) (Term, error) {
	depth = deeper(depth)
	switch t := t.(type) {
	case Variable:
		if t.Name != s.name {
			return t, nil
		}
		var collisions []string
		for name := range s.free {
			if s.bound[name] > 0 {
				collisions = append(collisions, name)
			}
		}
		if len(collisions) > 0 {
			slices.Sort(collisions)
			return nil, &CollisionError{
				Message:    "replacement would be captured",
				Collisions: collisions,
			}
		}
		return s.value, nil
	case Abstraction:
		if t.Param == s.name {
			return t, nil
		}
		s.bound[t.Param]++
		body, err := s.apply(t.Body, depth)
		s.bound[t.Param]--
		if err != nil {
			return nil, err
		}
		return Abstraction{Param: t.Param, Body: body}, nil
	case Application:
		fn, err := s.apply(t.Fn, depth)
		if err != nil {
			return nil, err
		}
		arg, err := s.apply(t.Arg, depth)
		if err != nil {
			return nil, err
		}
		return Application{Fn: fn, Arg: arg}, nil
	default:
		return t, nil
	}
}
