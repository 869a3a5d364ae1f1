package lambda

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// NameSet is a set of variable names.
type NameSet map[string]bool

// NewNameSet creates a NameSet holding the given names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Union returns a new set holding the names of both sets.
func (s NameSet) Union(other NameSet) NameSet {
	result := make(NameSet, len(s)+len(other))
	for name := range s {
		result[name] = true
	}
	for name := range other {
		result[name] = true
	}
	return result
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	return s[name]
}

// Add inserts name into the set.
func (s NameSet) Add(name string) {
	s[name] = true
}

// Remove deletes name from the set.
func (s NameSet) Remove(name string) {
	delete(s, name)
}

// ToSlice returns the names in sorted order.
func (s NameSet) ToSlice() []string {
	return slices.Sorted(maps.Keys(s))
}

// reservedRunes can never appear in a variable name. Parentheses, dots
// and lambdas would make renderings ambiguous; backslash is excluded so
// the ASCII rendering stays unambiguous too.
const reservedRunes = `().λ\`

// CheckName reports whether name fits the identifier grammar shared by
// NewVar and FreshName: non-empty, no reserved runes, no whitespace.
func CheckName(name string) error {
	if name == "" {
		return &NameError{Name: name, Reason: "name is empty"}
	}
	for _, r := range name {
		if strings.ContainsRune(reservedRunes, r) || unicode.IsSpace(r) {
			return &NameError{Name: name, Reason: fmt.Sprintf("name contains %q", r)}
		}
	}
	return nil
}

// FreshName returns a name derived from base that is not in avoid: base
// itself when it is free, otherwise base1, base2, and so on in order.
// Taking the first free candidate keeps renaming deterministic, so two
// reductions of the same term produce structurally equal results.
func FreshName(base string, avoid NameSet) string {
	if !avoid.Contains(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
}

// FreeVariables returns the set of names with at least one free
// occurrence in t. It walks the term with an explicit stack, so terms of
// any depth are safe.
func FreeVariables(t Term) NameSet {
	free := NewNameSet()
	bound := map[string]int{}

	type frame struct {
		t     Term
		leave string
		pop   bool
	}
	stack := []frame{{t: t}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.pop {
			bound[top.leave]--
			continue
		}
		switch t := top.t.(type) {
		case Variable:
			if bound[t.Name] == 0 {
				free.Add(t.Name)
			}
		case Abstraction:
			bound[t.Param]++
			stack = append(stack, frame{leave: t.Param, pop: true}, frame{t: t.Body})
		case Application:
			stack = append(stack, frame{t: t.Arg}, frame{t: t.Fn})
		}
	}
	return free
}

// BoundVariables returns the set of names bound by an Abstraction
// anywhere in t, whether or not the binder is ever referenced.
func BoundVariables(t Term) NameSet {
	bound := NewNameSet()
	Walk(t, func(sub Term) bool {
		if abs, ok := sub.(Abstraction); ok {
			bound.Add(abs.Param)
		}
		return true
	})
	return bound
}

// IsCombinator reports whether t is closed, with no free variables.
func IsCombinator(t Term) bool {
	return len(FreeVariables(t)) == 0
}
