package lambda

import "strings"

// Printer renders terms for reading, with minimal parentheses:
// application associates left, abstraction bodies extend as far right as
// possible, and runs of nested binders merge into one head, so
// λx.λy.(x y) prints as λx y.x y. The zero value prints λ heads.
type Printer struct {
	// ASCII replaces the λ head with a backslash.
	ASCII bool
}

// Render returns the pretty form of t. The canonical, fully
// parenthesized form remains available from t.String.
func (p Printer) Render(t Term) string {
	var sb strings.Builder
	p.render(&sb, t, false, false)
	return sb.String()
}

// fnPos marks the function side of an application, argPos the argument
// side. Abstractions parenthesize in either; applications only when they
// are themselves an argument.
func (p Printer) render(sb *strings.Builder, t Term, fnPos, argPos bool) {
	switch t := t.(type) {
	case Variable:
		sb.WriteString(t.Name)
	case Abstraction:
		wrap := fnPos || argPos
		if wrap {
			sb.WriteByte('(')
		}
		if p.ASCII {
			sb.WriteByte('\\')
		} else {
			sb.WriteString("λ")
		}
		sb.WriteString(t.Param)
		body := t.Body
		for {
			abs, ok := body.(Abstraction)
			if !ok {
				break
			}
			sb.WriteByte(' ')
			sb.WriteString(abs.Param)
			body = abs.Body
		}
		sb.WriteByte('.')
		p.render(sb, body, false, false)
		if wrap {
			sb.WriteByte(')')
		}
	case Application:
		if argPos {
			sb.WriteByte('(')
		}
		p.render(sb, t.Fn, true, false)
		sb.WriteByte(' ')
		p.render(sb, t.Arg, false, true)
		if argPos {
			sb.WriteByte(')')
		}
	}
}
