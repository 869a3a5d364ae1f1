package lambda

import "github.com/pkg/errors"

// AlphaConvert renames the parameter of a. Unlike the renaming reduction
// performs internally, the caller picks the name, so the conversion
// fails with a *CollisionError when the name would change the meaning of
// the body.
func AlphaConvert(a Abstraction, name string) (Abstraction, error) {
	if name == a.Param {
		return a, nil
	}
	if FreeVariables(a.Body).Contains(name) {
		return Abstraction{}, &CollisionError{
			Message:    "new parameter occurs free in body",
			Collisions: []string{name},
		}
	}
	body, err := SubstituteChecked(a.Body, a.Param, Variable{Name: name})
	if err != nil {
		return Abstraction{}, err
	}
	return Abstraction{Param: name, Body: body}, nil
}

// IsRedex reports whether a can be beta-reduced at its root.
func (a Application) IsRedex() bool {
	_, ok := a.Fn.(Abstraction)
	return ok
}

// BetaReduce contracts a at its root, substituting the argument into the
// abstraction body. The function position must already be an
// Abstraction; use Step to reduce whatever redex a term exposes next.
func BetaReduce(a Application) (Term, error) {
	abs, ok := a.Fn.(Abstraction)
	if !ok {
		return nil, errors.Errorf("function position holds %T, not an abstraction", a.Fn)
	}
	return Substitute(abs.Body, abs.Param, a.Arg), nil
}

// EtaReduce unwraps a when it merely forwards its parameter: λx.(f x)
// becomes f, provided x does not occur free in f.
func EtaReduce(a Abstraction) (Term, error) {
	app, ok := a.Body.(Application)
	if !ok {
		return nil, errors.New("body is not an application")
	}
	arg, ok := app.Arg.(Variable)
	if !ok || arg.Name != a.Param {
		return nil, errors.New("body does not end with the parameter")
	}
	if FreeVariables(app.Fn).Contains(a.Param) {
		return nil, errors.Errorf("parameter %s occurs free in function position", a.Param)
	}
	return app.Fn, nil
}
