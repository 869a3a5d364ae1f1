package lambda

import "fmt"

// Term is an untyped lambda calculus term. Exactly three variants
// implement it: Variable, Abstraction, and Application. Terms are
// immutable values; operations that transform a term return a new one
// and freely share subterms with their input.
type Term interface {
	fmt.Stringer

	// term seals the variant set.
	term()
}

// Variable is a name standing alone.
type Variable struct {
	Name string
}

// Abstraction binds a parameter name over a body.
type Abstraction struct {
	Param string
	Body  Term
}

// Application applies a function term to an argument term.
type Application struct {
	Fn  Term
	Arg Term
}

func (Variable) term()    {}
func (Abstraction) term() {}
func (Application) term() {}

func (v Variable) String() string {
	return v.Name
}

func (a Abstraction) String() string {
	return fmt.Sprintf("(λ%s.%s)", a.Param, a.Body)
}

func (a Application) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn, a.Arg)
}

// Var constructs a Variable without validating the name. Use NewVar when
// the name comes from outside the program.
func Var(name string) Variable {
	return Variable{Name: name}
}

// NewVar constructs a Variable, rejecting names outside the identifier
// grammar with a *NameError.
func NewVar(name string) (Variable, error) {
	if err := CheckName(name); err != nil {
		return Variable{}, err
	}
	return Variable{Name: name}, nil
}

// Abs constructs an Abstraction binding param over body.
func Abs(param string, body Term) Abstraction {
	return Abstraction{Param: param, Body: body}
}

// App constructs an Application of fn to arg.
func App(fn, arg Term) Application {
	return Application{Fn: fn, Arg: arg}
}

// Apply folds fn and args into left-nested Applications, so
// Apply(f, a, b, c) is (((f a) b) c). It panics when args is empty.
func Apply(fn Term, args ...Term) Application {
	if len(args) == 0 {
		panic("lambda: Apply needs at least one argument")
	}
	app := App(fn, args[0])
	for _, arg := range args[1:] {
		app = App(app, arg)
	}
	return app
}

// Curried folds params and body into right-nested Abstractions, so
// Curried([]string{"x", "y"}, b) is λx.λy.b. It panics when params is
// empty.
func Curried(params []string, body Term) Abstraction {
	if len(params) == 0 {
		panic("lambda: Curried needs at least one parameter")
	}
	abs := Abs(params[len(params)-1], body)
	for i := len(params) - 2; i >= 0; i-- {
		abs = Abs(params[i], abs)
	}
	return abs
}

// ApplyTo applies v to the given arguments, left to right.
func (v Variable) ApplyTo(args ...Term) Application {
	return Apply(v, args...)
}

// Abstract wraps v in Abstractions binding params outermost first.
func (v Variable) Abstract(params ...string) Abstraction {
	return Curried(params, v)
}

// ApplyTo applies a to the given arguments, left to right.
func (a Abstraction) ApplyTo(args ...Term) Application {
	return Apply(a, args...)
}

// Abstract wraps a in Abstractions binding params outermost first.
func (a Abstraction) Abstract(params ...string) Abstraction {
	return Curried(params, a)
}

// ApplyTo applies a to the given arguments, left to right.
func (a Application) ApplyTo(args ...Term) Application {
	return Apply(a, args...)
}

// Abstract wraps a in Abstractions binding params outermost first.
func (a Application) Abstract(params ...string) Abstraction {
	return Curried(params, a)
}
