package terms

import "github.com/vito/lambda/pkg/lambda"

var (
	// True selects the first of two arguments.
	True = lambda.Curried([]string{"x", "y"}, lambda.Var("x"))

	// False selects the second of two arguments.
	False = lambda.Curried([]string{"x", "y"}, lambda.Var("y"))

	// And is conjunction over Church booleans.
	And = lambda.Curried([]string{"p", "q"},
		lambda.Var("p").ApplyTo(lambda.Var("q"), lambda.Var("p")))

	// Or is disjunction over Church booleans.
	Or = lambda.Curried([]string{"p", "q"},
		lambda.Var("p").ApplyTo(lambda.Var("p"), lambda.Var("q")))

	// Not negates a Church boolean.
	Not = lambda.Abs("p", lambda.Var("p").ApplyTo(False, True))

	// IfThenElse applies a Church boolean to two branches. It is pure
	// sugar: a boolean already selects between its arguments.
	IfThenElse = lambda.Curried([]string{"p", "a", "b"},
		lambda.Var("p").ApplyTo(lambda.Var("a"), lambda.Var("b")))
)
