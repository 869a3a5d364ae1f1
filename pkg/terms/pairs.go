package terms

import "github.com/vito/lambda/pkg/lambda"

var (
	// Pair holds two terms and hands both to a selector.
	Pair = lambda.Curried([]string{"x", "y", "f"},
		lambda.Var("f").ApplyTo(lambda.Var("x"), lambda.Var("y")))

	// First extracts the first element of a Pair.
	First = lambda.Abs("p", lambda.App(lambda.Var("p"), True))

	// Second extracts the second element of a Pair.
	Second = lambda.Abs("p", lambda.App(lambda.Var("p"), False))

	// Nil terminates a chain of Pairs.
	Nil = lambda.Abs("x", True)

	// Null reduces to True exactly on Nil.
	Null = lambda.Abs("p",
		lambda.App(lambda.Var("p"),
			lambda.Curried([]string{"x", "y"}, False)))
)
