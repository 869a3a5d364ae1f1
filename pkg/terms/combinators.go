package terms

import "github.com/vito/lambda/pkg/lambda"

var (
	// Y is the fixed-point combinator: Y g reduces to g (Y g).
	Y = lambda.App(
		lambda.Var("g").ApplyTo(lambda.Var("x").ApplyTo(lambda.Var("x"))).Abstract("x"),
		lambda.Var("g").ApplyTo(lambda.Var("x").ApplyTo(lambda.Var("x"))).Abstract("x"),
	).Abstract("g")

	// S applies its first argument to its third and to the partial
	// application of its second to its third.
	S = lambda.Var("x").ApplyTo(
		lambda.Var("z"),
		lambda.Var("y").ApplyTo(lambda.Var("z")),
	).Abstract("x", "y", "z")

	// K keeps its first argument and discards its second.
	K = lambda.Var("x").Abstract("x", "y")

	// I is the identity.
	I = lambda.Var("x").Abstract("x")

	// B composes its first two arguments.
	B = lambda.Var("x").ApplyTo(lambda.Var("y").ApplyTo(lambda.Var("z"))).
		Abstract("x", "y", "z")

	// C swaps the argument order of a binary function.
	C = lambda.Var("x").ApplyTo(lambda.Var("z"), lambda.Var("y")).
		Abstract("x", "y", "z")

	// W duplicates its second argument.
	W = lambda.Var("x").ApplyTo(lambda.Var("y"), lambda.Var("y")).
		Abstract("x", "y")

	// Delta applies its argument to itself.
	Delta = lambda.Var("x").ApplyTo(lambda.Var("x")).Abstract("x")

	// Omega steps to itself forever; it has no normal form.
	Omega = Delta.ApplyTo(Delta)
)
