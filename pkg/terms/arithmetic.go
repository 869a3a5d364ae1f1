package terms

import "github.com/vito/lambda/pkg/lambda"

var (
	// IsZero reduces to True on Number(0) and False on every other
	// Church numeral.
	IsZero = lambda.Var("n").ApplyTo(False.Abstract("x"), True).Abstract("n")

	// Successor adds one by applying f once more.
	Successor = lambda.Curried([]string{"n", "f", "x"},
		lambda.App(lambda.Var("f"),
			lambda.Var("n").ApplyTo(lambda.Var("f"), lambda.Var("x"))))

	// Predecessor subtracts one, bottoming out at zero.
	Predecessor = lambda.Curried([]string{"n", "f", "x"},
		lambda.Var("n").ApplyTo(
			lambda.Curried([]string{"g", "h"},
				lambda.App(lambda.Var("h"),
					lambda.App(lambda.Var("g"), lambda.Var("f")))),
			lambda.Abs("u", lambda.Var("x")),
			lambda.Abs("u", lambda.Var("u"))))

	// Add sums two Church numerals.
	Add = lambda.Curried([]string{"m", "n", "f", "x"},
		lambda.Var("m").ApplyTo(lambda.Var("f"),
			lambda.Var("n").ApplyTo(lambda.Var("f"), lambda.Var("x"))))

	// Subtract takes n from m, bottoming out at zero.
	Subtract = lambda.Curried([]string{"m", "n"},
		lambda.Var("n").ApplyTo(Predecessor, lambda.Var("m")))

	// Multiply composes the iteration of two Church numerals.
	Multiply = lambda.Curried([]string{"m", "n", "f"},
		lambda.App(lambda.Var("m"),
			lambda.App(lambda.Var("n"), lambda.Var("f"))))

	// Power raises b to e.
	Power = lambda.Curried([]string{"b", "e"},
		lambda.App(lambda.Var("e"), lambda.Var("b")))
)

// Number returns n as a Church numeral, λf x.f applied n times to x. It
// panics when n is negative.
func Number(n int) lambda.Abstraction {
	if n < 0 {
		panic("terms: Number needs a natural number")
	}
	var body lambda.Term = lambda.Var("x")
	for range n {
		body = lambda.App(lambda.Var("f"), body)
	}
	return lambda.Curried([]string{"f", "x"}, body)
}
