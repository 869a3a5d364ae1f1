package lambda

import (
	"context"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type SubstituteSuite struct{}

func TestSubstitute(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(SubstituteSuite{})
}

func (SubstituteSuite) TestSubstitute(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name        string
		term        Term
		replace     string
		replacement Term
		want        Term
	}{
		{
			name:        "replaces free occurrences",
			term:        App(Var("a"), Var("b")),
			replace:     "a",
			replacement: Abs("x", Var("x")),
			want:        App(Abs("x", Var("x")), Var("b")),
		},
		{
			name:        "absent name leaves term alone",
			term:        App(Var("a"), Var("b")),
			replace:     "c",
			replacement: Var("z"),
			want:        App(Var("a"), Var("b")),
		},
		{
			name:        "shadowing binder stops the walk",
			term:        Abs("x", Var("x")),
			replace:     "x",
			replacement: Var("z"),
			want:        Abs("x", Var("x")),
		},
		{
			name:        "unrelated binder descends",
			term:        Abs("x", Var("y")),
			replace:     "y",
			replacement: App(Var("a"), Var("b")),
			want:        Abs("x", App(Var("a"), Var("b"))),
		},
		{
			name:        "binder renamed to avoid capture",
			term:        Abs("x", App(Var("y"), Var("x"))),
			replace:     "y",
			replacement: Var("x"),
			want:        Abs("x1", App(Var("x"), Var("x1"))),
		},
		{
			name:        "fresh name skips every name in play",
			term:        Abs("x", App(App(Var("y"), Var("x")), Var("x1"))),
			replace:     "y",
			replacement: Var("x"),
			want:        Abs("x2", App(App(Var("x"), Var("x2")), Var("x1"))),
		},
		{
			name:        "renaming cascades through nested binders",
			term:        Abs("x", Abs("x1", Var("a"))),
			replace:     "a",
			replacement: Var("x"),
			want:        Abs("x1", Abs("x11", Var("x"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			got := Substitute(tt.term, tt.replace, tt.replacement)
			require.True(t, Equal(tt.want, got), "got %s, want %s", got, tt.want)

			// The same substitution always picks the same names.
			again := Substitute(tt.term, tt.replace, tt.replacement)
			require.True(t, Equal(got, again))
		})
	}
}

func (SubstituteSuite) TestSubstituteIdentity(ctx context.Context, t *testctx.T) {
	// Replacing a name with a variable of the same name leaves any term
	// structurally unchanged, whatever positions the name occupies.
	tests := []struct {
		name string
		term Term
	}{
		{
			name: "free at top level",
			term: App(Var("n"), Var("m")),
		},
		{
			name: "free under an unrelated binder",
			term: Abs("x", App(Var("n"), Var("x"))),
		},
		{
			name: "shadowed",
			term: Abs("n", Var("n")),
		},
		{
			name: "free and shadowed in one term",
			term: App(Var("n"), Abs("n", App(Var("n"), Var("m")))),
		},
		{
			name: "absent",
			term: Abs("x", Var("y")),
		},
		{
			name: "curried body",
			term: Curried([]string{"f", "x"},
				Apply(Var("n"), Var("f"), Var("x"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			got := Substitute(tt.term, "n", Var("n"))
			require.True(t, Equal(tt.term, got), "got %s, want %s", got, tt.term)
		})
	}
}

func (SubstituteSuite) TestSubstituteNeverCaptures(ctx context.Context, t *testctx.T) {
	// Replacing y with x under a binder for x must keep x free.
	got := Substitute(Abs("x", App(Var("y"), Var("x"))), "y", Var("x"))
	require.Equal(t, []string{"x"}, FreeVariables(got).ToSlice())
}

func (SubstituteSuite) TestSubstituteChecked(ctx context.Context, t *testctx.T) {
	t.Run("no collision", func(ctx context.Context, t *testctx.T) {
		got, err := SubstituteChecked(Abs("x", Var("y")), "y", Var("z"))
		require.NoError(t, err)
		require.True(t, Equal(Abs("x", Var("z")), got))
	})

	t.Run("shadowing binder stops the walk", func(ctx context.Context, t *testctx.T) {
		got, err := SubstituteChecked(Abs("a", Var("a")), "a", Var("b"))
		require.NoError(t, err)
		require.True(t, Equal(Abs("a", Var("a")), got))
	})

	t.Run("occurrence outside the binder is fine", func(ctx context.Context, t *testctx.T) {
		got, err := SubstituteChecked(App(Abs("b", Var("x")), Var("a")), "a", Var("b"))
		require.NoError(t, err)
		require.True(t, Equal(App(Abs("b", Var("x")), Var("b")), got))
	})

	t.Run("capture fails", func(ctx context.Context, t *testctx.T) {
		_, err := SubstituteChecked(Abs("b", App(Var("a"), Var("b"))), "a", Var("b"))
		require.Error(t, err)

		var collisionErr *CollisionError
		require.ErrorAs(t, err, &collisionErr)
		require.Equal(t, []string{"b"}, collisionErr.Collisions)
		require.Equal(t, "[collisions: b] replacement would be captured", err.Error())
	})

	t.Run("collisions are sorted", func(ctx context.Context, t *testctx.T) {
		_, err := SubstituteChecked(
			Abs("b", Abs("c", Var("a"))),
			"a",
			App(Var("c"), Var("b")),
		)
		var collisionErr *CollisionError
		require.ErrorAs(t, err, &collisionErr)
		require.Equal(t, []string{"b", "c"}, collisionErr.Collisions)
	})
}

func (SubstituteSuite) TestAlphaConvert(ctx context.Context, t *testctx.T) {
	t.Run("same name is a no-op", func(ctx context.Context, t *testctx.T) {
		abs := Abs("a", Var("a"))
		got, err := AlphaConvert(abs, "a")
		require.NoError(t, err)
		require.True(t, Equal(abs, got))
	})

	t.Run("renames the binder and its occurrences", func(ctx context.Context, t *testctx.T) {
		got, err := AlphaConvert(Abs("a", Abs("b", App(Var("a"), Var("b")))), "c")
		require.NoError(t, err)
		require.True(t, Equal(Abs("c", Abs("b", App(Var("c"), Var("b")))), got))
	})

	t.Run("shadowed occurrences stay put", func(ctx context.Context, t *testctx.T) {
		got, err := AlphaConvert(Abs("a", Abs("a", Var("a"))), "b")
		require.NoError(t, err)
		require.True(t, Equal(Abs("b", Abs("a", Var("a"))), got))
	})

	t.Run("inner shadowing binder keeps its scope", func(ctx context.Context, t *testctx.T) {
		term := Abs("a", App(Abs("a", App(Var("c"), Var("a"))), Var("a")))
		got, err := AlphaConvert(term, "b")
		require.NoError(t, err)
		want := Abs("b", App(Abs("a", App(Var("c"), Var("a"))), Var("b")))
		require.True(t, Equal(want, got))
	})

	t.Run("fails when the name is free in the body", func(ctx context.Context, t *testctx.T) {
		_, err := AlphaConvert(Abs("a", Var("b")), "b")
		var collisionErr *CollisionError
		require.ErrorAs(t, err, &collisionErr)
		require.Equal(t, []string{"b"}, collisionErr.Collisions)
	})

	t.Run("fails when an inner binder would capture", func(ctx context.Context, t *testctx.T) {
		_, err := AlphaConvert(Abs("a", Abs("b", App(Var("a"), Var("b")))), "b")
		var collisionErr *CollisionError
		require.ErrorAs(t, err, &collisionErr)
		require.Equal(t, []string{"b"}, collisionErr.Collisions)
	})
}

func (SubstituteSuite) TestEtaReduce(ctx context.Context, t *testctx.T) {
	t.Run("unwraps a forwarding abstraction", func(ctx context.Context, t *testctx.T) {
		got, err := EtaReduce(Abs("x", App(Var("f"), Var("x"))))
		require.NoError(t, err)
		require.True(t, Equal(Var("f"), got))
	})

	t.Run("function position may be compound", func(ctx context.Context, t *testctx.T) {
		got, err := EtaReduce(Abs("x", App(App(Var("g"), Var("y")), Var("x"))))
		require.NoError(t, err)
		require.True(t, Equal(App(Var("g"), Var("y")), got))
	})

	t.Run("fails when the parameter occurs in function position", func(ctx context.Context, t *testctx.T) {
		_, err := EtaReduce(Abs("x", App(Var("x"), Var("x"))))
		require.Error(t, err)
	})

	t.Run("fails when the body is not an application", func(ctx context.Context, t *testctx.T) {
		_, err := EtaReduce(Abs("x", Var("f")))
		require.Error(t, err)
	})

	t.Run("fails when the argument is not the parameter", func(ctx context.Context, t *testctx.T) {
		_, err := EtaReduce(Abs("x", App(Var("f"), Var("y"))))
		require.Error(t, err)
	})
}

func (SubstituteSuite) TestBetaReduce(ctx context.Context, t *testctx.T) {
	t.Run("contracts a redex", func(ctx context.Context, t *testctx.T) {
		app := App(Abs("x", Var("x")), Var("z"))
		require.True(t, app.IsRedex())

		got, err := BetaReduce(app)
		require.NoError(t, err)
		require.True(t, Equal(Var("z"), got))
	})

	t.Run("fails off a redex", func(ctx context.Context, t *testctx.T) {
		app := App(Var("f"), Var("a"))
		require.False(t, app.IsRedex())

		_, err := BetaReduce(app)
		require.Error(t, err)
	})
}
