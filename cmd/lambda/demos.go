package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/vito/lambda/pkg/ioctx"
	"github.com/vito/lambda/pkg/lambda"
	"github.com/vito/lambda/pkg/terms"
	"golang.org/x/sync/errgroup"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	termStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	finalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	stuckStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// demo pairs a showpiece term with the name it is selected by.
type demo struct {
	Name        string
	Description string
	Term        lambda.Term
}

var demos = []demo{
	{
		Name:        "identity",
		Description: "I applied to a variable",
		Term:        terms.I.ApplyTo(lambda.Var("a")),
	},
	{
		Name:        "const",
		Description: "K keeps its first argument",
		Term:        terms.K.ApplyTo(lambda.Var("a"), lambda.Var("b")),
	},
	{
		Name:        "s-k-k",
		Description: "S K K behaves as the identity",
		Term:        terms.S.ApplyTo(terms.K, terms.K, lambda.Var("a")),
	},
	{
		Name:        "not-true",
		Description: "negation of a Church boolean",
		Term:        terms.Not.ApplyTo(terms.True),
	},
	{
		Name:        "and-true-false",
		Description: "conjunction of Church booleans",
		Term:        terms.And.ApplyTo(terms.True, terms.False),
	},
	{
		Name:        "add-two-three",
		Description: "Church numeral addition",
		Term:        terms.Add.ApplyTo(terms.Number(2), terms.Number(3)),
	},
	{
		Name:        "mul-two-three",
		Description: "Church numeral multiplication",
		Term:        terms.Multiply.ApplyTo(terms.Number(2), terms.Number(3)),
	},
	{
		Name:        "pred-three",
		Description: "Church numeral predecessor",
		Term:        terms.Predecessor.ApplyTo(terms.Number(3)),
	},
	{
		Name:        "pair-first",
		Description: "selecting the first element of a pair",
		Term:        terms.First.ApplyTo(terms.Pair.ApplyTo(lambda.Var("a"), lambda.Var("b"))),
	},
	{
		Name:        "y-const",
		Description: "the fixed point of a constant function",
		Term:        terms.Y.ApplyTo(terms.K.ApplyTo(lambda.Var("a"))),
	},
	{
		Name:        "shadowed-plus",
		Description: "shadowed binders renamed away during reduction",
		Term: lambda.Apply(
			lambda.Abs("y",
				lambda.Apply(
					lambda.Curried([]string{"x", "y"},
						lambda.Var("+").ApplyTo(lambda.Var("x"), lambda.Var("y"))),
					lambda.Var("y"),
					lambda.Var("3"))),
			lambda.Var("4")),
	},
	{
		Name:        "omega",
		Description: "the looping combinator, stopped only by the step cap",
		Term:        terms.Omega,
	},
}

// demoByName resolves a user-supplied name, tolerating camelCase and
// snake_case spellings.
func demoByName(name string) (demo, error) {
	key := strcase.ToKebab(name)
	for _, d := range demos {
		if d.Name == key {
			return d, nil
		}
	}
	return demo{}, errors.Errorf("unknown demo %q", name)
}

// runDemos reduces the named demos, or all of them when names is empty.
// Terms reduce in parallel; traces print in order.
func runDemos(ctx context.Context, cfg Config, names []string) error {
	selected := demos
	if len(names) > 0 {
		selected = make([]demo, len(names))
		for i, name := range names {
			d, err := demoByName(name)
			if err != nil {
				return err
			}
			selected[i] = d
		}
	}

	outputs := make([]bytes.Buffer, len(selected))
	eg, gctx := errgroup.WithContext(ctx)
	for i, d := range selected {
		eg.Go(func() error {
			return traceDemo(gctx, cfg, d, &outputs[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := ioctx.StdoutFromContext(ctx)
	for i := range outputs {
		if i > 0 && !cfg.Quiet {
			fmt.Fprintln(out)
		}
		if _, err := outputs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

// traceDemo writes the reduction of d.Term to w, one line per step.
func traceDemo(ctx context.Context, cfg Config, d demo, w io.Writer) error {
	printer := lambda.Printer{ASCII: cfg.ASCII}

	if !cfg.Quiet {
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render(d.Name), descStyle.Render(d.Description))
	}

	slog.Debug("reducing demo", "demo", d.Name, "maxSteps", cfg.MaxSteps)

	reduction := lambda.NewReduction(d.Term)
	yields := 0
	for term := range reduction.Seq() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(w, "%s %s\n",
				stepStyle.Render(fmt.Sprintf("%4d.", yields)),
				termStyle.Render(printer.Render(term)))
		}
		yields++
		if cfg.MaxSteps > 0 && yields > cfg.MaxSteps {
			break
		}
	}
	steps := yields - 1

	final := reduction.Current()
	rendered := termStyle.Render(printer.Render(final))
	switch {
	case cfg.Quiet && lambda.IsNormal(final):
		fmt.Fprintf(w, "%s %s %s\n", nameStyle.Render(d.Name), finalStyle.Render("=>"), rendered)
	case cfg.Quiet:
		fmt.Fprintf(w, "%s %s %s\n", nameStyle.Render(d.Name), stuckStyle.Render("=/=>"), rendered)
	case lambda.IsNormal(final):
		fmt.Fprintf(w, "%s %s\n",
			finalStyle.Render(fmt.Sprintf("normal form in %d steps:", steps)), rendered)
	default:
		fmt.Fprintf(w, "%s %s\n",
			stuckStyle.Render(fmt.Sprintf("no normal form within %d steps:", steps)), rendered)
	}

	if cfg.Verbose {
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(final))
	}
	return nil
}

// listDemos prints the demo catalog.
func listDemos(ctx context.Context) error {
	out := ioctx.StdoutFromContext(ctx)
	width := 0
	for _, d := range demos {
		width = max(width, len(d.Name))
	}
	for _, d := range demos {
		fmt.Fprintf(out, "%s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", width, d.Name)),
			descStyle.Render(d.Description))
	}
	return nil
}
