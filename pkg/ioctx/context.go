package ioctx

import (
	"context"
	"io"
)

type stdoutKey struct{}
type stderrKey struct{}

// StdoutToContext returns a child context carrying w as its standard
// output stream.
func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// StdoutFromContext returns the context's standard output. Contexts with
// no output attached write to io.Discard.
func StdoutFromContext(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w
	}
	return io.Discard
}

// StderrToContext returns a child context carrying w as its standard
// error stream.
func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey{}, w)
}

// StderrFromContext returns the context's standard error. Contexts with
// no stream attached write to io.Discard.
func StderrFromContext(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stderrKey{}).(io.Writer); ok {
		return w
	}
	return io.Discard
}
