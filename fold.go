package mdfold

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parameterize turns a block of environment-awaiting children into a
// function from the environment to a block of plain values: the same
// environment is applied to every child. Combined with Fold this renders
// a document against runtime state without threading the environment
// through recursive calls by hand.
func Parameterize[Env, V any](b Block[func(Env) V]) func(Env) Block[V] {
	return func(env Env) Block[V] {
		return Map(func(f func(Env) V) V { return f(env) }, b)
	}
}

// FoldE is Fold for fallible one-level reductions. Children are reduced
// depth-first, left to right, and the first error encountered in document
// order wins; no partial tree is returned.
func FoldE[A any](n *Node, fold func(Block[A]) (A, error)) (A, error) {
	var ferr error
	mapped := Map(func(c *Node) A {
		var zero A
		if ferr != nil {
			return zero
		}
		v, err := FoldE(c, fold)
		if err != nil {
			ferr = err
			return zero
		}
		return v
	}, n.Block)
	if ferr != nil {
		var zero A
		return zero, ferr
	}
	return fold(mapped)
}

// FoldCtx is Fold for effectful reductions. Sibling subtrees are
// independent and are resolved concurrently; the node's own reduction
// runs only after every sibling effect has resolved. A failure anywhere
// cancels the group and propagates, producing no partial value. Ordering
// between unrelated subtrees is not guaranteed; timeouts and retries are
// the caller's business via ctx.
func FoldCtx[A any](ctx context.Context, n *Node, fold func(context.Context, Block[A]) (A, error)) (A, error) {
	kids := Children[*Node](n.Block)
	results := make([]A, len(kids))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range kids {
		i, c := i, c
		g.Go(func() error {
			v, err := FoldCtx(gctx, c, fold)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero A
		return zero, err
	}
	var i int
	mapped := Map(func(*Node) A {
		v := results[i]
		i++
		return v
	}, n.Block)
	return fold(ctx, mapped)
}

// BumpHeadings raises the level of every heading in the tree by the
// given number of steps, clamping at H6. A zero or negative argument
// leaves the tree unchanged; every non-heading variant is untouched.
func BumpHeadings(by int, n *Node) *Node {
	if by <= 0 {
		return n
	}
	b := Map(func(c *Node) *Node { return BumpHeadings(by, c) }, n.Block)
	if h, ok := b.(*Heading[*Node]); ok {
		h.Level = h.Level.Bump(by)
	}
	return &Node{Block: b}
}

// BumpDocumentHeadings applies BumpHeadings to every top-level node.
func BumpDocumentHeadings(by int, doc Document) Document {
	if by <= 0 {
		return doc
	}
	out := make(Document, len(doc))
	for i, n := range doc {
		out[i] = BumpHeadings(by, n)
	}
	return out
}
