package mdfold

// Reduce folds a single level of the algebra: b's children must already
// be reduced values of type A. Leaf variants reduce to extract(b)
// directly; container variants combine the node's own contribution with
// the accumulated contributions of their children:
//
//	accumulate([extract(b), accumulate(children)])
//
// Varying only extract and accumulate turns this one engine into a word
// counter, a concatenating renderer, a set-union collector, and so on,
// without a bespoke recursive walk per use case. The whole-tree drivers
// are Fold and FoldDocument.
func Reduce[A any](extract func(Block[A]) A, accumulate func([]A) A, b Block[A]) A {
	if IsLeaf[A](b) {
		return extract(b)
	}
	return accumulate([]A{extract(b), accumulate(Children[A](b))})
}

// Fold reduces a whole tree bottom-up: children are folded first, then
// the one-level function is applied to the node with its children
// replaced by their results. Traversal is depth-first, left to right.
func Fold[A any](n *Node, fold func(Block[A]) A) A {
	return fold(Map(func(c *Node) A { return Fold(c, fold) }, n.Block))
}

// FoldDocument applies Fold to every top-level node in order.
func FoldDocument[A any](doc Document, fold func(Block[A]) A) []A {
	out := make([]A, len(doc))
	for i, n := range doc {
		out[i] = Fold(n, fold)
	}
	return out
}

// Walk visits every node of the document depth-first, left to right. If
// fn returns false the node's subtree is pruned.
func Walk(doc Document, fn func(*Node) bool) {
	for _, n := range doc {
		walkNode(n, fn)
	}
}

func walkNode(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range Children[*Node](n.Block) {
		walkNode(c, fn)
	}
}
