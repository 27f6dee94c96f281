package mdfold

import (
	"fmt"
	"strings"
)

// DuplicatedAnchorsError reports that two or more headings generated the
// same anchor identifier. The whole document fails before any rendering
// is attempted; Groups holds one group per colliding identifier, each
// listing every occurrence.
type DuplicatedAnchorsError struct {
	Groups [][]string
}

func (e *DuplicatedAnchorsError) Error() string {
	names := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		names[i] = fmt.Sprintf("%q (%d times)", g[0], len(g))
	}
	return "duplicated anchors: " + strings.Join(names, ", ")
}

// InvalidAnchorLinkError reports a link whose fragment does not resolve
// to any generated anchor.
type InvalidAnchorLinkError struct {
	Destination string
}

func (e *InvalidAnchorLinkError) Error() string {
	return fmt.Sprintf("invalid anchor link %q: no such anchor in document", e.Destination)
}

// Validated is a deferred two-phase rendering of a node. Words and
// Anchors are fully computed during the bottom-up pass; Validate is not
// invoked until the whole document's anchors are known, and then either
// yields the rendered value or fails. The closure owns only the node's
// locally derived data; there is no shared registry.
type Validated[V any] struct {
	Validate func(anchors []string) (V, error)
	Words    []string
	Anchors  []string
}

// ValidateAnchors lifts a single-phase renderer into the two-phase anchor
// validation shape:
//
//   - every node's Words accumulate immediately (same rules as
//     ExtractWords);
//   - a Heading derives an anchor from its own word sequence and prepends
//     it to the anchors collected from below; every other variant passes
//     its children's anchors through unchanged;
//   - a Link with a "#" destination defers a membership check against the
//     complete anchor sequence; all other destinations are always valid.
//
// Callers mix in their own per-node logic simply by baking it into the
// lifted fold. Use Fold to run the result over a tree and Resolve to
// close the two-phase loop.
func ValidateAnchors[V any](fold func(Block[V]) V) func(Block[Validated[V]]) Validated[V] {
	return func(b Block[Validated[V]]) Validated[V] {
		words := BlockWords[Validated[V]](b)
		var anchors []string
		for _, c := range Children[Validated[V]](b) {
			words = append(words, c.Words...)
			anchors = append(anchors, c.Anchors...)
		}
		if Is[Heading[Validated[V]], Validated[V]](b) {
			anchors = append([]string{Slug(words)}, anchors...)
		}
		validate := func(all []string) (V, error) {
			var zero V
			if l, ok := b.(*Link[Validated[V]]); ok {
				if frag, isAnchor := strings.CutPrefix(l.Destination, "#"); isAnchor && !containsString(all, frag) {
					return zero, &InvalidAnchorLinkError{Destination: l.Destination}
				}
			}
			var ferr error
			mapped := Map(func(c Validated[V]) V {
				var cz V
				if ferr != nil {
					return cz
				}
				v, err := c.Validate(all)
				if err != nil {
					ferr = err
					return cz
				}
				return v
			}, b)
			if ferr != nil {
				return zero, ferr
			}
			return fold(mapped), nil
		}
		return Validated[V]{Validate: validate, Words: words, Anchors: anchors}
	}
}

// Resolve closes the two-phase loop over a document's top-level
// validations: it concatenates every generated anchor in order, fails
// with DuplicatedAnchorsError if any identifier occurs more than once,
// and otherwise runs every Validate closure against the complete
// sequence, surfacing the first failure in sequence order.
func Resolve[V any](validated []Validated[V]) ([]V, error) {
	var all []string
	for _, v := range validated {
		all = append(all, v.Anchors...)
	}
	if groups := duplicateGroups(all); len(groups) > 0 {
		return nil, &DuplicatedAnchorsError{Groups: groups}
	}
	out := make([]V, len(validated))
	for i, v := range validated {
		r, err := v.Validate(all)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// ValidateDocument folds the whole document with the lifted renderer and
// resolves the collected anchors in one call.
func ValidateDocument[V any](doc Document, fold func(Block[V]) V) ([]V, error) {
	return Resolve(FoldDocument(doc, ValidateAnchors(fold)))
}

// Rendered is the slug-only derivative of Validated: the same two-phase
// shape without an error taxonomy. Render always produces a value;
// anchor consistency is reported separately as a boolean.
type Rendered[V any] struct {
	Render  func(anchors []string) V
	Words   []string
	Anchors []string
}

// RenderWithAnchors lifts a single-phase renderer into the slug-only
// two-phase shape. Headings contribute anchors exactly as in
// ValidateAnchors; nothing can fail.
func RenderWithAnchors[V any](fold func(Block[V]) V) func(Block[Rendered[V]]) Rendered[V] {
	return func(b Block[Rendered[V]]) Rendered[V] {
		words := BlockWords[Rendered[V]](b)
		var anchors []string
		for _, c := range Children[Rendered[V]](b) {
			words = append(words, c.Words...)
			anchors = append(anchors, c.Anchors...)
		}
		if Is[Heading[Rendered[V]], Rendered[V]](b) {
			anchors = append([]string{Slug(words)}, anchors...)
		}
		render := func(all []string) V {
			return fold(Map(func(c Rendered[V]) V { return c.Render(all) }, b))
		}
		return Rendered[V]{Render: render, Words: words, Anchors: anchors}
	}
}

// ResolveRendered runs every Render closure against the complete anchor
// sequence. The boolean reports whether the anchor set was free of
// duplicates.
func ResolveRendered[V any](rendered []Rendered[V]) ([]V, bool) {
	var all []string
	for _, r := range rendered {
		all = append(all, r.Anchors...)
	}
	out := make([]V, len(rendered))
	for i, r := range rendered {
		out[i] = r.Render(all)
	}
	return out, len(duplicateGroups(all)) == 0
}

// AnchorsValid reports whether every "#" link in the document resolves
// and no two headings collide.
func AnchorsValid(doc Document) bool {
	_, err := ValidateDocument(doc, func(b Block[struct{}]) struct{} { return struct{}{} })
	return err == nil
}

func duplicateGroups(anchors []string) [][]string {
	counts := make(map[string]int, len(anchors))
	for _, a := range anchors {
		counts[a]++
	}
	var groups [][]string
	seen := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		if counts[a] > 1 && !seen[a] {
			seen[a] = true
			group := make([]string, counts[a])
			for i := range group {
				group[i] = a
			}
			groups = append(groups, group)
		}
	}
	return groups
}

func containsString(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
