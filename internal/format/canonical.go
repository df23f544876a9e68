package format

import (
	"math"
	"sort"

	"yangfmt/internal/ast"
)

// Canonical ordering has to balance strictness against friendliness: this
// formatter is meant to run on save, and a freshly written line jumping off
// the screen is a bad experience. Reordering therefore only applies inside
// block types whose statements are almost certain to fit on one screen
// (currently leaf and leaf-list bodies), and only when the sibling list
// contains nothing but statements, since a sort cannot meaningfully
// preserve the placement of comments or blank lines.

// leafCanonicalOrder ranks the substatements of leaf and leaf-list blocks
// in the canonical order given by the RFC 7950 ABNF.
var leafCanonicalOrder = map[string]int{
	"when":         1,
	"if-feature":   2,
	"type":         3,
	"units":        4,
	"must":         5,
	"default":      6,
	"config":       7,
	"min-elements": 8,
	"max-elements": 9,
	"ordered-by":   10,
	"mandatory":    11,
	"status":       12,
	"description":  13,
	"reference":    14,
}

// sortStatements stably sorts a sibling list into canonical order, when the
// parent block is eligible. Unknown keywords rank last, and the sort being
// stable keeps their relative order, so extension statements never get
// reshuffled among themselves.
func sortStatements(parentKeyword string, nodes []ast.Node) {
	var ranks map[string]int
	switch parentKeyword {
	case "leaf", "leaf-list":
		ranks = leafCanonicalOrder
	default:
		return
	}

	for _, n := range nodes {
		if ast.AsStatement(n) == nil {
			return
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return rankOf(ranks, nodes[i]) < rankOf(ranks, nodes[j])
	})
}

func rankOf(ranks map[string]int, n ast.Node) int {
	st := ast.AsStatement(n)
	if st == nil {
		return math.MaxInt
	}
	if rank, ok := ranks[st.Keyword.Text]; ok {
		return rank
	}
	return math.MaxInt
}
