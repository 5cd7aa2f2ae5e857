package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mholzen/ntree/pkg/ntree"
)

type Stats struct {
	Nodes  int `json:"nodes"`
	Height int `json:"height"`
	Leaves int `json:"leaves"`
}

func NewStats(tree *ntree.Tree) Stats {
	stats := Stats{Height: tree.Height()}
	for node := range tree.Iter(ntree.Preorder).All() {
		stats.Nodes++
		if node.Size() == 0 {
			stats.Leaves++
		}
	}
	return stats
}

// FormatStats prints stats with numbers formatted for tag.
func FormatStats(stats Stats, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("nodes: %d\nheight: %d\nleaves: %d", stats.Nodes, stats.Height, stats.Leaves)
}
