package render

import (
	"bytes"
	"fmt"

	"github.com/mholzen/ntree/pkg/ntree"
)

// Formats accepted by Format.
const (
	FormatTree     = "tree"
	FormatDump     = "dump"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

var Formats = []string{FormatTree, FormatDump, FormatMarkdown, FormatJSON, FormatYAML}

func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("format must be one of %v, got %q", Formats, format)
}

// Format renders the structure below root in the named format.
func Format(root *ntree.Node, format string) (string, error) {
	switch format {
	case FormatTree:
		return TreePrint(root), nil
	case FormatDump:
		var buf bytes.Buffer
		if err := Dump(&buf, root); err != nil {
			return "", err
		}
		return buf.String(), nil
	case FormatMarkdown:
		if root == nil {
			return "", nil
		}
		return NestedList(root) + "\n", nil
	case FormatJSON:
		return JSON(root)
	case FormatYAML:
		return YAML(root)
	}
	return "", ValidateFormat(format)
}
