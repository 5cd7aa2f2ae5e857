package render

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/mholzen/ntree/pkg/ntree"
)

// Snapshot is a detached copy of a node's value and structure, suitable for encoding.
type Snapshot struct {
	Value    int         `json:"value" yaml:"value"`
	Children []*Snapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

func NewSnapshot(root *ntree.Node) *Snapshot {
	if root == nil {
		return nil
	}
	snapshot := &Snapshot{Value: root.Value()}
	for i := 0; i < root.Size(); i++ {
		snapshot.Children = append(snapshot.Children, NewSnapshot(root.GetChild(i)))
	}
	return snapshot
}

func JSON(root *ntree.Node) (string, error) {
	data, err := json.MarshalIndent(NewSnapshot(root), "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot encode JSON: %w", err)
	}
	return string(data), nil
}

func YAML(root *ntree.Node) (string, error) {
	data, err := yaml.Marshal(NewSnapshot(root))
	if err != nil {
		return "", fmt.Errorf("cannot encode YAML: %w", err)
	}
	return string(data), nil
}
