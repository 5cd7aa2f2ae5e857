package mcp

import (
	"sync"

	"github.com/mholzen/ntree/pkg/ntree"
	"github.com/mholzen/ntree/pkg/render"
)

// Session holds the tree shared by every tool call. Tool handlers may run
// concurrently, so each operation holds the lock for its whole read-then-write.
type Session struct {
	mu   sync.Mutex
	tree *ntree.Tree
}

func NewSession() *Session {
	return &Session{tree: ntree.NewTree()}
}

// Add inserts values in order and stops at the first failure.
func (s *Session) Add(values []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range values {
		if err := s.tree.Add(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Delete(value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(value)
}

func (s *Session) Values(order ntree.Order) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Values(order)
}

func (s *Session) Render(format string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.Format(s.tree.Root(), format)
}

func (s *Session) Stats() render.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.NewStats(s.tree)
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = ntree.NewTree()
}
