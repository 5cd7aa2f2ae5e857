package collections

// Stack is a LIFO backed by a slice. The top of the stack is the last item.
type Stack[T any] struct {
	Items []T
}

func (s Stack[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s Stack[T]) Len() int {
	return len(s.Items)
}

func (s *Stack[T]) Push(item T) {
	s.Items = append(s.Items, item)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	last := len(s.Items) - 1
	item = s.Items[last]
	var zero T
	s.Items[last] = zero
	s.Items = s.Items[:last]
	return item, true
}

func (s Stack[T]) Top() (item T, ok bool) {
	return s.FromTop(0)
}

// FromTop returns the item i positions below the top, so FromTop(0) is the top.
func (s Stack[T]) FromTop(i int) (item T, ok bool) {
	if i < 0 || i >= len(s.Items) {
		return item, false
	}
	return s.Items[len(s.Items)-1-i], true
}
