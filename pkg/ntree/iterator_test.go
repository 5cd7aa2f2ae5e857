package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Iterator_Preorder(t *testing.T) {
	root := newBasicTree()

	actual := []int{}
	it := root.Iter(Preorder)
	for next := it.Next(); next != nil; next = it.Next() {
		actual = append(actual, next.Value())
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 10, 8, 9}, actual)
	assert.Nil(t, it.Next(), "exhausted iterator does not restart")
}

func Test_Iterator_Postorder(t *testing.T) {
	root := newBasicTree()

	assert.Equal(t, []int{3, 4, 5, 2, 10, 7, 8, 9, 6, 1}, root.Iter(Postorder).Values())
}

func Test_Iterator_Snapshot(t *testing.T) {
	root := newBasicTree()

	it := root.Iter(Preorder)
	for next := range it.All() {
		if next.Value() == 3 {
			next.AddChild(NewNode(15))
		}
	}

	assert.Equal(t, []int{1, 2, 3, 15, 4, 5, 6, 7, 10, 8, 9}, root.Iter(Preorder).Values())
}

func Test_Iterator_DoesNotSeeLaterMutations(t *testing.T) {
	root := newBasicTree()

	it := root.Iter(Preorder)
	root.AddChild(NewNode(99))
	root.DeleteChild(0)

	assert.Equal(t, 10, it.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 10, 8, 9}, it.Values())
}

func Test_Iterator_Queries(t *testing.T) {
	root := newBasicTree()
	it := root.Iter(Preorder)

	assert.Equal(t, 10, it.Len())
	require.NotNil(t, it.First())
	assert.Equal(t, 1, it.First().Value())
	assert.Equal(t, 9, it.Last().Value())
	assert.Equal(t, 6, it.PositionOf(7))
	assert.Equal(t, -1, it.PositionOf(42))
	assert.Equal(t, 7, it.ElementAt(6).Value())
	assert.Nil(t, it.ElementAt(10))
	assert.Nil(t, it.ElementAt(-1))

	it.Next()
	assert.Equal(t, 9, it.Len())
	assert.Equal(t, 2, it.First().Value())
	assert.Equal(t, 5, it.PositionOf(7))
}

func Test_Iterator_EachNodeOnce(t *testing.T) {
	root := newBasicTree()

	for _, order := range []Order{Preorder, Postorder} {
		seen := map[*Node]int{}
		for node := range root.Iter(order).All() {
			seen[node]++
		}
		assert.Len(t, seen, 10, order.String())
		for node, count := range seen {
			assert.Equal(t, 1, count, "node %d in %s", node.Value(), order)
		}
	}
}

func Test_Iterator_AncestorOrdering(t *testing.T) {
	root := newBasicTree()

	position := func(order Order) map[*Node]int {
		result := map[*Node]int{}
		i := 0
		for node := range root.Iter(order).All() {
			result[node] = i
			i++
		}
		return result
	}
	pre := position(Preorder)
	post := position(Postorder)

	for node := range root.Iter(Preorder).All() {
		for p := node.Parent(); p != nil; p = p.Parent() {
			assert.Less(t, pre[p], pre[node], "preorder visits %d before %d", p.Value(), node.Value())
			assert.Greater(t, post[p], post[node], "postorder visits %d after %d", p.Value(), node.Value())
		}
	}
}

func Test_Iterator_NilRoot(t *testing.T) {
	it := NewNodeIterator(nil, Preorder)

	assert.Equal(t, 0, it.Len())
	assert.Nil(t, it.First())
	assert.Nil(t, it.Next())
	assert.Empty(t, it.Values())
}

func Test_ParseOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected Order
		wantErr  bool
	}{
		{input: "preorder", expected: Preorder},
		{input: "NLR", expected: Preorder},
		{input: " post ", expected: Postorder},
		{input: "lrn", expected: Postorder},
		{input: "inorder", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			order, err := ParseOrder(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)
		})
	}
}
