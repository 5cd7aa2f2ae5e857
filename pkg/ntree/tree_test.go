package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTreeWith(t *testing.T, values ...int) *Tree {
	t.Helper()
	tree := NewTree()
	for _, v := range values {
		require.NoError(t, tree.Add(v))
	}
	return tree
}

func Test_Tree_AddToEmpty(t *testing.T) {
	tree := NewTree()

	require.NoError(t, tree.Add(1))

	require.NotNil(t, tree.Root())
	assert.Equal(t, 1, tree.Root().Value())
	assert.Equal(t, 0, tree.Root().Size())
	assert.Nil(t, tree.Root().Parent())
}

//	     1
//	   /  \
//	  2    3
//	 / \  / \
//	4  5 6   7
func Test_Tree_AddCompleteTreeStyle(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, tree.Values(Preorder))
	assert.Equal(t, []int{4, 5, 2, 6, 7, 3, 1}, tree.Values(Postorder))
	assert.Equal(t, 3, tree.Height())
	assert.NoError(t, tree.Validate())
}

func Test_Tree_AddProperties(t *testing.T) {
	for n := 1; n <= 40; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = i
		}
		tree := newTreeWith(t, values...)

		assert.Equal(t, n, tree.Len())
		for node := range tree.Iter(Preorder).All() {
			assert.LessOrEqual(t, node.Size(), 2)
			for i := 0; i < node.Size(); i++ {
				assert.Same(t, node, node.GetChild(i).Parent())
			}
		}
		assert.NoError(t, tree.Validate())
	}
}

func Test_Tree_AddSearchOrder(t *testing.T) {
	root := NewNode(1)
	two, three := NewNode(2), NewNode(3)
	root.AddChild(two)
	root.AddChild(three)
	four, five := NewNode(4), NewNode(5)
	two.AddChild(four)
	two.AddChild(five)
	three.AddChild(NewNode(6))
	three.AddChild(NewNode(7))
	for _, n := range []*Node{four, five} {
		n.AddChild(NewNode(n.Value() * 10))
		n.AddChild(NewNode(n.Value()*10 + 1))
	}

	// a level-order fill would pick 6; the search recurses into 2 first
	// and settles on 4's first child.
	assert.Same(t, four.GetChild(0), findFirstAvailable(root))
}

func Test_Tree_AddReturnsErrorWhenNoNodeAvailable(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3)
	// counts that drifted from the children actually held
	for i := 0; i < 2; i++ {
		tree.Root().GetChild(i).childCount = 2
	}

	err := tree.Add(4)

	assert.ErrorIs(t, err, ErrNoAvailableNode)
	assert.Equal(t, 3, tree.Len())
}

func Test_Tree_DeleteScenario(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)

	assert.True(t, tree.Delete(2))

	assert.Equal(t, []int{1, 7, 4, 5, 3, 6}, tree.Values(Preorder))
	assert.Equal(t, 6, tree.Len())
	assert.NoError(t, tree.Validate())

	seven := tree.Root().GetChild(0)
	assert.Equal(t, 7, seven.Value())
	assert.Same(t, tree.Root(), seven.Parent())
	assert.Equal(t, []int{4, 5}, childValues(seven))
	assert.Equal(t, []int{6}, childValues(tree.Root().GetChild(1)))
}

func Test_Tree_DeleteDetachesTarget(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5)
	target := tree.Find(2)
	require.NotNil(t, target)

	assert.True(t, tree.Delete(2))

	assert.Nil(t, target.Parent())
	assert.Equal(t, 0, target.Size())
	for node := range tree.Iter(Preorder).All() {
		assert.NotSame(t, target, node)
	}
}

func Test_Tree_DeleteLastNode(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)

	assert.True(t, tree.Delete(7))

	assert.Equal(t, []int{1, 2, 4, 5, 3, 6}, tree.Values(Preorder))
	assert.NoError(t, tree.Validate())
}

func Test_Tree_DeleteRoot(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)

	assert.True(t, tree.Delete(1))

	require.NotNil(t, tree.Root())
	assert.Equal(t, 7, tree.Root().Value())
	assert.Nil(t, tree.Root().Parent())
	assert.Equal(t, []int{7, 2, 4, 5, 3, 6}, tree.Values(Preorder))
	assert.NoError(t, tree.Validate())
}

func Test_Tree_DeleteParentOfLast(t *testing.T) {
	// the last node 2 is a direct child of the deleted root
	tree := newTreeWith(t, 1, 2)

	assert.True(t, tree.Delete(1))

	assert.Equal(t, []int{2}, tree.Values(Preorder))
	assert.Nil(t, tree.Root().Parent())
	assert.NoError(t, tree.Validate())
}

func Test_Tree_DeleteTargetHoldingLast(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6)

	// preorder 1 2 4 5 3 6: the last node 6 is the only child of 3
	assert.True(t, tree.Delete(3))

	assert.Equal(t, []int{1, 2, 4, 5, 6}, tree.Values(Preorder))
	assert.Equal(t, 0, tree.Find(6).Size())
	assert.NoError(t, tree.Validate())
}

func Test_Tree_DeleteSoleNode(t *testing.T) {
	tree := newTreeWith(t, 1)

	assert.True(t, tree.Delete(1))

	assert.Nil(t, tree.Root())
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())

	require.NoError(t, tree.Add(5))
	assert.Equal(t, 5, tree.Root().Value())
}

func Test_Tree_DeleteEmpty(t *testing.T) {
	tree := NewTree()

	assert.False(t, tree.Delete(1))
	assert.Nil(t, tree.Root())
}

func Test_Tree_DeleteAbsent(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5)
	before := tree.Values(Preorder)

	assert.False(t, tree.Delete(42))

	assert.Equal(t, before, tree.Values(Preorder))
	assert.Equal(t, 5, tree.Len())
}

func Test_Tree_DeleteDuplicates(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 2, 3)

	// 1(2(3), 2): preorder 1 2 3 2 removes the first 2 and moves the second into its slot
	first := tree.Find(2)
	second := tree.Root().GetChild(1)
	require.Same(t, tree.Root().GetChild(0), first)

	assert.True(t, tree.Delete(2))

	assert.Equal(t, []int{1, 2, 3}, tree.Values(Preorder))
	require.Equal(t, 1, tree.Root().Size())
	assert.Same(t, second, tree.Root().GetChild(0))
	assert.Equal(t, []int{3}, childValues(second))
	assert.Nil(t, first.Parent())
	assert.NoError(t, tree.Validate())
}

func Test_Tree_DeleteUntilEmpty(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tree := newTreeWith(t, values...)

	for i, v := range values {
		assert.True(t, tree.Delete(v), "delete %d", v)
		assert.Equal(t, len(values)-i-1, tree.Len())
		assert.False(t, tree.Contains(v))
		assert.NoError(t, tree.Validate())
	}
	assert.True(t, tree.IsEmpty())
}

func Test_Tree_AddAfterDelete(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)
	require.True(t, tree.Delete(2))

	// 3 now holds only 6 and is the first node with room
	require.NoError(t, tree.Add(8))

	assert.Equal(t, []int{1, 7, 4, 5, 3, 6, 8}, tree.Values(Preorder))
	assert.NoError(t, tree.Validate())
}
