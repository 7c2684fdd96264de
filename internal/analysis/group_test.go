package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy_InsertionOrder(t *testing.T) {
	words := []string{"pear", "apple", "plum", "avocado", "banana"}
	groups := GroupBy(words, func(w string) byte { return w[0] })

	assert.Equal(t, []byte{'p', 'a', 'b'}, groups.Keys())
	p, ok := groups.Get('p')
	require.True(t, ok)
	assert.Equal(t, []string{"pear", "plum"}, p)
}

func TestGroupBy_ExhaustiveAndDisjoint(t *testing.T) {
	items := make([]int, 0, 100)
	for i := range 100 {
		items = append(items, i*7%23)
	}
	groups := GroupBy(items, func(v int) int { return v % 5 })

	seen := 0
	for k, group := range groups.All() {
		for _, v := range group {
			assert.Equal(t, k, v%5, "item %d in wrong group", v)
		}
		seen += len(group)
	}
	assert.Equal(t, len(items), seen)
}

func TestGroupBy_Empty(t *testing.T) {
	groups := GroupBy([]int(nil), func(v int) int { return v })
	assert.Equal(t, 0, groups.Len())
	assert.Empty(t, groups.Keys())
	_, ok := groups.Get(1)
	assert.False(t, ok)
}

func TestAccumulate_Sum(t *testing.T) {
	sums := Accumulate([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 },
		func(acc, v int) int { return acc + v })

	even, _ := sums.Get(true)
	odd, _ := sums.Get(false)
	assert.Equal(t, 12, even)
	assert.Equal(t, 9, odd)
	assert.Equal(t, []bool{false, true}, sums.Keys())
}

func TestSortedKeys(t *testing.T) {
	groups := GroupBy([]int{13, 2, 9, 2, 5}, func(v int) int { return v })
	assert.Equal(t, []int{13, 2, 9, 5}, groups.Keys())
	assert.Equal(t, []int{2, 5, 9, 13}, SortedKeys(groups))
}

func TestOrdered_KeysReturnsCopy(t *testing.T) {
	groups := GroupBy([]int{1, 2}, func(v int) int { return v })
	keys := groups.Keys()
	keys[0] = 99
	assert.Equal(t, []int{1, 2}, groups.Keys())
}
