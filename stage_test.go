package pullstreams_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artificial-james/pullstreams"
)

func TestFilter(t *testing.T) {
	t.Run("Normal", func(t *testing.T) {
		even := func(v int) bool { return v%2 == 0 }
		actual := pullstreams.Of(0, 1, 2, 3, 4).Filter(even).Collect()
		assert.Equal(t, []int{0, 2, 4}, actual)
	})
	t.Run("Nothing Matches", func(t *testing.T) {
		stream := pullstreams.Of(1, 3, 5).Filter(func(v int) bool { return v%2 == 0 })
		assert.Empty(t, stream.Collect())
		assert.True(t, stream.Next().IsNone())
	})
}

func TestMap(t *testing.T) {
	mapp := func(v int) string { return fmt.Sprintf("Test-%d", v) }
	actual := pullstreams.Map(pullstreams.Of(0, 1, 2), mapp).Collect()
	assert.Equal(t, []string{"Test-0", "Test-1", "Test-2"}, actual)
}

func TestFlatMap(t *testing.T) {
	t.Run("Normal", func(t *testing.T) {
		mapp := func(v int) pullstreams.Stream[string] {
			return pullstreams.Of(fmt.Sprintf("A-%d", v), fmt.Sprintf("B-%d", v))
		}
		actual := pullstreams.FlatMap(pullstreams.Of(0, 1, 2), mapp).Collect()
		assert.Equal(t, []string{"A-0", "B-0", "A-1", "B-1", "A-2", "B-2"}, actual)
	})
	t.Run("Empty Inner", func(t *testing.T) {
		mapp := func(v int) pullstreams.Stream[int] {
			if v%2 == 0 {
				return pullstreams.Of[int]()
			}
			return pullstreams.Of(v, v)
		}
		actual := pullstreams.FlatMap(pullstreams.Of(0, 1, 2, 3), mapp).Collect()
		assert.Equal(t, []int{1, 1, 3, 3}, actual)
	})
}

func TestZip(t *testing.T) {
	double := func(v int) int { return v * 2 }
	name := func(v int) string { return fmt.Sprintf("N-%d", v) }

	actual := pullstreams.Zip(pullstreams.Of(1, 2, 3), double, name).Collect()

	expected := []pullstreams.Pair[int, string]{
		{Left: 2, Right: "N-1"},
		{Left: 4, Right: "N-2"},
		{Left: 6, Right: "N-3"},
	}
	assert.Equal(t, expected, actual)
}

func TestFlatZip(t *testing.T) {
	left := func(v int) pullstreams.Stream[int] {
		return pullstreams.Of(v, v+10)
	}
	right := func(v int) pullstreams.Stream[string] {
		return pullstreams.Of(fmt.Sprintf("a%d", v), fmt.Sprintf("b%d", v), fmt.Sprintf("c%d", v))
	}

	// The shorter inner stream bounds each round: two pairs per element,
	// the third right-hand value is discarded with its round.
	actual := pullstreams.FlatZip(pullstreams.Of(1, 2), left, right).Collect()

	expected := []pullstreams.Pair[int, string]{
		{Left: 1, Right: "a1"},
		{Left: 11, Right: "b1"},
		{Left: 2, Right: "a2"},
		{Left: 12, Right: "b2"},
	}
	assert.Equal(t, expected, actual)
}

func TestChain(t *testing.T) {
	t.Run("Chain", func(t *testing.T) {
		actual := pullstreams.Of(1, 2).Chain(pullstreams.Of(3, 4)).Collect()
		assert.Equal(t, []int{1, 2, 3, 4}, actual)
	})
	t.Run("PreChain", func(t *testing.T) {
		// B.PreChain(A) prepends A: A's elements come first.
		actual := pullstreams.Of(3, 4).PreChain(pullstreams.Of(1, 2)).Collect()
		assert.Equal(t, []int{1, 2, 3, 4}, actual)
	})
	t.Run("Empty First", func(t *testing.T) {
		actual := pullstreams.Of[int]().Chain(pullstreams.Of(1)).Collect()
		assert.Equal(t, []int{1}, actual)
	})
}

func TestLimit(t *testing.T) {
	t.Run("Shorter Than Upstream", func(t *testing.T) {
		actual := pullstreams.Of(1, 2, 3, 4, 5).Limit(3).Collect()
		assert.Equal(t, []int{1, 2, 3}, actual)
	})
	t.Run("Longer Than Upstream", func(t *testing.T) {
		actual := pullstreams.Of(1, 2).Limit(10).Collect()
		assert.Equal(t, []int{1, 2}, actual)
	})
	t.Run("Zero", func(t *testing.T) {
		assert.Empty(t, pullstreams.Of(1, 2).Limit(0).Collect())
	})
	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		count := func(int) { pulled++ }
		actual := pullstreams.Of(1, 2, 3, 4, 5).Peek(count).Limit(2).Collect()
		assert.Equal(t, []int{1, 2}, actual)
		assert.Equal(t, 2, pulled)
	})
}

func TestDistinct(t *testing.T) {
	actual := pullstreams.Distinct(pullstreams.Of(1, 2, 2, 3, 1)).Collect()
	assert.Equal(t, []int{1, 2, 3}, actual)
}

func TestPeek(t *testing.T) {
	var seen []int
	actual := pullstreams.Of(1, 2, 3).Peek(func(v int) { seen = append(seen, v) }).Collect()
	assert.Equal(t, []int{1, 2, 3}, actual)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestDropWhile(t *testing.T) {
	t.Run("Normal", func(t *testing.T) {
		small := func(v int) bool { return v < 3 }
		actual := pullstreams.Of(1, 2, 3, 1, 4).DropWhile(small).Collect()
		// Only the prefix is dropped; the later 1 passes through.
		assert.Equal(t, []int{3, 1, 4}, actual)
	})
	t.Run("Drops Everything", func(t *testing.T) {
		actual := pullstreams.Of(1, 2).DropWhile(func(int) bool { return true }).Collect()
		assert.Empty(t, actual)
	})
}

func TestTakeWhile(t *testing.T) {
	t.Run("Normal", func(t *testing.T) {
		small := func(v int) bool { return v < 3 }
		stream := pullstreams.Of(1, 2, 3, 1, 1).TakeWhile(small)
		// Latches at the first failure even though later elements match.
		assert.Equal(t, []int{1, 2}, stream.Collect())
		assert.True(t, stream.Next().IsNone())
	})
	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		count := func(int) { pulled++ }
		stream := pullstreams.Of(1, 2, 3, 4, 5).Peek(count).TakeWhile(func(v int) bool { return v < 3 })
		assert.Equal(t, []int{1, 2}, stream.Collect())
		// The failing element is pulled, the tail is not.
		assert.Equal(t, 3, pulled)
	})
}

func TestSorted(t *testing.T) {
	t.Run("Natural Order", func(t *testing.T) {
		actual := pullstreams.Sorted(pullstreams.Of(3, 1, 2)).Collect()
		assert.Equal(t, []int{1, 2, 3}, actual)
	})
	t.Run("Comparator", func(t *testing.T) {
		desc := func(a, b int) bool { return a > b }
		actual := pullstreams.Of(3, 1, 2).SortedFunc(desc).Collect()
		assert.Equal(t, []int{3, 2, 1}, actual)
	})
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, pullstreams.Sorted(pullstreams.Of[int]()).Collect())
	})
}
