package sketch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoricalTopK(t *testing.T) {
	c := NewCategorical()
	for i := 0; i < 5; i++ {
		c.Push("a")
	}
	for i := 0; i < 3; i++ {
		c.Push("b")
	}
	c.Push("c")
	top := c.Top()
	assert.Equal(t, "a", top[0].Value)
	assert.Equal(t, 5, top[0].Count)
	assert.Equal(t, "b", top[1].Value)
	assert.Equal(t, "c", top[2].Value)
	assert.Equal(t, 9, c.Total())
}

func TestCategoricalTieBreakByInsertionOrder(t *testing.T) {
	c := NewCategorical()
	c.Push("second")
	c.Push("first")
	c.Push("second")
	c.Push("first")
	top := c.Top()
	assert.Equal(t, "second", top[0].Value)
	assert.Equal(t, "first", top[1].Value)
}

func TestCategoricalCapsDistinctKeys(t *testing.T) {
	c := NewCategorical()
	for i := 0; i < CategoricalCap+50; i++ {
		c.Push(fmt.Sprintf("v%d", i))
	}
	assert.Equal(t, CategoricalCap, c.UniqueCount())
	assert.Equal(t, CategoricalCap+50, c.Total())
}
