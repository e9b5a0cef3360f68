package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdok/vec2d/pool"
	"github.com/pdok/vec2d/vec2d"
)

func newVectorPool(maxSize int) *pool.Pool[*vec2d.Vector2D] {
	return pool.New(func() *vec2d.Vector2D { return vec2d.NewZero() }, maxSize)
}

func TestObtainFromEmptyPoolUsesFactory(t *testing.T) {
	p := newVectorPool(4)
	vec := p.Obtain()
	assert.Equal(t, vec2d.NewZero(), vec)
	assert.Equal(t, 0, p.Len())
}

func TestFreeResetsAndRecycles(t *testing.T) {
	p := newVectorPool(4)

	vec := p.Obtain()
	vec.Set(3, 4)
	p.Free(vec)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, vec2d.NewZero(), vec, "freeing must reset the instance")

	recycled := p.Obtain()
	assert.Same(t, vec, recycled, "the freed instance should be handed out again")
	assert.Equal(t, vec2d.NewZero(), recycled)
}

func TestFreeDropsWhenFull(t *testing.T) {
	p := newVectorPool(1)
	a := p.Obtain()
	b := p.Obtain()
	p.Free(a)
	p.Free(b)
	assert.Equal(t, 1, p.Len())
}

func TestClear(t *testing.T) {
	p := newVectorPool(4)
	p.Free(p.Obtain())
	p.Free(p.Obtain())
	assert.Equal(t, 1, p.Len(), "second Free recycles the first instance")

	p.Free(vec2d.New(1, 2))
	assert.Equal(t, 2, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
}
