package zug

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(i int) int { return i * 2 }
func addOne(i int) int { return i + 1 }

func TestCallOrder(t *testing.T) {
	c := Comp(double, addOne)
	got, err := c.Call(3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0], "addOne must run before double")
}

func TestSingleElement(t *testing.T) {
	c := Comp(addOne)
	assert.Equal(t, 1, c.Size())
	got, err := c.Call(41)
	require.NoError(t, err)
	assert.Equal(t, []any{42}, got)
}

func TestFlattening(t *testing.T) {
	nested := Comp(Comp(double, addOne), addOne)
	direct := Comp(double, addOne, addOne)
	assert.Equal(t, 3, nested.Size())
	assert.Equal(t, 3, direct.Size())

	a, err := nested.Call(3)
	require.NoError(t, err)
	b, err := direct.Call(3)
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, []any{10}, a)

	tail := Comp(double, Comp(addOne, addOne))
	assert.Equal(t, 3, tail.Size())
	c, err := tail.Call(3)
	require.NoError(t, err)
	assert.Equal(t, b, c)
}

func TestFlatteningKeepsOrder(t *testing.T) {
	k1, k2, k3 := Constantly(1), Constantly(2), Constantly(3)
	c := Comp(Comp(k1, k2), k3)
	fns := c.Callables()
	require.Len(t, fns, 3)
	assert.Same(t, k1, fns[0])
	assert.Same(t, k2, fns[1])
	assert.Same(t, k3, fns[2])
}

func TestCallablesIsFresh(t *testing.T) {
	c := Comp(double, addOne)
	fns := c.Callables()
	fns[0] = nil
	assert.Equal(t, 2, c.Size())
	got, err := c.Call(3)
	require.NoError(t, err)
	assert.Equal(t, []any{8}, got)
}

func TestAppendEquivalence(t *testing.T) {
	c := Comp(double, addOne)
	viaAppend := c.Append(double)
	viaComp := Comp(c, double)

	a, err := viaAppend.Call(3)
	require.NoError(t, err)
	b, err := viaComp.Call(3)
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, []any{14}, a)
	assert.Equal(t, 3, viaAppend.Size())
	assert.Equal(t, 2, c.Size(), "receiver must not change")
}

func TestPrependEquivalence(t *testing.T) {
	c := Comp(double, addOne)
	viaPrepend := c.Prepend(addOne)
	viaComp := Comp(addOne, c)

	a, err := viaPrepend.Call(3)
	require.NoError(t, err)
	b, err := viaComp.Call(3)
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, []any{9}, a)
	assert.Equal(t, 3, viaPrepend.Size())
	assert.Equal(t, 2, c.Size())
}

func TestMultipleValuesFlow(t *testing.T) {
	split := func(s string) (string, int) { return s, len(s) }
	join := func(s string, n int) string { return fmt.Sprintf("%s/%d", s, n) }
	got, err := Comp(join, split).Call("abc")
	require.NoError(t, err)
	assert.Equal(t, []any{"abc/3"}, got)
}

func TestNotCallable(t *testing.T) {
	ran := false
	c := Comp(func(i int) int { ran = true; return i }, 17, addOne)
	_, err := c.Call(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot characterize as a callable")
	assert.False(t, ran, "nothing may run when the composition is invalid")

	_, err = c.CallMut(3)
	require.Error(t, err)
	_, err = c.CallOnce(3)
	require.Error(t, err)
}

func TestNilIsRejected(t *testing.T) {
	c := Comp(nil)
	_, err := c.Call()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be nil")

	var nilFunc func(int) int
	_, err = Comp(nilFunc).Call(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be a nil function")
}

func TestNamed(t *testing.T) {
	c := Comp(Named("twice", double), addOne)
	assert.Contains(t, c.String(), "twice")
	got, err := c.Call(1)
	require.NoError(t, err)
	assert.Equal(t, []any{4}, got)

	named, ok := Named("pipeline", c).(*Composed)
	require.True(t, ok)
	assert.Equal(t, 2, named.Size())
	assert.True(t, strings.HasPrefix(named.String(), "pipeline:\n"))
	assert.True(t, strings.HasPrefix(c.String(), "comp:\n"), "original must keep its name")
}

func TestStringRendering(t *testing.T) {
	c := Comp(Named("f", double), Named("g", addOne), Named("h", double))
	s := c.String()
	fPos := strings.Index(s, "f [")
	gPos := strings.Index(s, "g [")
	hPos := strings.Index(s, "h [")
	require.True(t, fPos >= 0 && gPos >= 0 && hPos >= 0, "all elements render: %s", s)
	assert.Less(t, fPos, gPos)
	assert.Less(t, gPos, hPos)
}

func TestSharedConcurrentCalls(t *testing.T) {
	c := Comp(double, addOne)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Call(3)
			assert.NoError(t, err)
			assert.Equal(t, []any{8}, got)
		}()
	}
	wg.Wait()
}
