package fn_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pinotree/zug/fn"
)

func double(i int) int { return i * 2 }
func addOne(i int) int { return i + 1 }

func TestComposeAppliesRightToLeft(t *testing.T) {
	pipeline := fn.Compose(double, addOne)
	assert.Equal(t, 8, pipeline(3))
}

func TestComposeOfNothing(t *testing.T) {
	assert.Equal(t, 3, fn.Compose[int]()(3))
}

func TestPipeAppliesLeftToRight(t *testing.T) {
	pipeline := fn.Pipe(double, addOne)
	assert.Equal(t, 7, pipeline(3))
}

func TestComposeChangesType(t *testing.T) {
	toLabel := fn.Compose2(strconv.Itoa, double)
	assert.Equal(t, "6", toLabel(3))

	shoutLabel := fn.Compose3(strings.ToUpper, strconv.Itoa, double)
	assert.Equal(t, "6", shoutLabel(3))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, 42, fn.Identity(42))

	m := map[string]int{"a": 1}
	fn.Identity(m)["b"] = 2
	assert.Len(t, m, 2, "identity aliases reference types")
}

func TestConst(t *testing.T) {
	k := fn.Const[string, int]("v")
	assert.Equal(t, "v", k(1))
	assert.Equal(t, "v", k(2))
}

func TestIdentityLaws(t *testing.T) {
	left := fn.Compose2(fn.Identity[int], double)
	right := fn.Compose2(double, fn.Identity[int])
	for _, x := range []int{0, 1, -3, 10} {
		assert.Equal(t, double(x), left(x))
		assert.Equal(t, double(x), right(x))
	}
}

func TestAssociativity(t *testing.T) {
	nested := fn.Compose(fn.Compose(double, addOne), addOne)
	flat := fn.Compose(double, addOne, addOne)
	for _, x := range []int{0, 3, -5} {
		assert.Equal(t, flat(x), nested(x))
	}
}

func TestDeepComposition(t *testing.T) {
	f := fn.Compose8(addOne, double, addOne, double, addOne, double, addOne, double)
	assert.Equal(t, 63, f(3))

	g := fn.Compose4(strconv.Itoa, double, addOne, addOne)
	assert.Equal(t, "10", g(3))

	h := fn.Compose5(strings.ToUpper, strconv.Itoa, double, addOne, addOne)
	assert.Equal(t, "10", h(3))
}

func ExampleCompose() {
	shout := func(s string) string { return strings.ToUpper(s) }
	exclaim := func(s string) string { return s + "!" }
	fmt.Println(fn.Compose(exclaim, shout)("hey"))
	// Output: HEY!
}

func ExamplePipe() {
	shout := func(s string) string { return strings.ToUpper(s) }
	exclaim := func(s string) string { return s + "!" }
	fmt.Println(fn.Pipe(shout, exclaim)("hey"))
	// Output: HEY!
}
