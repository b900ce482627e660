package zug

import (
	"fmt"
	"strings"
)

func ExampleComp() {
	double := func(i int) int { return i * 2 }
	addOne := func(i int) int { return i + 1 }
	got, _ := Comp(double, addOne).Call(3)
	fmt.Println(got[0])
	// Output: 8
}

func ExampleComp_flattening() {
	double := func(i int) int { return i * 2 }
	addOne := func(i int) int { return i + 1 }
	inner := Comp(double, addOne)
	outer := Comp(inner, addOne)
	fmt.Println(outer.Size())
	// Output: 3
}

func ExampleComposed_Append() {
	base := Comp(func(i int) int { return i + 1 })
	both := base.Append(func(i int) int { return i * 10 })
	got, _ := both.Call(4)
	fmt.Println(got[0])
	// Output: 41
}

func ExampleComposed_Bind() {
	c := Comp(strings.ToUpper, func(s string) string { return s + "!" })
	var shout func(string) string
	_ = c.Bind(&shout)
	fmt.Println(shout("hey"))
	// Output: HEY!
}

func ExampleConstantly() {
	k := Constantly("answer")
	got, _ := Comp(strings.ToUpper, k).Call("ignored", 42)
	fmt.Println(got[0])
	// Output: ANSWER
}

func ExampleMethod() {
	got, _ := Invoke(Method("Add"), adder{base: 40}, 2)
	fmt.Println(got[0])
	// Output: 42
}

func ExampleInvoke() {
	got, _ := Invoke(strings.Repeat, "ab", 3)
	fmt.Println(got[0])
	// Output: ababab
}
