package persistent_test

import (
	"fmt"

	"github.com/npillmayer/pds/persistent"
)

func Example() {
	list := persistent.NewList[int]().Add(1).Add(2).Add(3)
	furtherModifiedList := list.Add(4)
	fmt.Printf("Original list=%s => further modified list=%s\n", list, furtherModifiedList)

	set := persistent.NewOrderedSet[string]().Put("A").Put("B").Put("C")
	furtherModifiedSet := set.Remove("B")
	fmt.Printf("Original set=%s => further modified set=%s\n", set, furtherModifiedSet)

	m := persistent.NewOrderedMap[int, string]().Put(1, "one").Put(2, "two")
	furtherModifiedMap := m.Put(3, "three")
	fmt.Printf("Original map=%s => further modified map=%s\n", m, furtherModifiedMap)
	// Output:
	// Original list={1,2,3} => further modified list={1,2,3,4}
	// Original set={A,B,C} => further modified set={A,C}
	// Original map={[1 -> one],[2 -> two]} => further modified map={[1 -> one],[2 -> two],[3 -> three]}
}

func ExampleNewHashSet() {
	set := persistent.NewHashSet[string]().Put("A").Put("B").Put("C")
	fmt.Println(set, set.Remove("B"), set.Contains("B"))
	// Output: {A,B,C} {A,C} true
}

func ExampleNewOrderedSetWith() {
	byLength := func(a, b string) int {
		return len(a) - len(b)
	}
	set, err := persistent.NewOrderedSetWith(byLength)
	if err != nil {
		panic(err)
	}
	set = set.Add("three").Add("one").Add("eleven").Add("two")
	fmt.Println(set, set.Put("six"))
	// Output: {one,three,eleven} {six,three,eleven}
}
