package slotmap_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/slotmap"
)

func Example() {
	m, err := slotmap.New[string](1024)
	if err != nil {
		log.Fatal(err)
	}

	key, err := m.Insert("entity")
	if err != nil {
		log.Fatal(err)
	}

	if v, ok := m.Get(key); ok {
		fmt.Println(*v)
	}

	m.Remove(key)
	fmt.Println(m.Contains(key))
	// Output:
	// entity
	// false
}

// Example_reuse shows that a reused slot does not resurrect old keys.
func Example_reuse() {
	m, err := slotmap.New[string](8)
	if err != nil {
		log.Fatal(err)
	}

	old, _ := m.Insert("first")
	m.Remove(old)

	reused, _ := m.Insert("second")

	fmt.Println(old.Index == reused.Index)
	fmt.Println(m.Contains(old))
	fmt.Println(m.Contains(reused))
	// Output:
	// true
	// false
	// true
}

func ExampleKey_String() {
	fmt.Println(slotmap.Key32{Index: 7, Generation: 2})
	fmt.Println(slotmap.None[uint32, uint32]())
	// Output:
	// 00000007:00000002
	// 00000000:invalid
}
