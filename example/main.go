package main

import (
	"fmt"
	"strings"

	"github.com/artificial-james/pullstreams"
)

func main() {
	words := []string{"pull", "based", "lazy", "stream", "combinators"}

	// Nothing runs until Collect pulls elements through the chain.
	shouting := pullstreams.Map(
		pullstreams.From(words).
			Filter(func(w string) bool { return len(w) > 4 }).
			Peek(func(w string) { fmt.Println("passing:", w) }),
		strings.ToUpper,
	)
	fmt.Println(shouting.Collect())

	total := pullstreams.Sum(pullstreams.Of(1, 2, 3, 4).Chain(pullstreams.Counting(10, 3)))
	fmt.Println("total:", total.Unwrap())

	// Draining consumes the caller's slice as a side effect.
	queue := []string{"first", "second", "third"}
	pullstreams.Draining(&queue).Limit(2).ForEachIndexed(func(i int, v string) {
		fmt.Printf("%d: %s\n", i, v)
	})
	fmt.Println("left in queue:", queue)
}
