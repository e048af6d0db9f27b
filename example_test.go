package nearmiss_test

import (
	"context"
	"fmt"

	"github.com/fermatlab/nearmiss"
)

func ExampleFinder_Run() {
	finder, err := nearmiss.Search(3).
		Limit(12).
		Build()
	if err != nil {
		panic(err)
	}

	result, err := finder.Run(context.Background())
	if err != nil {
		panic(err)
	}

	best := result.Best
	fmt.Printf("best: %d^3 + %d^3 near %s^3 (checked %d)\n",
		best.X, best.Y, best.Z, result.Checked)
	// Output: best: 10^3 + 12^3 near 14^3 (checked 9)
}

func ExampleFinder_Stream() {
	finder := nearmiss.Search(3).Limit(11).MustBuild()

	for event, err := range finder.Stream(context.Background()) {
		if err != nil {
			panic(err)
		}
		if ev, ok := event.(nearmiss.NewBestEvent); ok {
			fmt.Printf("new best: x=%d y=%d relative miss %.4f\n",
				ev.Record.X, ev.Record.Y, ev.Record.RelativeMiss)
		}
	}
	// Output:
	// new best: x=10 y=10 relative miss 0.0985
	// new best: x=10 y=11 relative miss 0.0575
	// new best: x=11 y=11 relative miss 0.0308
}
