package placement_test

import (
	"fmt"

	"github.com/katalvlaran/evenlines/field"
	"github.com/katalvlaran/evenlines/placement"
)

// ExampleRun fills a 20×20 domain over a uniform eastward field. Every
// curve is a horizontal line; neighbours are exactly d_sep apart.
func ExampleRun() {
	f, _ := field.Uniform(20, 20, 0)

	cfg := placement.DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Separation = 1
	cfg.StepLength = 1
	cfg.MaxSteps = 40
	cfg.Start = placement.Point{X: 10, Y: 10}

	res, err := placement.Run(cfg, placement.WithField(f))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("curves:", len(res.Curves))
	fmt.Println("points:", res.Stats.Points)
	for _, c := range res.Curves[:3] {
		fmt.Printf("curve %d: y=%g steps=%d\n", c.ID, c.Step(0).Y, c.Len())
	}

	// Output:
	// curves: 19
	// points: 361
	// curve 0: y=10 steps=19
	// curve 1: y=9 steps=19
	// curve 2: y=11 steps=19
}
