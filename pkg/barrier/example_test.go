package barrier_test

import (
	"fmt"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/random"
)

func ExampleGenerator_Generate() {
	g, _ := grid.New(100, 100)
	gen := barrier.NewGenerator()

	res, err := gen.Generate(g, barrier.KindSpots, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", len(res.Locations))
	fmt.Println("centers:", res.Centers)
	// Output:
	// cells: 405
	// centers: [(50,16) (50,32) (50,48) (50,64) (50,80)]
}

func ExampleGenerator_Generate_seeded() {
	g, _ := grid.New(100, 100)
	gen := barrier.NewGenerator()

	first, _ := gen.Generate(g, barrier.KindIslands, random.New(42))
	firstCenters := first.Centers

	g.ZeroFill()
	second, _ := gen.Generate(g, barrier.KindIslands, random.New(42))

	fmt.Println("islands:", len(second.Centers))
	fmt.Println("same centers:", fmt.Sprint(firstCenters) == fmt.Sprint(second.Centers))
	// Output:
	// islands: 12
	// same centers: true
}
