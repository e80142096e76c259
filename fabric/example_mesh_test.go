package fabric_test

import (
	"fmt"

	"github.com/plus3/spacefabric/fabric"
)

func ExampleMesh_Update() {
	m, err := fabric.Create(5, 5, 1.0)
	if err != nil {
		panic(err)
	}

	// Drop a mass of 10 on the centre vertex.
	m.Update(m.GridPoint(2, 2), 10.0)

	fmt.Printf("centre: %.0f\n", m.Depth(2, 2))
	fmt.Printf("corner: %.3f\n", m.Depth(0, 0))
	fmt.Println("vertices:", len(m.Vertices()))
	// Output:
	// centre: -10000
	// corner: -3.534
	// vertices: 25
}
