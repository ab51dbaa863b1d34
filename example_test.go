package sheetengine_test

import (
	"fmt"

	"github.com/gridengine/sheetengine"
	"github.com/gridengine/sheetengine/grid"
)

func Example() {
	s := sheetengine.NewSheet()
	if err := s.SetCell(grid.ParsePosition("A1"), "10"); err != nil {
		panic(err)
	}
	if err := s.SetCell(grid.ParsePosition("A2"), "=A1*2"); err != nil {
		panic(err)
	}

	cell, err := s.GetCell(grid.ParsePosition("A2"))
	if err != nil {
		panic(err)
	}
	fmt.Println(cell.Value())

	if err := s.SetCell(grid.ParsePosition("A1"), "21"); err != nil {
		panic(err)
	}
	fmt.Println(cell.Value())

	// Output:
	// 20
	// 42
}
