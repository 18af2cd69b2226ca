package demos

import (
	"context"
	"strconv"

	"github.com/vignesh-goutham/solid/pkg/shapes"
)

// Area sums the areas of a set of shapes.
type Area struct {
	shapes []shapes.Shape
}

// NewArea creates an area demo. With no shapes it sums a 10 square and a 3x4 rectangle.
func NewArea(s ...shapes.Shape) *Area {
	if len(s) == 0 {
		s = []shapes.Shape{shapes.NewSquare(10), shapes.NewRectangle(3, 4)}
	}
	return &Area{shapes: s}
}

func (d *Area) Name() string { return NameArea }

func (d *Area) Run(_ context.Context) (Result, error) {
	total := shapes.Calculator{}.Sum(d.shapes...)
	return Result{Demo: d.Name(), Output: strconv.FormatFloat(total, 'f', -1, 64)}, nil
}
