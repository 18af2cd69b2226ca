package shapes

// Calculator totals areas and volumes. New shapes only need to implement
// Shape or Solid to be summed.
type Calculator struct{}

// Sum returns the total area of shapes.
func (Calculator) Sum(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// SumVolumes returns the total volume of solids.
func (Calculator) SumVolumes(solids ...Solid) float64 {
	var total float64
	for _, s := range solids {
		total += s.Volume()
	}
	return total
}
