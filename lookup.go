package img2ascii

// ColumnLookup maps each output column to the offset in a scanline where
// its source pixel starts. It is immutable once built.
type ColumnLookup []int

// BuildColumnLookup picks source column floor(x*srcWidth/width) for each
// output column x and scales it by the number of interleaved components
// per pixel. Integer arithmetic keeps the floor exact.
func BuildColumnLookup(srcWidth, width, components int) ColumnLookup {
	lookup := make(ColumnLookup, width)
	for x := range lookup {
		lookup[x] = x * srcWidth / width * components
	}
	return lookup
}
