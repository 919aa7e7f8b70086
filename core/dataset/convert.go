package dataset

// Float64To32 returns a copy of the frame where every float64 column is
// converted to float32. Columns of other kinds are carried over unchanged.
// When the frame has no float64 column the receiver itself is returned.
func (f *Frame) Float64To32() *Frame {
	if len(f.NamesOfKind(Float64)) == 0 {
		return f
	}
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		if c.kind != Float64 {
			cols[i] = c
			continue
		}
		v := make([]float32, len(c.f64))
		for j, x := range c.f64 {
			v[j] = float32(x)
		}
		cols[i] = Float32Column(c.name, v)
	}
	return MustNew(cols...)
}
