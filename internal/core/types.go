package core

// Size describes the dimensions of a simulation grid: W columns by H rows.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the frame driver needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}
