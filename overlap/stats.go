package overlap

// RunStats contains the stage sizes recorded by an engine run.
type RunStats struct {
	PointsLine1   int
	PointsLine2   int
	HullVertices1 int
	HullVertices2 int
	OverlapLine1  int
	OverlapLine2  int
}

// Stats returns the stage sizes from the most recent Run. It is the
// zero value before the first completed Run.
func (e *Engine) Stats() RunStats {
	return e.stats
}
