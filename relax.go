package gridpath

// RelaxProposal is a candidate improvement for the path to one neighbour of
// the cell being expanded.
type RelaxProposal struct {
	FromNode Cell
	ToNode   Cell
	GScore   float64
	FCost    float64
}

// propose prices the uniform-cost edge from -> to.
func propose(from Cell, fromG float64, to Cell, goal Cell, heuristic Heuristic) RelaxProposal {
	tentativeG := fromG + 1
	return RelaxProposal{
		FromNode: from,
		ToNode:   to,
		GScore:   tentativeG,
		FCost:    tentativeG + heuristic(to, goal),
	}
}
