package internal

// WalkBack follows cameFrom from node until it reaches a node with no
// predecessor. The returned chain starts at node and ends at that root.
func WalkBack[NodeType comparable](cameFrom map[NodeType]NodeType, node NodeType) []NodeType {
	chain := []NodeType{node}
	// a predecessor chain never visits more nodes than the map holds keys
	for range len(cameFrom) {
		previousNode, exists := cameFrom[node]
		if !exists {
			break
		}
		chain = append(chain, previousNode)
		node = previousNode
	}
	return chain
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
