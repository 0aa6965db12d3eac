package layout

// Partition splits refs into consecutive groups of the given size, preserving
// input order. Every group has exactly size elements except the last, which
// holds whatever remains. Concatenating the groups reproduces refs.
// size must be positive; a non-positive size returns nil.
func Partition(refs []string, size int) [][]string {
	if size <= 0 || len(refs) == 0 {
		return nil
	}

	groups := make([][]string, 0, (len(refs)+size-1)/size)
	for start := 0; start < len(refs); start += size {
		end := start + size
		if end > len(refs) {
			end = len(refs)
		}
		groups = append(groups, refs[start:end])
	}
	return groups
}
