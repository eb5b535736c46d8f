package types

// PathPair holds the two candidate paths of one logical item.
type PathPair struct {
	Current string
	New     string
}

// MergeRoot is the pair of directory roots under comparison in one
// directory merge.
type MergeRoot struct {
	CurrentRoot string
	NewRoot     string
}
