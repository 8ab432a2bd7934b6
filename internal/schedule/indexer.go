package schedule

// Indexer gives a unique SAT variable to a combination of match attributes
// (week, period, host, guest) and vice versa
type Indexer interface {
	// Returns the variable recorded for the attribute combination, allocating
	// the next unused one on first sight; variables are dense and start at 1
	Index(week, period, host, guest uint64) uint64
	// Returns the attribute combination recorded for a variable; ok is false
	// for variables this indexer never allocated
	Attributes(index uint64) (week, period, host, guest uint64, ok bool)
	// Returns the number of variables allocated so far
	Len() uint64
}

func NewIndexer() Indexer {
	return &lazyIndexer{
		indices: map[matchKey]uint64{},
	}
}
