package schedule

type matchKey struct {
	week, period, host, guest uint64
}

// lazyIndexer allocates variables in first-seen order, so only attribute
// combinations some constraint actually references are ever materialized.
type lazyIndexer struct {
	indices    map[matchKey]uint64
	attributes []matchKey
}

func (i *lazyIndexer) Index(week, period, host, guest uint64) uint64 {
	key := matchKey{week: week, period: period, host: host, guest: guest}
	if index, ok := i.indices[key]; ok {
		return index
	}

	i.attributes = append(i.attributes, key)
	index := uint64(len(i.attributes))
	i.indices[key] = index
	return index
}

func (i *lazyIndexer) Attributes(index uint64) (week, period, host, guest uint64, ok bool) {
	if index == 0 || index > uint64(len(i.attributes)) {
		return 0, 0, 0, 0, false
	}
	key := i.attributes[index-1]
	return key.week, key.period, key.host, key.guest, true
}

func (i *lazyIndexer) Len() uint64 {
	return uint64(len(i.attributes))
}
