package diffing

// pair links an entry index in snapshot a to one in snapshot b. A negative
// index marks an entry present on one side only.
type pair struct {
	aIdx int
	bIdx int
}

// alignByKey aligns two ordered lists by a stable identity key. It reports
// aligned=false when either list repeats a key, in which case the caller
// falls back to positional alignment for the whole list (keeping Compare
// symmetric). Pair order: entries of a in order, then b-only entries in
// order.
func alignByKey(aLen, bLen int, aKey, bKey func(int) string) (pairs []pair, aligned bool) {
	aByKey := make(map[string]int, aLen)
	for i := 0; i < aLen; i++ {
		key := aKey(i)
		if _, dup := aByKey[key]; dup {
			return nil, false
		}
		aByKey[key] = i
	}

	bByKey := make(map[string]int, bLen)
	for i := 0; i < bLen; i++ {
		key := bKey(i)
		if _, dup := bByKey[key]; dup {
			return nil, false
		}
		bByKey[key] = i
	}

	pairs = make([]pair, 0, aLen+bLen)
	for i := 0; i < aLen; i++ {
		if j, found := bByKey[aKey(i)]; found {
			pairs = append(pairs, pair{aIdx: i, bIdx: j})
		} else {
			pairs = append(pairs, pair{aIdx: i, bIdx: -1})
		}
	}
	for j := 0; j < bLen; j++ {
		if _, found := aByKey[bKey(j)]; !found {
			pairs = append(pairs, pair{aIdx: -1, bIdx: j})
		}
	}
	return pairs, true
}

// alignByPosition pairs entries index-by-index; surplus entries on either
// side become one-sided pairs.
func alignByPosition(aLen, bLen int) []pair {
	shared := aLen
	if bLen < shared {
		shared = bLen
	}

	pairs := make([]pair, 0, aLen+bLen-shared)
	for i := 0; i < shared; i++ {
		pairs = append(pairs, pair{aIdx: i, bIdx: i})
	}
	for i := shared; i < aLen; i++ {
		pairs = append(pairs, pair{aIdx: i, bIdx: -1})
	}
	for j := shared; j < bLen; j++ {
		pairs = append(pairs, pair{aIdx: -1, bIdx: j})
	}
	return pairs
}
