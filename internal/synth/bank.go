package synth

// NotFound is returned by passes and the height loop when no term matching
// the target signature was produced.
const NotFound = -1

// passRecord remembers one completed pass: what kind it was, the height it
// ran at, and the bank size right after it finished. Together the records
// fully describe how to decode any bank index.
type passRecord struct {
	kind   PassKind
	height int
	end    int
}

// bank is the append-only columnar store of every synthesized term. A term's
// index is dense and stable for the bank's lifetime; children always have
// strictly smaller indices than the terms built from them.
type bank struct {
	// results[t] is term t's evaluation signature, masked to the working
	// example set.
	results []uint32

	// lefts[t] is a variable index for Variable terms, otherwise a bank
	// index. rights[t] is only meaningful for binary terms.
	lefts  []int32
	rights []int32

	passes []passRecord
}

func (b *bank) size() int {
	return len(b.results)
}

// addUnary appends a Variable or Not term and returns its index.
func (b *bank) addUnary(result uint32, left int32) int {
	b.results = append(b.results, result)
	b.lefts = append(b.lefts, left)
	b.rights = append(b.rights, 0)
	return len(b.results) - 1
}

// addBinary appends an And/Or/Xor term and returns its index.
func (b *bank) addBinary(result uint32, left, right int32) int {
	b.results = append(b.results, result)
	b.lefts = append(b.lefts, left)
	b.rights = append(b.rights, right)
	return len(b.results) - 1
}

func (b *bank) recordPass(kind PassKind, height int) {
	b.passes = append(b.passes, passRecord{kind: kind, height: height, end: b.size()})
}

// heightStart returns the first bank index introduced by a pass at height h.
// heightEnd returns one past the last. Before any pass has run at h the
// range is empty.
func (b *bank) heightStart(h int) int {
	start := 0
	for _, p := range b.passes {
		if p.height == h {
			return start
		}
		start = p.end
	}
	return 0
}

func (b *bank) heightEnd(h int) int {
	end := 0
	for _, p := range b.passes {
		if p.height == h {
			end = p.end
		}
	}
	return end
}

// lastNotEnd returns the bank size after the most recent Not pass, or 0 if
// none has run. The next Not pass negates everything added since.
func (b *bank) lastNotEnd() int {
	end := 0
	for _, p := range b.passes {
		if p.kind == PassNot {
			end = p.end
		}
	}
	return end
}

// passAt returns the record of the pass that introduced the given term.
func (b *bank) passAt(index int) passRecord {
	for _, p := range b.passes {
		if index < p.end {
			return p
		}
	}
	// Reconstruction only runs after the winning pass is recorded.
	panic("synth: term index beyond recorded passes")
}
