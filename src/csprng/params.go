package csprng

// params describes how much entropy a span needs: the smallest k such that
// 2^k - 1 >= span, the bytes that covers, and the mask 2^k - 1 itself.
type params struct {
	bits  int
	bytes int
	mask  uint64
}

// calcParams derives the sampling parameters for a span (maximum - minimum).
// Pure integer arithmetic: the span is shifted right one bit at a time while
// the mask grows one low bit per iteration, so the resulting mask is the
// minimal all-ones value covering the span. A span of zero needs no entropy.
func calcParams(span uint64) params {
	var p params
	for s := span; s > 0; s >>= 1 {
		if p.bits%8 == 0 {
			p.bytes++
		}
		p.bits++
		p.mask = p.mask<<1 | 1
	}
	return p
}

// BytesNeeded reports how many random bytes a single draw over
// [minimum, maximum] consumes. Callers pre-sizing seeds for
// RandomSeedNumber should use this.
func BytesNeeded(minimum, maximum int64) (int, error) {
	if err := checkBounds(minimum, maximum); err != nil {
		return 0, err
	}
	return calcParams(uint64(maximum - minimum)).bytes, nil
}
