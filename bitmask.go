package kotei

import "math/bits"

// presence is a fixed-size bitset of entity liveness flags. Bit n is set when
// Eid n is live. It replaces a []bool presence table so that Count and the
// first-free scan in Create walk 64 entities per step.
type presence []uint64

// newPresence returns a bitset able to hold n flags, all cleared.
func newPresence(n int) presence {
	return make(presence, (n+63)>>6)
}

// set marks bit as live.
func (m presence) set(bit Eid) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << o
}

// unset clears the live flag of bit.
func (m presence) unset(bit Eid) {
	i := bit >> 6
	o := bit & 63
	m[i] &= ^(uint64(1) << o)
}

// contains reports whether bit is set.
func (m presence) contains(bit Eid) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << o)) != 0
}

// firstClear returns the lowest cleared bit in [from, limit), or limit if
// every bit in the range is set.
func (m presence) firstClear(from, limit Eid) Eid {
	for i := int(from >> 6); i < len(m); i++ {
		word := ^m[i]
		if i == int(from>>6) {
			// ignore bits below from
			word &= ^uint64(0) << (from & 63)
		}
		if word == 0 {
			continue
		}
		bit := Eid(i<<6) + Eid(bits.TrailingZeros64(word))
		if bit >= limit {
			return limit
		}
		return bit
	}
	return limit
}

// count returns the number of set bits.
func (m presence) count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return n
}
