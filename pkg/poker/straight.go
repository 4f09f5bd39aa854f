package poker

import (
	"math/bits"

	"pokerhand-server/pkg/card"
)

// rankMask is a bitset over card ranks where bit i means rank i is
// present. Bit 1 is reserved for an ace counted low, which lets a wheel
// (A-2-3-4-5) show up as five consecutive set bits.
type rankMask uint16

const aceLowBit = rankMask(1) << uint(card.LowAce)
const aceHighBit = rankMask(1) << uint(card.Ace)

// straightTable maps every Two..Ace rank pattern to the top rank of the
// best straight it contains, or zero if it contains none. Built once from
// the reference algorithm; read-only afterwards.
var straightTable [1 << 13]card.Rank

func init() {
	for pattern := range straightTable {
		if top, ok := straightTopSlow(rankMask(pattern) << uint(card.Two)); ok {
			straightTable[pattern] = top
		}
	}
}

// straightTop returns the top rank of the highest straight in the mask.
// A wheel reports Five, not Ace. The second return value is false if the
// mask holds no straight.
func straightTop(mask rankMask) (card.Rank, bool) {
	top := straightTable[(mask>>uint(card.Two))&0x1fff]
	return top, top != 0
}

// straightTopSlow is the reference algorithm: seed a low-ace copy of the
// ace bit, then shift-and-AND four times. Any surviving bit tops a run of
// five consecutive present ranks, and the highest survivor wins.
func straightTopSlow(mask rankMask) (card.Rank, bool) {
	mask &^= aceLowBit
	if mask&aceHighBit != 0 {
		mask |= aceLowBit
	}

	w := mask
	for i := 0; i < 4; i++ {
		w = (w << 1) & mask
	}

	if w == 0 {
		return 0, false
	}

	return card.Rank(bits.Len16(uint16(w)) - 1), true
}
