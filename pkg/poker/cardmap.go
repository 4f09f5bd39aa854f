package poker

import (
	"fmt"
	"math/bits"

	"pokerhand-server/pkg/card"
)

// CardMap is a 52-bit presence set with one bit per (rank, suit) pair.
// The bit for a card sits at rank*4 + suit, so the numerically highest
// set bit always belongs to the strongest remaining card.
type CardMap uint64

func cardBit(c card.Card) CardMap {
	return 1 << (uint(c.Rank)*4 + uint(c.Suit))
}

// Add sets the bit for the card.
// It returns true if the card was not already present.
func (m *CardMap) Add(c card.Card) bool {
	bit := cardBit(c)
	if *m&bit != 0 {
		return false
	}

	*m |= bit
	return true
}

// Remove clears the bit for the card.
// It returns true if the card had been present.
func (m *CardMap) Remove(c card.Card) bool {
	bit := cardBit(c)
	if *m&bit == 0 {
		return false
	}

	*m &^= bit
	return true
}

// Len returns the number of cards in the map
func (m CardMap) Len() int {
	return bits.OnesCount64(uint64(m))
}

// CountAtRank returns how many cards of the given rank remain (0-4)
func (m CardMap) CountAtRank(r card.Rank) int {
	if r < card.Two || r > card.Ace {
		panic(fmt.Sprintf("invalid rank: %d", int(r)))
	}

	return bits.OnesCount64(uint64(m>>(uint(r)*4)) & 0xf)
}

// PopHighest removes and returns the highest-ranked card in the map.
// The map must not be empty.
func (m *CardMap) PopHighest() card.Card {
	if *m == 0 {
		panic("pop on an empty card map")
	}

	pos := uint(bits.Len64(uint64(*m))) - 1
	*m &^= 1 << pos

	return card.Card{Rank: card.Rank(pos / 4), Suit: card.Suit(pos % 4)}
}

// PopAtRank removes and returns a remaining card of the given rank.
// A low ace is an alias for the ace; this only happens while a wheel
// straight is being drained. At least one card of the rank must remain.
func (m *CardMap) PopAtRank(r card.Rank) card.Card {
	if r == card.LowAce {
		r = card.Ace
	}

	if r < card.Two || r > card.Ace {
		panic(fmt.Sprintf("invalid rank: %d", int(r)))
	}

	nibble := uint64(*m>>(uint(r)*4)) & 0xf
	if nibble == 0 {
		panic(fmt.Sprintf("no cards left at rank %d", int(r)))
	}

	suit := uint(bits.Len64(nibble)) - 1
	*m &^= 1 << (uint(r)*4 + suit)

	return card.Card{Rank: r, Suit: card.Suit(suit)}
}
