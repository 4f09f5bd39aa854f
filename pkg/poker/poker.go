package poker

import (
	"fmt"
	"math/bits"

	"pokerhand-server/pkg/card"
)

// PokerHand is a classified five-card hand. Cards are stored from most to
// least significant, so kickers always occupy the same trailing positions
// for any two hands of the same type.
type PokerHand struct {
	Type  HandType  `json:"type"`
	Cards card.Hand `json:"cards"`
}

// rankCounts is the result of the high-to-low rank scan
type rankCounts struct {
	quad  card.Rank
	trip  card.Rank
	pair1 card.Rank
	pair2 card.Rank

	hand HandType
}

// Best classifies the cards into the best five-card poker hand they can
// make. The input must hold at least five distinct cards from a single
// standard deck; anything else is a programmer error and panics.
func Best(cards []card.Card) PokerHand {
	if len(cards) < 5 {
		panic(fmt.Sprintf("cannot classify %d cards", len(cards)))
	}

	var cm CardMap
	var suitMasks [4]rankMask
	for _, c := range cards {
		if !cm.Add(c) {
			panic(fmt.Sprintf("duplicate card: %s", c))
		}

		suitMasks[c.Suit] |= 1 << uint(c.Rank)
	}

	if hand, ok := bestStraightFlush(suitMasks); ok {
		return hand
	}

	rc := scanRanks(cm)

	if rc.hand == FourOfAKind {
		hand := popRun(&cm, rc.quad, 4)
		hand.AddCard(cm.PopHighest())
		return PokerHand{Type: FourOfAKind, Cards: hand}
	}

	if rc.hand == FullHouse {
		hand := popRun(&cm, rc.trip, 3)
		hand = append(hand, popRun(&cm, rc.pair1, 2)...)
		return PokerHand{Type: FullHouse, Cards: hand}
	}

	if hand, ok := bestFlush(suitMasks); ok {
		return hand
	}

	union := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]
	if top, ok := straightTop(union); ok {
		hand := make(card.Hand, 0, 5)
		for i := 0; i < 5; i++ {
			// the bottom of a wheel comes out of the map as an ace
			hand.AddCard(cm.PopAtRank(top - card.Rank(i)))
		}

		return PokerHand{Type: Straight, Cards: hand}
	}

	switch rc.hand {
	case ThreeOfAKind:
		hand := popRun(&cm, rc.trip, 3)
		hand.AddCard(cm.PopHighest())
		hand.AddCard(cm.PopHighest())
		return PokerHand{Type: ThreeOfAKind, Cards: hand}
	case TwoPair:
		hand := popRun(&cm, rc.pair1, 2)
		hand = append(hand, popRun(&cm, rc.pair2, 2)...)
		hand.AddCard(cm.PopHighest())
		return PokerHand{Type: TwoPair, Cards: hand}
	case OnePair:
		hand := popRun(&cm, rc.pair1, 2)
		for i := 0; i < 3; i++ {
			hand.AddCard(cm.PopHighest())
		}
		return PokerHand{Type: OnePair, Cards: hand}
	}

	hand := make(card.Hand, 0, 5)
	for i := 0; i < 5; i++ {
		hand.AddCard(cm.PopHighest())
	}

	return PokerHand{Type: HighCard, Cards: hand}
}

// bestStraightFlush checks each suit's rank mask for a straight
func bestStraightFlush(suitMasks [4]rankMask) (PokerHand, bool) {
	var bestTop card.Rank
	var bestSuit card.Suit
	for suit, mask := range suitMasks {
		if top, ok := straightTop(mask); ok && top > bestTop {
			bestTop = top
			bestSuit = card.Suit(suit)
		}
	}

	if bestTop == 0 {
		return PokerHand{}, false
	}

	hand := make(card.Hand, 0, 5)
	for i := 0; i < 5; i++ {
		rank := bestTop - card.Rank(i)
		if rank == card.LowAce {
			rank = card.Ace
		}

		hand.AddCard(card.Card{Rank: rank, Suit: bestSuit})
	}

	return PokerHand{Type: StraightFlush, Cards: hand}, true
}

// bestFlush picks the suit holding five or more cards whose mask is
// numerically largest. Higher bits dominate the integer comparison, so
// that suit has the best top card, then the best second card, and so on.
func bestFlush(suitMasks [4]rankMask) (PokerHand, bool) {
	var bestMask rankMask
	var bestSuit card.Suit
	for suit, mask := range suitMasks {
		if bits.OnesCount16(uint16(mask)) >= 5 && mask > bestMask {
			bestMask = mask
			bestSuit = card.Suit(suit)
		}
	}

	if bestMask == 0 {
		return PokerHand{}, false
	}

	hand := make(card.Hand, 0, 5)
	for len(hand) < 5 {
		rank := card.Rank(bits.Len16(uint16(bestMask)) - 1)
		bestMask &^= 1 << uint(rank)
		hand.AddCard(card.Card{Rank: rank, Suit: bestSuit})
	}

	return PokerHand{Type: Flush, Cards: hand}, true
}

// scanRanks walks the ranks from ace down to deuce and records the best
// quad, trip, and two pairs, along with the category they make before
// flushes and straights are considered.
//
// Scanning high to low is what makes ties land on the stronger rank: the
// first trip found is the best trip, and a second trip becomes the pair
// half of a full house rather than its own three-of-a-kind.
func scanRanks(m CardMap) rankCounts {
	rc := rankCounts{hand: HighCard}

	for r := card.Ace; r >= card.Two; r-- {
		switch m.CountAtRank(r) {
		case 4:
			// nothing below can beat quads in this scan
			rc.quad = r
			rc.hand = FourOfAKind
			return rc
		case 3:
			if rc.trip == 0 {
				rc.trip = r
			} else if rc.pair1 == 0 {
				rc.pair1 = r
			}

			if rc.pair1 != 0 {
				rc.hand = FullHouse
			} else {
				rc.hand = ThreeOfAKind
			}
		case 2:
			if rc.pair1 == 0 {
				rc.pair1 = r
				if rc.trip != 0 {
					rc.hand = FullHouse
				} else {
					rc.hand = OnePair
				}
			} else if rc.pair2 == 0 {
				rc.pair2 = r

				// a pair below a full house must not downgrade it
				if rc.hand == OnePair {
					rc.hand = TwoPair
				}
			}
		}
	}

	return rc
}

// popRun drains n cards of the given rank from the map
func popRun(m *CardMap, rank card.Rank, n int) card.Hand {
	hand := make(card.Hand, 0, 5)
	for i := 0; i < n; i++ {
		hand.AddCard(m.PopAtRank(rank))
	}

	return hand
}

// Compare returns 1 if p beats o, -1 if o beats p, and 0 on a tie.
// Hand types compare by ordinal; equal types fall back to the stored
// five cards in order, by rank only. Suits never break ties.
func (p PokerHand) Compare(o PokerHand) int {
	if p.Type != o.Type {
		if p.Type > o.Type {
			return 1
		}

		return -1
	}

	for i, c := range p.Cards {
		if c.Rank != o.Cards[i].Rank {
			if c.Rank > o.Cards[i].Rank {
				return 1
			}

			return -1
		}
	}

	return 0
}
