package poker

import (
	"fmt"

	"pokerhand-server/pkg/card"
)

// spelled-out rank names, indexed from Two
var rankNames = [...]string{
	"Deuce", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

var rankPlurals = [...]string{
	"Deuces", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights",
	"Nines", "Tens", "Jacks", "Queens", "Kings", "Aces",
}

func rankName(r card.Rank) string {
	return rankNames[r-card.Two]
}

func rankPlural(r card.Rank) string {
	return rankPlurals[r-card.Two]
}

// Describe renders the hand as English text, e.g. "Full House, Kings over
// Fours". It reads the cards at the fixed positions each hand type fills.
func (p PokerHand) Describe() string {
	switch p.Type {
	case StraightFlush:
		if p.Cards[0].Rank == card.Ace {
			return "Royal Flush"
		}

		return fmt.Sprintf("Straight Flush, %s High", rankName(p.Cards[0].Rank))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", rankPlural(p.Cards[0].Rank))
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", rankPlural(p.Cards[0].Rank), rankPlural(p.Cards[3].Rank))
	case Flush:
		return fmt.Sprintf("Flush, %s High", rankName(p.Cards[0].Rank))
	case Straight:
		return fmt.Sprintf("Straight, %s High", rankName(p.Cards[0].Rank))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankPlural(p.Cards[0].Rank))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlural(p.Cards[0].Rank), rankPlural(p.Cards[2].Rank))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankPlural(p.Cards[0].Rank))
	default:
		return fmt.Sprintf("High Card, %s", rankName(p.Cards[0].Rank))
	}
}
