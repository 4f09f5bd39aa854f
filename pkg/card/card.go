package card

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit. The ordinal is only an encoding detail;
// suits never affect hand strength.
type Suit int

// suit constants, in deck order
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

// Rank represents a card rank, valued by strength with the ace high
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// LowAce is the rank of an ace counted as one. It only exists while
// detecting and unwinding wheel straights; a stored card never has it.
const LowAce Rank = 1

const rankChars = "23456789TJQKA"

func (r Rank) String() string {
	if r < Two || r > Ace {
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}

	return string(rankChars[r-Two])
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9TJQKA])([SHDC])\z`)

// Parse returns a Card from a two-character token.
// The token must be in the format of <rank><suit> where rank is one of
// 23456789TJQKA and suit is one of SHDC, case-insensitive.
func Parse(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	rank := Rank(strings.IndexByte(rankChars, strings.ToUpper(match[1])[0])) + Two

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// FromString returns a Card from the string, panicking on malformed input.
// Intended for trusted input such as test fixtures; use Parse elsewhere.
func FromString(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}

	return c
}

// ParseCards parses a comma-separated list of card tokens
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, token := range cardStrings {
		c, err := Parse(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// CardsFromString will return a slice of cards, panicking on malformed input
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err.Error())
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a token (AC)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	}

	return fmt.Sprintf("%s%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
