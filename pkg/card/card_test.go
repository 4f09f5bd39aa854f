package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	c, err := Parse("AS")
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, c)

	c, err = Parse("th")
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Ten, Suit: Hearts}, c)

	c, err = Parse("2c")
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Two, Suit: Clubs}, c)

	for _, bad := range []string{"", "A", "1S", "10S", "AX", "AS ", "ASS"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromString(t *testing.T) {
	assert.Equal(t, Card{Rank: King, Suit: Diamonds}, FromString("KD"))
	assert.Panics(t, func() {
		FromString("ZZ")
	})
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AC,2C, 3C")
	assert.NoError(t, err)
	assert.Equal(t, []Card{
		{Rank: Ace, Suit: Clubs},
		{Rank: Two, Suit: Clubs},
		{Rank: Three, Suit: Clubs},
	}, cards)

	cards, err = ParseCards("")
	assert.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("AC,XX")
	assert.Error(t, err)
}

func TestCardsToString(t *testing.T) {
	in := "AC,2C,TH,KS"
	assert.Equal(t, in, CardsToString(CardsFromString(in)))
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", FromString("AS").String())
	assert.Equal(t, "T♡", FromString("TH").String())
	assert.Equal(t, "2♣", FromString("2C").String())
	assert.Equal(t, "Q♢", FromString("QD").String())
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, FromString("AS").Equal(FromString("as")))
	assert.False(t, FromString("AS").Equal(FromString("AH")))
	assert.False(t, FromString("AS").Equal(FromString("KS")))
}

func TestRank_String(t *testing.T) {
	assert.Equal(t, "A", Ace.String())
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "9", Nine.String())
	assert.Panics(t, func() {
		_ = LowAce.String()
	})
}

func TestHand(t *testing.T) {
	hand := Hand{}
	hand.AddCard(FromString("AS"))
	hand.AddCard(FromString("KH"))

	assert.True(t, hand.HasCard(FromString("KH")))
	assert.False(t, hand.HasCard(FromString("KD")))
	assert.Equal(t, "AS,KH", hand.String())

	clone := hand.Clone()
	clone.AddCard(FromString("2C"))
	assert.Equal(t, 2, len(hand))
	assert.Equal(t, 3, len(clone))
}
