package mux

import (
	"fmt"
	"net/http"

	"pokerhand-server/pkg/card"
	"pokerhand-server/pkg/poker"
)

type handRequest struct {
	Cards string `json:"cards"`
}

type handResponse struct {
	HandType    string   `json:"handType"`
	Cards       []string `json:"cards"`
	Description string   `json:"description"`
}

// parseHand validates untrusted input before it can reach the classifier,
// which treats short or duplicated hands as programmer errors
func parseHand(s string) (card.Hand, error) {
	cards, err := card.ParseCards(s)
	if err != nil {
		return nil, err
	}

	if len(cards) < 5 {
		return nil, fmt.Errorf("need at least 5 cards, got %d", len(cards))
	}

	hand := make(card.Hand, 0, len(cards))
	for _, c := range cards {
		if hand.HasCard(c) {
			return nil, fmt.Errorf("duplicate card: %s", card.CardToString(c))
		}

		hand.AddCard(c)
	}

	return hand, nil
}

func newHandResponse(p poker.PokerHand) handResponse {
	cards := make([]string, len(p.Cards))
	for i, c := range p.Cards {
		cards[i] = card.CardToString(c)
	}

	return handResponse{
		HandType:    p.Type.String(),
		Cards:       cards,
		Description: p.Describe(),
	}
}

func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := parseHand(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(poker.Best(hand)))
	}
}

type compareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type compareResponse struct {
	Winner string       `json:"winner"`
	A      handResponse `json:"a"`
	B      handResponse `json:"b"`
}

func (m *Mux) postHandCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		handA, err := parseHand(req.A)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand a: %s", err))
			return
		}

		handB, err := parseHand(req.B)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand b: %s", err))
			return
		}

		bestA, bestB := poker.Best(handA), poker.Best(handB)

		winner := "tie"
		switch bestA.Compare(bestB) {
		case 1:
			winner = "a"
		case -1:
			winner = "b"
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Winner: winner,
			A:      newHandResponse(bestA),
			B:      newHandResponse(bestB),
		})
	}
}
