package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand").Handler(this.postHand())
	r.Methods(http.MethodPost).Path("/hand/compare").Handler(this.postHandCompare())
	r.Methods(http.MethodGet).Path("/hand/ws").Handler(this.getHandWS())

	return this
}
