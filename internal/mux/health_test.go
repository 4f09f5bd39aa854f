package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_getHealth(t *testing.T) {
	ts := newTestServer(t)

	var resp healthResponse
	assertGet(t, ts, "/health", &resp, http.StatusOK)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "v-test", resp.Version)
}
