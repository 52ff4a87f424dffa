package mux

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_postClassify(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	a := assert.New(t)

	var resp struct {
		Cards       []struct{ Rank int } `json:"cards"`
		Combination testCombination      `json:"combination"`
	}
	assertPost(t, ts, "/classify", postClassifyPayload{Cards: "Ah 2d 3c 4s 5h"}, &resp, 200)
	a.Len(resp.Cards, 5)
	a.Equal(14, resp.Cards[0].Rank)
	a.Equal("straight", resp.Combination.Kind)
	a.Equal("Straight (A to 5)", resp.Combination.Description)

	assertPost(t, ts, "/classify", postClassifyPayload{Cards: "Kc,7d,7h,7s,7c"}, &resp, 200)
	a.Equal("Four of a kind (7, kicker K)", resp.Combination.Description)

	var errObj errorResponse
	assertPost(t, ts, "/classify", postClassifyPayload{Cards: "Ah 2d 3c 4s"}, &errObj, 400)
	a.Equal("invalid number of cards: variant requires 5 cards, got 4", errObj.Message)
	a.Equal(400, errObj.StatusCode)

	assertPost(t, ts, "/classify", postClassifyPayload{Cards: "Ah 2d 3c 4s 1s"}, &errObj, 400)
	a.Equal(`invalid card: "1s"`, errObj.Message)

	assertPost(t, ts, "/classify", postClassifyPayload{Cards: "Ah 2d 3c 4s Ah"}, &errObj, 400)
	a.Equal("duplicate card: A♡", errObj.Message)

	assertPost(t, ts, "/classify", "{", &errObj, 400)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/classify", strings.NewReader(`{"cards":"Ah 2d 3c 4s 5h"}`))
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, &errObj, 415)
	a.Equal("Unsupported Media Type", errObj.Message)
}
