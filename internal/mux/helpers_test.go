package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"showdown-server/internal/config"
	"showdown-server/pkg/deck"
)

type testCombination struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type testShowdownResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Game struct {
		ID        string `json:"id"`
		HoleCards int    `json:"holeCards"`
	} `json:"game"`
	Hands []struct {
		Cards       deck.Hand       `json:"cards"`
		Combination testCombination `json:"combination"`
	} `json:"hands"`
	Groups []struct {
		Combination testCombination `json:"combination"`
		Hands       []deck.Hand     `json:"hands"`
	} `json:"groups"`
	Winners []deck.Hand `json:"winners"`
}

func newTestServer() *httptest.Server {
	return httptest.NewServer(NewMux("v1.2.3", config.DefaultConfig()))
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
