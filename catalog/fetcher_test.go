package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchCatalog_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"products": [{"_id":"p1","slug":"khachapuri","price":10,"title":{"en":"Khachapuri"},"images":"khachapuri.jpg"}],
			"alkohols": [{"_id":"a1","slug":"saperavi","price":20,"name":"Saperavi","isAlcoholic":true,"images":["s1.jpg","s2.jpg"]}]
		}`))
	}))
	defer srv.Close()

	payload, err := NewClient(srv.URL).FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, payload.Products, 1)
	require.Len(t, payload.Alkohols, 1)

	// string-or-array image shapes both normalize
	assert.Equal(t, []string{"khachapuri.jpg"}, []string(payload.Products[0].Images))
	assert.Equal(t, []string{"s1.jpg", "s2.jpg"}, []string(payload.Alkohols[0].Images))
	assert.True(t, payload.Alkohols[0].IsAlcoholic)
}

func TestClientFetchCatalog_ServerReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "catalog rebuild in progress"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchCatalog(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "catalog rebuild in progress")
}

func TestClientFetchCatalog_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchCatalog(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
}

func TestClientFetchCatalog_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchCatalog(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
