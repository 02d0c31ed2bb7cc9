package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/remib/phonestore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewProductBuilder().
		WithName("Nova 5G").
		WithPrice(499.99).
		WithSpecs(map[string]string{"screen": "6.1\"", "storage": "128GB"}).
		Build(t, ts.DB.DB)
	testutil.NewProductBuilder().
		WithName("Aster Mini").
		WithPrice(299.00).
		Build(t, ts.DB.DB)

	// No auth required
	resp, err := http.Get(ts.APIURL("/products"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		ImageURL string  `json:"imageUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 2)
	assert.Equal(t, "Nova 5G", products[0].Name)
	assert.InDelta(t, 499.99, products[0].Price, 0.001)
	assert.Equal(t, "Aster Mini", products[1].Name)
}

func TestProductHandler_List_EmptyCatalog(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/products"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Empty(t, products)
}
