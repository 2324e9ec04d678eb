package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeedNW/go-divar/config"
)

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "map-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"province":"تهران","city":"تهران","region":"منطقه ۲","address":"سعادت آباد"}`))
	}))
	defer srv.Close()

	client := NewMapClient(config.AppConfig{MapURL: srv.URL, MapAPIKey: "map-key"})
	detail, err := client.ReverseGeocode(context.Background(), 35.78, 51.37)
	require.NoError(t, err)

	assert.Equal(t, "تهران", detail.Province)
	assert.Equal(t, "تهران", detail.City)
	assert.Equal(t, "منطقه ۲", detail.District)
	assert.Equal(t, "سعادت آباد", detail.Address)
}

func TestReverseGeocode_DistrictFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"province":"فارس","city":"شیراز","district":"زند"}`))
	}))
	defer srv.Close()

	client := NewMapClient(config.AppConfig{MapURL: srv.URL, MapAPIKey: "map-key"})
	detail, err := client.ReverseGeocode(context.Background(), 29.61, 52.53)
	require.NoError(t, err)
	assert.Equal(t, "زند", detail.District)
}

func TestReverseGeocode_ZeroCoordinate(t *testing.T) {
	client := NewMapClient(config.AppConfig{MapURL: "http://127.0.0.1:1", MapAPIKey: "map-key"})
	detail, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, AddressDetail{}, detail)
}

func TestReverseGeocode_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewMapClient(config.AppConfig{MapURL: srv.URL, MapAPIKey: "wrong"})
	_, err := client.ReverseGeocode(context.Background(), 35.78, 51.37)
	assert.Error(t, err)
}
