package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/saeedNW/go-divar/config"
)

// AddressDetail is the location information derived from a coordinate.
type AddressDetail struct {
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Address  string `json:"address"`
}

// mapAPIResp mirrors the map.ir fast-reverse payload. Older deployments
// return the district under "region".
type mapAPIResp struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Region   string `json:"region"`
	District string `json:"district"`
	Address  string `json:"address"`
}

// MapClient calls the map.ir reverse geocoding API.
type MapClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewMapClient builds a geocoding client from configuration.
func NewMapClient(cfg config.AppConfig) *MapClient {
	return &MapClient{
		baseURL: cfg.MapURL,
		apiKey:  cfg.MapAPIKey,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ReverseGeocode resolves a lat/lng pair into address details. Both values
// being zero is treated as "no coordinate given" and yields an empty result.
func (m *MapClient) ReverseGeocode(ctx context.Context, lat, lng float64) (AddressDetail, error) {
	if lat == 0 && lng == 0 {
		return AddressDetail{}, nil
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f", m.baseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return AddressDetail{}, err
	}
	req.Header.Set("x-api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return AddressDetail{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return AddressDetail{}, errors.New("map api non-200")
	}

	var body mapAPIResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return AddressDetail{}, err
	}

	district := body.Region
	if district == "" {
		district = body.District
	}
	return AddressDetail{
		Province: body.Province,
		City:     body.City,
		District: district,
		Address:  body.Address,
	}, nil
}
