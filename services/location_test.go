package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/voice-skill-sdk/config"
)

func testLocationService(t *testing.T, handler http.Handler) *LocationService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.TestInit()
	cfg.Services["location"] = config.ServiceConfig{URL: srv.URL, Version: 1}

	s, err := NewLocationService()
	require.NoError(t, err)
	return s
}

func TestForwardLookup(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/location/geo", r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("city"))
		w.Write([]byte(`{
			"lat": 52.52, "lng": 13.405,
			"address": {"country": "Germany", "addressComponents": {"city": "Berlin", "postalCode": "10115"}},
			"timezone": "Europe/Berlin"
		}`))
	}))

	location, err := s.ForwardLookup(context.Background(), GeoLookupQuery{City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, 52.52, location.Lat)
	assert.Equal(t, "Germany", location.Address.Country)
	assert.Equal(t, "10115", location.Address.AddressComponents.PostalCode)
	assert.Equal(t, "Europe/Berlin", location.Timezone)
}

func TestForwardLookupEmptyQuery(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	}))

	_, err := s.ForwardLookup(context.Background(), GeoLookupQuery{Lang: "de"})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestReverseLookup(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/location/reversegeo", r.URL.Path)
		assert.Equal(t, "52.52", r.URL.Query().Get("lat"))
		assert.Equal(t, "13.405", r.URL.Query().Get("lng"))
		w.Write([]byte(`{"country": "Germany", "addressComponents": {"city": "Berlin", "postalCode": "10115"}}`))
	}))

	address, err := s.ReverseLookup(context.Background(), 52.52, 13.405)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", address.AddressComponents.City)
}

func TestAddressLookup(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/location/address", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"lat": 52.52, "lon": 13.405, "city": "Berlin", "streetName": "Winterfeldtstr."}]`))
	}))

	addresses, err := s.AddressLookup(context.Background(), AddressLookupQuery{StreetName: "Winterfeldtstr."})
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, 13.405, addresses[0].Lon)
	assert.Equal(t, "Berlin", addresses[0].City)
}

func TestAddressLookupNotFound(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	addresses, err := s.AddressLookup(context.Background(), AddressLookupQuery{Country: "Germany"})
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestDeviceLocation(t *testing.T) {
	s := testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/location/device-location", r.URL.Path)
		w.Write([]byte(`{"city": "Bonn", "postalCode": "53113"}`))
	}))

	address, err := s.DeviceLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bonn", address.City)

	s = testLocationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	address, err = s.DeviceLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &FullAddress{}, address)
}
