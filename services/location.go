package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// ErrEmptyQuery is returned when a lookup is attempted without any query
// component.
var ErrEmptyQuery = apperrors.New("lookup query is missing or empty")

// GeoLocation is a pair of geo-coordinates.
type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressComponents holds the city and postal code of an address.
type AddressComponents struct {
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// Address is a country with address components.
type Address struct {
	Country           string            `json:"country"`
	AddressComponents AddressComponents `json:"addressComponents"`
}

// FullLocation is an address with geo-coordinates and timezone.
type FullLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Address  Address `json:"address"`
	Timezone string  `json:"timezone"`
}

// FullAddress is a complete address as the address lookup returns it.
// The longitude field is "lon" here, not "lng".
type FullAddress struct {
	Lat          float64 `json:"lat,omitempty"`
	Lon          float64 `json:"lon,omitempty"`
	Country      string  `json:"country,omitempty"`
	City         string  `json:"city,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"`
	StreetName   string  `json:"streetName,omitempty"`
	StreetNumber string  `json:"streetNumber,omitempty"`
}

// GeoLookupQuery selects a location for the forward lookup. At least one
// component is required.
type GeoLookupQuery struct {
	Country    string
	City       string
	PostalCode string
	Lang       string
}

// AddressLookupQuery selects addresses for the address lookup. At least one
// component is required.
type AddressLookupQuery struct {
	Country      string
	PostalCode   string
	StreetName   string
	StreetNumber string
	Lang         string
	Limit        int
}

// LocationService resolves addresses and geo-coordinates.
type LocationService struct {
	*Client
}

// NewLocationService creates a client for the configured location service.
func NewLocationService() (*LocationService, error) {
	c, err := NewClient("location")
	if err != nil {
		return nil, err
	}
	return &LocationService{Client: c}, nil
}

// ForwardLookup resolves geo-coordinates from textual address components.
func (s *LocationService) ForwardLookup(ctx context.Context, q GeoLookupQuery) (*FullLocation, error) {
	if q.Country == "" && q.City == "" && q.PostalCode == "" {
		return nil, ErrEmptyQuery
	}
	params := url.Values{}
	setParam(params, "country", q.Country)
	setParam(params, "city", q.City)
	setParam(params, "postalcode", q.PostalCode)
	setParam(params, "lang", q.Lang)

	data, err := s.Get(ctx, "/geo", params)
	if err != nil {
		return nil, err
	}
	location := &FullLocation{}
	if err := json.Unmarshal(data, location); err != nil {
		return nil, ErrRequestFailed.Err(err)
	}
	return location, nil
}

// ReverseLookup resolves address components from geo-coordinates.
func (s *LocationService) ReverseLookup(ctx context.Context, lat, lng float64) (*Address, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	data, err := s.Get(ctx, "/reversegeo", params)
	if err != nil {
		return nil, err
	}
	address := &Address{}
	if err := json.Unmarshal(data, address); err != nil {
		return nil, ErrRequestFailed.Err(err)
	}
	return address, nil
}

// AddressLookup returns addresses with geo-coordinates matching the query.
// A 404 from the service yields an empty list.
func (s *LocationService) AddressLookup(ctx context.Context, q AddressLookupQuery) ([]FullAddress, error) {
	if q.Country == "" && q.PostalCode == "" && q.StreetName == "" && q.StreetNumber == "" {
		return nil, ErrEmptyQuery
	}
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}
	params := url.Values{}
	setParam(params, "country", q.Country)
	setParam(params, "postalcode", q.PostalCode)
	setParam(params, "street_name", q.StreetName)
	setParam(params, "street_number", q.StreetNumber)
	setParam(params, "lang", q.Lang)
	params.Set("limit", strconv.Itoa(limit))

	data, err := s.Get(ctx, "/address", params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var addresses []FullAddress
	if err := json.Unmarshal(data, &addresses); err != nil {
		return nil, ErrRequestFailed.Err(err)
	}
	return addresses, nil
}

// DeviceLocation returns the location the user configured for the device.
// The device is identified by the service token of the current invoke, so
// this call only works inside an intent invocation.
func (s *LocationService) DeviceLocation(ctx context.Context) (*FullAddress, error) {
	data, err := s.Get(ctx, "/device-location", nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &FullAddress{}, nil
		}
		return nil, err
	}
	address := &FullAddress{}
	if err := json.Unmarshal(data, address); err != nil {
		return nil, ErrRequestFailed.Err(err)
	}
	return address, nil
}

func setParam(params url.Values, name, value string) {
	if value != "" {
		params.Set(name, value)
	}
}
