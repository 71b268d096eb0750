package intents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeRequestValidate(t *testing.T) {
	ir := &InvokeRequest{
		Context: Context{Intent: "WEATHER__STATUS", Locale: "de"},
	}
	require.NoError(t, ir.Validate())

	ir = &InvokeRequest{}
	err := ir.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	ir = &InvokeRequest{Context: Context{Locale: "de"}}
	assert.ErrorIs(t, ir.Validate(), ErrBadRequest)
}

func TestInvokeRequestValidateSessionAttributes(t *testing.T) {
	ir := &InvokeRequest{
		Context: Context{Intent: "WEATHER__STATUS"},
	}
	ir.Session.Attributes = map[string]string{"bad key with spaces": "value"}
	err := ir.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestNewRequestDerivesAttributes(t *testing.T) {
	ir := &InvokeRequest{
		Context: Context{
			Intent: "WEATHER__STATUS",
			AttributesV2: map[string][]AttributeV2{
				"location": {{ID: 1, Value: "Berlin"}, {ID: 2, Value: "Bonn"}},
			},
		},
	}
	req := NewRequest(ir, nil)
	assert.Equal(t, []string{"Berlin", "Bonn"}, req.Attrs("location"))
	assert.Equal(t, "Berlin", req.Attr("location"))

	attr, ok := req.AttrV2("location")
	require.True(t, ok)
	assert.Equal(t, 1, attr.ID)

	_, ok = req.AttrV2("device")
	assert.False(t, ok)
}

func TestNewRequestFreshSession(t *testing.T) {
	req := NewRequest(&InvokeRequest{Context: Context{Intent: "HELLO"}}, nil)
	require.NotNil(t, req.Session)
	assert.True(t, req.Session.New)
	assert.NotNil(t, req.Session.Attributes)
	require.NotNil(t, req.T)
	assert.Equal(t, "HELLO_TEXT", req.T.GetText("HELLO_TEXT").Value)
}

func TestRequestAccessors(t *testing.T) {
	req := NewRequest(&InvokeRequest{
		Context: Context{
			Intent:     "HELLO",
			Tokens:     map[string]string{"cvi": "eyJhbGc"},
			Attributes: map[string][]string{"device": {"kitchen"}},
		},
	}, nil)

	assert.Equal(t, "kitchen", req.Attr("device"))
	assert.Equal(t, "", req.Attr("missing"))
	assert.Equal(t, "default", req.AttrOr("missing", "default"))

	token, ok := req.Token("cvi")
	require.True(t, ok)
	assert.Equal(t, "eyJhbGc", token)

	_, ok = req.Token("other")
	assert.False(t, ok)
}

func TestDecodeConfiguration(t *testing.T) {
	req := NewRequest(&InvokeRequest{
		Context: Context{
			Intent: "HELLO",
			Configuration: map[string]any{
				"apiKey":  "secret",
				"retries": 3,
			},
		},
	}, nil)

	var cfg struct {
		APIKey  string `json:"apiKey"`
		Retries int    `json:"retries"`
	}
	require.NoError(t, req.DecodeConfiguration(&cfg))
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 3, cfg.Retries)

	var bad struct {
		Retries map[string]string `json:"retries"`
	}
	err := req.DecodeConfiguration(&bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRequestLocation(t *testing.T) {
	req := NewRequest(&InvokeRequest{
		Context: Context{
			Intent:     "HELLO",
			Attributes: map[string][]string{"timezone": {"Europe/Berlin"}},
		},
	}, nil)
	require.Equal(t, "Europe/Berlin", req.Location().String())

	now := req.Now()
	assert.Equal(t, "Europe/Berlin", now.Location().String())

	today := req.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, now.Day(), today.Day())
}

func TestRequestLocationFallsBackToUTC(t *testing.T) {
	req := NewRequest(&InvokeRequest{Context: Context{Intent: "HELLO"}}, nil)
	assert.Equal(t, time.UTC, req.Location())

	req = NewRequest(&InvokeRequest{
		Context: Context{
			Intent:     "HELLO",
			Attributes: map[string][]string{"timezone": {"Mars/Olympus_Mons"}},
		},
	}, nil)
	assert.Equal(t, time.UTC, req.Location())
}
