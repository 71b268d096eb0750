package intents

// NewTestRequest builds a synthetic request for handler tests: the intent
// name with the given attributes, locale "de", a fresh session and the null
// translation.
func NewTestRequest(intent string, attributes map[string][]string) *Request {
	return NewRequest(&InvokeRequest{
		Context: Context{
			Intent:     intent,
			Locale:     "de",
			Attributes: attributes,
		},
	}, nil)
}
