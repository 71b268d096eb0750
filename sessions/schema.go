package sessions

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// ErrInvalidAttributes is returned when the session attribute bag violates
// the schema bounds.
var ErrInvalidAttributes = apperrors.New("invalid session attributes")

// attributesSchema bounds the session bag the dialog manager may send:
// attribute names are word-like and capped in length, values are strings,
// and the bag itself is capped so a misbehaving client cannot grow server
// state without limit.
var attributesSchema = jsonschema.MustCompileString("session-attributes.json", `{
	"type": "object",
	"maxProperties": 1000,
	"propertyNames": {
		"pattern": "^[A-Za-z0-9_.-]+$",
		"maxLength": 256
	},
	"additionalProperties": {
		"type": "string",
		"maxLength": 65536
	}
}`)

// ValidateAttributes checks an incoming session attribute bag against the
// schema. A nil bag is valid.
func ValidateAttributes(attrs map[string]string) error {
	if attrs == nil {
		return nil
	}
	doc := make(map[string]any, len(attrs))
	for k, v := range attrs {
		doc[k] = v
	}
	if err := attributesSchema.Validate(doc); err != nil {
		return ErrInvalidAttributes.Msg(fmt.Sprintf("session attributes rejected: %v", err))
	}
	return nil
}
