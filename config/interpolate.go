package config

import (
	"os"
	"regexp"
)

var envRef = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// interpolate replaces ${NAME} and ${NAME:default} references in the raw
// config file text with the value of the environment variable NAME. An unset
// variable without default expands to the empty string.
func interpolate(raw string) string {
	return envRef.ReplaceAllStringFunc(raw, func(m string) string {
		groups := envRef.FindStringSubmatch(m)
		if v, ok := os.LookupEnv(groups[1]); ok {
			return v
		}
		return groups[2]
	})
}
