package config

import (
	"os"
	"strings"
)

// EnvAPIKey holds the text-generation credential. It is the only place the
// key is read from.
const EnvAPIKey = "GEMINI_API_KEY"

var lookupEnv = os.LookupEnv

// APIKey returns the trimmed credential, or "" when unset.
func APIKey() string {
	v, _ := lookupEnv(EnvAPIKey)
	return strings.TrimSpace(v)
}
