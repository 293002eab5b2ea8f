package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func providerFor(t *testing.T, homepage string) []string {
	t.Helper()
	c := newCompany()
	c.Homepage = homepage
	ProviderURL(c)
	return c.VoluntaryProviders
}

func TestProviderURL_DefaultsToHTTPScheme(t *testing.T) {
	assert.Equal(t, []string{"http://example.com"}, providerFor(t, "example.com"))
}

func TestProviderURL_StripsPathAndQuery(t *testing.T) {
	assert.Equal(t, []string{"https://example.com"}, providerFor(t, "https://example.com/about?x=1"))
}

func TestProviderURL_KeepsExplicitNonDefaultPort(t *testing.T) {
	assert.Equal(t, []string{"http://example.com:8080"}, providerFor(t, "example.com:8080"))
}

func TestProviderURL_DropsDefaultPort(t *testing.T) {
	assert.Equal(t, []string{"http://example.com"}, providerFor(t, "http://example.com:80"))
	assert.Equal(t, []string{"https://example.com"}, providerFor(t, "https://example.com:443"))
}

func TestProviderURL_ForcesUnknownSchemeToHTTP(t *testing.T) {
	assert.Equal(t, []string{"http://files.example.com"}, providerFor(t, "ftp://files.example.com"))
}

func TestProviderURL_SilentNoOps(t *testing.T) {
	cases := map[string]string{
		"empty":               "",
		"only spaces":         "   ",
		"internal whitespace": "ftp://x y",
		"tab":                 "example.com\tmore",
		"localhost":           "http://localhost",
		"no host":             "http://",
	}
	for name, homepage := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, providerFor(t, homepage))
		})
	}
}

func TestProviderURL_TrimsSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, []string{"http://example.com"}, providerFor(t, "  example.com  "))
}

func TestProviderURL_KeepsRawHomepageField(t *testing.T) {
	c := newCompany()
	c.Homepage = "example.com"
	ProviderURL(c)
	assert.Equal(t, "example.com", c.Homepage, "normalization must not rewrite the homepage field")
}
