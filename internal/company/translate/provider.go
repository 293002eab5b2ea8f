package translate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
)

var schemePattern = regexp.MustCompile(`(?i)^[a-z0-9]+://`)

// ProviderURL derives a canonical origin (scheme://host[:port]) from the
// free-text homepage and appends it to voluntaryProviders. Homepage data
// quality varies widely, so every failure path here is a silent no-op; a bad
// homepage must never block resolution of the rest of the record.
func ProviderURL(c *models.CompanyRecord) {
	homepage := strings.TrimSpace(c.Homepage)
	if homepage == "" {
		return
	}
	if strings.ContainsFunc(homepage, unicode.IsSpace) {
		return
	}

	if !schemePattern.MatchString(homepage) {
		homepage = "http://" + homepage
	}

	parsed, err := url.Parse(homepage)
	if err != nil {
		return
	}

	host := parsed.Hostname()
	if host == "" {
		return
	}
	if host == "localhost" {
		return
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		scheme = "http"
	}

	origin := scheme + "://" + host
	if port := parsed.Port(); port != "" && !isDefaultPort(scheme, port) {
		origin += ":" + port
	}

	c.VoluntaryProviders = append(c.VoluntaryProviders, origin)
}

func isDefaultPort(scheme, port string) bool {
	return (scheme == "http" && port == "80") || (scheme == "https" && port == "443")
}
