// Package identifier normalizes raw registration identifiers such as
// "dk 12345678" into a (country, local id) pair.
package identifier

import (
	"regexp"
	"strconv"
	"strings"

	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

var (
	noisePattern = regexp.MustCompile(`[^A-Z0-9]+`)
	idPattern    = regexp.MustCompile(`^([A-Z]{2})([0-9]+)$`)
)

// Identifier is a parsed registration identifier. LocalID keeps the textual
// digits (leading zeros included); LocalNumber is the numeric lookup key.
type Identifier struct {
	Country     string
	LocalID     string
	LocalNumber uint64
}

// Parse uppercases the input, strips separator noise, and validates the
// two-letters-then-digits shape. It has no side effects and is idempotent
// over its own output.
func Parse(raw string) (Identifier, error) {
	if raw == "" {
		return Identifier{}, dErrors.New(dErrors.CodeMissingID, "identifier is required")
	}

	normalized := noisePattern.ReplaceAllString(strings.ToUpper(raw), "")

	match := idPattern.FindStringSubmatch(normalized)
	if match == nil {
		return Identifier{}, dErrors.Newf(dErrors.CodeInvalidID, "not a registration identifier: %q", raw)
	}

	number, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return Identifier{}, dErrors.Newf(dErrors.CodeInvalidID, "local id out of range: %q", match[2])
	}

	return Identifier{
		Country:     match[1],
		LocalID:     match[2],
		LocalNumber: number,
	}, nil
}
