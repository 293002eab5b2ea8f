package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

func intp(v int) *int { return &v }

func TestAddress_AssemblesThreeLines(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		VirksomhedMetadata: erst.Metadata{
			NyesteBeliggenhedsadresse: &erst.Beliggenhedsadresse{
				Vejnavn:      "Njalsgade",
				HusnummerFra: intp(21),
				BogstavFra:   "G",
				Etage:        "2",
				Sidedoer:     "tv",
				Postnummer:   2300,
				Postdistrikt: "København S",
				Landekode:    "DK",
			},
		},
	}

	require.NoError(t, Address(c, rec))

	assert.Equal(t, []string{
		"Njalsgade 21G 2 tv",
		"2300 København S",
		"DK",
	}, c.AddressLines)
}

// The PHP original passed the subject and replacement of its space-collapsing
// regex in swapped order, so the street line was never actually collapsed.
// This implementation performs the intended collapse; the expectations below
// intentionally differ from the original's observable output.
func TestAddress_CollapsesWhitespaceInStreetLine(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		VirksomhedMetadata: erst.Metadata{
			NyesteBeliggenhedsadresse: &erst.Beliggenhedsadresse{
				Vejnavn:      "Lille  Strandstræde",
				HusnummerFra: intp(6),
				Postnummer:   1254,
				Postdistrikt: "København K",
				Landekode:    "DK",
			},
		},
	}

	require.NoError(t, Address(c, rec))

	// Absent letter/floor/door leave no double spaces or trailing space.
	assert.Equal(t, "Lille Strandstræde 6", c.AddressLines[0])
}

func TestAddress_AllThreeLinesAlwaysEmitted(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		VirksomhedMetadata: erst.Metadata{
			NyesteBeliggenhedsadresse: &erst.Beliggenhedsadresse{
				Vejnavn:      "Testvej",
				Postnummer:   8000,
				Postdistrikt: "Aarhus C",
				Landekode:    "DK",
			},
		},
	}

	require.NoError(t, Address(c, rec))
	assert.Len(t, c.AddressLines, 3)
}

func TestAddress_OmittedWhenNoAddressExists(t *testing.T) {
	c := newCompany()

	require.NoError(t, Address(c, &erst.Record{}))

	assert.Nil(t, c.AddressLines)
}
