package translate

import (
	"strconv"
	"strings"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

// Address assembles the three address lines from the latest registered
// address: street (name, house number + letter, floor, door), postal code
// plus district, and country code. The street line is trimmed with internal
// space runs collapsed; absent sub-fields just leave gaps that collapse away.
// No registered address means the whole field is omitted.
func Address(c *models.CompanyRecord, rec *erst.Record) error {
	addr := rec.VirksomhedMetadata.NyesteBeliggenhedsadresse
	if addr == nil {
		return nil
	}

	houseNumber := ""
	if addr.HusnummerFra != nil {
		houseNumber = strconv.Itoa(*addr.HusnummerFra)
	}

	street := addr.Vejnavn + " " + houseNumber + addr.BogstavFra + " " + addr.Etage + " " + addr.Sidedoer
	street = strings.Join(strings.Fields(street), " ")

	c.AddressLines = []string{
		street,
		strconv.Itoa(addr.Postnummer) + " " + addr.Postdistrikt,
		addr.Landekode,
	}
	return nil
}
