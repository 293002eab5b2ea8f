package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

const (
	participantPerson = "PERSON"

	orgManagementBody = "LEDELSESORGAN"
	orgFullyLiable    = "FULDT_ANSVARLIG_DELTAGERE"

	attributeFunction = "FUNKTION"
)

// Management walks the participant relations and keeps the people who
// currently hold a function in a management body or as fully liable
// participants. When several qualifying functions exist for one person the
// last one encountered wins; upstream defines no priority between them.
// People without a resolvable role are left off the roster.
func Management(c *models.CompanyRecord, rec *erst.Record) error {
	roster := []models.Manager{}

	for _, relation := range rec.DeltagerRelation {
		if relation.Deltager.Enhedstype != participantPerson {
			continue
		}

		name, ok, err := erst.Current(relation.Deltager.Navne)
		if err != nil {
			return err
		}
		if !ok {
			// A person without a current name cannot be listed meaningfully.
			continue
		}

		role := ""
		for _, org := range relation.Organisationer {
			if org.Hovedtype != orgManagementBody && org.Hovedtype != orgFullyLiable {
				continue
			}
			for _, member := range org.MedlemsData {
				for _, attribute := range member.Attributter {
					if attribute.Type != attributeFunction {
						continue
					}
					value, ok, err := erst.Current(attribute.Vaerdier)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
					role = capitalize(strings.ToLower(value.Vaerdi))
				}
			}
		}

		if role == "" {
			continue
		}

		roster = append(roster, models.Manager{
			ID:   relation.Deltager.EnhedsNummer,
			Name: name.Navn,
			Role: role,
		})
	}

	c.DKManagement = roster
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
