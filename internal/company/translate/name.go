package translate

import (
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// Name takes the current legal name. When the navne sequence has no current
// item we fall back to the upstream's own denormalized nyesteNavn before
// giving up; a company must have a current legal name.
func Name(c *models.CompanyRecord, rec *erst.Record) error {
	current, ok, err := erst.Current(rec.Navne)
	if err != nil {
		return err
	}
	if ok {
		c.Name = current.Navn
		return nil
	}
	if meta := rec.VirksomhedMetadata.NyesteNavn; meta != nil && meta.Navn != "" {
		c.Name = meta.Navn
		return nil
	}
	return dErrors.New(dErrors.CodeMissingField, "company has no current name")
}

// Homepage takes the current homepage contact value, raw and unnormalized.
// No current homepage is a valid state; the field is simply omitted.
func Homepage(c *models.CompanyRecord, rec *erst.Record) error {
	current, ok, err := erst.Current(rec.Hjemmeside)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	c.Homepage = current.Kontaktoplysning
	return nil
}

// MainLineOfBusiness truncates the hierarchical industry code to its
// 4-character NACE v2 top segment.
func MainLineOfBusiness(c *models.CompanyRecord, rec *erst.Record) error {
	branche := rec.VirksomhedMetadata.NyesteHovedbranche
	if branche == nil || branche.Branchekode == "" {
		return dErrors.New(dErrors.CodeMissingField, "company has no main line of business")
	}
	code := branche.Branchekode
	if len(code) > 4 {
		code = code[:4]
	}
	c.MainLineOfBusinessNaceV2 = code
	return nil
}
