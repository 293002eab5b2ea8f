package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// Employees parses the latest monthly employment band. Small or new entities
// may have none, in which case the field is omitted. The coded interval looks
// like "ANTAL_10_19": bucket label, lower bound, upper bound.
func Employees(c *models.CompanyRecord, rec *erst.Record) error {
	monthly := rec.VirksomhedMetadata.NyesteMaanedsbeskaeftigelse
	if monthly == nil {
		return nil
	}

	parts := strings.Split(monthly.IntervalKodeAntalAnsatte, "_")
	if len(parts) != 3 {
		return dErrors.Newf(dErrors.CodeMalformedTemporal,
			"employment interval %q does not have 3 segments", monthly.IntervalKodeAntalAnsatte)
	}
	from, err := strconv.Atoi(parts[1])
	if err != nil {
		return dErrors.Newf(dErrors.CodeMalformedTemporal,
			"employment interval lower bound %q is not numeric", parts[1])
	}
	to, err := strconv.Atoi(parts[2])
	if err != nil {
		return dErrors.Newf(dErrors.CodeMalformedTemporal,
			"employment interval upper bound %q is not numeric", parts[2])
	}

	c.DKEmployees = &models.Employees{
		Date: fmt.Sprintf("%04d-%02d", monthly.Aar, monthly.Maaned),
		From: from,
		To:   to,
	}
	return nil
}
