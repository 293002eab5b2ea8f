// Package translate converts the raw ERST record into the public company
// schema, one translator per output field. Translators are independent; each
// reads the raw record and writes exactly one field.
package translate

import (
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

// Func is a single field translator.
type Func func(c *models.CompanyRecord, rec *erst.Record) error

// Step names a translator so failures can be logged with the offending field.
type Step struct {
	Field string
	Fn    Func
}

// Steps is the full fan-out, in output-schema order. Order only matters for
// the provider rewrite, which runs separately after all of these.
func Steps() []Step {
	return []Step{
		{Field: "name", Fn: Name},
		{Field: "homepage", Fn: Homepage},
		{Field: "dkStatusTimeline", Fn: StatusTimeline},
		{Field: "mainLineOfBusinessNaceV2", Fn: MainLineOfBusiness},
		{Field: "dkEmployees", Fn: Employees},
		{Field: "dkManagement", Fn: Management},
		{Field: "addressLines", Fn: Address},
	}
}
