package translate

import (
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

// Shared fixture helpers for the translator tests.

func open(from string) *erst.Periode {
	return &erst.Periode{GyldigFra: from}
}

func closed(from, to string) *erst.Periode {
	return &erst.Periode{GyldigFra: from, GyldigTil: &to}
}

func newCompany() *models.CompanyRecord {
	return &models.CompanyRecord{
		Type:               models.TypeOfficial,
		ID:                 "DK12345678",
		TTL:                3600,
		VoluntaryProviders: []string{},
	}
}
