// Package models defines the public company schema. The JSON field names are
// the published contract and must not be renamed.
package models

// StatusEntry is one step of the legal/operational status timeline, with the
// Danish label and its English translation.
type StatusEntry struct {
	Date       string `json:"date"`
	Value      string `json:"value"`
	Translated string `json:"translated"`
}

// Employees is the coded headcount band for a specific month.
type Employees struct {
	Date string `json:"date"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// Manager is one member of the management roster.
type Manager struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CompanyRecord is the normalized profile returned for a resolved identifier.
// Built fresh per request, never mutated after return.
type CompanyRecord struct {
	Type                     string        `json:"type"`
	ID                       string        `json:"id"`
	TTL                      int           `json:"ttl"`
	Name                     string        `json:"name"`
	Homepage                 string        `json:"homepage,omitempty"`
	VoluntaryProviders       []string      `json:"voluntaryProviders"`
	DKStatusTimeline         []StatusEntry `json:"dkStatusTimeline"`
	MainLineOfBusinessNaceV2 string        `json:"mainLineOfBusinessNaceV2"`
	DKEmployees              *Employees    `json:"dkEmployees,omitempty"`
	DKManagement             []Manager     `json:"dkManagement"`
	AddressLines             []string      `json:"addressLines,omitempty"`
}

// TypeOfficial marks records sourced from the official registry.
const TypeOfficial = "official"
