package translate

import (
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// statusNormal marks the establishment of the company; everything before the
// first NORMAL entry predates the public timeline.
const statusNormal = "NORMAL"

// Synthetic codes used by the lifecycle fallback.
const (
	statusActive = "Aktiv"
	statusClosed = "Ophørt"
)

type statusLabel struct {
	Value      string
	Translated string
}

// statusLabels is the closed enumeration of upstream status codes. Adding a
// new upstream status is a one-line change here; an unlisted code fails the
// whole resolution so schema drift is caught, not papered over.
var statusLabels = map[string]statusLabel{
	"UDEN RETSVIRKNING":                  {"Uden retsvirkning", "Without legal force"},
	"NORMAL":                             {"I normal drift", "In normal operation"},
	"UNDER FRIVILLIG LIKVIDATION":        {"Under frivillig likvidation", "In voluntary liquidation"},
	"UNDER REKONSTRUKTION":               {"Under rekonstruktion", "Under reconstruction"},
	"UNDER KONKURS":                      {"Under konkursbehandling", "Filed for bankruptcy"},
	"UNDER TVANGSOPLØSNING":              {"Under tvangsopløsning", "In compulsory dissolution"},
	"OPLØST EFTER KONKURS":               {"Opløst efter konkurs", "Dissolved after bankruptcy"},
	"TVANGSOPLØST":                       {"Tvangsopløst", "Compulsorily dissolved"},
	"OPLØST EFTER FRIVILLIG LIKVIDATION": {"Opløst efter frivillig likvidation", "Dissolved after voluntary liquidation"},
	"OPLØST EFTER ERKLÆRING":             {"Opløst efter erklæring", "Dissolved after statement"},
	"UNDER REASSUMERING":                 {"Under reassumering", "Under reassumption"},
	"SLETTET":                            {"Slettet", "Deleted"},
	"OPLØST EFTER FUSION":                {"Opløst efter fusion", "Dissolved after merger"},
	"OPLØST EFTER SPALTNING":             {"Opløst efter spaltning", "Dissolved after demerger"},
	statusActive:                         {"Aktiv", "Active"},
	statusClosed:                         {"Ophørt", "Closed down"},
}

// StatusTimeline reconstructs the public status history. Entries before the
// company first reached NORMAL are skipped; if nothing remains afterwards the
// lifecycle history stands in, synthesizing an Active entry and, for closed
// periods, a Closed one. An empty timeline is a valid result.
func StatusTimeline(c *models.CompanyRecord, rec *erst.Record) error {
	timeline := []models.StatusEntry{}

	reachedNormal := false
	for _, status := range rec.Virksomhedsstatus {
		if status.Status == statusNormal {
			reachedNormal = true
		}
		if !reachedNormal {
			continue
		}

		label, known := statusLabels[status.Status]
		if !known {
			return dErrors.Newf(dErrors.CodeUnknownStatus, "unknown status: %s", status.Status)
		}
		if status.Periode == nil {
			return dErrors.New(dErrors.CodeMalformedTemporal, "status entry without a validity period")
		}

		timeline = append(timeline, models.StatusEntry{
			Date:       status.Periode.GyldigFra,
			Value:      label.Value,
			Translated: label.Translated,
		})
	}

	if len(timeline) == 0 {
		last, ok, err := erst.Last(rec.Livsforloeb)
		if err != nil {
			return err
		}
		if ok {
			active := statusLabels[statusActive]
			timeline = append(timeline, models.StatusEntry{
				Date:       last.Periode.GyldigFra,
				Value:      active.Value,
				Translated: active.Translated,
			})

			if last.Periode.GyldigTil != nil && *last.Periode.GyldigTil != "" {
				closed := statusLabels[statusClosed]
				timeline = append(timeline, models.StatusEntry{
					Date:       *last.Periode.GyldigTil,
					Value:      closed.Value,
					Translated: closed.Translated,
				})
			}
		}
	}

	c.DKStatusTimeline = timeline
	return nil
}
