package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

func TestStatusTimeline_TranslatesHistory(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Virksomhedsstatus: []erst.Virksomhedsstatus{
			{Status: "NORMAL", Periode: open("2010-01-01")},
			{Status: "UNDER KONKURS", Periode: open("2020-01-01")},
		},
	}

	require.NoError(t, StatusTimeline(c, rec))

	assert.Equal(t, []models.StatusEntry{
		{Date: "2010-01-01", Value: "I normal drift", Translated: "In normal operation"},
		{Date: "2020-01-01", Value: "Under konkursbehandling", Translated: "Filed for bankruptcy"},
	}, c.DKStatusTimeline)
}

func TestStatusTimeline_SkipsEntriesBeforeNormal(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Virksomhedsstatus: []erst.Virksomhedsstatus{
			{Status: "UDEN RETSVIRKNING", Periode: open("2009-06-01")},
			{Status: "NORMAL", Periode: open("2010-01-01")},
		},
	}

	require.NoError(t, StatusTimeline(c, rec))

	require.Len(t, c.DKStatusTimeline, 1)
	assert.Equal(t, "2010-01-01", c.DKStatusTimeline[0].Date)
}

func TestStatusTimeline_UnknownStatusIsFatal(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Virksomhedsstatus: []erst.Virksomhedsstatus{
			{Status: "NORMAL", Periode: open("2010-01-01")},
			{Status: "HELT NY STATUS", Periode: open("2020-01-01")},
		},
	}

	err := StatusTimeline(c, rec)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownStatus))
}

func TestStatusTimeline_LifecycleFallbackActiveOnly(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Livsforloeb: []erst.Livsforloeb{
			{Periode: open("2015-01-01")},
		},
	}

	require.NoError(t, StatusTimeline(c, rec))

	assert.Equal(t, []models.StatusEntry{
		{Date: "2015-01-01", Value: "Aktiv", Translated: "Active"},
	}, c.DKStatusTimeline)
}

func TestStatusTimeline_LifecycleFallbackWithClosure(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Livsforloeb: []erst.Livsforloeb{
			{Periode: closed("2015-01-01", "2019-03-31")},
		},
	}

	require.NoError(t, StatusTimeline(c, rec))

	assert.Equal(t, []models.StatusEntry{
		{Date: "2015-01-01", Value: "Aktiv", Translated: "Active"},
		{Date: "2019-03-31", Value: "Ophørt", Translated: "Closed down"},
	}, c.DKStatusTimeline)
}

func TestStatusTimeline_FallbackWhenHistoryNeverReachesNormal(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Virksomhedsstatus: []erst.Virksomhedsstatus{
			{Status: "UDEN RETSVIRKNING", Periode: open("2009-06-01")},
		},
		Livsforloeb: []erst.Livsforloeb{
			{Periode: open("2015-01-01")},
		},
	}

	require.NoError(t, StatusTimeline(c, rec))

	require.Len(t, c.DKStatusTimeline, 1)
	assert.Equal(t, "Aktiv", c.DKStatusTimeline[0].Value)
}

func TestStatusTimeline_EmptyEverythingYieldsEmptyTimeline(t *testing.T) {
	c := newCompany()

	require.NoError(t, StatusTimeline(c, &erst.Record{}))

	assert.NotNil(t, c.DKStatusTimeline, "timeline must serialize as [], not null")
	assert.Empty(t, c.DKStatusTimeline)
}

func TestStatusTimeline_MissingPeriodIsMalformed(t *testing.T) {
	c := newCompany()
	rec := &erst.Record{
		Virksomhedsstatus: []erst.Virksomhedsstatus{
			{Status: "NORMAL"},
		},
	}

	err := StatusTimeline(c, rec)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeMalformedTemporal))
}
