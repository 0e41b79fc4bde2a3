package detail

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"countryapi/internal/boundary"
	"countryapi/internal/country"
	"countryapi/internal/i18n"
	"countryapi/internal/indicator"
	"countryapi/internal/institution"
)

// IndicatorSource resolves the latest observation of a time series.
type IndicatorSource interface {
	Latest(ctx context.Context, countryCode, indicatorID string) indicator.Observation
	FirstAvailable(ctx context.Context, countryCode string, indicatorIDs []string) indicator.Observation
}

// InstitutionSource lists the institutions of a country by name.
type InstitutionSource interface {
	ByCountry(ctx context.Context, countryName string) ([]institution.Institution, error)
}

// BoundarySource resolves the map geometry for a country.
type BoundarySource interface {
	Resolve(ctx context.Context, c country.Country) boundary.Boundary
}

// rowSpec binds an indicator row to its label key and the upstream codes
// that may carry it, best-first.
type rowSpec struct {
	Key   string
	Codes []string
	Unit  string
}

var healthRows = []rowSpec{
	{Key: "health_beds", Codes: []string{"SH.MED.BEDS.ZS"}, Unit: "per 1,000"},
	{Key: "health_expenditure_gdp", Codes: []string{"SH.XPD.CHEX.GD.ZS"}, Unit: "%"},
	{Key: "health_physicians", Codes: []string{"SH.MED.PHYS.ZS"}, Unit: "per 1,000"},
}

var economicRows = []rowSpec{
	{Key: "econ_gdp", Codes: []string{"NY.GDP.MKTP.CD"}, Unit: "US$"},
	{Key: "econ_unemployment", Codes: []string{"SL.UEM.TOTL.ZS"}, Unit: "%"},
	{Key: "econ_inflation", Codes: []string{"FP.CPI.TOTL.ZG"}, Unit: "%"},
	{Key: "econ_gdp_per_capita", Codes: []string{"NY.GDP.PCAP.CD"}, Unit: "US$"},
	{Key: "econ_poverty", Codes: []string{"SI.POV.DDAY"}, Unit: "%"},
	{Key: "econ_gov_exp_gdp", Codes: []string{"NE.CON.GOVT.ZS"}, Unit: "%"},
	{Key: "econ_current_account", Codes: []string{"BN.CAB.XOKA.CD"}, Unit: "US$"},
}

// Some education metrics were recoded over the years; those list every
// known code best-first and take whichever has coverage.
var educationRows = []rowSpec{
	{Key: "edu_literacy", Codes: []string{"SE.ADT.LITR.ZS"}, Unit: "%"},
	{Key: "edu_primary_enroll", Codes: []string{"SE.PRM.NENR"}, Unit: "%"},
	{Key: "edu_secondary_enroll", Codes: []string{"SE.SEC.ENRR"}, Unit: "%"},
	{Key: "edu_tertiary_enroll", Codes: []string{"SE.TER.ENRR"}, Unit: "%"},
	{Key: "edu_primary_complete", Codes: []string{"SE.PRM.CMPT.ZS"}, Unit: "%"},
	{Key: "edu_secondary_complete", Codes: []string{"SE.SEC.CMPT.LO.ZS", "SE.SEC.CMPT.ZS"}, Unit: "%"},
	{Key: "edu_tertiary_complete", Codes: []string{"SE.TER.CMPT.ZS"}, Unit: "%"},
	{Key: "edu_ptr_primary", Codes: []string{"SE.PRM.ENRL.TC.ZS", "SE.PRM.TCHR.RT.ZS"}},
	{Key: "edu_ptr_secondary", Codes: []string{"SE.SEC.ENRL.TC.ZS", "SE.SEC.TCHR.RT.ZS"}},
}

const (
	maleCode   = "SP.POP.TOTL.MA.IN"
	femaleCode = "SP.POP.TOTL.FE.IN"
)

// Aggregator fans out to every data source for a country and joins the
// results into one Detail. Each section fails on its own: an upstream
// outage marks that section unavailable and leaves the rest intact.
type Aggregator struct {
	indicators   IndicatorSource
	institutions InstitutionSource
	boundaries   BoundarySource
}

func NewAggregator(ind IndicatorSource, inst InstitutionSource, bnd BoundarySource) *Aggregator {
	return &Aggregator{indicators: ind, institutions: inst, boundaries: bnd}
}

// Fetch builds the full dashboard payload for one country. It always
// returns a Detail; sections whose upstreams failed come back with
// Available=false and the rest populated normally.
func (a *Aggregator) Fetch(ctx context.Context, c country.Country, lang string) Detail {
	lang = i18n.Normalize(lang)

	d := Detail{Country: c, HealthLinks: healthLinks(c)}

	// errgroup here is a join point, not a cancellation scope: every
	// section handles its own failures and returns nil.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.Gender = a.gender(gctx, c.Code)
		return nil
	})
	g.Go(func() error {
		d.Health = a.section(gctx, c.Code, lang, "title_health", healthRows)
		return nil
	})
	g.Go(func() error {
		d.Economic = a.section(gctx, c.Code, lang, "title_economic", economicRows)
		return nil
	})
	g.Go(func() error {
		d.Education = a.section(gctx, c.Code, lang, "title_education", educationRows)
		return nil
	})
	g.Go(func() error {
		d.Institutions = a.institutionSection(gctx, c.CommonName)
		return nil
	})
	g.Go(func() error {
		d.Boundary = a.boundaries.Resolve(gctx, c)
		return nil
	})

	_ = g.Wait()
	return d
}

func (a *Aggregator) section(ctx context.Context, code, lang, titleKey string, specs []rowSpec) Section {
	s := Section{
		Title: i18n.T(lang, titleKey, ""),
		Rows:  make([]IndicatorRow, 0, len(specs)),
	}
	for _, spec := range specs {
		var obs indicator.Observation
		if len(spec.Codes) == 1 {
			obs = a.indicators.Latest(ctx, code, spec.Codes[0])
		} else {
			obs = a.indicators.FirstAvailable(ctx, code, spec.Codes)
		}
		if obs.HasValue() {
			s.Available = true
		}
		s.Rows = append(s.Rows, IndicatorRow{
			Key:   spec.Key,
			Label: i18n.T(lang, spec.Key, ""),
			Unit:  spec.Unit,
			Obs:   obs,
		})
	}
	return s
}

// gender splits the population by sex. Percentages are whole numbers
// that sum to 100; with no usable counts both stay 0.
func (a *Aggregator) gender(ctx context.Context, code string) Gender {
	male := a.indicators.Latest(ctx, code, maleCode)
	female := a.indicators.Latest(ctx, code, femaleCode)

	g := Gender{
		Available:  male.HasValue() || female.HasValue(),
		Male:       male.Value,
		Female:     female.Value,
		MaleYear:   male.Year,
		FemaleYear: female.Year,
	}

	var m, f float64
	if male.Value != nil {
		m = *male.Value
	}
	if female.Value != nil {
		f = *female.Value
	}
	if total := m + f; total > 0 {
		g.MalePct = math.Round(m / total * 100)
		g.FemalePct = 100 - g.MalePct
	}
	return g
}

func (a *Aggregator) institutionSection(ctx context.Context, countryName string) Institutions {
	list, err := a.institutions.ByCountry(ctx, countryName)
	if err != nil {
		return Institutions{}
	}
	page := institution.Filter(list, institution.Query{Page: 1})
	return Institutions{Available: true, Total: page.Total, Page: page.Page}
}

// healthLinks points at external references for the health card. These
// are templated, never fetched, so they cannot fail.
func healthLinks(c country.Country) []Link {
	name := c.CommonName
	return []Link{
		{
			Label: "WHO country profile",
			URL:   "https://www.who.int/countries/" + strings.ToLower(c.Code),
		},
		{
			Label: fmt.Sprintf("Healthcare in %s (Wikipedia)", name),
			URL:   "https://en.wikipedia.org/wiki/Healthcare_in_" + url.PathEscape(strings.ReplaceAll(name, " ", "_")),
		},
		{
			Label: "Ministry of Health (search)",
			URL:   "https://www.google.com/search?q=" + url.QueryEscape("Ministry of Health "+name),
		},
	}
}
