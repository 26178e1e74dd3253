package urlcleaner

// Concrete query parameter names per tracking category. Extending a
// category, or adding one, is a change to these tables only.
var (
	utmParams = []string{
		"utm_source", "utm_medium", "utm_campaign",
		"utm_term", "utm_content", "utm_id",
	}
	gclidParams   = []string{"gclid"}
	gclsrcParams  = []string{"gclsrc"}
	dclidParams   = []string{"dclid"}
	fbclidParams  = []string{"fbclid"}
	mscklidParams = []string{"mscklid"}
	zanpidParams  = []string{"zanpid"}
)

// TrackingPolicy selects which tracking-parameter categories [Untrack]
// leaves in place. Each flag names one category; a false flag means the
// category's parameters are removed. The zero value is the strictest
// policy: nothing is allowed, every known tracking parameter is
// stripped.
type TrackingPolicy struct {
	// AllowUTM keeps the Urchin Tracking Module family
	// (utm_source, utm_medium, utm_campaign, utm_term, utm_content,
	// utm_id).
	AllowUTM bool

	// AllowGclid keeps the Google Click Identifier.
	AllowGclid bool

	// AllowGclsrc keeps the Google Ads source parameter.
	AllowGclsrc bool

	// AllowDclid keeps the DoubleClick click identifier, now Google.
	AllowDclid bool

	// AllowFbclid keeps the Facebook click identifier.
	AllowFbclid bool

	// AllowMscklid keeps the Microsoft Bing Ads click identifier.
	AllowMscklid bool

	// AllowZanpid keeps the zanox click identifier, now Awin.
	AllowZanpid bool
}

// Resolve expands the policy into the concrete list of parameter names
// to remove: the union of the category tables for every category whose
// flag is false. A nil policy resolves like the zero value.
func (p *TrackingPolicy) Resolve() []string {
	if p == nil {
		p = &TrackingPolicy{}
	}
	categories := []struct {
		allowed bool
		params  []string
	}{
		{p.AllowUTM, utmParams},
		{p.AllowGclid, gclidParams},
		{p.AllowGclsrc, gclsrcParams},
		{p.AllowDclid, dclidParams},
		{p.AllowFbclid, fbclidParams},
		{p.AllowMscklid, mscklidParams},
		{p.AllowZanpid, zanpidParams},
	}

	var names []string
	for _, c := range categories {
		if !c.allowed {
			names = append(names, c.params...)
		}
	}
	return names
}
