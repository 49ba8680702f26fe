package libloc

// Country is a per-query view over one country record (spec.md §4.5).
type Country struct {
	rec countryEntry
	l   *Locations
}

// Code returns the 2-letter ISO 3166-1 alpha-2 country code.
func (c *Country) Code() string {
	return string(c.rec.Code[:])
}

// ContinentCode returns the 2-letter continent code.
func (c *Country) ContinentCode() string {
	return string(c.rec.ContinentCode[:])
}

// Name resolves the country's display name from the string pool. An
// error here means the database's pool segment is corrupt, not that the
// country is missing — the lookup that produced this Country already
// succeeded.
func (c *Country) Name() (string, error) {
	return c.l.pool.resolve(c.rec.NameRef)
}

// buildCountry constructs a Country view over record i of the country
// table. Caller must have already verified i is in range.
func (l *Locations) buildCountry(i int) *Country {
	return &Country{rec: l.countries.at(i), l: l}
}
