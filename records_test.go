package libloc

import "testing"

func TestASTableBinarySearch(t *testing.T) {
	data := buildFixtureDB(
		[]fixtureAS{
			{asn: 64512, name: "Acme"},
			{asn: 204867, name: "Lightning Wire Labs GmbH"},
			{asn: 13335, name: "Cloudflare"},
		},
		nil, nil,
	)
	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	table := asTable{data: segment(data, h.as)}

	if table.count() != 3 {
		t.Fatalf("count = %d, want 3", table.count())
	}

	i, ok := table.bsearchASN(204867)
	if !ok {
		t.Fatal("bsearchASN(204867): not found")
	}
	if table.at(i).ASN != 204867 {
		t.Errorf("at(%d).ASN = %d, want 204867", i, table.at(i).ASN)
	}

	if _, ok := table.bsearchASN(1); ok {
		t.Error("bsearchASN(1): want not found")
	}
}

func TestCountryTableBinarySearch(t *testing.T) {
	data := buildFixtureDB(nil,
		[]fixtureCountry{
			{code: "US", continent: "NA", name: "United States"},
			{code: "DE", continent: "EU", name: "Germany"},
			{code: "JP", continent: "AS", name: "Japan"},
		},
		nil,
	)
	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	table := countryTable{data: segment(data, h.countries)}

	i, ok := table.bsearchCode([2]byte{'D', 'E'})
	if !ok {
		t.Fatal("bsearchCode(DE): not found")
	}
	if string(table.at(i).Code[:]) != "DE" {
		t.Errorf("at(%d).Code = %q, want DE", i, table.at(i).Code)
	}

	if _, ok := table.bsearchCode([2]byte{'Z', 'Z'}); ok {
		t.Error("bsearchCode(ZZ): want not found")
	}
}
