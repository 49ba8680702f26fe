// Package libloc reads IP-geolocation databases in the libloc v1 file
// format: given an address it reports the covering network's country,
// autonomous system and flags; given a country code or ASN it reports
// the associated metadata. A database is opened once with Open and is
// then safe for concurrent lookups from multiple goroutines without
// further locking.
//
// Acquiring a database file (download, decompression, signature
// verification) is outside this package's scope; Open expects a path to
// an already-verified file on disk.
package libloc
