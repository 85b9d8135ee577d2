// Package dataset loads the match predictions file and answers the lookups
// the dashboard needs: distinct countries, divisions per country and the
// range of match dates.
//
// # Loading
//
//	ds, err := dataset.Load("visualization_data.csv")
//	if err != nil {
//	    ds = dataset.Empty() // degraded mode: empty table
//	}
//
// Missing cells are replaced by Placeholder ("-"). A derived "URL" column
// is appended: "[Home vs Away](url)" when the match URL is present, or
// NoLink otherwise.
//
// # Lookups
//
//	ds.Countries()               // ["All", "England", "Spain", ...]
//	ds.DivisionsFor("England")   // ["All", "E0", "E1", ...]
//	ds.DateRange()               // earliest and latest match day
package dataset
