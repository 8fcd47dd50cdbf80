// Package mother builds test fixtures from a base document.
//
// A Mother owns a copy of a base object document and mutates it through
// dotted paths such as
//
//	author.name
//	genres[2].type
//	translations.english
//
// Setting a path creates whatever objects and arrays are missing along the
// way, choosing an array when the next segment is an index and an object
// otherwise. Arrays are padded with nulls to reach an index. Removing a path
// requires everything above the target to exist.
//
//	m, err := mother.Of(resource.Dir("testdata"), "book.json")
//	...
//	s, err := m.
//		WithProperty("translations.english", true).
//		WithRemovedProperty("genres[0]").
//		Build()
//
// A Mother is not safe for concurrent use.
package mother
