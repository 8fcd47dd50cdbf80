// Package kpath parses the dotted and bracketed paths used to address
// locations inside a document.
//
// A path is a non-empty sequence of segments:
//   - name - object field access
//   - [n] - array element access, n a non-negative decimal integer
//
// A field may carry any number of bracket suffixes, so "genres[2]" is the
// field "genres" followed by the index 2, and "m[0][1]" indexes twice.
//
// # Usage
//
//	kp, err := kpath.Parse("genres[10].type")
//	if errors.Is(err, kpath.ErrSyntax) {
//	    // malformed path
//	}
//	last := kp.Last()         // Field("type")
//	parent := kp.Parent()     // genres[10]
//
// There is no escaping: field names can not contain '.', '[' or ']'.
package kpath
