// Package parse turns document text and Go values into ir.Node trees.
//
// Parse reads JSON (the default) or YAML, keeping object keys in document
// order:
//
//	node, err := parse.Parse(data)
//	node, err = parse.Parse(data, parse.ParseYAML())
//
// FromAny converts Go values such as the ones given to a mutation:
//
//	node, err := parse.FromAny(map[string]any{"english": true})
//
// Setting MOTHER_DEBUG_PARSE=true logs every parsed document to stderr.
package parse
