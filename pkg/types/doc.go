// Package types defines the record types, finder interfaces, configuration,
// and standard errors for the questions data-access layer.
//
// Records are plain data holders built from row mappings. Relationship
// methods on records take a Store and delegate to its table finders, so a
// record never holds a connection of its own.
package types
