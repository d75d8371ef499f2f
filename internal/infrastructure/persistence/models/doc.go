// Package models contains GORM database models for the citation-analysis
// schema. These models own the shape of the relational tables (names, column
// types, keys, relationships) and are separated from the domain entities,
// which stay free of persistence concerns. The SchemaRegistry keeps an
// explicit record of every declared model so that the full set can be
// checked for internal consistency and registered with the ORM runtime.
package models
