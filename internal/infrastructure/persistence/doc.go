// Package persistence provides database repository implementations for the
// citation-analysis schema. It uses GORM as the ORM layer to interact with
// databases, managing authors, organizations, publications, benchmarks and
// suggestions. Schema registration, query translation and referential
// integrity are delegated to GORM and the underlying storage engine; this
// package contributes validation, logging and explicit association handling.
package persistence
