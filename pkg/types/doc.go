// Package types defines the Substance, Catalog, and AnalysisResult entity
// types, the CatalogStore interface, and standard error types for the
// phaselab state analyzer.
// Implements: prd001-substance-catalog (Config, Catalog, CatalogStore, error types);
//
//	docs/ARCHITECTURE § Catalog, § System Components.
package types
