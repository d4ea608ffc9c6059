// Package regscout provides a query-driven retrieval engine for regulatory
// document portals. It classifies free-text queries into intents, plans
// which site sections to visit, extracts candidate documents from fetched
// pages, scores them against the query, and ranks the results with
// early-stop semantics for high-confidence matches.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package regscout
