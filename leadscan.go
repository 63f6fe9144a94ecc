// Package leadscan analyzes marketing pages for lead-generation
// effectiveness. It fetches a page, extracts conversion elements (forms,
// CTAs, lead magnets, social proof, funnel leaks), classifies the business
// sector, and applies a weighted multi-criteria scoring rubric. A decoupled
// enrichment step adds narrative report text after the structural result
// has been returned.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, http/, score/,
// gemini/, sqlite/).
package leadscan
