// Package seolint provides a batch SEO compliance checker for article corpora.
// It reads article sources, extracts their title, description and body text,
// infers a primary keyword, measures keyword density, internal links and
// images, and scores every article against fixed thresholds before
// aggregating the results into a corpus-wide report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, fs/).
package seolint
