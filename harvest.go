// Package harvest provides a single-site web page harvester. It reads URLs
// from a sitemap, fetches each page, extracts the primary text content, and
// appends one JSON record per page to a line-delimited file that doubles as
// the resume log for the next run.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package harvest
