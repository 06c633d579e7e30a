// Package pagesum provides a CLI tool that fetches web pages, extracts
// readable paragraph text, and produces frequency-based keywords and an
// extractive summary per page, with tabular display and CSV export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package pagesum
