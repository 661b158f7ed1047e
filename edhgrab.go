// Package edhgrab provides a CLI tool for extracting EDHREC content.
// It fetches commander pages and upgrade-guide articles, classifies the
// page markup into typed content blocks, enriches card names with Scryfall
// data, and exports the result as plain text or markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, scryfall/, sqlite/).
package edhgrab
