// Package atbs builds an offline bundle of the Automate the Boring Stuff
// book and its companion workbook. It fetches a fixed list of pages,
// rewrites their links and embedded assets to point at local copies,
// injects chapter navigation, and writes an index page plus exercise
// folders.
//
// This package contains domain types, interfaces and pure URL helpers
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/, fs/,
// goquery/, yaml/).
package atbs
