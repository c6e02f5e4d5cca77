// Package scootertests contains the scooter API contract tests themselves and their supporting
// API: the test scope type T, fixtures that release what they create, and assertion helpers.
//
// Test runner infrastructure that is not specific to the scooter domain is in the lower-level
// framework package, and the HTTP calls themselves are made by the client package.
package scootertests
