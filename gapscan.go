// Package gapscan compares an editorial web page against competitor pages
// and reports structural and content differences: sections the page lacks,
// FAQ questions it does not answer, and topical terms missing from sections
// it shares with competitors.
//
// This package contains domain types, interfaces, and the pure analysis
// core following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, sqlite/, chi/).
package gapscan
