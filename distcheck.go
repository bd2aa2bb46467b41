// Package distcheck statically validates a generated static-site build
// directory for SEO and structural correctness: JSON-LD structured data,
// required meta and OpenGraph tags, and internal link targets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, yaml/) or after the
// concern they validate (jsonld/, meta/, links/).
package distcheck
