// Package nethys converts rulebook entry pages into typed search records and
// packs those records into bounded, content-addressed upload batches.
//
// This package contains domain types, interfaces and the pure normalizers and
// batch packer. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, sqlite/, http/).
package nethys
