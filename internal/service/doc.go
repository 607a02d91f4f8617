// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection, apply
// transactional boundaries when operations span multiple store calls, and
// enforce application-level rules such as the per-resource ownership check
// on mutating account operations.
package service
