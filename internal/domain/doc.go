// Package domain contains the core entities and value objects for brolfetch.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [RequestDescriptor]: The fixed WFS GetFeature POST (endpoint, headers, body)
//   - [Artifact]: The text of one response, with its status kept for logging only
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
