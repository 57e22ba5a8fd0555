// Package enumtype provides the enum parametric type core: immutable type
// definitions, a process-wide registry, and the typed values that flow
// through the engine's expression layer.
//
// This package contains the foundational types only. All other internal
// packages import enumtype; enumtype imports nothing internal. This keeps
// the type core free of circular dependencies.
//
// Key design constraints:
//   - Definitions are immutable after construction and never destroyed
//   - Key and qualified-name matching is case-insensitive (Unicode folding)
//   - Backing kinds form a closed variant: integral (int64) or textual
//   - Values are plain value types, safe to copy and compare concurrently
package enumtype
