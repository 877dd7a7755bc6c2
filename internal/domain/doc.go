// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/person,
// domain/todo). This root package holds the sentinel errors and the typed
// argument and duplicate-key errors shared by all entities and DAOs.
package domain
