// Package jtd implements an RFC 8927 (JSON Type Definition) schema
// compiler and validator: a strict compiler that rejects ill-formed
// schemas and resolves refs into an arena-indexed AST, and a
// stack-driven interpreter that reports deterministic
// (instancePath, schemaPath) error pairs.
package jtd
