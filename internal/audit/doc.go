// Package audit implements the content-integrity subsystem: deterministic
// per-file digests, the audit-index.json manifest written at the root of
// every scaffolded project, and verification of a tree against its manifest.
// Digests cover file content only; metadata never influences them. The
// manifest is parsed in-process and validated against an embedded JSON
// schema before any comparison runs.
package audit
