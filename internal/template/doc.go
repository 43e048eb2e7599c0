// Package template provides the store of project templates available to
// "plugforge new". Builtin templates are embedded in the binary; additional
// definitions can be dropped into ~/.plugforge/templates/ as YAML files with
// the same shape. A template maps relative file paths to content patterns
// containing substitution tokens, and is validated (structure, path rules,
// semver version) before it can be materialized.
package template
