// Package scaffold materializes a new plugin project from a template. It
// powers the "plugforge new" command: substituting variables into template
// content, building the directory tree, and writing the audit manifest
// over the result.
package scaffold
