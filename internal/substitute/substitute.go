// Package substitute replaces placeholder tokens in template content with
// caller-supplied values. Replacement is literal, non-recursive, and
// order-independent: a value containing a token is not re-expanded, and
// placeholder-like substrings outside the recognized set are left unchanged.
//
// There is no escape mechanism. Content that needs a literal "{{PROJECT_NAME}}"
// to survive substitution cannot express that; this is a known limitation of
// the token syntax.
package substitute

import "strings"

// Recognized placeholder tokens.
const (
	TokenProjectName     = "{{PROJECT_NAME}}"
	TokenAuthorName      = "{{AUTHOR_NAME}}"
	TokenTemplateVersion = "{{TEMPLATE_VERSION}}"
)

// Vars holds the values substituted for the recognized tokens.
type Vars struct {
	ProjectName     string
	AuthorName      string
	TemplateVersion string
}

// Apply replaces every occurrence of each recognized token in content with
// its value from vars. Unrecognized tokens are passed through untouched.
func Apply(content string, vars Vars) string {
	r := strings.NewReplacer(
		TokenProjectName, vars.ProjectName,
		TokenAuthorName, vars.AuthorName,
		TokenTemplateVersion, vars.TemplateVersion,
	)
	return r.Replace(content)
}
