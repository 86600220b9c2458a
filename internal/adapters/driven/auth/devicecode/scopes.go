package devicecode

import "strings"

// passthroughScopes are OpenID Connect scopes that must not be
// prefixed with a resource.
var passthroughScopes = map[string]struct{}{
	"offline_access": {},
	"openid":         {},
	"profile":        {},
}

// ExpandScopes qualifies bare Graph permission names with the Graph
// resource URI. Already-qualified scopes and OIDC scopes pass through
// untouched.
func ExpandScopes(scopes []string) []string {
	expanded := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		if _, ok := passthroughScopes[scope]; ok || strings.HasPrefix(scope, "http") {
			expanded = append(expanded, scope)
			continue
		}
		expanded = append(expanded, "https://graph.microsoft.com/"+scope)
	}
	return expanded
}
