package license

import "strings"

// Normalize rewrites a crate license expression into the
// form used by the License tag of a spec file.
//
// Operator detection is a plain substring match, so an
// identifier that happens to contain "OR" or "AND" is
// wrapped as well.
func Normalize(lic string) string {
	lic = strings.ReplaceAll(lic, " / ", " OR ")
	lic = strings.ReplaceAll(lic, "/", " OR ")

	// expressions with an operator need braces
	if strings.Contains(lic, "OR") || strings.Contains(lic, "AND") {
		lic = "( " + lic + " )"
	}

	// common replacements to avoid duplication
	switch lic {
	case "( MIT OR Apache-2.0 )":
		return "( Apache-2.0 OR MIT )"
	default:
		return lic
	}
}
