package utils

import (
	"fmt"
	"strings"
)

// EmailFromName derives a placeholder email from a display name:
// lower-cased, spaces replaced by underscores, at domain
func EmailFromName(name, domain string) string {
	local := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return fmt.Sprintf("%s@%s", local, domain)
}

// FeatureBranchName joins the branch prefix and the user's selector. The
// selector is used as typed; git rejects names it cannot store.
func FeatureBranchName(prefix, selector string) string {
	return prefix + selector
}
