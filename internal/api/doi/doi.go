package doi

import (
	"fmt"
	"regexp"
	"strings"
)

// doiPattern matches the registrant/suffix form of a DOI, e.g. 10.1234/abcd.5678.
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

const resolverHost = "doi.org"

// Normalize strips any resolver prefix from the given value and returns the
// bare DOI, e.g. "https://doi.org/10.1234/x" -> "10.1234/x".
func Normalize(value string) string {
	normalized := strings.TrimSpace(value)
	for _, prefix := range []string{
		"https://doi.org/",
		"http://doi.org/",
		"https://dx.doi.org/",
		"http://dx.doi.org/",
		"doi:",
	} {
		if strings.HasPrefix(normalized, prefix) {
			return strings.TrimPrefix(normalized, prefix)
		}
	}
	return normalized
}

func IsValid(value string) bool {
	return doiPattern.MatchString(Normalize(value))
}

// ToURL converts a DOI to its HTTPS resolver form.
func ToURL(value string) (string, error) {
	normalized := Normalize(value)
	if !doiPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid DOI: %s", value)
	}
	return fmt.Sprintf("https://%s/%s", resolverHost, normalized), nil
}
