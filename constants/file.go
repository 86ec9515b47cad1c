package constants

import "strings"

// MaxIllustrationsPerProposal is the hard cap on uploaded illustrations per proposal.
const MaxIllustrationsPerProposal = 5

// MaxIllustrationFileSize is the upload size ceiling in bytes (15 MB).
const MaxIllustrationFileSize = 15 << 20

// AllowedExtensions holds the accepted file extensions for illustration uploads.
// Policy illustrations are PDF only.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether the (possibly dotted, mixed-case) extension is accepted.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
