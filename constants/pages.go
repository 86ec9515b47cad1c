package constants

// Logical output pages of a generated proposal document.
const (
	PageTitle          = 1
	PageFeatures       = 2
	PageComparison     = 3 // cash-surrender-value comparison; depends on intelligent analysis
	PageRecommendation = 4

	PageCount = 4
)

// ValidPage reports whether n is a renderable logical page number.
func ValidPage(n int) bool {
	return n >= PageTitle && n <= PageRecommendation
}
