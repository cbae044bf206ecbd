package audit

// Category names as they appear in audit results and snapshot breakdowns.
const (
	CategoryContent   = "Content Quality"
	CategoryTechnical = "Technical SEO"
	CategoryLocal     = "Local SEO"
	CategoryVisual    = "Visual Content"
	CategorySocial    = "Social Proof"
)

// Category caps. These are fixed design constants and must sum to 100;
// a category total exceeding its cap is a scoring-table bug, not data.
const (
	capContent   = 30
	capTechnical = 25
	capLocal     = 25
	capVisual    = 10
	capSocial    = 10
)

// Content quality thresholds.
const (
	seoTitleMinLen       = 50
	seoTitleMaxLen       = 60
	seoDescriptionMinLen = 150
	seoDescriptionMaxLen = 160
	shortDescMinWords    = 50
	longDescMinWords     = 150
	servicesMinCount     = 3
	faqMinCount          = 5
)

// Content quality criteria all share the same point split.
const (
	contentFullScore    = 5
	contentPartialScore = 2
)

// Technical SEO point values.
const (
	structuredDataScore      = 8
	socialPreviewScore       = 5
	socialPreviewPartial     = 2
	headingStructureScore    = 4
	headingStructurePartial  = 2
	cleanURLScore            = 4
	internalLinkScore        = 4
	headingStructureMinChars = 200
)

// Local SEO point values.
const (
	contactCompleteScore   = 5
	napConsistencyScore    = 5
	napConsistencyPartial  = 2
	openingHoursScore      = 4
	openingHoursPartial    = 2
	mapReadinessScore      = 4
	localKeywordScore      = 4
	localKeywordPartial    = 2
	serviceAreaScore       = 3
)

// Visual content thresholds and point values.
const (
	logoScore          = 2
	coverImageScore    = 2
	galleryFullScore   = 3
	galleryPartial     = 1
	galleryMinImages   = 5
	altTextFullScore   = 3
	altTextPartial     = 1
)

// Social proof thresholds and point values.
const (
	reviewVolumeScore     = 4
	reviewVolumePartial   = 2
	reviewVolumeMinCount  = 5
	ratingScore           = 3
	ratingPartial         = 1
	ratingMinAverage      = 4.0
	reviewResponseScore   = 3
	reviewResponsePartial = 1
	reviewResponseWindow  = 5
)

// Priority list size.
const maxPriorityActions = 6

// SERP preview truncation: descriptions past 160 characters are cut to 157
// plus an ellipsis, mirroring how search engines clip snippets.
const (
	serpDescriptionMaxLen  = 160
	serpDescriptionCutLen  = 157
	serpProfileBaseURL     = "https://www.vindlokaal.nl/bedrijf/"
)
