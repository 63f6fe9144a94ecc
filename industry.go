package leadscan

// Industry is the detected business sector of a page, used to adapt report
// tone and terminology.
type Industry struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // 0.0-1.0, rounded to 2 decimals
}

// IndustryClassifier labels the business sector from extracted elements.
// Classification is pure and stateless: the same input always yields the
// same output.
type IndustryClassifier interface {
	Classify(elements *ExtractedElements) Industry
}
