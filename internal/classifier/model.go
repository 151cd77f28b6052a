package classifier

// Prediction is one label/confidence pair. Confidence is a 0-1
// fraction, converted from the API's 0-100 scale at the boundary.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Result is the parsed outcome of one classification call.
// Predictions is ordered highest confidence first and never empty on
// success. PricePaise and Unit are optional hints the API may supply
// for produce outside the local catalog; PricePaise is 0 when absent.
type Result struct {
	Label       string       `json:"label"`
	Confidence  float64      `json:"confidence"`
	PricePaise  int64        `json:"price_paise,omitempty"`
	Unit        string       `json:"unit,omitempty"`
	Predictions []Prediction `json:"predictions"`
}

// ClassifierError covers every way a classification call can fail:
// network errors, non-2xx statuses and malformed responses. The cart
// is never touched when one is returned.
type ClassifierError struct {
	Cause string
}

func (e *ClassifierError) Error() string {
	return "classifier: " + e.Cause
}
