package domain

// Review is a customer rating. MillTime is a millisecond timestamp used as
// the single sort key (newest first) on the public listing.
type Review struct {
	ID       string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string  `json:"email" bson:"email"`
	Name     string  `json:"name,omitempty" bson:"name,omitempty"`
	Rating   float64 `json:"rating" bson:"rating"`
	Comment  string  `json:"comment,omitempty" bson:"comment,omitempty"`
	MillTime int64   `json:"millTime" bson:"millTime"`
}

// CustomerQuery is a free-form contact message stored verbatim.
type CustomerQuery struct {
	ID      string `json:"_id,omitempty" bson:"_id,omitempty"`
	Email   string `json:"email" bson:"email"`
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Subject string `json:"subject,omitempty" bson:"subject,omitempty"`
	Message string `json:"message" bson:"message"`
}

// SummaryItem is a single headline figure shown on the landing page.
type SummaryItem struct {
	ID    string `json:"_id,omitempty" bson:"_id,omitempty"`
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
}
