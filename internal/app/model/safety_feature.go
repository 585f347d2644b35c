package model

// SafetyFeature is a notable safety measure an establishment advertises,
// such as air filtration or contactless check-in.
type SafetyFeature struct {
	ID              string  `json:"id"`
	EstablishmentID string  `json:"establishment_id"`
	Feature         string  `json:"feature"`
	Description     *string `json:"description"`
}
