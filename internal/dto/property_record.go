package dto

import (
	"encoding/json"
	"strings"
)

// StringList decodes the image fields the API returns in three historical
// shapes: a JSON array, a single path string, or a comma-joined path string.
// Element order is preserved.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	if single == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(single, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*l = out

	return nil
}

// PropertyRecord is a raw listing exactly as the remote API serializes it.
// It is normalized into domain.Property at the repository boundary only.
type PropertyRecord struct {
	MongoID     string     `json:"_id"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	Price       string     `json:"price"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Beds        *int       `json:"beds"`
	Baths       *int       `json:"baths"`
	Sqft        float64    `json:"sqft"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	IsRental    *bool      `json:"isRental"`
	Image       StringList `json:"image"`
	Images      StringList `json:"images"`
	PlanImage   StringList `json:"planImage"`
	PlanImages  StringList `json:"planImages"`
	DateAdded   string     `json:"dateAdded"`
}

// ErrorEnvelope is the body the API attaches to non-2xx responses.
type ErrorEnvelope struct {
	Message string `json:"message"`
}
