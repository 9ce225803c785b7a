package domain

// Property is the canonical client-side shape of a listing. ID always mirrors
// the server-assigned Mongo identifier after normalization at the repository
// boundary; image URLs are absolute.
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       string   `json:"price"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Beds        *int     `json:"beds,omitempty"`
	Baths       *int     `json:"baths,omitempty"`
	Sqft        float64  `json:"sqft"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	IsRental    bool     `json:"isRental"`
	Images      []string `json:"images"`
	PlanImages  []string `json:"planImages"`
	DateAdded   string   `json:"dateAdded,omitempty"`
}

var PropertyTypes = []string{
	"Appartement",
	"Villa",
	"Maison",
	"Commerce",
	"Terrain",
	"Bureau",
}

var StatusOptions = []string{
	"À Vendre",
	"À Louer",
	"Vendu",
	"Loué",
}

func IsValidPropertyType(propertyType string) bool {
	for _, t := range PropertyTypes {
		if t == propertyType {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range StatusOptions {
		if s == status {
			return true
		}
	}
	return false
}
