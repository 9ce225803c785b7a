package dto

import (
	"strings"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/errs"
)

const (
	MaxImageUploads = 10
	MaxPlanUploads  = 5
)

// FileAttachment is an uploaded file forwarded as-is to the remote API.
type FileAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PropertyRequest carries the create/update form payload. Field names match
// the multipart keys the remote API expects.
type PropertyRequest struct {
	Title       string
	Location    string
	Price       string
	Type        string
	Status      string
	Beds        *int
	Baths       *int
	Sqft        float64
	Description string
	Tags        []string
	Featured    bool
	IsRental    bool
	Images      []FileAttachment
	PlanImages  []FileAttachment
}

// Validate runs the local form checks. It must pass before any request is
// dispatched; messages are the ones shown inline on the form.
func (r *PropertyRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &errs.ValidationError{Field: "title", Message: "Le titre est obligatoire"}
	}
	if strings.TrimSpace(r.Location) == "" {
		return &errs.ValidationError{Field: "location", Message: "L'emplacement est obligatoire"}
	}
	if strings.TrimSpace(r.Price) == "" {
		return &errs.ValidationError{Field: "price", Message: "Le prix est obligatoire"}
	}
	if !isDigits(r.Price) {
		return &errs.ValidationError{Field: "price", Message: "Le prix doit être un nombre"}
	}
	if r.Sqft <= 0 {
		return &errs.ValidationError{Field: "sqft", Message: "La superficie doit être supérieure à 0"}
	}
	if !domain.IsValidPropertyType(r.Type) {
		return &errs.ValidationError{Field: "type", Message: "Type de propriété invalide"}
	}
	if !domain.IsValidStatus(r.Status) {
		return &errs.ValidationError{Field: "status", Message: "Statut invalide"}
	}
	if r.Beds != nil && *r.Beds < 0 {
		return &errs.ValidationError{Field: "beds", Message: "Le nombre de chambres doit être positif"}
	}
	if r.Baths != nil && *r.Baths < 0 {
		return &errs.ValidationError{Field: "baths", Message: "Le nombre de salles de bain doit être positif"}
	}
	if len(r.Images) > MaxImageUploads {
		return &errs.ValidationError{Field: "images", Message: "Vous pouvez télécharger jusqu'à 10 images maximum pour l'image principale."}
	}
	if len(r.PlanImages) > MaxPlanUploads {
		return &errs.ValidationError{Field: "planImages", Message: "Vous pouvez télécharger jusqu'à 5 images maximum pour le plan."}
	}
	return nil
}

// AddTag appends a tag, skipping blanks and duplicates. Insertion order is
// preserved.
func (r *PropertyRequest) AddTag(tag string) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return
	}
	for _, existing := range r.Tags {
		if existing == trimmed {
			return
		}
	}
	r.Tags = append(r.Tags, trimmed)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
