package repository

import (
	"context"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
)

// PropertyRepository translates listing operations into calls against the
// remote Say Allo API. Every returned Property is normalized; the repository
// never caches.
type PropertyRepository interface {
	FetchAll(ctx context.Context) ([]domain.Property, error)
	FetchByID(ctx context.Context, id string) (domain.Property, error)
	Create(ctx context.Context, req dto.PropertyRequest) (domain.Property, error)
	Update(ctx context.Context, id string, req dto.PropertyRequest) (domain.Property, error)
	Delete(ctx context.Context, id string) error
}
