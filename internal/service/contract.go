package service

import (
	"context"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
)

// Phase is the authentication/data-loading state of the dashboard.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseLoading         Phase = "loading"
	PhaseReady           Phase = "ready"
	PhaseError           Phase = "error"
)

// SessionManager is the slice of the session store the dashboard needs.
type SessionManager interface {
	Login(ctx context.Context, email string, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	CurrentUser() (domain.User, bool)
}

// DashboardService owns the in-memory property collection and orchestrates
// every gateway operation. It is the only writer of the collection.
type DashboardService interface {
	Login(ctx context.Context, email string, password string) error
	Logout(ctx context.Context)
	State() (Phase, string)
	CurrentUser() (domain.User, bool)

	Refresh(ctx context.Context) error
	Properties(search string, typeFilter string) []domain.Property
	Property(ctx context.Context, id string) (domain.Property, error)
	CreateProperty(ctx context.Context, req dto.PropertyRequest) (domain.Property, error)
	UpdateProperty(ctx context.Context, id string, req dto.PropertyRequest) (domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	Stats() dto.DashboardStats

	// HandleAuthFailure reacts to a 401 signalled by any authenticated call:
	// the session is cleared and the collection discarded.
	HandleAuthFailure()
}
