package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/repository"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/errs"
	"github.com/rs/zerolog/log"
)

const recentPropertiesLimit = 5

type ServiceImpl struct {
	repo     repository.PropertyRepository
	sessions SessionManager

	mu         sync.RWMutex
	properties []domain.Property
	phase      Phase
	errMsg     string
}

func CreateDashboardService(repo repository.PropertyRepository, sessions SessionManager) DashboardService {
	phase := PhaseUnauthenticated
	if sessions.IsAuthenticated() {
		phase = PhaseLoading
	}

	return &ServiceImpl{repo: repo, sessions: sessions, phase: phase}
}

func (s *ServiceImpl) Login(ctx context.Context, email string, password string) error {
	if err := s.sessions.Login(ctx, email, password); err != nil {
		return err
	}

	if err := s.Refresh(ctx); err != nil {
		// Login succeeded; the list view surfaces the load failure.
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	return nil
}

func (s *ServiceImpl) Logout(ctx context.Context) {
	if err := s.sessions.Logout(ctx); err != nil {
		log.Error().Err(err).Str("component", "Logout").Msg("")
	}

	s.mu.Lock()
	s.properties = nil
	s.phase = PhaseUnauthenticated
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *ServiceImpl) State() (Phase, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase, s.errMsg
}

func (s *ServiceImpl) CurrentUser() (domain.User, bool) {
	return s.sessions.CurrentUser()
}

func (s *ServiceImpl) Refresh(ctx context.Context) error {
	s.setLoading()

	properties, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.fail(err, "Failed to load properties. Please try again later.")
		return err
	}

	s.mu.Lock()
	s.properties = properties
	s.phase = PhaseReady
	s.errMsg = ""
	s.mu.Unlock()

	return nil
}

// Properties filters the in-memory collection by a case-insensitive search
// term over title and location, and an optional type filter.
func (s *ServiceImpl) Properties(search string, typeFilter string) []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Location), term)
		matchesFilter := typeFilter == "" || typeFilter == "all" || p.Type == typeFilter

		if matchesSearch && matchesFilter {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Property fetches a single listing directly from the gateway. The detail
// route does not reuse the in-memory collection.
func (s *ServiceImpl) Property(ctx context.Context, id string) (domain.Property, error) {
	property, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrAuthentication) {
			s.HandleAuthFailure()
		}
		return domain.Property{}, err
	}
	return property, nil
}

func (s *ServiceImpl) CreateProperty(ctx context.Context, req dto.PropertyRequest) (domain.Property, error) {
	if err := req.Validate(); err != nil {
		return domain.Property{}, err
	}

	s.setLoading()

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.fail(err, "Failed to create property")
		return domain.Property{}, err
	}

	s.mu.Lock()
	s.properties = mergeProperty(s.properties, created)
	s.phase = PhaseReady
	s.errMsg = ""
	s.mu.Unlock()

	return created, nil
}

func (s *ServiceImpl) UpdateProperty(ctx context.Context, id string, req dto.PropertyRequest) (domain.Property, error) {
	if err := req.Validate(); err != nil {
		return domain.Property{}, err
	}

	s.setLoading()

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.fail(err, "Failed to update property")
		return domain.Property{}, err
	}

	s.mu.Lock()
	for i, p := range s.properties {
		if p.ID == id {
			s.properties[i] = updated
			break
		}
	}
	s.phase = PhaseReady
	s.errMsg = ""
	s.mu.Unlock()

	return updated, nil
}

func (s *ServiceImpl) DeleteProperty(ctx context.Context, id string) error {
	s.setLoading()

	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		s.fail(err, "Failed to delete property")
		return err
	}

	// A 404 means the listing is already gone; dropping it from the
	// collection is the correct outcome either way.
	s.mu.Lock()
	remaining := s.properties[:0]
	for _, p := range s.properties {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	s.properties = remaining
	s.phase = PhaseReady
	s.errMsg = ""
	s.mu.Unlock()

	return nil
}

func (s *ServiceImpl) Stats() dto.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := dto.DashboardStats{TotalProperties: len(s.properties)}
	for _, p := range s.properties {
		switch p.Status {
		case "À Vendre":
			stats.ForSale++
		case "À Louer":
			stats.ForRent++
		}
		if p.Featured {
			stats.Featured++
		}
	}

	limit := recentPropertiesLimit
	if limit > len(s.properties) {
		limit = len(s.properties)
	}
	stats.Recent = append([]domain.Property(nil), s.properties[:limit]...)

	return stats
}

func (s *ServiceImpl) HandleAuthFailure() {
	if err := s.sessions.Logout(context.Background()); err != nil {
		log.Error().Err(err).Str("component", "HandleAuthFailure").Msg("")
	}

	s.mu.Lock()
	s.properties = nil
	s.phase = PhaseUnauthenticated
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *ServiceImpl) setLoading() {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()
}

// fail records a gateway failure: the last-known-good collection is kept and
// a display message stored. A 401 instead tears the session down.
func (s *ServiceImpl) fail(err error, message string) {
	if errors.Is(err, errs.ErrAuthentication) {
		s.HandleAuthFailure()
		return
	}

	var serverErr *errs.ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		message = serverErr.Message
	}

	s.mu.Lock()
	s.phase = PhaseError
	s.errMsg = message
	s.mu.Unlock()
}

// mergeProperty appends the new entry, or replaces an existing one with the
// same id so a record never appears twice.
func mergeProperty(properties []domain.Property, property domain.Property) []domain.Property {
	for i, p := range properties {
		if p.ID == property.ID {
			properties[i] = property
			return properties
		}
	}
	return append(properties, property)
}
