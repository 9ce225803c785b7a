package dto

import "github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"

// DashboardStats summarizes the in-memory collection for the overview page.
type DashboardStats struct {
	TotalProperties int               `json:"totalProperties"`
	ForSale         int               `json:"forSale"`
	ForRent         int               `json:"forRent"`
	Featured        int               `json:"featured"`
	Recent          []domain.Property `json:"recent"`
}
