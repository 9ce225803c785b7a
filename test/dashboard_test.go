package test

import (
	"encoding/json"
	"net/http"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
)

func (s *IntegrationTestSuite) Test_Dashboard() {
	s.login()

	resp, err := http.Get(s.serviceURL("/dashboard"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data dto.DashboardStats `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))

	stats := envelope.Data
	s.Equal(len(s.listProperties("")), stats.TotalProperties)
	s.GreaterOrEqual(stats.ForSale, 1)
	s.GreaterOrEqual(stats.ForRent, 1)
	s.GreaterOrEqual(stats.Featured, 1)
	s.LessOrEqual(len(stats.Recent), 5)
	s.NotEmpty(stats.Recent)
}
