package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
)

type listEnvelope struct {
	Data []domain.Property `json:"data"`
}

type propertyEnvelope struct {
	Data domain.Property `json:"data"`
}

func (s *IntegrationTestSuite) listProperties(query string) []domain.Property {
	resp, err := http.Get(s.serviceURL("/properties" + query))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var envelope listEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func (s *IntegrationTestSuite) createProperty(fields map[string]string) (domain.Property, int) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		s.Require().NoError(writer.WriteField(name, value))
	}
	s.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, s.serviceURL("/properties"), &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var envelope propertyEnvelope
	json.NewDecoder(resp.Body).Decode(&envelope)
	return envelope.Data, resp.StatusCode
}

func (s *IntegrationTestSuite) Test_GetProperties() {
	s.login()

	properties := s.listProperties("")
	s.Require().NotEmpty(properties)

	byID := make(map[string]domain.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	villa, ok := byID["seed-1"]
	s.Require().True(ok)
	// The legacy comma-joined image field comes back split and absolute.
	s.Equal([]string{
		"https://media.sayallo.test/uploads/villa-1.jpg",
		"https://media.sayallo.test/uploads/villa-2.jpg",
	}, villa.Images)
	s.False(villa.IsRental)

	studio, ok := byID["seed-2"]
	s.Require().True(ok)
	s.True(studio.IsRental)

	// Search and type filters apply together.
	filtered := s.listProperties("?search=studio&type=Appartement")
	s.Require().Len(filtered, 1)
	s.Equal("seed-2", filtered[0].ID)

	s.Empty(s.listProperties("?search=studio&type=Villa"))
}

func (s *IntegrationTestSuite) Test_CreateProperty() {
	s.login()

	created, status := s.createProperty(map[string]string{
		"title":    "Bureau open space",
		"location": "Lac 2",
		"price":    "12000",
		"type":     "Bureau",
		"status":   "À Louer",
		"sqft":     "180",
		"isRental": "true",
	})
	s.Require().Equal(http.StatusOK, status)
	s.NotEmpty(created.ID)
	s.Equal("Bureau open space", created.Title)
	s.True(created.IsRental)

	properties := s.listProperties("")
	found := 0
	for _, p := range properties {
		if p.ID == created.ID {
			found++
		}
	}
	s.Equal(1, found)
}

func (s *IntegrationTestSuite) Test_CreateProperty_ValidationFailsLocally() {
	s.login()

	before := len(s.listProperties(""))

	_, status := s.createProperty(map[string]string{
		"title":    "Sans superficie",
		"location": "Sousse",
		"price":    "100000",
		"type":     "Maison",
		"status":   "À Vendre",
	})
	s.Equal(http.StatusBadRequest, status)

	s.Len(s.listProperties(""), before)
}

func (s *IntegrationTestSuite) Test_DeleteProperty() {
	s.login()

	created, status := s.createProperty(map[string]string{
		"title":    "Terrain constructible",
		"location": "Bizerte",
		"price":    "250000",
		"type":     "Terrain",
		"status":   "À Vendre",
		"sqft":     "600",
	})
	s.Require().Equal(http.StatusOK, status)

	req, err := http.NewRequest(http.MethodDelete, s.serviceURL("/properties/"+created.ID), nil)
	s.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	for _, p := range s.listProperties("") {
		s.NotEqual(created.ID, p.ID)
	}

	// Deleting the same listing again is treated as already gone.
	again, err := http.NewRequest(http.MethodDelete, s.serviceURL("/properties/"+created.ID), nil)
	s.Require().NoError(err)

	resp, err = http.DefaultClient.Do(again)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_GetProperty() {
	s.login()

	resp, err := http.Get(s.serviceURL("/properties/seed-1"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var envelope propertyEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Equal("seed-1", envelope.Data.ID)

	missing, err := http.Get(s.serviceURL("/properties/no-such-id"))
	s.Require().NoError(err)
	defer missing.Body.Close()

	s.Equal(http.StatusNotFound, missing.StatusCode)
}
