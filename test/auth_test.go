package test

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
	"github.com/labstack/echo/v4"
)

func (s *IntegrationTestSuite) login() {
	reqBody, err := json.Marshal(dto.LoginRequest{
		Email:    "manager@sayallo.com",
		Password: "secret",
	})
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, s.serviceURL("/auth/login"), bytes.NewBuffer(reqBody))
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_Login() {
	type TestCase struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.LoginRequest{
				Email:    "manager@sayallo.com",
				Password: "secret",
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Wrong password",
			Request: dto.LoginRequest{
				Email:    "manager@sayallo.com",
				Password: "wrong",
			},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name: "Missing fields",
			Request: dto.LoginRequest{
				Email: "manager@sayallo.com",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Local fallback credentials",
			Request: dto.LoginRequest{
				Email:    "admin@sayallo.com",
				Password: "admin123",
			},
			ExpectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPost, s.serviceURL("/auth/login"), bytes.NewBuffer(reqBody))
			s.NoError(err)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			resp, err := http.DefaultClient.Do(req)
			s.NoError(err)
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_Logout() {
	s.login()

	resp, err := http.Post(s.serviceURL("/auth/logout"), echo.MIMEApplicationJSON, nil)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	sessionResp, err := http.Get(s.serviceURL("/session"))
	s.Require().NoError(err)
	defer sessionResp.Body.Close()

	var envelope struct {
		Data dto.SessionResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(sessionResp.Body).Decode(&envelope))
	s.False(envelope.Data.Authenticated)
}

func (s *IntegrationTestSuite) Test_Session() {
	s.login()

	resp, err := http.Get(s.serviceURL("/session"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data dto.SessionResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))

	s.True(envelope.Data.Authenticated)
	s.Require().NotNil(envelope.Data.User)
	s.Equal("u-manager", envelope.Data.User.UserID)
	s.Equal("admin", envelope.Data.User.Role)
	s.Equal("ready", envelope.Data.Phase)
}
