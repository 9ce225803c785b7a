package controller

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/service"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/errs"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.DashboardService
}

func CreateController(e *echo.Group, service service.DashboardService) {
	dc := Controller{
		service: service,
	}
	e.POST("/auth/login", dc.Login)
	e.POST("/auth/logout", dc.Logout)
	e.GET("/session", dc.Session)
	e.GET("/dashboard", dc.Dashboard)
	e.GET("/properties", dc.GetProperties)
	e.GET("/properties/:id", dc.GetProperty)
	e.POST("/properties", dc.CreateProperty)
	e.PUT("/properties/:id", dc.UpdateProperty)
	e.DELETE("/properties/:id", dc.DeleteProperty)
}

func (c *Controller) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	err = c.service.Login(e.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	user, _ := c.service.CurrentUser()
	return response.WriteSuccessResponse(e, "", user)
}

func (c *Controller) Logout(e echo.Context) error {
	c.service.Logout(e.Request().Context())
	return response.WriteSuccessResponse(e, "", nil)
}

func (c *Controller) Session(e echo.Context) error {
	phase, errMsg := c.service.State()

	resp := dto.SessionResponse{
		Authenticated: phase != service.PhaseUnauthenticated,
		Phase:         string(phase),
		Error:         errMsg,
	}
	if user, ok := c.service.CurrentUser(); ok {
		resp.User = &user
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) Dashboard(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.Stats())
}

func (c *Controller) GetProperties(e echo.Context) error {
	search := e.QueryParam("search")
	typeFilter := e.QueryParam("type")

	return response.WriteSuccessResponse(e, "", c.service.Properties(search, typeFilter))
}

func (c *Controller) GetProperty(e echo.Context) error {
	property, err := c.service.Property(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", property)
}

func (c *Controller) CreateProperty(e echo.Context) error {
	payload, err := c.bindPropertyForm(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	created, err := c.service.CreateProperty(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", created)
}

func (c *Controller) UpdateProperty(e echo.Context) error {
	payload, err := c.bindPropertyForm(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	updated, err := c.service.UpdateProperty(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", updated)
}

func (c *Controller) DeleteProperty(e echo.Context) error {
	err := c.service.DeleteProperty(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *Controller) bindPropertyForm(e echo.Context) (dto.PropertyRequest, error) {
	payload := dto.PropertyRequest{
		Title:       e.FormValue("title"),
		Location:    e.FormValue("location"),
		Price:       e.FormValue("price"),
		Type:        e.FormValue("type"),
		Status:      e.FormValue("status"),
		Description: e.FormValue("description"),
		Featured:    e.FormValue("featured") == "true",
		IsRental:    e.FormValue("isRental") == "true",
	}

	if sqft := e.FormValue("sqft"); sqft != "" {
		value, err := strconv.ParseFloat(sqft, 64)
		if err != nil {
			return payload, &errs.ValidationError{Field: "sqft", Message: "La superficie doit être un nombre"}
		}
		payload.Sqft = value
	}

	if beds, err := formIntValue(e, "beds"); err != nil {
		return payload, &errs.ValidationError{Field: "beds", Message: "Le nombre de chambres doit être un nombre"}
	} else {
		payload.Beds = beds
	}
	if baths, err := formIntValue(e, "baths"); err != nil {
		return payload, &errs.ValidationError{Field: "baths", Message: "Le nombre de salles de bain doit être un nombre"}
	} else {
		payload.Baths = baths
	}

	form, err := e.MultipartForm()
	if err != nil {
		// Field-only submissions without attachments are fine.
		return payload, nil
	}

	for _, tag := range form.Value["tags"] {
		payload.AddTag(tag)
	}

	images, err := readAttachments(form.File["images"])
	if err != nil {
		return payload, errs.ErrClient
	}
	payload.Images = images

	planImages, err := readAttachments(form.File["planImages"])
	if err != nil {
		return payload, errs.ErrClient
	}
	payload.PlanImages = planImages

	return payload, nil
}

func formIntValue(e echo.Context, field string) (*int, error) {
	raw := e.FormValue(field)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func readAttachments(headers []*multipart.FileHeader) ([]dto.FileAttachment, error) {
	attachments := make([]dto.FileAttachment, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}

		attachments = append(attachments, dto.FileAttachment{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return attachments, nil
}
