package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/RouckBlankOo/AdminDashboardImmo/config"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/errs"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/httpclient"
	"github.com/rs/zerolog/log"
)

type APIRepositoryImpl struct {
	client *httpclient.Client
	tokens httpclient.TokenSource
	conf   *config.Config
}

func CreateAPIRepository(client *httpclient.Client, tokens httpclient.TokenSource, conf *config.Config) PropertyRepository {
	return &APIRepositoryImpl{client: client, tokens: tokens, conf: conf}
}

func (r *APIRepositoryImpl) FetchAll(ctx context.Context) ([]domain.Property, error) {
	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.conf.APIBaseURL + "/properties",
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, errs.ErrNetwork
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, r.mapStatusError(resp)
	}

	var records []dto.PropertyRecord
	if err := json.Unmarshal(resp.Body, &records); err != nil {
		log.Error().Err(err).Str("component", "FetchAll").Msg("")
		return nil, &errs.ServerError{Status: resp.StatusCode, Message: "invalid response body"}
	}

	properties := make([]domain.Property, 0, len(records))
	for _, record := range records {
		properties = append(properties, r.normalize(record))
	}

	return properties, nil
}

func (r *APIRepositoryImpl) FetchByID(ctx context.Context, id string) (domain.Property, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Property{}, errs.ErrClient
	}

	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/properties/%s", r.conf.APIBaseURL, id),
		Method: http.MethodGet,
	})
	if err != nil {
		return domain.Property{}, errs.ErrNetwork
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Property{}, r.mapStatusError(resp)
	}

	return r.decodeRecord(resp)
}

func (r *APIRepositoryImpl) Create(ctx context.Context, req dto.PropertyRequest) (domain.Property, error) {
	body, contentType, err := buildMultipartBody(req)
	if err != nil {
		return domain.Property{}, err
	}

	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.conf.APIBaseURL + "/properties/create",
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	})
	if err != nil {
		return domain.Property{}, errs.ErrNetwork
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Property{}, r.mapStatusError(resp)
	}

	return r.decodeRecord(resp)
}

func (r *APIRepositoryImpl) Update(ctx context.Context, id string, req dto.PropertyRequest) (domain.Property, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Property{}, errs.ErrClient
	}

	body, contentType, err := buildMultipartBody(req)
	if err != nil {
		return domain.Property{}, err
	}

	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/properties/%s", r.conf.APIBaseURL, id),
		Method: http.MethodPut,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	})
	if err != nil {
		return domain.Property{}, errs.ErrNetwork
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Property{}, r.mapStatusError(resp)
	}

	return r.decodeRecord(resp)
}

func (r *APIRepositoryImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.ErrClient
	}

	// Fail fast without issuing the request when no token is stored.
	if r.tokens == nil || r.tokens.Token() == "" {
		return errs.ErrAuthentication
	}

	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/properties/%s", r.conf.APIBaseURL, id),
		Method: http.MethodDelete,
	})
	if err != nil {
		return errs.ErrNetwork
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return r.mapStatusError(resp)
	}

	return nil
}

func (r *APIRepositoryImpl) decodeRecord(resp httpclient.Response) (domain.Property, error) {
	var record dto.PropertyRecord
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		log.Error().Err(err).Str("component", "decodeRecord").Msg("")
		return domain.Property{}, &errs.ServerError{Status: resp.StatusCode, Message: "invalid response body"}
	}
	return r.normalize(record), nil
}

func (r *APIRepositoryImpl) mapStatusError(resp httpclient.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errs.ErrAuthentication
	case http.StatusForbidden:
		return errs.ErrPermission
	case http.StatusNotFound:
		return errs.ErrNotFound
	}

	var envelope dto.ErrorEnvelope
	json.Unmarshal(resp.Body, &envelope)

	return &errs.ServerError{Status: resp.StatusCode, Message: envelope.Message}
}

// normalize converts a raw API record into the canonical client shape: the id
// mirrors _id, image paths become absolute URLs and isRental is never absent.
func (r *APIRepositoryImpl) normalize(record dto.PropertyRecord) domain.Property {
	id := record.MongoID
	if id == "" {
		id = record.ID
	}

	images := record.Images
	if len(images) == 0 {
		images = record.Image
	}
	planImages := record.PlanImages
	if len(planImages) == 0 {
		planImages = record.PlanImage
	}

	return domain.Property{
		ID:          id,
		Title:       record.Title,
		Location:    record.Location,
		Price:       record.Price,
		Type:        record.Type,
		Status:      record.Status,
		Beds:        record.Beds,
		Baths:       record.Baths,
		Sqft:        record.Sqft,
		Description: record.Description,
		Tags:        record.Tags,
		Featured:    record.Featured,
		IsRental:    record.IsRental != nil && *record.IsRental,
		Images:      r.resolveMediaURLs(images),
		PlanImages:  r.resolveMediaURLs(planImages),
		DateAdded:   record.DateAdded,
	}
}

func (r *APIRepositoryImpl) resolveMediaURLs(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	resolved := make([]string, len(paths))
	for i, path := range paths {
		resolved[i] = r.resolveMediaURL(path)
	}
	return resolved
}

func (r *APIRepositoryImpl) resolveMediaURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(r.conf.MediaBaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func buildMultipartBody(req dto.PropertyRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       strings.TrimSpace(req.Title),
		"location":    strings.TrimSpace(req.Location),
		"price":       req.Price,
		"type":        req.Type,
		"status":      req.Status,
		"sqft":        strconv.FormatFloat(req.Sqft, 'f', -1, 64),
		"description": req.Description,
		"featured":    strconv.FormatBool(req.Featured),
		"isRental":    strconv.FormatBool(req.IsRental),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if req.Beds != nil {
		if err := writer.WriteField("beds", strconv.Itoa(*req.Beds)); err != nil {
			return nil, "", err
		}
	}
	if req.Baths != nil {
		if err := writer.WriteField("baths", strconv.Itoa(*req.Baths)); err != nil {
			return nil, "", err
		}
	}

	for _, tag := range req.Tags {
		if err := writer.WriteField("tags", tag); err != nil {
			return nil, "", err
		}
	}

	if err := writeAttachments(writer, "images", req.Images); err != nil {
		return nil, "", err
	}
	if err := writeAttachments(writer, "planImages", req.PlanImages); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func writeAttachments(writer *multipart.Writer, field string, files []dto.FileAttachment) error {
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, file.Filename))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			return err
		}
		if _, err := part.Write(file.Data); err != nil {
			return err
		}
	}
	return nil
}
