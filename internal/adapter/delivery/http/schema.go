package http

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

const statusError = "error"

// shortenRequest represents a request to shorten a URL with a generated code.
type shortenRequest struct {
	URL  string `json:"url" validate:"required,url"`
	User string `json:"user" validate:"omitempty,max=64"`
}

// customShortenRequest represents a request to shorten a URL with a user-chosen code.
type customShortenRequest struct {
	URL       string `json:"url" validate:"required,url"`
	CustomURL string `json:"custom_url" validate:"required,alphanum"`
	User      string `json:"user" validate:"required,max=64"`
}

// unbindRequest carries the query parameters of an alias removal.
type unbindRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// urlResponse represents the structure for a response containing shortened URL information.
type urlResponse struct {
	ShortCode string    `json:"short_code"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	Hits      int64     `json:"hits"`
	Custom    bool      `json:"custom"`
	CreatedAt time.Time `json:"created_at"`
}

func toURLResponse(url *entity.URL, baseURL string) urlResponse {
	return urlResponse{
		ShortCode: url.ShortCode,
		ShortURL:  strings.TrimRight(baseURL, "/") + "/" + url.ShortCode,
		LongURL:   url.LongURL,
		Hits:      url.Hits,
		Custom:    url.Custom,
		CreatedAt: url.CreatedAt,
	}
}

type userURLResponse struct {
	URL     string   `json:"url"`
	Aliases []string `json:"aliases"`
}

func toUserURLsResponse(urls []entity.UserURL) []userURLResponse {
	resp := make([]userURLResponse, 0, len(urls))
	for _, u := range urls {
		resp = append(resp, userURLResponse{URL: u.LongURL, Aliases: u.Aliases})
	}

	return resp
}

type chartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type chartResponse struct {
	Kind   string       `json:"kind"`
	Points []chartPoint `json:"points"`
}

func toChartResponse(chart *entity.Chart) chartResponse {
	points := make([]chartPoint, 0, len(chart.Points))
	for _, p := range chart.Points {
		points = append(points, chartPoint{Label: p.Label, Value: p.Value})
	}

	return chartResponse{Kind: chart.Kind, Points: points}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	urlNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "url not found",
	}

	userNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "user not found",
	}

	aliasNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "alias not found",
	}

	aliasTakenResponse = errorResponse{
		Status:  statusError,
		Message: "alias is already taken",
	}

	invalidAliasLengthResponse = errorResponse{
		Status:  statusError,
		Message: "alias must be between 7 and 10 characters long",
	}

	invalidAliasResponse = errorResponse{
		Status:  statusError,
		Message: "alias may only contain letters and digits",
	}

	invalidURLResponse = errorResponse{
		Status:  statusError,
		Message: "url is malformed or unreachable",
	}

	unknownChartResponse = errorResponse{
		Status:  statusError,
		Message: "unknown chart",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "alphanum":
		return "only letters and digits are allowed"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
