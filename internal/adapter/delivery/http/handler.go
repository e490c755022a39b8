package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type urlUseCase interface {
	Shorten(ctx context.Context, longURL, username string) (*entity.URL, bool, error)
	ShortenCustom(ctx context.Context, longURL, custom, username string) (*entity.URL, error)
	Resolve(ctx context.Context, shortCode string, visitor entity.Visitor) (*entity.URL, error)
	UnbindAlias(ctx context.Context, username, longURL, alias string) error
	ListUserURLs(ctx context.Context, username string) ([]entity.UserURL, error)
	Chart(ctx context.Context, kind string) (*entity.Chart, error)
}

type urlHandler struct {
	useCase  urlUseCase
	validate *validator.Validate
	baseURL  string
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate, baseURL string) *urlHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &urlHandler{
		useCase:  useCase,
		validate: validate,
		baseURL:  baseURL,
	}
}

// decodeAndValidate reads a JSON body into v and validates it.
// It writes the error response itself and reports whether the handler may continue.
func (h *urlHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := h.validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

// renderError maps use case errors to responses.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		resp   errorResponse
	)

	switch {
	case errors.Is(err, entity.ErrURLNotFound):
		status, resp = http.StatusNotFound, urlNotFoundResponse
	case errors.Is(err, entity.ErrUserNotFound):
		status, resp = http.StatusNotFound, userNotFoundResponse
	case errors.Is(err, entity.ErrAliasNotFound):
		status, resp = http.StatusNotFound, aliasNotFoundResponse
	case errors.Is(err, entity.ErrAliasTaken):
		status, resp = http.StatusConflict, aliasTakenResponse
	case errors.Is(err, entity.ErrInvalidAliasLength):
		status, resp = http.StatusBadRequest, invalidAliasLengthResponse
	case errors.Is(err, entity.ErrInvalidAlias):
		status, resp = http.StatusBadRequest, invalidAliasResponse
	case errors.Is(err, entity.ErrInvalidURL):
		status, resp = http.StatusUnprocessableEntity, invalidURLResponse
	case errors.Is(err, entity.ErrUnknownChart):
		status, resp = http.StatusBadRequest, unknownChartResponse
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		status, resp = http.StatusInternalServerError, serverErrorResponse
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	url, created, err := h.useCase.Shorten(r.Context(), req.URL, req.User)
	if err != nil {
		renderError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	render.Status(r, status)
	render.JSON(w, r, toURLResponse(url, h.baseURL))
}

func (h *urlHandler) shortenCustomURL(w http.ResponseWriter, r *http.Request) {
	var req customShortenRequest

	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	url, err := h.useCase.ShortenCustom(r.Context(), req.URL, req.CustomURL, req.User)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toURLResponse(url, h.baseURL))
}

func (h *urlHandler) listUserURLs(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	urls, err := h.useCase.ListUserURLs(r.Context(), username)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserURLsResponse(urls))
}

func (h *urlHandler) unbindAlias(w http.ResponseWriter, r *http.Request) {
	req := unbindRequest{URL: r.URL.Query().Get("url")}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	username := chi.URLParam(r, "username")
	alias := chi.URLParam(r, "alias")

	if err := h.useCase.UnbindAlias(r.Context(), username, req.URL, alias); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *urlHandler) getChart(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	chart, err := h.useCase.Chart(r.Context(), kind)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toChartResponse(chart))
}

func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.Resolve(r.Context(), shortCode, entity.Visitor{IP: clientIP(r)})
	if err != nil {
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, url.LongURL, http.StatusTemporaryRedirect)
}

// clientIP returns the visitor address. RealIP has already replaced RemoteAddr
// with the forwarded address when the request came through a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
