// Package handlers implements handling functions for the stub session API endpoints.
//
// @title Voice collection stub API
// @version 0.1.0
// @description In-memory stand-in for the voice collection session API.
// @basePath /
// @securityDefinitions.basic BasicAuth
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	clientdto "voice-api-smoke/internal/client/v1/modeldto"
	_ "voice-api-smoke/docs"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/stub/api/errors"
	"voice-api-smoke/internal/stub/api/middleware"
	"voice-api-smoke/internal/stub/api/modeldto"
	"voice-api-smoke/internal/stub/store"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	handlerKey   = "handler"
	sessionIDKey = "session_id"
)

// Fault modes make the stub misbehave in a controlled way.
const (
	FaultNone        = "none"
	FaultMismatch    = "mismatch"
	FaultMissingID   = "missing-id"
	FaultUnavailable = "unavailable"
)

var ValidFaults = []string{FaultNone, FaultMismatch, FaultMissingID, FaultUnavailable}

// EndpointHandlers defines EndpointHandlers object structure.
type EndpointHandlers struct {
	log   *zerolog.Logger
	cfg   *config.Config
	store *store.Store
	fault string
}

// NewEndpointHandlers initializes EndpointHandlers object setting its attributes.
func NewEndpointHandlers(
	cfg *config.Config,
	logger *zerolog.Logger,
	store *store.Store,
) *EndpointHandlers {
	logger.Debug().Msg("calling initializer of stub HTTP handling service")
	return &EndpointHandlers{cfg: cfg, log: logger, store: store, fault: FaultNone}
}

// SetFault selects the fault mode. It must be called before Router is served.
func (h *EndpointHandlers) SetFault(fault string) error {
	for _, f := range ValidFaults {
		if f == fault {
			h.fault = fault
			return nil
		}
	}
	return fmt.Errorf("invalid fault mode %q", fault)
}

// Router builds the stub API routes.
func (h *EndpointHandlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Get("/", h.RootHandle)
	r.Mount("/swagger", httpSwagger.WrapHandler)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.BasicAuth(h.cfg.API.Username, h.cfg.API.Password))
		r.Post("/sessions", h.CreateSessionHandle)
		r.Get("/sessions/{sessionID}", h.GetSessionHandle)
		r.Get("/phrases/{dataset}", h.GetPhrasesHandle)
	})
	return r
}

// RootHandle handles requests to the service root.
// @summary Get service root
// @id getRoot
// @produce json
// @success 200 {object} modeldto.ResponseRoot
// @router / [get]
func (h *EndpointHandlers) RootHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "get-root"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))
	h.writeJSON(w, handler, http.StatusOK, modeldto.ResponseRoot{
		Message:  "Voice collection API",
		Datasets: h.store.Datasets(),
	})
}

// CreateSessionHandle handles requests to create a recording session.
// @summary Create session request
// @desc Create a recording session for a speaker and a dataset
// @id createSession
// @accept json
// @produce json
// @security BasicAuth
// @param request body clientdto.SessionRequest true "Session parameters"
// @success 201 {object} store.Session
// @failure 400 {string} Bad request
// @failure 401 {string} Unauthorized
// @failure 415 {string} Unsupported media type
// @failure 422 {string} Unprocessable entity
// @failure 503 {string} Service unavailable
// @router /api/v1/sessions [post]
func (h *EndpointHandlers) CreateSessionHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "create-session"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))

	if h.fault == FaultUnavailable {
		http.Error(w, errors.ServiceUnavailable, http.StatusServiceUnavailable)
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		http.Error(w, errors.InvalidContentType, http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.RequestBodyReadingError)
		http.Error(w, errors.RequestBodyReadingError, http.StatusBadRequest)
		return
	}

	var req clientdto.SessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.UnmarshallingError)
		http.Error(w, errors.UnmarshallingError, http.StatusBadRequest)
		return
	}
	if req.Dataset == "" {
		http.Error(w, errors.MissingDataset, http.StatusUnprocessableEntity)
		return
	}

	session := h.store.Create(req.Genero, req.Dataset)
	h.log.Info().Str(handlerKey, handler).Str(sessionIDKey, session.ID).Msg("session created")

	if h.fault == FaultMissingID {
		h.writeJSON(w, handler, http.StatusCreated, modeldto.ResponseSessionWithoutID{
			Genero:    session.Genero,
			Dataset:   session.Dataset,
			CreatedAt: session.CreatedAt,
		})
		return
	}
	h.writeJSON(w, handler, http.StatusCreated, session)
}

// GetSessionHandle handles requests to read a recording session.
// @summary Get session request
// @id getSession
// @produce json
// @security BasicAuth
// @param sessionID path string true "Session ID"
// @success 200 {object} store.Session
// @failure 401 {string} Unauthorized
// @failure 404 {string} Not found
// @router /api/v1/sessions/{sessionID} [get]
func (h *EndpointHandlers) GetSessionHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "get-session"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))

	sessionID := chi.URLParam(r, "sessionID")
	session, ok := h.store.Get(sessionID)
	if !ok {
		http.Error(w, errors.SessionNotFound, http.StatusNotFound)
		return
	}

	if h.fault == FaultMismatch {
		session.ID = uuid.NewString()
	}
	h.writeJSON(w, handler, http.StatusOK, session)
}

// GetPhrasesHandle handles requests to list the prompt phrases of a dataset.
// @summary Get dataset phrases request
// @id getPhrases
// @produce json
// @security BasicAuth
// @param dataset path string true "Dataset name"
// @success 200 {array} string
// @failure 401 {string} Unauthorized
// @failure 404 {string} Not found
// @router /api/v1/phrases/{dataset} [get]
func (h *EndpointHandlers) GetPhrasesHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "get-phrases"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))

	phrases, ok := h.store.Phrases(chi.URLParam(r, "dataset"))
	if !ok {
		http.Error(w, errors.DatasetNotFound, http.StatusNotFound)
		return
	}
	h.writeJSON(w, handler, http.StatusOK, phrases)
}

func (h *EndpointHandlers) writeJSON(w http.ResponseWriter, handler string, status int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.MarshallingError)
		http.Error(w, errors.MarshallingError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(resBody)
	h.log.Debug().Str(handlerKey, handler).Msg("response sent")
}
