package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"healthcare-admin/internal/service"
	"healthcare-admin/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ProxyHandler is the thin boundary between the console's API surface and
// the record store. It forwards requests verbatim, relays the upstream
// status code and body, and never lets a transport failure escape as
// anything but a 500 with an {"error": ...} body.
type ProxyHandler struct {
	upstream string
	client   *http.Client
	cache    *service.ListCache
	log      *logrus.Logger
}

func NewProxyHandler(upstreamBaseURL string, timeout time.Duration, cache *service.ListCache, log *logrus.Logger) *ProxyHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProxyHandler{
		upstream: strings.TrimRight(upstreamBaseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		log:      log,
	}
}

// Collection handles GET (list) and POST (create) on /api/{entity}.
func (h *ProxyHandler) Collection(w http.ResponseWriter, r *http.Request) {
	entityName := mux.Vars(r)["entity"]

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, entityName)
	case http.MethodPost:
		h.forward(w, r, entityName, "/"+entityName, true)
	}
}

// Item handles GET, PUT and DELETE on /api/{entity}/{id}.
func (h *ProxyHandler) Item(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entityName := vars["entity"]
	path := "/" + entityName + "/" + vars["id"]

	if r.Method == http.MethodDelete {
		h.deleteItem(w, r, entityName, path)
		return
	}
	h.forward(w, r, entityName, path, r.Method != http.MethodGet)
}

func (h *ProxyHandler) list(w http.ResponseWriter, r *http.Request, entityName string) {
	query := h.filterQuery(entityName, r.URL.Query())
	rawQuery := query.Encode()

	if payload, ok := h.cache.Get(r.Context(), entityName, rawQuery); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	}

	target := h.upstream + "/" + entityName
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch "+entityName)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Errorf("Error fetching %s: %v", entityName, err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch "+entityName)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.Errorf("Error reading %s response: %v", entityName, err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch "+entityName)
		return
	}

	if resp.StatusCode == http.StatusOK {
		h.cache.Set(r.Context(), entityName, rawQuery, body)
	}
	relay(w, resp.StatusCode, resp.Header.Get("Content-Type"), body)
}

// forward relays one request to the store. Mutating calls invalidate the
// entity's cached lists once the store has answered, success or not; a
// failed invalidation would at worst serve one stale window.
func (h *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, entityName, path string, mutating bool) {
	var body io.Reader
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, h.upstream+path, body)
	if err != nil {
		response.InternalServerError(w, "Failed to reach record store")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Errorf("Error proxying %s %s: %v", r.Method, path, err)
		response.Error(w, http.StatusInternalServerError, "Failed to reach record store")
		return
	}
	defer resp.Body.Close()

	if mutating {
		h.cache.Invalidate(r.Context(), entityName)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.Errorf("Error reading store response for %s: %v", path, err)
		response.Error(w, http.StatusInternalServerError, "Failed to reach record store")
		return
	}
	relay(w, resp.StatusCode, resp.Header.Get("Content-Type"), raw)
}

// deleteItem translates any successful store delete, 204 included, into a
// uniform {"success": true} body.
func (h *ProxyHandler) deleteItem(w http.ResponseWriter, r *http.Request, entityName, path string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodDelete, h.upstream+path, nil)
	if err != nil {
		response.InternalServerError(w, "Failed to reach record store")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Errorf("Error deleting %s: %v", path, err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete")
		return
	}
	defer resp.Body.Close()

	h.cache.Invalidate(r.Context(), entityName)

	if resp.StatusCode == http.StatusNoContent || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		response.JSON(w, http.StatusOK, response.DeleteResult{Success: true})
		return
	}

	raw, _ := io.ReadAll(resp.Body)
	relay(w, resp.StatusCode, resp.Header.Get("Content-Type"), raw)
}

// filterQuery forwards at most one foreign-key filter for appointment
// lists; patientId takes precedence over doctorId when both are supplied.
// Other entities take no filters.
func (h *ProxyHandler) filterQuery(entityName string, in url.Values) url.Values {
	out := url.Values{}
	if entityName != "appointments" {
		return out
	}
	if v := in.Get("patientId"); v != "" {
		out.Set("patientId", v)
	} else if v := in.Get("doctorId"); v != "" {
		out.Set("doctorId", v)
	}
	return out
}

func relay(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	w.Write(body)
}
