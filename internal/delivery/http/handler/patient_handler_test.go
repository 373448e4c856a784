package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthcare-admin/internal/domain/entity"
	"healthcare-admin/internal/infrastructure/database"
	"healthcare-admin/internal/repository"
	"healthcare-admin/internal/usecase"
	"healthcare-admin/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStoreRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	h := NewPatientHandler(usecase.NewPatientUsecase(db, log, repository.NewPatientRepository()), validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/patients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/patients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/patients/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/patients/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestStoreCreatePatient(t *testing.T) {
	router := newStoreRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"name":"Ada","age":36}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Ada", created.Name)
	require.NotNil(t, created.Age)
	assert.Equal(t, 36, *created.Age)
}

func TestStoreCreatePatientMissingNameIs400(t *testing.T) {
	router := newStoreRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"age":36}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Fields, "Name")
}

func TestStorePatientLifecycle(t *testing.T) {
	router := newStoreRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"name":"Ada"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var patients []entity.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	require.Len(t, patients, 1)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/patients/1", strings.NewReader(`{"gender":"Female"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var updated entity.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Ada", updated.Name)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "Female", *updated.Gender)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/patients/1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Patient not found"}`, rec.Body.String())
}
