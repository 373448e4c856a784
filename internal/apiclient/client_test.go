package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil)
}

func TestResourceList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/patients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Ada"},{"id":2,"name":"Grace","age":85}]`))
	})

	patients, err := NewPatients(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ada", patients[0].Name)
	assert.Nil(t, patients[0].Age)
	require.NotNil(t, patients[1].Age)
	assert.Equal(t, 85, *patients[1].Age)
}

func TestResourceCreateSendsPartialPayload(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":5,"name":"Ada"}`))
	})

	name := "Ada"
	created, err := NewPatients(client).Create(context.Background(), entity.PatientInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	// nil optionals must be omitted from the wire payload entirely
	assert.Equal(t, map[string]any{"name": "Ada"}, received)
}

func TestResourceUpdateUsesItemPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/doctors/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Meredith Grey","specialty":"Surgery"}`))
	})

	name := "Meredith Grey"
	updated, err := NewDoctors(client).Update(context.Background(), 7, entity.DoctorInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Surgery", updated.Specialty)
}

func TestResourceDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/patients/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := NewPatients(client).Delete(context.Background(), 9)
	assert.NoError(t, err)
}

func TestNonSuccessStatusBecomesStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"patient not found"}`))
	})

	_, err := NewPatients(client).Get(context.Background(), 123)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "patient not found")
}

func TestTransportFailureSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, nil)

	_, err := NewPatients(client).List(context.Background())
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestAppointmentListFilteredPrecedence(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})
	appointments := NewAppointments(client)

	pid, did := 3, 8
	_, err := appointments.ListFiltered(context.Background(), entity.AppointmentFilter{PatientID: &pid, DoctorID: &did})
	require.NoError(t, err)
	// patientId wins when both filters are set
	assert.Equal(t, "patientId=3", query)

	_, err = appointments.ListFiltered(context.Background(), entity.AppointmentFilter{DoctorID: &did})
	require.NoError(t, err)
	assert.Equal(t, "doctorId=8", query)

	_, err = appointments.ListFiltered(context.Background(), entity.AppointmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, "", query)
}
