package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"healthcare-admin/internal/domain/entity"
)

func NewPatients(client *Client) *Resource[entity.Patient, entity.PatientInput] {
	return NewResource[entity.Patient, entity.PatientInput](client, "/patients")
}

func NewDoctors(client *Client) *Resource[entity.Doctor, entity.DoctorInput] {
	return NewResource[entity.Doctor, entity.DoctorInput](client, "/doctors")
}

// AppointmentResource extends the generic resource with filtered listing.
type AppointmentResource struct {
	*Resource[entity.Appointment, entity.AppointmentInput]
}

func NewAppointments(client *Client) *AppointmentResource {
	return &AppointmentResource{
		Resource: NewResource[entity.Appointment, entity.AppointmentInput](client, "/appointments"),
	}
}

// ListFiltered lists appointments for one patient or one doctor. At most
// one filter is forwarded; patientId wins when both are set, matching the
// store's documented precedence.
func (r *AppointmentResource) ListFiltered(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := url.Values{}
	switch {
	case filter.PatientID != nil:
		query.Set("patientId", strconv.Itoa(*filter.PatientID))
	case filter.DoctorID != nil:
		query.Set("doctorId", strconv.Itoa(*filter.DoctorID))
	}

	var out []entity.Appointment
	if err := r.client.do(ctx, http.MethodGet, r.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
