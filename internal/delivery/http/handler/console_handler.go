package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"sync"

	"healthcare-admin/internal/apiclient"
	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/delivery/http/templates"
	"healthcare-admin/internal/domain/entity"
	"healthcare-admin/internal/schema"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ConsoleHandler serves the server-rendered admin console: one generic
// table per record type, sharing a refresh that reloads all three
// collections. Appointment descriptors are rebuilt on every refresh
// because they derive from the patient and doctor collections.
type ConsoleHandler struct {
	patients     *crud.Table[entity.Patient, entity.PatientInput]
	doctors      *crud.Table[entity.Doctor, entity.DoctorInput]
	appointments *crud.Table[entity.Appointment, entity.AppointmentInput]
	selectLimit  int
	tmpl         *template.Template
	log          *logrus.Logger

	mu     sync.Mutex
	loaded bool
}

// NewConsoleHandler wires the three tables against the API client. The
// console's collection reads go through the proxy surface, so the engine
// sees exactly the contract an external store would offer.
func NewConsoleHandler(client *apiclient.Client, pageSize, selectLimit int, log *logrus.Logger) (*ConsoleHandler, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	h := &ConsoleHandler{
		selectLimit: selectLimit,
		tmpl:        tmpl,
		log:         log,
	}

	h.patients = crud.NewTable(crud.Config[entity.Patient, entity.PatientInput]{
		Title:         "Patients",
		Singular:      "Patient",
		Columns:       schema.PatientColumns(),
		FormFields:    schema.PatientFormFields(),
		ToFormData:    schema.PatientToFormData,
		ParseFormData: schema.ParsePatientFormData,
	}, apiclient.NewPatients(client), pageSize, log)

	h.doctors = crud.NewTable(crud.Config[entity.Doctor, entity.DoctorInput]{
		Title:         "Doctors",
		Singular:      "Doctor",
		Columns:       schema.DoctorColumns(),
		FormFields:    schema.DoctorFormFields(),
		ToFormData:    schema.DoctorToFormData,
		ParseFormData: schema.ParseDoctorFormData,
	}, apiclient.NewDoctors(client), pageSize, log)

	h.appointments = crud.NewTable(crud.Config[entity.Appointment, entity.AppointmentInput]{
		Title:         "Appointments",
		Singular:      "Appointment",
		Columns:       schema.AppointmentColumns(nil, nil),
		FormFields:    schema.AppointmentFormFields(nil, nil, selectLimit),
		ToFormData:    schema.AppointmentToFormData,
		ParseFormData: schema.ParseAppointmentFormData,
	}, apiclient.NewAppointments(client), pageSize, log)

	h.patients.SetRefresh(h.RefreshAll)
	h.doctors.SetRefresh(h.RefreshAll)
	h.appointments.SetRefresh(h.RefreshAll)

	return h, nil
}

// RefreshAll reloads all three collections wholesale and rebuilds the
// appointment descriptors from the fresh patient and doctor collections.
func (h *ConsoleHandler) RefreshAll(ctx context.Context) error {
	if err := h.patients.Reload(ctx); err != nil {
		return err
	}
	if err := h.doctors.Reload(ctx); err != nil {
		return err
	}
	if err := h.appointments.Reload(ctx); err != nil {
		return err
	}

	patients := h.patients.Items()
	doctors := h.doctors.Items()
	h.appointments.UpdateDescriptors(
		schema.AppointmentColumns(patients, doctors),
		schema.AppointmentFormFields(patients, doctors, h.selectLimit),
	)

	h.mu.Lock()
	h.loaded = true
	h.mu.Unlock()
	return nil
}

// ensureLoaded performs the initial collection load lazily, so the
// console comes up even when the record store was briefly unreachable at
// boot.
func (h *ConsoleHandler) ensureLoaded(ctx context.Context) error {
	h.mu.Lock()
	loaded := h.loaded
	h.mu.Unlock()
	if loaded {
		return nil
	}
	return h.RefreshAll(ctx)
}

func (h *ConsoleHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/console/patients", http.StatusSeeOther)
}

func (h *ConsoleHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		listPage(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		listPage(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		listPage(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		newForm(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		newForm(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		newForm(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		submitCreate(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitCreate(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitCreate(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		editForm(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		editForm(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		editForm(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		submitUpdate(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitUpdate(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitUpdate(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		confirmDelete(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		confirmDelete(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		confirmDelete(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, func(w http.ResponseWriter, r *http.Request) {
		submitDelete(h, w, r, h.patients, "patients")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitDelete(h, w, r, h.doctors, "doctors")
	}, func(w http.ResponseWriter, r *http.Request) {
		submitDelete(h, w, r, h.appointments, "appointments")
	})
}

func (h *ConsoleHandler) dispatch(w http.ResponseWriter, r *http.Request, patients, doctors, appointments http.HandlerFunc) {
	switch mux.Vars(r)["entity"] {
	case "patients":
		patients(w, r)
	case "doctors":
		doctors(w, r)
	case "appointments":
		appointments(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *ConsoleHandler) render(w http.ResponseWriter, view PageView) {
	view.Tabs = consoleTabs()
	if err := h.tmpl.ExecuteTemplate(w, "layout", view); err != nil {
		h.log.Errorf("Failed to render console view: %v", err)
	}
}

func listPage[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	var loadErr string
	if r.URL.Query().Get("reload") != "" {
		if err := h.RefreshAll(r.Context()); err != nil {
			loadErr = "Failed to load records: " + err.Error()
		}
	} else if err := h.ensureLoaded(r.Context()); err != nil {
		loadErr = "Failed to load records: " + err.Error()
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			t.ChangePage(page)
		}
	}

	h.render(w, PageView{
		Active: slug,
		Error:  loadErr,
		Table:  buildTableView(t, slug),
	})
}

func newForm[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	if err := h.ensureLoaded(r.Context()); err != nil {
		h.log.Warnf("Console load failed: %v", err)
	}
	t.OpenCreate()
	h.render(w, PageView{Active: slug, Form: buildFormView(t, slug, "")})
}

func editForm[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	if err := h.ensureLoaded(r.Context()); err != nil {
		h.log.Warnf("Console load failed: %v", err)
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	rec, ok := t.Find(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	t.OpenEdit(rec)
	h.render(w, PageView{Active: slug, Form: buildFormView(t, slug, "")})
}

func submitCreate[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	t.OpenCreate()
	applyFormValues(t, r)
	submit(h, w, r, t, slug)
}

func submitUpdate[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	rec, ok := t.Find(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	t.OpenEdit(rec)
	applyFormValues(t, r)
	submit(h, w, r, t, slug)
}

// submit runs the engine's submit and, on failure, re-renders the form
// with the error inline; the form state survives inside the table so the
// user loses no input.
func submit[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	err := t.Submit(r.Context())
	if err == nil {
		http.Redirect(w, r, "/console/"+slug, http.StatusSeeOther)
		return
	}

	var vErr *crud.ValidationError
	msg := "Failed to save: " + err.Error()
	if errors.As(err, &vErr) {
		msg = "Please fill in the required fields: " + vErr.Error()
	}
	h.render(w, PageView{Active: slug, Form: buildFormView(t, slug, msg)})
}

func confirmDelete[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, PageView{
		Active:  slug,
		Confirm: &ConfirmView{Slug: slug, Singular: t.Config().Singular, ID: id},
	})
}

func submitDelete[T crud.Record, P any](h *ConsoleHandler, w http.ResponseWriter, r *http.Request, t *crud.Table[T, P], slug string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	// Reaching this POST is the user's confirmation; the GET page is the
	// interactive speed bump.
	if err := t.Remove(r.Context(), id, true); err != nil {
		h.render(w, PageView{
			Active: slug,
			Error:  "Failed to delete: " + err.Error(),
			Table:  buildTableView(t, slug),
		})
		return
	}
	http.Redirect(w, r, "/console/"+slug, http.StatusSeeOther)
}

func applyFormValues[T crud.Record, P any](t *crud.Table[T, P], r *http.Request) {
	r.ParseForm()
	for _, f := range t.Config().FormFields {
		t.SetField(f.Key, r.PostFormValue(f.Key))
	}
}
