package handler

import (
	"strconv"
	"strings"

	"healthcare-admin/internal/crud"
)

// View models handed to the console templates. They carry only strings
// and display flags; all record typing stays inside the generic table.

type TabView struct {
	Slug  string
	Label string
}

type HeaderView struct {
	Label string
	Class string
}

type CellView struct {
	Value string
	Class string
}

type RowView struct {
	ID    int
	Cells []CellView
}

// NavView pairs the pure pagination view with the entity slug the
// templates need to build page links.
type NavView struct {
	crud.PageNav
	Slug string
}

type TableView struct {
	Slug     string
	Title    string
	Singular string
	Count    int
	Headers  []HeaderView
	Rows     []RowView
	Nav      NavView
}

type FieldView struct {
	crud.FormField
	Value string
}

func (f FieldView) IsSelect() bool   { return f.Kind == crud.FieldSelect }
func (f FieldView) IsTextarea() bool { return f.Kind == crud.FieldTextarea }
func (f FieldView) IsNumber() bool   { return f.Kind == crud.FieldNumber }
func (f FieldView) IsDateTime() bool { return f.Kind == crud.FieldDateTime }

func (f FieldView) RowsOrDefault() int {
	if f.Rows > 0 {
		return f.Rows
	}
	return 3
}

type FormView struct {
	Title     string
	Action    string
	CancelURL string
	Fields    []FieldView
	Editing   bool
	Error     string
}

type ConfirmView struct {
	Slug     string
	Singular string
	ID       int
}

func (c ConfirmView) SingularLower() string {
	return strings.ToLower(c.Singular)
}

type PageView struct {
	Active  string
	Tabs    []TabView
	Error   string
	Table   *TableView
	Form    *FormView
	Confirm *ConfirmView
}

func consoleTabs() []TabView {
	return []TabView{
		{Slug: "patients", Label: "Patients"},
		{Slug: "doctors", Label: "Doctors"},
		{Slug: "appointments", Label: "Appointments"},
	}
}

// buildTableView flattens the table's current window into strings for the
// templates.
func buildTableView[T crud.Record, P any](t *crud.Table[T, P], slug string) *TableView {
	cfg := t.Config()
	nav := t.Nav()

	headers := make([]HeaderView, 0, len(cfg.Columns))
	for _, col := range cfg.Columns {
		headers = append(headers, HeaderView{Label: col.Header, Class: col.Class})
	}

	rows := make([]RowView, 0, len(t.Rows()))
	for _, rec := range t.Rows() {
		cells := make([]CellView, 0, len(cfg.Columns))
		for _, col := range cfg.Columns {
			cells = append(cells, CellView{Value: crud.CellValue(rec, col), Class: col.Class})
		}
		rows = append(rows, RowView{ID: rec.GetID(), Cells: cells})
	}

	return &TableView{
		Slug:     slug,
		Title:    cfg.Title,
		Singular: cfg.Singular,
		Count:    nav.TotalItems,
		Headers:  headers,
		Rows:     rows,
		Nav:      NavView{PageNav: nav, Slug: slug},
	}
}

func buildFormView[T crud.Record, P any](t *crud.Table[T, P], slug, errMsg string) *FormView {
	cfg := t.Config()
	form := t.Form()
	editing := t.Editing()

	fields := make([]FieldView, 0, len(cfg.FormFields))
	for _, f := range cfg.FormFields {
		fields = append(fields, FieldView{FormField: f, Value: form.Get(f.Key)})
	}

	view := &FormView{
		Action:    "/console/" + slug,
		CancelURL: "/console/" + slug,
		Fields:    fields,
		Error:     errMsg,
	}
	if editing != nil {
		view.Editing = true
		view.Title = "Edit " + cfg.Singular
		view.Action = view.Action + "/" + strconv.Itoa((*editing).GetID())
	} else {
		view.Title = "Add " + cfg.Singular
	}
	return view
}
