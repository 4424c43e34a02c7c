package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/vasuli-app/vasuli/internal/entity"
	"github.com/vasuli-app/vasuli/internal/trackerclient"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/web.go -package=mocks

// API is the tracker backend as the UI sees it.
type API interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error)
	Case(ctx context.Context, id uuid.UUID) (entity.Case, error)
	CreateCase(ctx context.Context, c entity.Case) (entity.Case, error)
	UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate) (entity.Case, error)
}

type Handler struct {
	api       API
	templates map[string]*template.Template
}

func NewHandler(api API) (*Handler, error) {
	ts, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		api:       api,
		templates: ts,
	}, nil
}

const dateLayout = "2006-01-02"

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home.html", nil)
}

type clientRow struct {
	ClientName    string
	CompanyName   string
	City          string
	ContactPerson string
	Phone         string
	Email         string
}

type clientsPage struct {
	Clients []clientRow
	Error   string
}

func (h *Handler) ClientsIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.api.Clients(ctx)
	if err != nil {
		h.render(w, r, http.StatusOK, "clients_index.html", clientsPage{
			Error: "Failed to fetch clients. Make sure the backend is running.",
		})

		return
	}

	rows := make([]clientRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, clientRow{
			ClientName:    c.ClientName,
			CompanyName:   c.CompanyName,
			City:          c.City,
			ContactPerson: c.ContactPerson,
			Phone:         c.Phone,
			Email:         c.Email,
		})
	}

	h.render(w, r, http.StatusOK, "clients_index.html", clientsPage{Clients: rows})
}

type clientForm struct {
	ClientName    string
	CompanyName   string
	Email         string
	Phone         string
	City          string
	ContactPerson string
}

type clientFormPage struct {
	Form  clientForm
	Error string
}

func (h *Handler) ClientsNew(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "clients_new.html", clientFormPage{})
}

func (h *Handler) ClientsCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form := clientForm{
		ClientName:    r.FormValue("client_name"),
		CompanyName:   r.FormValue("company_name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		City:          r.FormValue("city"),
		ContactPerson: r.FormValue("contact_person"),
	}

	_, err := h.api.CreateClient(ctx, entity.Client{
		ClientName:    form.ClientName,
		CompanyName:   form.CompanyName,
		Email:         form.Email,
		Phone:         form.Phone,
		City:          form.City,
		ContactPerson: form.ContactPerson,
	})
	if err != nil {
		h.render(w, r, http.StatusOK, "clients_new.html", clientFormPage{
			Form:  form,
			Error: trackerclient.Message(err, "Failed to create client. Please try again."),
		})

		return
	}

	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

type caseCard struct {
	ID            string
	ClientName    string
	CompanyName   string
	InvoiceNumber string
	Amount        string
	DueDate       string
	Status        string
	StatusClass   string
}

type casesPage struct {
	Cases        []caseCard
	StatusFilter string
	SortOrder    string
	Statuses     []entity.CaseStatus
	Error        string
}

func (h *Handler) CasesIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := entity.CaseFilter{Sort: entity.SortAsc}

	if sort := entity.SortOrder(r.URL.Query().Get("sort")); sort.IsValid() {
		filter.Sort = sort
	}

	statusFilter := r.URL.Query().Get("status")

	if status := entity.CaseStatus(statusFilter); status.Validate() == nil {
		filter.Status = &status
	} else {
		statusFilter = ""
	}

	page := casesPage{
		StatusFilter: statusFilter,
		SortOrder:    filter.Sort.String(),
		Statuses:     entity.CaseStatuses,
	}

	cases, err := h.api.Cases(ctx, filter)
	if err != nil {
		page.Error = "Failed to fetch cases. Make sure the backend is running."
		h.render(w, r, http.StatusOK, "cases_index.html", page)

		return
	}

	page.Cases = make([]caseCard, 0, len(cases))
	for _, c := range cases {
		page.Cases = append(page.Cases, caseCard{
			ID:            c.ID.String(),
			ClientName:    c.ClientName,
			CompanyName:   c.CompanyName,
			InvoiceNumber: c.InvoiceNumber,
			Amount:        FormatINR(c.InvoiceAmount),
			DueDate:       FormatDate(c.DueDate),
			Status:        c.Status.String(),
			StatusClass:   statusClass(c.Status),
		})
	}

	h.render(w, r, http.StatusOK, "cases_index.html", page)
}

type caseForm struct {
	ClientID          string
	InvoiceNumber     string
	InvoiceAmount     string
	InvoiceDate       string
	DueDate           string
	Status            string
	LastFollowUpNotes string
}

type caseFormPage struct {
	Clients  []entity.Client
	Form     caseForm
	Statuses []entity.CaseStatus
	Error    string
}

func (h *Handler) CasesNew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := caseFormPage{
		Form:     caseForm{Status: entity.CaseStatusNew.String()},
		Statuses: entity.CaseStatuses,
	}

	clients, err := h.api.Clients(ctx)
	if err != nil {
		page.Error = "Failed to fetch clients. Please try again."
	}

	page.Clients = clients

	h.render(w, r, http.StatusOK, "cases_new.html", page)
}

func (h *Handler) CasesCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form := caseForm{
		ClientID:          r.FormValue("client_id"),
		InvoiceNumber:     r.FormValue("invoice_number"),
		InvoiceAmount:     r.FormValue("invoice_amount"),
		InvoiceDate:       r.FormValue("invoice_date"),
		DueDate:           r.FormValue("due_date"),
		Status:            r.FormValue("status"),
		LastFollowUpNotes: r.FormValue("last_follow_up_notes"),
	}

	c, err := caseFromForm(form)
	if err == nil {
		_, err = h.api.CreateCase(ctx, c)
		if err == nil {
			http.Redirect(w, r, "/cases", http.StatusSeeOther)
			return
		}
	}

	page := caseFormPage{
		Form:     form,
		Statuses: entity.CaseStatuses,
		Error:    trackerclient.Message(err, "Failed to create case. Please try again."),
	}

	// Best effort: the dropdown should survive a failed submit.
	clients, clientsErr := h.api.Clients(ctx)
	if clientsErr == nil {
		page.Clients = clients
	}

	h.render(w, r, http.StatusOK, "cases_new.html", page)
}

type caseView struct {
	ID                string
	ClientName        string
	CompanyName       string
	InvoiceNumber     string
	Amount            string
	InvoiceDate       string
	DueDate           string
	CreatedAt         string
	UpdatedAt         string
	Status            string
	StatusClass       string
	LastFollowUpNotes string
}

type caseShowPage struct {
	Case caseView
}

// notFoundPage renders the terminal not-found state; Error distinguishes a
// fetch failure from a genuinely missing case.
type notFoundPage struct {
	Error string
}

func (h *Handler) CaseShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
		return
	}

	c, err := h.api.Case(ctx, id)
	if err != nil {
		if trackerclient.IsNotFound(err) {
			h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
			return
		}

		h.render(w, r, http.StatusOK, "case_not_found.html", notFoundPage{
			Error: "Failed to fetch case details",
		})

		return
	}

	h.render(w, r, http.StatusOK, "case_show.html", caseShowPage{Case: caseToView(c)})
}

type caseEditPage struct {
	Case     caseView
	Form     editForm
	Statuses []entity.CaseStatus
	Error    string
}

type editForm struct {
	Status            string
	LastFollowUpNotes string
}

func (h *Handler) CaseEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
		return
	}

	c, err := h.api.Case(ctx, id)
	if err != nil {
		if trackerclient.IsNotFound(err) {
			h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
			return
		}

		h.render(w, r, http.StatusOK, "case_not_found.html", notFoundPage{
			Error: "Failed to fetch case details",
		})

		return
	}

	h.render(w, r, http.StatusOK, "case_edit.html", caseEditPage{
		Case: caseToView(c),
		Form: editForm{
			Status:            c.Status.String(),
			LastFollowUpNotes: c.LastFollowUpNotes,
		},
		Statuses: entity.CaseStatuses,
	})
}

// CaseUpdate saves the edit form. Only status and follow-up notes are ever
// sent to the backend.
func (h *Handler) CaseUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
		return
	}

	form := editForm{
		Status:            r.FormValue("status"),
		LastFollowUpNotes: r.FormValue("last_follow_up_notes"),
	}

	status := entity.CaseStatus(form.Status)

	_, err = h.api.UpdateCase(ctx, id, entity.CaseUpdate{
		Status:            &status,
		LastFollowUpNotes: &form.LastFollowUpNotes,
	})
	if err == nil {
		http.Redirect(w, r, "/cases/"+id.String(), http.StatusSeeOther)
		return
	}

	if trackerclient.IsNotFound(err) {
		h.render(w, r, http.StatusNotFound, "case_not_found.html", notFoundPage{})
		return
	}

	page := caseEditPage{
		Case:     caseView{ID: id.String()},
		Form:     form,
		Statuses: entity.CaseStatuses,
		Error:    trackerclient.Message(err, "Failed to update case"),
	}

	// Keep the read-only parts of the page rendered around the failed form.
	c, readErr := h.api.Case(ctx, id)
	if readErr == nil {
		page.Case = caseToView(c)
	}

	h.render(w, r, http.StatusOK, "case_edit.html", page)
}

func caseFromForm(form caseForm) (entity.Case, error) {
	clientID, err := uuid.FromString(form.ClientID)
	if err != nil {
		return entity.Case{}, err
	}

	amount, err := decimal.NewFromString(form.InvoiceAmount)
	if err != nil {
		return entity.Case{}, err
	}

	invoiceDate, err := time.Parse(dateLayout, form.InvoiceDate)
	if err != nil {
		return entity.Case{}, err
	}

	dueDate, err := time.Parse(dateLayout, form.DueDate)
	if err != nil {
		return entity.Case{}, err
	}

	return entity.Case{
		ClientID:          clientID,
		InvoiceNumber:     form.InvoiceNumber,
		InvoiceAmount:     amount,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		Status:            entity.CaseStatus(form.Status),
		LastFollowUpNotes: form.LastFollowUpNotes,
	}, nil
}

func caseToView(c entity.Case) caseView {
	return caseView{
		ID:                c.ID.String(),
		ClientName:        c.ClientName,
		CompanyName:       c.CompanyName,
		InvoiceNumber:     c.InvoiceNumber,
		Amount:            FormatINR(c.InvoiceAmount),
		InvoiceDate:       FormatDate(c.InvoiceDate),
		DueDate:           FormatDate(c.DueDate),
		CreatedAt:         FormatDate(c.CreatedAt),
		UpdatedAt:         FormatDate(c.UpdatedAt),
		Status:            c.Status.String(),
		StatusClass:       statusClass(c.Status),
		LastFollowUpNotes: c.LastFollowUpNotes,
	}
}

func statusClass(s entity.CaseStatus) string {
	switch s {
	case entity.CaseStatusNew:
		return "badge-new"
	case entity.CaseStatusInFollowUp:
		return "badge-follow-up"
	case entity.CaseStatusPartiallyPaid:
		return "badge-partial"
	case entity.CaseStatusClosed:
		return "badge-closed"
	default:
		return ""
	}
}
