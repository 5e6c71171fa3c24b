package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// Notifier alerts the business inbox about a new submission. Notification
// failures never fail the request.
type Notifier interface {
	Notify(ctx context.Context, subject, body string)
}

// Handler exposes the form submission endpoints.
type Handler struct {
	repo     Repository
	notifier Notifier
	logger   *logging.Logger
}

// NewHandler creates a forms handler. notifier may be nil.
func NewHandler(repo Repository, notifier Notifier, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, notifier: notifier, logger: logger}
}

// HandleContact handles POST /api/contact.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	contact, err := h.repo.CreateContact(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create contact", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	h.logger.Info("contact received", "id", contact.ID, "subject", contact.Subject)
	h.notify("New contact form submission",
		fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", contact.Name, contact.Email, contact.Subject, contact.Message))

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "contact": contact})
}

// HandleEmailSignup handles POST /api/email-signup. A repeat signup is a
// success with isNew=false, not a conflict.
func (h *Handler) HandleEmailSignup(w http.ResponseWriter, r *http.Request) {
	var req CreateSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	signup, isNew, err := h.repo.CreateSignup(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to create signup", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}

	status := http.StatusCreated
	if !isNew {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{"success": true, "signup": signup, "isNew": isNew})
}

// HandleClientIntake handles POST /api/client-intake.
func (h *Handler) HandleClientIntake(w http.ResponseWriter, r *http.Request) {
	var req CreateIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	intake, err := h.repo.CreateIntake(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create intake", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit client intake form")
		return
	}

	h.logger.Info("intake received", "id", intake.ID, "business_type", intake.BusinessType)
	h.notify("New client intake",
		fmt.Sprintf("From: %s <%s>\nBusiness: %s\nStruggles: %s", intake.Name, intake.Email, intake.BusinessType, intake.MainStruggles))

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "intake": intake})
}

// HandleListContacts handles GET /api/contacts.
func (h *Handler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.repo.ListContacts(r.Context())
	if err != nil {
		h.logger.Error("failed to list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// HandleListSignups handles GET /api/email-signups.
func (h *Handler) HandleListSignups(w http.ResponseWriter, r *http.Request) {
	signups, err := h.repo.ListSignups(r.Context())
	if err != nil {
		h.logger.Error("failed to list signups", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch signups")
		return
	}
	writeJSON(w, http.StatusOK, signups)
}

// HandleListIntakes handles GET /api/client-intakes.
func (h *Handler) HandleListIntakes(w http.ResponseWriter, r *http.Request) {
	intakes, err := h.repo.ListIntakes(r.Context())
	if err != nil {
		h.logger.Error("failed to list intakes", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch intakes")
		return
	}
	writeJSON(w, http.StatusOK, intakes)
}

func (h *Handler) notify(subject, body string) {
	if h.notifier == nil {
		return
	}
	h.notifier.Notify(context.Background(), subject, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

func writeValidationError(w http.ResponseWriter, problems []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "Validation error",
		"errors":  problems,
	})
}
