package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/auth"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	service "github.com/Antontokarchuk0302/Travelsite/internal/services"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var allowedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".tif": true, ".tiff": true,
}

type Handler struct {
	auth           service.AuthService
	transactions   service.TransactionService
	galleries      service.GalleryService
	validate       *validator.Validate
	maxUploadBytes int64
}

func NewHandler(a service.AuthService, t service.TransactionService, g service.GalleryService, maxUploadBytes int64) *Handler {
	return &Handler{
		auth:           a,
		transactions:   t,
		galleries:      g,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeServiceError maps errors raised outside the action runner.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case pkgerrors.IsNotFound(err):
		h.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, pkgerrors.ErrForbidden):
		h.writeError(w, http.StatusForbidden, err)
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		h.writeError(w, http.StatusUnprocessableEntity, err)
	default:
		slog.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, errors.New("user not authenticated"))
	}
	return actor, ok
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

// RegisterAdminRoutes registers the routes open to every authenticated user.
// Trash routes must be registered first so "trash" is not taken for an invoice number.
func (h *Handler) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/admin/me", h.Me).Methods(http.MethodGet)

	r.HandleFunc("/admin/transactions", h.ListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/admin/transactions/create", h.NewInvoiceNumber).Methods(http.MethodGet)
	r.HandleFunc("/admin/transactions/{invoice}", h.ShowTransaction).Methods(http.MethodGet)
	r.HandleFunc("/admin/transactions/{invoice}/edit", h.EditTransaction).Methods(http.MethodGet)
	r.HandleFunc("/admin/transactions/{invoice}", h.UpdateTransaction).Methods(http.MethodPut)
	r.HandleFunc("/admin/transactions/{invoice}", h.DestroyTransaction).Methods(http.MethodDelete)

	r.HandleFunc("/admin/travel-galleries", h.ListGalleries).Methods(http.MethodGet)
	r.HandleFunc("/admin/travel-galleries/create", h.GalleryPackageOptions).Methods(http.MethodGet)
	r.HandleFunc("/admin/travel-galleries", h.StoreGallery).Methods(http.MethodPost)
	r.HandleFunc("/admin/travel-galleries/{slug}", h.ShowGallery).Methods(http.MethodGet)
	r.HandleFunc("/admin/travel-galleries/{slug}", h.DestroyGallery).Methods(http.MethodDelete)
}

// RegisterTrashRoutes registers routes gated by roles.
func (h *Handler) RegisterTrashRoutes(r *mux.Router, gate func(http.Handler) http.Handler) {
	r.Handle("/admin/transactions/trash", gate(http.HandlerFunc(h.ListTrash))).Methods(http.MethodGet)
	r.Handle("/admin/transactions/trash/{invoice}", gate(http.HandlerFunc(h.ShowTrash))).Methods(http.MethodGet)
	r.Handle("/admin/transactions/trash/{invoice}/restore", gate(http.HandlerFunc(h.RestoreTransaction))).Methods(http.MethodPatch)
	r.Handle("/admin/transactions/trash/{invoice}", gate(http.HandlerFunc(h.ForceDeleteTransaction))).Methods(http.MethodDelete)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidCredentials) {
			h.writeError(w, http.StatusUnauthorized, err)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	if err := h.auth.Logout(r.Context(), actor.ID); err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	user, err := h.auth.Profile(r.Context(), actor.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return models.ClampPage(page)
}

func (h *Handler) transactionQuery(w http.ResponseWriter, r *http.Request) (service.TransactionQuery, bool) {
	q := service.TransactionQuery{
		Keyword: strings.TrimSpace(r.URL.Query().Get("keyword")),
		Status:  models.TransactionStatus(r.URL.Query().Get("status")),
		Page:    pageParam(r),
	}
	if q.Status != "" && !q.Status.Valid() {
		h.writeError(w, http.StatusUnprocessableEntity, pkgerrors.ErrInvalidStatus)
		return q, false
	}
	return q, true
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q, ok := h.transactionQuery(w, r)
	if !ok {
		return
	}
	page, err := h.transactions.List(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) NewInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"invoice_number": h.transactions.NewInvoiceNumber()})
}

func (h *Handler) ShowTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.transactions.Detail(r.Context(), mux.Vars(r)["invoice"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) EditTransaction(w http.ResponseWriter, r *http.Request) {
	form, err := h.transactions.EditForm(r.Context(), mux.Vars(r)["invoice"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, form)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var input service.UpdateTransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	outcome, err := h.transactions.Update(r.Context(), mux.Vars(r)["invoice"], input, actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) DestroyTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	outcome, err := h.transactions.SoftDelete(r.Context(), mux.Vars(r)["invoice"], actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) ListTrash(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	q, ok := h.transactionQuery(w, r)
	if !ok {
		return
	}
	page, err := h.transactions.ListTrash(r.Context(), actor, q)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) ShowTrash(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	tx, err := h.transactions.TrashDetail(r.Context(), actor, mux.Vars(r)["invoice"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) RestoreTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	outcome, err := h.transactions.Restore(r.Context(), mux.Vars(r)["invoice"], actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) ForceDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	outcome, err := h.transactions.ForceDelete(r.Context(), mux.Vars(r)["invoice"], actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) ListGalleries(w http.ResponseWriter, r *http.Request) {
	page, err := h.galleries.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("keyword")), pageParam(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) GalleryPackageOptions(w http.ResponseWriter, r *http.Request) {
	packages, err := h.galleries.PackageOptions(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"travel_packages": packages})
}

func (h *Handler) ShowGallery(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.galleries.Show(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"title": pkg.Title, "travel_galleries": pkg.Galleries})
}

func (h *Handler) StoreGallery(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	packageID, err := strconv.ParseInt(r.FormValue("travel_package"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, errors.New("travel_package must be a number"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, errors.New("image is required"))
		return
	}
	defer file.Close()

	if !allowedImageExtensions[strings.ToLower(filepath.Ext(header.Filename))] {
		h.writeError(w, http.StatusUnprocessableEntity, errors.New("image must be a jpg, jpeg, png, gif, bmp or tiff file"))
		return
	}

	input := service.CreateGalleryInput{
		TravelPackageID: packageID,
		Image:           service.Upload{Filename: header.Filename, Content: file},
	}
	if err := h.validate.Struct(input); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	outcome, err := h.galleries.CreateGallery(r.Context(), input, actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) DestroyGallery(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	outcome, err := h.galleries.DeleteGallery(r.Context(), mux.Vars(r)["slug"], actor)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}
