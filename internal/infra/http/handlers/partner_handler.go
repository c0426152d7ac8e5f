package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
	appmiddleware "github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/http/middleware"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/usecase"
)

type PartnerHandler struct {
	CreateUC *usecase.CreatePartnerUseCase
	UpdateUC *usecase.UpdatePartnerUseCase
	Repo     entity.PartnerRepositoryInterface
}

func NewPartnerHandler(
	createUC *usecase.CreatePartnerUseCase,
	updateUC *usecase.UpdatePartnerUseCase,
	repo entity.PartnerRepositoryInterface,
) *PartnerHandler {
	return &PartnerHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		Repo:     repo,
	}
}

func (h *PartnerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePartnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	partner, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		var fieldErr *entity.InvalidFieldError
		if errors.As(err, &fieldErr) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, fieldErr.Error())
			return
		}
		log.Printf("❌ Failed to create partner: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create partner")
		return
	}

	if user := appmiddleware.AuthUserFrom(r.Context()); user != "" {
		log.Printf("📋 Partner %s created by %s", partner.ID, user)
	}

	writeJSON(w, http.StatusCreated, partner)
}

// HandleReplace is the whole-record replace-by-id boundary. Bodies in the
// legacy shape are normalized before they reach the usecase.
func (h *PartnerHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid body")
		return
	}

	candidate, err := entity.NormalizePartner(raw)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.UpdateUC.Execute(r.Context(), id, candidate)
	if err != nil {
		var fieldErr *entity.InvalidFieldError
		switch {
		case errors.As(err, &fieldErr):
			writeErrorResponse(w, http.StatusUnprocessableEntity, fieldErr.Error())
		case usecase.IsDomainError(err):
			writeErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			log.Printf("❌ Failed to replace partner %s: %v", id, err)
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to update partner")
		}
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *PartnerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	partner, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "partner not found")
		return
	}

	writeJSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("❌ Failed to list partners: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list partners")
		return
	}

	if partners == nil {
		partners = []entity.Partner{}
	}

	writeJSON(w, http.StatusOK, partners)
}
