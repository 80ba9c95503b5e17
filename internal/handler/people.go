package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
)

func (h *Handler) GetAllPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, people)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	person := req.toDomain()
	if person.ID == "" {
		person.ID = uuid.NewString()
	}

	if err := h.repository.CreatePerson(person); err != nil {
		h.repositoryError(w, r, err, i18n.MsgPersonNotFound)
		return
	}

	h.createdResponse(w, r, i18n.MsgPersonCreated, person)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)
	h.successResponse(w, r, i18n.MsgOK, person)
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName *string `json:"firstName" validate:"omitempty,min=1"`
		LastName  *string `json:"lastName" validate:"omitempty,min=1"`
		Role      *string `json:"role" validate:"omitempty,oneof=Analist Developer"`
		LDAP      *string `json:"ldap" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	stored := r.Context().Value(PersonCtx).(*domain.Person)
	person := *stored

	if req.FirstName != nil {
		person.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		person.LastName = *req.LastName
	}
	if req.Role != nil {
		person.Role = domain.Role(*req.Role)
	}
	if req.LDAP != nil {
		person.LDAP = *req.LDAP
	}

	if err := h.repository.UpdatePerson(&person); err != nil {
		h.repositoryError(w, r, err, i18n.MsgPersonNotFound)
		return
	}

	h.successResponse(w, r, i18n.MsgPersonUpdated, person)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	if err := h.repository.DeletePerson(person.ID); err != nil {
		h.repositoryError(w, r, err, i18n.MsgPersonNotFound)
		return
	}

	h.successResponse(w, r, i18n.MsgPersonDeleted, nil)
}
