package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/delivery/screen"
	"clinic-records/internal/filter"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ScreenHandler serves one entity screen. Every entity gets the same
// routes; the router mounts one handler per screen under its name.
type ScreenHandler struct {
	log    *logrus.Logger
	screen screen.Screen
}

func NewScreenHandler(log *logrus.Logger, s screen.Screen) *ScreenHandler {
	return &ScreenHandler{log: log, screen: s}
}

func (h *ScreenHandler) Name() string {
	return h.screen.Name()
}

func (h *ScreenHandler) Describe() dto.ScreenResponse {
	return dto.ScreenResponse{
		Name:     h.screen.Name(),
		Title:    h.screen.Title(),
		Variants: h.screen.Variants(),
	}
}

// NewForm returns the blank form of a variant
// @Summary Blank form
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Param variant query string false "Variant, defaults to the first"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /{screen}/form [get]
func (h *ScreenHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")
	f, err := h.screen.NewForm(variant)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if variant == "" {
		variant = h.screen.Variants()[0]
	}

	response.Success(w, http.StatusOK, "Form retrieved successfully", dto.FormResponse{
		Title:    f.Title(),
		Variant:  variant,
		Variants: h.screen.Variants(),
		Fields:   f.Fields(),
	})
}

// EditForm returns the form of a stored record, pre-filled
// @Summary Edit form
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{screen}/{id}/form [get]
func (h *ScreenHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	variant, f, err := h.screen.EditForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Form retrieved successfully", dto.FormResponse{
		Title:    f.Title(),
		Variant:  variant,
		Variants: h.screen.Variants(),
		Fields:   f.Fields(),
		Warnings: f.Warnings(),
	})
}

// Filters returns the fields the list can be narrowed by
// @Summary Filter fields
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /{screen}/filters [get]
func (h *ScreenHandler) Filters(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Filters retrieved successfully", dto.FilterResponse{
		Fields: h.screen.FilterFields(),
	})
}

// List returns every record matching the query parameters
// @Summary List records
// @Description Each query parameter is a case-insensitive substring term on the field of that name
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /{screen} [get]
func (h *ScreenHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.screen.List(r.Context(), filter.CriteriaFromQuery(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Records retrieved successfully",
		dto.RecordListResponse{Records: records, Total: len(records)},
		&response.Meta{Total: len(records)})
}

// Get returns one record
// @Summary Get record
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{screen}/{id} [get]
func (h *ScreenHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, ok := h.screen.Get(r.Context(), mux.Vars(r)["id"])
	if !ok {
		response.NotFound(w, h.screen.Title()+" not found")
		return
	}

	response.Success(w, http.StatusOK, "Record retrieved successfully", record)
}

// Create submits a filled-in form as a new record
// @Summary Create record
// @Tags Screens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Submitted form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /{screen} [post]
func (h *ScreenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	values, problems := formValues(req.Values)
	if len(problems) > 0 {
		response.ValidationErrorWithWarnings(w, "Invalid form values", problems, nil)
		return
	}

	out, err := h.screen.Create(r.Context(), req.Variant, values)
	if err != nil {
		h.writeOutcomeError(w, out, err)
		return
	}

	response.SuccessWithWarnings(w, http.StatusCreated, h.screen.Title()+" created successfully", out.Record, out.Warnings)
}

// Update submits a filled-in form over an existing record
// @Summary Update record
// @Description The record ID cannot change. An empty variant keeps the stored one.
// @Tags Screens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.SubmitRequest true "Submitted form"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{screen}/{id} [put]
func (h *ScreenHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	values, problems := formValues(req.Values)
	if len(problems) > 0 {
		response.ValidationErrorWithWarnings(w, "Invalid form values", problems, nil)
		return
	}

	out, err := h.screen.Update(r.Context(), mux.Vars(r)["id"], req.Variant, values)
	if err != nil {
		h.writeOutcomeError(w, out, err)
		return
	}

	response.SuccessWithWarnings(w, http.StatusOK, h.screen.Title()+" updated successfully", out.Record, out.Warnings)
}

// Delete removes a record
// @Summary Delete record
// @Tags Screens
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{screen}/{id} [delete]
func (h *ScreenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.screen.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, h.screen.Title()+" deleted successfully", nil)
}

func (h *ScreenHandler) writeOutcomeError(w http.ResponseWriter, out screen.Outcome, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		response.ValidationErrorWithWarnings(w, vErr.Message, validationFields(vErr), out.Warnings)
		return
	}
	h.writeError(w, err)
}

func (h *ScreenHandler) writeError(w http.ResponseWriter, err error) {
	var vErr *usecase.ValidationError
	var sErr *usecase.StorageError
	switch {
	case errors.As(err, &vErr):
		response.ValidationErrorWithWarnings(w, vErr.Message, validationFields(vErr), nil)
	case errors.Is(err, screen.ErrUnknownVariant), errors.Is(err, filter.ErrUnknownField):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, h.screen.Title()+" not found")
	case errors.As(err, &sErr):
		response.Error(w, http.StatusInternalServerError, "Storage failure", sErr.Error())
	default:
		h.log.Errorf("Unhandled %s error: %+v", h.screen.Name(), err)
		response.InternalServerError(w, "")
	}
}

// formValues turns submitted JSON scalars into the text a form holds.
// Numbers keep their literal text and null means empty. Objects and arrays
// are reported per field.
func formValues(raw map[string]json.RawMessage) (map[string]string, map[string]string) {
	values := make(map[string]string, len(raw))
	problems := make(map[string]string)
	for name, msg := range raw {
		dec := json.NewDecoder(bytes.NewReader(msg))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			problems[name] = name + " is not valid JSON"
			continue
		}
		switch x := v.(type) {
		case nil:
			values[name] = ""
		case string:
			values[name] = x
		case bool:
			values[name] = strconv.FormatBool(x)
		case json.Number:
			values[name] = x.String()
		default:
			problems[name] = name + " must be a string, number or boolean"
		}
	}
	return values, problems
}

func validationFields(err *usecase.ValidationError) map[string]string {
	if len(err.Fields) > 0 {
		return err.Fields
	}
	if err.Field != "" {
		return map[string]string{err.Field: err.Message}
	}
	return nil
}
