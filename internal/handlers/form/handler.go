package form

import (
	"errors"
	"fmt"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/form/model"
	"hotel/internal/domains/form/model/dto"
	"hotel/internal/domains/form/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Form
	otel    otel.Otel
}

func New(service service.Form, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/reload", handler.Reload)

	router.Route("/drafts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDrafts)
		routerGroup.Get("/active", handler.GetActive)
		routerGroup.Put("/active", handler.SwitchActive)
		routerGroup.Get("/{kind}", handler.GetDraft)
		routerGroup.Put("/{kind}", handler.UpdateDraft)
		routerGroup.Delete("/{kind}", handler.ResetDraft)
		routerGroup.Get("/{kind}/validation", handler.ValidateDraft)
		routerGroup.Post("/{kind}/edit/{id}", handler.BeginEdit)
		routerGroup.Post("/{kind}/submit", handler.SubmitDraft)
	})

	router.Delete("/records/{kind}/{id}", handler.DeleteRecord)
}

func kindParam(request *http.Request) (model.Kind, error) {
	return model.ParseKind(chi.URLParam(request, constant.RequestParamKind)) //nolint:wrapcheck
}

func idParam(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, constant.RequestParamID)

	id, ok := shared.ParseID(raw)
	if !ok {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid id %q", raw)) //nolint:wrapcheck
	}

	return id, nil
}

func (handler *Handler) draftOf(kind model.Kind) any {
	switch kind {
	case model.KindGuest:
		return handler.service.GuestDraft()
	case model.KindRoom:
		return handler.service.RoomDraft()
	default:
		return handler.service.BookingDraft()
	}
}

// Reload fetches every collection again.
// @Summary Reload records
// @Description Fetch guests, rooms and bookings from the data service. The cached records change only if all three arrive.
// @Tags Form
// @Produce json
// @Success 200 {object} response.Data[model.Snapshot] "Loaded records"
// @Failure 409 {object} response.Notice
// @Failure 502 {object} response.Notice
// @Router /v1/reload [post]
func (handler *Handler) Reload(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reload")
	defer scope.End()

	if err := handler.service.Load(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reload records")

		response.WithLoadFailure(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Snapshot())
}

// GetDrafts returns every draft.
// @Summary Get all drafts
// @Tags Form
// @Produce json
// @Success 200 {object} response.Data[dto.Drafts] "Drafts"
// @Router /v1/drafts [get]
func (handler *Handler) GetDrafts(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrafts")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.Drafts{
		Active:  handler.service.Active(),
		Guest:   handler.service.GuestDraft(),
		Room:    handler.service.RoomDraft(),
		Booking: handler.service.BookingDraft(),
	})
}

// GetActive returns the kind being edited.
// @Summary Get active kind
// @Tags Form
// @Produce json
// @Success 200 {object} response.Data[dto.ActiveResponse] "Active kind"
// @Router /v1/drafts/active [get]
func (handler *Handler) GetActive(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActive")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.ActiveResponse{Kind: handler.service.Active()})
}

// SwitchActive changes the kind being edited and discards the draft being left.
// @Summary Switch active kind
// @Tags Form
// @Accept json
// @Produce json
// @Param request body dto.SwitchRequest true "Kind to edit"
// @Success 200 {object} response.Data[dto.ActiveResponse] "Active kind"
// @Failure 400 {object} response.Error
// @Router /v1/drafts/active [put]
func (handler *Handler) SwitchActive(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SwitchActive")
	defer scope.End()

	req := dto.SwitchRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	kind, err := model.ParseKind(req.Kind)
	if err == nil {
		err = handler.service.Switch(kind)
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.ActiveResponse{Kind: handler.service.Active()})
}

// GetDraft returns the draft of a kind.
// @Summary Get draft
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Success 200 {object} response.Data[model.BookingDraft] "Draft"
// @Failure 400 {object} response.Error
// @Router /v1/drafts/{kind} [get]
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.draftOf(kind))
}

// UpdateDraft replaces the draft of a kind. Drafts may be incomplete; a
// booking draft comes back with its amount recomputed.
// @Summary Update draft
// @Tags Form
// @Accept json
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Param request body model.BookingDraft true "Draft"
// @Success 200 {object} response.Data[model.BookingDraft] "Stored draft"
// @Failure 400 {object} response.Error
// @Router /v1/drafts/{kind} [put]
func (handler *Handler) UpdateDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	switch kind {
	case model.KindGuest:
		draft := model.GuestDraft{}
		if err = validator.Decode(request.Body, &draft); err == nil {
			handler.service.SetGuestDraft(draft)
		}
	case model.KindRoom:
		draft := model.RoomDraft{}
		if err = validator.Decode(request.Body, &draft); err == nil {
			handler.service.SetRoomDraft(draft)
		}
	case model.KindBooking:
		draft := model.BookingDraft{}
		if err = validator.Decode(request.Body, &draft); err == nil {
			handler.service.SetBookingDraft(draft)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind.String()).Msg("failed to decode draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.draftOf(kind))
}

// ResetDraft clears the draft of a kind.
// @Summary Reset draft
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/drafts/{kind} [delete]
func (handler *Handler) ResetDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetDraft")
	defer scope.End()

	kind, err := kindParam(request)
	if err == nil {
		err = handler.service.Reset(kind)
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "draft reset")
}

// ValidateDraft reports whether the draft of a kind can be submitted.
// @Summary Validate draft
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Success 200 {object} response.Data[dto.ValidationResponse] "Validation result"
// @Failure 400 {object} response.Error
// @Router /v1/drafts/{kind}/validation [get]
func (handler *Handler) ValidateDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateDraft")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := dto.ValidationResponse{}
	res.FromError(kind, handler.service.ValidationError(kind))

	response.WithJSON(writer, http.StatusOK, res)
}

// BeginEdit loads a record into the draft of its kind.
// @Summary Edit record
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Param id path integer true "Record id"
// @Success 200 {object} response.Data[model.BookingDraft] "Draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{kind}/edit/{id} [post]
func (handler *Handler) BeginEdit(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BeginEdit")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id, err := idParam(request)
	if err == nil {
		err = handler.service.BeginEdit(kind, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind.String()).Msg("failed to begin edit")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.draftOf(kind))
}

// SubmitDraft creates or updates the record held by the draft of a kind.
// @Summary Submit draft
// @Description Creates when the draft has no id, updates otherwise. Every collection is reloaded afterwards.
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Notice
// @Failure 409 {object} response.Notice
// @Failure 502 {object} response.Notice
// @Router /v1/drafts/{kind}/submit [post]
func (handler *Handler) SubmitDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDraft")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Submit(ctx, kind); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind.String()).Msg("failed to submit draft")

		if errors.Is(err, service.ErrReload) {
			response.WithLoadFailure(writer, err)

			return
		}

		response.WithNotice(writer, err, constant.NoticeOperationFailed)

		return
	}

	scope.AddEvent("draft submitted")

	response.WithMessage(writer, http.StatusOK, constant.NoticeOperationDone)
}

// DeleteRecord deletes a record.
// @Summary Delete record
// @Tags Form
// @Produce json
// @Param kind path string true "persona, habitacion or reserva"
// @Param id path integer true "Record id"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Notice
// @Failure 502 {object} response.Notice
// @Router /v1/records/{kind}/{id} [delete]
func (handler *Handler) DeleteRecord(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecord")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id, err := idParam(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Remove(ctx, kind, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind.String()).Int64("id", id).Msg("failed to delete record")

		if errors.Is(err, service.ErrReload) {
			response.WithLoadFailure(writer, err)

			return
		}

		response.WithNotice(writer, err, constant.NoticeDeleteFailed)

		return
	}

	response.WithMessage(writer, http.StatusOK, constant.NoticeDeleteDone)
}
