package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/service"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	jsonMediaType = "application/json"

	msgBadBody          = "Invalid Account: body of request contained bad or no data"
	msgUnsupportedMedia = "Content-Type must be application/json"
	msgInternal         = "Internal server error"
)

// checkContentType reports whether the declared media type is JSON.
// Parameters such as charset are ignored.
func checkContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == jsonMediaType
}

func unsupportedMediaType() api.Response {
	return api.UnsupportedMediaTypeJSONResponse(api.NewError(http.StatusUnsupportedMediaType, msgUnsupportedMedia))
}

func toAPIAccount(a *models.Account) api.Account {
	return api.Account{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  openapi_types.Date{Time: a.DateJoined},
	}
}

func toPayload(req *api.AccountRequest) *models.AccountPayload {
	payload := &models.AccountPayload{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if req.DateJoined != nil {
		joined := req.DateJoined.Time
		payload.DateJoined = &joined
	}
	return payload
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// errorResponse maps a service failure onto its HTTP response. Anything that
// is not a known domain error is logged and answered with a generic 500.
func (h *Handler) errorResponse(op string, err error) api.Response {
	svcErr := extractServiceError(err)
	if svcErr != nil {
		switch svcErr.Code {
		case service.ErrCodeInvalidPayload:
			return api.BadRequestJSONResponse(api.NewError(http.StatusBadRequest, svcErr.Message))
		case service.ErrCodeAccountNotFound:
			return api.NotFoundJSONResponse(api.NewError(http.StatusNotFound, svcErr.Message))
		}
	}

	h.logger.Error("unexpected error during "+op, "error", err)
	return api.InternalErrorJSONResponse(api.NewError(http.StatusInternalServerError, msgInternal))
}
