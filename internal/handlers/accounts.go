package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/benx421/account-service/internal/api"
)

// ListAccounts handles GET /accounts
func (h *Handler) ListAccounts(
	ctx context.Context,
	_ api.ListAccountsRequestObject,
) (api.Response, error) {
	h.logger.Info("Request to list Accounts")

	accounts, err := h.accounts.List(ctx)
	if err != nil {
		return h.errorResponse("list", err), nil
	}

	resp := make(api.AccountList200JSONResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toAPIAccount(&accounts[i]))
	}

	h.logger.Info("Returning accounts", "count", len(resp))
	return resp, nil
}

// CreateAccount handles POST /accounts
func (h *Handler) CreateAccount(
	ctx context.Context,
	request api.CreateAccountRequestObject,
) (api.Response, error) {
	h.logger.Info("Request to create an Account")

	if !checkContentType(request.ContentType) {
		h.logger.Info("rejected content type", "content_type", request.ContentType)
		return unsupportedMediaType(), nil
	}

	body, err := api.DecodeAccountRequest(request.Body)
	if err != nil {
		h.logger.Info("malformed account body", "error", err)
		return api.BadRequestJSONResponse(api.NewError(http.StatusBadRequest, msgBadBody)), nil
	}

	account, err := h.accounts.Create(ctx, toPayload(body))
	if err != nil {
		return h.errorResponse("create", err), nil
	}

	h.logger.Info("Account created", "account_id", account.ID)
	return api.Account201JSONResponse{
		Body: toAPIAccount(account),
		Headers: api.Account201ResponseHeaders{
			Location: fmt.Sprintf("/accounts/%d", account.ID),
		},
	}, nil
}

// GetAccount handles GET /accounts/{account_id}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.Response, error) {
	h.logger.Info("Request to read an Account", "account_id", request.AccountID)

	account, err := h.accounts.Get(ctx, request.AccountID)
	if err != nil {
		return h.errorResponse("read", err), nil
	}

	return api.Account200JSONResponse(toAPIAccount(account)), nil
}

// UpdateAccount handles PUT /accounts/{account_id}. The account must exist
// before the request body is looked at.
func (h *Handler) UpdateAccount(
	ctx context.Context,
	request api.UpdateAccountRequestObject,
) (api.Response, error) {
	h.logger.Info("Request to update an Account", "account_id", request.AccountID)

	if _, err := h.accounts.Get(ctx, request.AccountID); err != nil {
		return h.errorResponse("update", err), nil
	}

	if !checkContentType(request.ContentType) {
		h.logger.Info("rejected content type", "content_type", request.ContentType)
		return unsupportedMediaType(), nil
	}

	body, err := api.DecodeAccountRequest(request.Body)
	if err != nil {
		h.logger.Info("malformed account body", "error", err)
		return api.BadRequestJSONResponse(api.NewError(http.StatusBadRequest, msgBadBody)), nil
	}

	account, err := h.accounts.Update(ctx, request.AccountID, toPayload(body))
	if err != nil {
		return h.errorResponse("update", err), nil
	}

	h.logger.Info("Account updated", "account_id", account.ID)
	return api.Account200JSONResponse(toAPIAccount(account)), nil
}

// DeleteAccount handles DELETE /accounts/{account_id}
func (h *Handler) DeleteAccount(
	ctx context.Context,
	request api.DeleteAccountRequestObject,
) (api.Response, error) {
	h.logger.Info("Request to delete an Account", "account_id", request.AccountID)

	if err := h.accounts.Delete(ctx, request.AccountID); err != nil {
		return h.errorResponse("delete", err), nil
	}

	h.logger.Info("Account deleted", "account_id", request.AccountID)
	return api.NoContentResponse{}, nil
}
