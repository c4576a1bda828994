package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Response is the typed outcome of a handler. The adapter writes it to the
// client; handlers never touch the http.ResponseWriter themselves.
type Response interface {
	VisitResponse(w http.ResponseWriter) error
}

type GetIndexRequestObject struct{}

type GetHealthRequestObject struct{}

type ListAccountsRequestObject struct{}

type CreateAccountRequestObject struct {
	Body        io.Reader
	ContentType string
}

type GetAccountRequestObject struct {
	AccountID int64
}

// UpdateAccountRequestObject carries the raw body so the handler can look the
// account up before the content type and body are inspected.
type UpdateAccountRequestObject struct {
	Body        io.Reader
	ContentType string
	AccountID   int64
}

type DeleteAccountRequestObject struct {
	AccountID int64
}

// StrictServerInterface is implemented by the account handlers
type StrictServerInterface interface {
	// GET /
	GetIndex(ctx context.Context, request GetIndexRequestObject) (Response, error)
	// GET /health
	GetHealth(ctx context.Context, request GetHealthRequestObject) (Response, error)
	// GET /accounts
	ListAccounts(ctx context.Context, request ListAccountsRequestObject) (Response, error)
	// POST /accounts
	CreateAccount(ctx context.Context, request CreateAccountRequestObject) (Response, error)
	// GET /accounts/{account_id}
	GetAccount(ctx context.Context, request GetAccountRequestObject) (Response, error)
	// PUT /accounts/{account_id}
	UpdateAccount(ctx context.Context, request UpdateAccountRequestObject) (Response, error)
	// DELETE /accounts/{account_id}
	DeleteAccount(ctx context.Context, request DeleteAccountRequestObject) (Response, error)
}

// StrictHandlerOptions customises the adapter
type StrictHandlerOptions struct {
	// ErrorHandlerFunc is called when a handler returns an error or a
	// response cannot be written. It defaults to a JSON 500.
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// maxBodyBytes caps account request bodies. Larger bodies fail to decode.
const maxBodyBytes = 1 << 20

type strictHandler struct {
	ssi     StrictServerInterface
	options StrictHandlerOptions
}

// HandlerFromMux registers every route of the API on r, plus JSON not-found
// and method-not-allowed handlers, and returns r.
func HandlerFromMux(ssi StrictServerInterface, r chi.Router, options StrictHandlerOptions) http.Handler {
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = defaultErrorHandler
	}
	sh := &strictHandler{ssi: ssi, options: options}

	r.Get("/", sh.getIndex)
	r.Get("/health", sh.getHealth)
	r.Get("/accounts", sh.listAccounts)
	r.Post("/accounts", sh.createAccount)
	r.Get("/accounts/{account_id}", sh.getAccount)
	r.Put("/accounts/{account_id}", sh.updateAccount)
	r.Delete("/accounts/{account_id}", sh.deleteAccount)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = NotFoundJSONResponse(NewError(http.StatusNotFound, "The requested URL was not found on the server.")).VisitResponse(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = MethodNotAllowedJSONResponse(NewError(http.StatusMethodNotAllowed,
			fmt.Sprintf("The method %s is not allowed for the requested URL.", req.Method))).VisitResponse(w)
	})

	return r
}

func (sh *strictHandler) getIndex(w http.ResponseWriter, r *http.Request) {
	sh.finish(w, r)(sh.ssi.GetIndex(r.Context(), GetIndexRequestObject{}))
}

func (sh *strictHandler) getHealth(w http.ResponseWriter, r *http.Request) {
	sh.finish(w, r)(sh.ssi.GetHealth(r.Context(), GetHealthRequestObject{}))
}

func (sh *strictHandler) listAccounts(w http.ResponseWriter, r *http.Request) {
	sh.finish(w, r)(sh.ssi.ListAccounts(r.Context(), ListAccountsRequestObject{}))
}

func (sh *strictHandler) createAccount(w http.ResponseWriter, r *http.Request) {
	request := CreateAccountRequestObject{
		Body:        http.MaxBytesReader(w, r.Body, maxBodyBytes),
		ContentType: r.Header.Get("Content-Type"),
	}
	sh.finish(w, r)(sh.ssi.CreateAccount(r.Context(), request))
}

func (sh *strictHandler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := bindAccountID(w, r)
	if !ok {
		return
	}
	sh.finish(w, r)(sh.ssi.GetAccount(r.Context(), GetAccountRequestObject{AccountID: id}))
}

func (sh *strictHandler) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := bindAccountID(w, r)
	if !ok {
		return
	}
	request := UpdateAccountRequestObject{
		AccountID:   id,
		Body:        http.MaxBytesReader(w, r.Body, maxBodyBytes),
		ContentType: r.Header.Get("Content-Type"),
	}
	sh.finish(w, r)(sh.ssi.UpdateAccount(r.Context(), request))
}

func (sh *strictHandler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := bindAccountID(w, r)
	if !ok {
		return
	}
	sh.finish(w, r)(sh.ssi.DeleteAccount(r.Context(), DeleteAccountRequestObject{AccountID: id}))
}

func (sh *strictHandler) finish(w http.ResponseWriter, r *http.Request) func(Response, error) {
	return func(resp Response, err error) {
		if err != nil {
			sh.options.ErrorHandlerFunc(w, r, err)
			return
		}
		if resp == nil {
			sh.options.ErrorHandlerFunc(w, r, fmt.Errorf("unexpected nil response"))
			return
		}
		if err := resp.VisitResponse(w); err != nil {
			sh.options.ErrorHandlerFunc(w, r, err)
		}
	}
}

// bindAccountID parses the account_id path parameter. An id that is not an
// integer cannot name an account, so it is answered with 404.
func bindAccountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "account_id")

	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "account_id", raw, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		_ = NotFoundJSONResponse(NewError(http.StatusNotFound,
			fmt.Sprintf("Account with id [%s] could not be found.", raw))).VisitResponse(w)
		return 0, false
	}

	return id, true
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	_ = InternalErrorJSONResponse(NewError(http.StatusInternalServerError, "Internal server error")).VisitResponse(w)
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

type Index200JSONResponse Index

func (resp Index200JSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, resp)
}

type Health200JSONResponse Health

func (resp Health200JSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, resp)
}

type Health503JSONResponse Health

func (resp Health503JSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusServiceUnavailable, resp)
}

type Account200JSONResponse Account

func (resp Account200JSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, resp)
}

type Account201ResponseHeaders struct {
	Location string
}

type Account201JSONResponse struct {
	Body    Account
	Headers Account201ResponseHeaders
}

func (resp Account201JSONResponse) VisitResponse(w http.ResponseWriter) error {
	w.Header().Set("Location", resp.Headers.Location)
	return writeJSON(w, http.StatusCreated, resp.Body)
}

type AccountList200JSONResponse []Account

func (resp AccountList200JSONResponse) VisitResponse(w http.ResponseWriter) error {
	if resp == nil {
		resp = AccountList200JSONResponse{}
	}
	return writeJSON(w, http.StatusOK, resp)
}

type NoContentResponse struct{}

func (NoContentResponse) VisitResponse(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type BadRequestJSONResponse Error

func (resp BadRequestJSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, resp)
}

type NotFoundJSONResponse Error

func (resp NotFoundJSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, resp)
}

type MethodNotAllowedJSONResponse Error

func (resp MethodNotAllowedJSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusMethodNotAllowed, resp)
}

type UnsupportedMediaTypeJSONResponse Error

func (resp UnsupportedMediaTypeJSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusUnsupportedMediaType, resp)
}

type InternalErrorJSONResponse Error

func (resp InternalErrorJSONResponse) VisitResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, resp)
}
