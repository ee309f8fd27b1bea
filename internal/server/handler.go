package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/cennetul/muhafiz-go/internal/persona"
)

// ChatRequest is the body of POST /api/chat. History may be empty.
type ChatRequest struct {
	History []chat.Turn `json:"history"`
	Message string      `json:"message"`
}

// allowedHeaders mirrors the browser-facing contract of the original
// deployment; preflights must keep answering it identically.
var allowedHeaders = []string{
	"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
	"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
}

// respond is the single implementation behind every transport: one model
// turn with the full supplied history, mapped to the wire contract. Failures
// never reach the caller verbatim; they become the persona's fixed apology
// with a 500.
func (a *API) respond(ctx context.Context, req ChatRequest) (chat.Response, int) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.completer.Complete(ctx, chat.TurnsToHistory(req.History), req.Message)
	if err != nil {
		a.logger.Error("completion failed", "error", err)
		return errorResponse(a.persona), http.StatusInternalServerError
	}
	return *resp, http.StatusOK
}

func errorResponse(p persona.Persona) chat.Response {
	return chat.Response{Text: p.ServerBusy}
}

// Handler returns the serverless-function target: a plain http.Handler with
// the same observable contract as the gin router, for hosts that mount a
// single function per path.
func (a *API) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeCORSHeaders(w)

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
			// fall through to the chat flow
		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method Not Allowed"})
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.logger.Error("malformed chat request", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse(a.persona))
			return
		}

		resp, status := a.respond(r.Context(), req)
		writeJSON(w, status, resp)
	})
}

func writeCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
	h.Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
