package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"quizgame/internal/app"
	"quizgame/internal/domain"
)

// API serves the JSON endpoints for accounts, history and quiz play.
type API struct {
	quizzes  *app.QuizService
	accounts *app.AccountService
}

func NewAPI(quizzes *app.QuizService, accounts *app.AccountService) *API {
	return &API{quizzes: quizzes, accounts: accounts}
}

// Register mounts every route on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", a.register)
	mux.HandleFunc("POST /api/login", a.login)
	mux.HandleFunc("GET /api/users/{id}", a.getUser)
	mux.HandleFunc("DELETE /api/users/{id}", a.deleteUser)
	mux.HandleFunc("DELETE /api/users/{id}/results", a.deleteResults)
	mux.HandleFunc("GET /api/results", a.history)
	mux.HandleFunc("POST /api/users/{id}/quiz", a.startQuiz)
	mux.HandleFunc("GET /api/users/{id}/quiz", a.currentQuestion)
	mux.HandleFunc("DELETE /api/users/{id}/quiz", a.abandonQuiz)
	mux.HandleFunc("POST /api/users/{id}/quiz/answers", a.submitAnswer)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type startRequest struct {
	SetID string `json:"setId"`
}

type answerRequest struct {
	Selections []bool `json:"selections"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var reg app.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	if reg.Email == "" || reg.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, err := a.accounts.Register(r.Context(), reg)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid login payload")
		return
	}
	user, err := a.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	user, err := a.accounts.User(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	a.quizzes.Abandon(r.Context(), id)
	if err := a.accounts.DeleteUser(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) deleteResults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	if err := a.accounts.DeleteResults(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) history(w http.ResponseWriter, r *http.Request) {
	entries, err := a.accounts.History(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *API) startQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SetID == "" {
		writeError(w, http.StatusBadRequest, "setId is required")
		return
	}
	if _, err := a.accounts.User(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	view, err := a.quizzes.Start(r.Context(), id, req.SetID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (a *API) currentQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	view, err := a.quizzes.Current(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (a *API) abandonQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	a.quizzes.Abandon(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) submitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid answer payload")
		return
	}
	sel, err := toSelections(req.Selections)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := a.quizzes.Submit(r.Context(), id, sel)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

var errSelectionCount = errors.New("selections must have exactly 4 entries")

func toSelections(raw []bool) (domain.Selections, error) {
	var sel domain.Selections
	if len(raw) != domain.OptionCount {
		return sel, errSelectionCount
	}
	copy(sel[:], raw)
	return sel, nil
}

func pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

type errorPayload struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorPayload{Message: msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var stateErr *domain.StateError
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrQuestionSetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken), errors.As(err, &stateErr):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmptyQuiz), errors.Is(err, domain.ErrNoCorrectOption):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "err", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
