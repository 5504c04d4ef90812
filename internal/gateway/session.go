package gateway

import (
	"fmt"
	"net/http"
	"soilgate/internal/audit"
	"soilgate/internal/common"
	"soilgate/internal/session"
	"soilgate/internal/types"
	"soilgate/internal/users"

	"github.com/gorilla/mux"
)

func registerSessionRoutes(router *mux.Router, h *handlers) {
	router.HandleFunc("/login", h.handleLogin).Methods(http.MethodPost)
	router.HandleFunc("/logout", h.handleLogout).Methods(http.MethodPost)
}

type handleLoginInput struct {
	Username string `json:"username"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// handleLogin godoc
// @Summary      Creates a session for a known username
// @Description  Sets the session cookie when the username belongs to the user directory
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        request body handleLoginInput true "Username to log in as"
// @Success      200 {object} messageOutput "ok"
// @Failure      400 {object} common.HttpResponse "bad request"
// @Failure      401 {object} common.HttpResponse "invalid username"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /login [post]
func (h *handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	log := common.GetRequestLogger(r)
	var input handleLoginInput
	if err := readJsonBody(w, r, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", types.ErrorInvalidInput)
		return
	}
	username := users.Sanitize(input.Username)
	if !h.users.IsValidUser(input.Username) {
		log(common.LogLevelInfo, fmt.Sprintf("rejected login for user[%s]", username))
		h.recordSession(r, username, audit.Login, audit.Failed)
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "Invalid username", types.ErrorInvalidCredentials)
		return
	}

	token, err := h.sessions.Create(username)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error creating session.", types.ErrorStorageUnavailable)
		return
	}
	http.SetCookie(w, session.NewCookie(token, h.cookieOpts))
	h.recordSession(r, username, audit.Login, audit.Success)
	log(common.LogLevelInfo, fmt.Sprintf("user[%s] logged in", username))
	common.SendHttpJsonResponse(w, r, http.StatusOK, messageOutput{Message: "Login successful"})
}

// handleLogout godoc
// @Summary      Destroys the current session
// @Tags         gateway
// @Produce      json
// @Success      200 {object} messageOutput "ok"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /logout [post]
func (h *handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := session.GetToken(r)
	if sessionInfo, ok, _ := h.sessions.Resolve(token); ok {
		h.recordSession(r, sessionInfo.Username, audit.Logout, audit.Success)
	}
	if err := h.sessions.Destroy(token); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error destroying session.", types.ErrorStorageUnavailable)
		return
	}
	http.SetCookie(w, session.NewExpiredCookie(h.cookieOpts))
	common.SendHttpJsonResponse(w, r, http.StatusOK, messageOutput{Message: "Logout successful"})
}

func (h *handlers) recordSession(r *http.Request, username string, verb audit.Verb, status audit.Status) {
	audit.Record(r.Context(), h.audit, audit.LogEntry{
		Username:     username,
		Verb:         verb,
		ResourceType: audit.SessionResource,
		Status:       status,
		SrcIp:        getSourceIp(r),
	}, h.serviceLogs)
}
