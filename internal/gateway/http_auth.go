package gateway

import (
	"context"
	"fmt"
	"net/http"
	"soilgate/internal/common"
	"soilgate/internal/session"
	"soilgate/internal/types"
)

const sessionRequestContext common.HttpContextKey = "gateway-session"

type onUnauthenticated func(w http.ResponseWriter, r *http.Request)

func rejectWithUnauthorized(w http.ResponseWriter, r *http.Request) {
	common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "Login required", types.ErrorAuthRequired)
}

func redirectToEntry(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// getRouteAuther lets requests with a resolvable session cookie through
// and hands the rest to `reject`
func (h *handlers) getRouteAuther(reject onUnauthenticated) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := common.GetRequestLogger(r)
			sessionInfo, ok, err := h.sessions.Resolve(session.GetToken(r))
			if err != nil {
				common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error resolving session.", types.ErrorStorageUnavailable)
				return
			}
			if !ok {
				log(common.LogLevelDebug, fmt.Sprintf("rejected unauthenticated request to %s", r.URL.Path))
				reject(w, r)
				return
			}
			log(common.LogLevelDebug, fmt.Sprintf("processing request from user[%s]", sessionInfo.Username))
			authContext := context.WithValue(r.Context(), sessionRequestContext, *sessionInfo)
			next.ServeHTTP(w, r.WithContext(authContext))
		})
	}
}

// getSession returns the session the auther attached to `r`
func getSession(r *http.Request) session.Session {
	sessionInfo, _ := r.Context().Value(sessionRequestContext).(session.Session)
	return sessionInfo
}
