package common

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CommonHttpEndpointsOpts struct {
	Router          *mux.Router
	ServiceLogs     chan<- ServiceLog
	LivenessChecks  []func() error
	ReadinessChecks []func() error
}

// RegisterCommonHttpEndpoints adds the probe and metrics endpoints that
// every server in this repository exposes
func RegisterCommonHttpEndpoints(opts CommonHttpEndpointsOpts) {
	opts.Router.HandleFunc("/healthz", getProbeHandler(opts.LivenessChecks)).Methods(http.MethodGet)
	opts.Router.HandleFunc("/readyz", getProbeHandler(opts.ReadinessChecks)).Methods(http.MethodGet)
	opts.Router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

type handleHealthcheckProbeOutput struct {
	Errors []string `json:"errors"`
	Status string   `json:"status"`
}

func getProbeHandler(checks []func() error) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		issues := []error{}
		for _, check := range checks {
			if err := check(); err != nil {
				issues = append(issues, err)
			}
		}
		if len(issues) > 0 {
			SendHttpFailResponse(w, r, http.StatusInternalServerError, "大丈夫じゃない", errors.Join(issues...))
			return
		}
		SendHttpSuccessResponse(w, r, http.StatusOK, "大丈夫", handleHealthcheckProbeOutput{
			Errors: nil,
			Status: "ok",
		})
	}
}
