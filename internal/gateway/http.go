package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"soilgate/internal/audit"
	"soilgate/internal/common"
	"soilgate/internal/dispatch"
	"soilgate/internal/gateway/docs"
	"soilgate/internal/readings"
	"soilgate/internal/session"
	"soilgate/internal/users"
	"strings"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Dispatcher is what the rig routes need from dispatch.Dispatcher
type Dispatcher interface {
	FetchMoisture(ctx context.Context, username string) (float64, error)
	SetMotor(ctx context.Context, username string, desired bool) (bool, error)
	SetMonitoring(ctx context.Context, username string, enabled bool) (string, error)
	VoiceCommand(ctx context.Context, username string) (*dispatch.VoiceResult, error)
	History(ctx context.Context, username string) ([]readings.HistoryEntry, error)
	GetRigStatus() dispatch.RigStatus
}

type HttpApplicationOpts struct {
	// Audit records logins and logouts, optional
	Audit audit.Logger

	// CookieSecure marks the session cookie as https-only
	CookieSecure bool

	Dispatcher Dispatcher

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog

	Sessions *session.Store

	// SessionTtl is used for the cookie lifetime, 0 makes it a browser
	// session cookie
	SessionTtl time.Duration

	// StaticDir holds the dashboard build, `index.html` is served for
	// `/` and `/rag`
	StaticDir string

	Users users.Directory
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}
	if o.Dispatcher == nil {
		errs = append(errs, fmt.Errorf("failed to receive a dispatcher"))
	}
	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log"))
	}
	if o.Sessions == nil {
		errs = append(errs, fmt.Errorf("failed to receive a session store"))
	}
	if o.StaticDir == "" {
		errs = append(errs, fmt.Errorf("failed to receive a static directory"))
	}
	if o.Users == nil {
		errs = append(errs, fmt.Errorf("failed to receive a user directory"))
	}
	return errors.Join(errs...)
}

// GetHttpApplication returns the gateway's router, it still needs the
// request logger that common.NewHttpServer adds
//
// @title        soilgate gateway
// @version      1.0
// @description  Session-authenticated gateway for a soil moisture irrigation rig
// @BasePath     /
func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}
	h := &handlers{
		audit:       opts.Audit,
		cookieOpts:  session.CookieOpts{Secure: opts.CookieSecure, Ttl: opts.SessionTtl},
		dispatcher:  opts.Dispatcher,
		sessions:    opts.Sessions,
		serviceLogs: opts.ServiceLogs,
		staticDir:   opts.StaticDir,
		users:       opts.Users,
	}

	handler := mux.NewRouter()
	handler.Use(common.GetCommonMetricsMiddleware(opts.ServiceLogs))
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	registerSessionRoutes(handler, h)
	registerRigRoutes(handler, h)
	handler.PathPrefix("/docs").Handler(httpSwagger.Handler(httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
	registerStaticRoutes(handler, h)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}

type handlers struct {
	audit       audit.Logger
	cookieOpts  session.CookieOpts
	dispatcher  Dispatcher
	sessions    *session.Store
	serviceLogs chan<- common.ServiceLog
	staticDir   string
	users       users.Directory
}
