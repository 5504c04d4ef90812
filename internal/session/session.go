package session

import (
	"errors"
	"fmt"
	"soilgate/internal/auth"
	"soilgate/internal/cache"
	"soilgate/internal/common"
	"strings"
	"time"
)

const (
	DefaultCachePrefix = "session"
	DefaultIssuer      = "soilgate/gateway"

	sessionIdLength = 64
)

// Session is what a client's token resolves to
type Session struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}

type NewStoreOpts struct {
	// Cache is where the server side of a session lives
	Cache cache.Cache

	// CachePrefix namespaces session keys in Cache
	CachePrefix string

	// SigningToken signs issued tokens, changing it invalidates every
	// outstanding session
	SigningToken string

	// Ttl is how long a session lasts, 0 keeps sessions until they are
	// destroyed
	Ttl time.Duration

	ServiceLogs chan<- common.ServiceLog
}

func (o NewStoreOpts) Validate() error {
	errs := []error{}
	if o.Cache == nil {
		errs = append(errs, fmt.Errorf("failed to receive a cache"))
	}
	if o.SigningToken == "" {
		errs = append(errs, fmt.Errorf("failed to receive a signing token"))
	}
	if o.Ttl < 0 {
		errs = append(errs, fmt.Errorf("failed to receive a non-negative ttl"))
	}
	return errors.Join(errs...)
}

func NewStore(opts NewStoreOpts) (*Store, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	cachePrefix := opts.CachePrefix
	if cachePrefix == "" {
		cachePrefix = DefaultCachePrefix
	}
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}
	return &Store{
		cache:        opts.Cache,
		cachePrefix:  cachePrefix,
		signingToken: opts.SigningToken,
		ttl:          opts.Ttl,
		serviceLogs:  serviceLogs,
	}, nil
}

// Store issues and resolves sessions; it holds no state of its own so
// it is as safe for concurrent use as its Cache
type Store struct {
	cache        cache.Cache
	cachePrefix  string
	signingToken string
	ttl          time.Duration
	serviceLogs  chan<- common.ServiceLog
}

func (s *Store) getCacheKey(sessionId string) string {
	return strings.Join([]string{s.cachePrefix, sessionId}, ":")
}

// Create binds a new session to `username` and returns the token the
// client should present
func (s *Store) Create(username string) (token string, err error) {
	if username == "" {
		return "", fmt.Errorf("failed to receive a username")
	}
	sessionId, err := common.GenerateRandomString(sessionIdLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	token, err = auth.GenerateJwt(auth.GenerateJwtOpts{
		Id:       sessionId,
		Issuer:   DefaultIssuer,
		Secret:   s.signingToken,
		Subject:  "session",
		Ttl:      s.ttl,
		Username: username,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.cache.Set(s.getCacheKey(sessionId), username, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "created session for user[%s]", username)
	return token, nil
}

// Resolve returns the session bound to `token`. Absent, tampered,
// expired and destroyed tokens all resolve to ok == false; an error is
// only returned when the cache could not be reached
func (s *Store) Resolve(token string) (output *Session, ok bool, err error) {
	if token == "" {
		return nil, false, nil
	}
	claims, err := auth.ValidateJwt(s.signingToken, token)
	if err != nil {
		s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "rejected session token: %s", err)
		return nil, false, nil
	}
	username, err := s.cache.Get(s.getCacheKey(claims.ID))
	if errors.Is(err, cache.ErrorCacheMiss) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to retrieve session: %w", err)
	}
	if username == "" || username != claims.Username {
		s.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "session[%s] claims user[%s] but is bound to another user", claims.ID, claims.Username)
		return nil, false, nil
	}
	return &Session{Id: claims.ID, Username: username}, true, nil
}

// Destroy ends the session bound to `token`, tokens that do not resolve
// are ignored
func (s *Store) Destroy(token string) error {
	if token == "" {
		return nil
	}
	claims, err := auth.ValidateJwt(s.signingToken, token)
	if err != nil {
		return nil
	}
	if err := s.cache.Del(s.getCacheKey(claims.ID)); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "destroyed session of user[%s]", claims.Username)
	return nil
}
