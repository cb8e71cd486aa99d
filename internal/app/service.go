package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shrimpsizemoose/semla/internal/models"
	"github.com/shrimpsizemoose/semla/internal/store"
)

type Service struct {
	Config   *Config
	Store    store.InterviewStore
	Auth     *Auth
	Activity ActivitySink
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := NewStore(config.Database.DSN, config.Database.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	auth, err := NewAuth(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init auth: %w", err)
	}

	return &Service{
		Config:   config,
		Store:    st,
		Auth:     auth,
		Activity: NewStoreSink(st),
	}, nil
}

// CurrentUser extracts the bearer token from the request and resolves the
// acting user against the session provider.
func (s *Service) CurrentUser(r *http.Request) (*models.User, error) {
	header := s.Auth.TokenHeader()
	if header == "" {
		header = "Authorization"
	}

	authHeader := r.Header.Get(header)
	token := ""
	if strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}

	return s.Auth.CurrentUser(r.Context(), token)
}

func (s *Service) ValidateHeaders(headers map[string][]string) bool {
	for _, required := range s.Config.API.RequiredHeaders {
		value := headers[http.CanonicalHeaderKey(required.Name)]
		if len(value) == 0 || !strings.EqualFold(value[0], required.Value) {
			return false
		}
	}
	return true
}

func (s *Service) recordActivity(action, entityType string, entityID int64, entityName, details string) {
	if s.Activity == nil {
		return
	}
	s.Activity.Record(action, entityType, entityID, entityName, details)
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Auth.Close(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
