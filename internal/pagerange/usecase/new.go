package usecase

import (
	"pagination-srv/internal/pagerange"
	"pagination-srv/pkg/log"
	"pagination-srv/pkg/paginator"
)

// Config - UseCase configuration
type Config struct {
	DefaultRadius   int              // radius applied when a request names none
	MaxRadius       int              // upper bound for client-supplied radius values
	DefaultPolicy   paginator.Policy // window policy applied when a request names none
	DefaultPageSize int64            // page size applied when a widget request names none
	MaxPageSize     int64            // upper bound for client-supplied page sizes
}

// DefaultConfig - default configuration
func DefaultConfig() Config {
	return Config{
		DefaultRadius:   paginator.DefaultRadius,
		MaxRadius:       10,
		DefaultPolicy:   paginator.DefaultPolicy,
		DefaultPageSize: paginator.DefaultLimit,
		MaxPageSize:     paginator.MaxLimit,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	l   log.Logger
	cfg Config
}

// New - Factory function
func New(l log.Logger, cfg Config) pagerange.UseCase {
	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}
