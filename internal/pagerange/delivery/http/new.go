package http

import (
	"pagination-srv/internal/middleware"
	"pagination-srv/internal/pagerange"
	"pagination-srv/pkg/discord"
	"pagination-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the page-range HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      pagerange.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc pagerange.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
