package response

import (
	"context"
	"fmt"
	"net/http"

	"pagination-srv/pkg/discord"
	pkgErrors "pagination-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	codeSuccess = 0
	msgSuccess  = "Success"
	msgInternal = "Internal server error"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   msgSuccess,
		Data:      data,
	})
}

// Error writes an error response. Known HTTPErrors are surfaced as-is; anything
// else becomes a 500 and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c, discordClient, "Unhandled error", err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   msgInternal,
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notify(c, discordClient, "Panic recovered", fmt.Errorf("%v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   msgInternal,
	})
}

// notify reports server-side failures to Discord without blocking the response.
func notify(c *gin.Context, discordClient discord.IDiscord, title string, err error) {
	if discordClient == nil || err == nil {
		return
	}
	description := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	go func() {
		_ = discordClient.SendError(context.Background(), title, description, err)
	}()
}
