package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/rainwise/rainwise/internal/pkg/logger"
	"github.com/rainwise/rainwise/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace server-side and returns a generic 500 to the client.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
						"An error occurred. Please try again.")
				}
			}()
			return next(c)
		}
	}
}
