package ginmiddleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relkit/sqlfault"
	"github.com/relkit/sqlfault/logging"
)

// ClassifiedErrors translates taxonomy errors attached to the gin context
// into an HTTP status and a JSON body carrying the class name and, when the
// error has one, the background documentation link. Handlers report failures
// with c.Error(err) and leave rendering to this middleware.
func ClassifiedErrors() gin.HandlerFunc {
	logger := logging.GetLogger("middleware/errors")
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusForError(err)
		body := gin.H{"message": err.Error()}
		if class := sqlfault.ClassOf(err); class != nil {
			body["class"] = class.Name()
		}
		var coder interface{ Code() sqlfault.Code }
		if errors.As(err, &coder) {
			if code := coder.Code(); code != "" {
				body["help"] = code.URL()
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Err(err).Int("status", status).Msg("request failed")
		}
		c.JSON(status, gin.H{"error": body})
	}
}

// StatusForError picks the HTTP status for an error, most-specific class
// first.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, sqlfault.NoResultFound), errors.Is(err, sqlfault.NoSuchTable):
		return http.StatusNotFound
	case errors.Is(err, sqlfault.Integrity):
		return http.StatusConflict
	case errors.Is(err, sqlfault.Argument), errors.Is(err, sqlfault.Data):
		return http.StatusBadRequest
	case errors.Is(err, sqlfault.Timeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, sqlfault.Disconnection), errors.Is(err, sqlfault.Operational):
		return http.StatusServiceUnavailable
	case errors.Is(err, sqlfault.NotSupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
