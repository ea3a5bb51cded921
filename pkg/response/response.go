package response

import "github.com/gin-gonic/gin"

// APIError is the failure body shared by every endpoint: {"message": "..."}.
// The Accounts surface depends on this exact shape, so keep it flat.
type APIError struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Message writes a failure body with the given status code.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, APIError{Message: msg})
}

// InvalidPayload writes a 400-style failure with per-field details.
func InvalidPayload(c *gin.Context, status int, details map[string]string) {
	c.JSON(status, APIError{Message: "invalid payload", Details: details})
}
