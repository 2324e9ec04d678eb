package utils

import "github.com/gin-gonic/gin"

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// DefaultSuccessMessage is used when a handler has nothing specific to say.
const DefaultSuccessMessage = "Request has ended successfully"

// SendSuccess writes a success envelope with the given status code.
func SendSuccess(ctx *gin.Context, status int, message string, data any) {
	if message == "" {
		message = DefaultSuccessMessage
	}
	ctx.JSON(status, JSONResponse{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError writes an error envelope. Field validation failures carry the
// per-field errors map.
func SendError(ctx *gin.Context, status int, message string, fields map[string]string) {
	ctx.JSON(status, JSONResponse{
		Status:  status,
		Success: false,
		Message: message,
		Errors:  fields,
	})
}
