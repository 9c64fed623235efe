package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// writeSuccess writes the success envelope with the optional message and
// payload.
func writeSuccess(w http.ResponseWriter, message string, data any, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, statusCode)
}

// writeError writes the failure envelope. Data is always omitted on failures.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, statusCode)
}
