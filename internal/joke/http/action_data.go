package http

import (
	"net/http"

	commonhttp "github.com/jokeboard/server/internal/common/http"
	"github.com/jokeboard/server/internal/joke/service"
)

// actionData is the wire form of one rejected submission attempt. The
// caller re-renders the form from it: fieldErrors annotate each invalid
// input, fields echo back exactly what the user typed.
type actionData struct {
	FormError   string              `json:"formError,omitempty"`
	FieldErrors *fieldErrorsPayload `json:"fieldErrors,omitempty"`
	Fields      *fieldsPayload      `json:"fields,omitempty"`
}

type fieldErrorsPayload struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}

type fieldsPayload struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func writeSubmissionError(w http.ResponseWriter, subErr *service.SubmissionError) {
	data := actionData{FormError: subErr.FormError}

	if !subErr.FieldErrors.Empty() {
		data.FieldErrors = &fieldErrorsPayload{
			Name:    subErr.FieldErrors.Name,
			Content: subErr.FieldErrors.Content,
		}
	}
	if subErr.Fields != nil {
		data.Fields = &fieldsPayload{
			Name:    subErr.Fields.Name,
			Content: subErr.Fields.Content,
		}
	}

	commonhttp.WriteJSON(w, http.StatusBadRequest, data)
}

func writeMalformedSubmission(w http.ResponseWriter) {
	commonhttp.WriteJSON(w, http.StatusBadRequest, actionData{
		FormError: "Form not submitted correctly.",
	})
}
