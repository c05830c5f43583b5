package http

import (
	"net/http"
	"strings"

	"github.com/jokeboard/server/internal/common/constants"
)

// requestForm adapts an inbound request to the pipeline's Form capability.
// A field that arrived as a file part instead of text reads as absent, which
// the pipeline treats as a malformed submission.
type requestForm struct {
	r *http.Request
}

func parseForm(r *http.Request) (requestForm, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(constants.DefaultMaxRequestSize); err != nil {
			return requestForm{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return requestForm{}, err
		}
	}
	return requestForm{r: r}, nil
}

func (f requestForm) Field(name string) (string, bool) {
	if vs, ok := f.r.PostForm[name]; ok && len(vs) > 0 {
		return vs[0], true
	}
	if f.r.MultipartForm != nil {
		if vs, ok := f.r.MultipartForm.Value[name]; ok && len(vs) > 0 {
			return vs[0], true
		}
	}
	return "", false
}
