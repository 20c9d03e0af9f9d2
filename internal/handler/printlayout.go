package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/simecek/detsky-den2026/internal/imaging"
)

// PrintLayout handles POST /api/print-layout: multipart form with the
// "original" sketch and the "generated" result, both as image files. The
// response is an A4 PNG with the two images stacked and labeled, served as a
// download so the browser can hand it to the print dialog.
func PrintLayout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		original, err := readFormImage(r, "original")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		generated, err := readFormImage(r, "generated")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sheet, err := imaging.PrintLayout(original, generated)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("compose layout: %v", err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="print-layout.png"`)
		w.Write(sheet)
	}
}

func readFormImage(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%s image is required", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s image: %v", field, err)
	}
	return data, nil
}
