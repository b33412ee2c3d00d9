package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/restorun-backoffice/internal/domain"
)

// запас на заголовки multipart сверх лимита файла
const multipartOverhead = 1 << 20

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.UC.GetSettings.Execute(r.Context())
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.Settings
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	st, err := s.UC.UpdateSettings.Execute(r.Context(), in)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleListUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.UC.ListUploads.Execute(r.Context())
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploads)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if limit := s.UC.UploadFile.MaxBytes; limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, s.Log, r, domain.Invalid("multipart field \"file\" is required: %v", err))
		return
	}
	defer file.Close()

	sess, _ := sessionFrom(r.Context())
	u, err := s.UC.UploadFile.Execute(r.Context(), sess.UserID, header.Filename, file)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	s.Log.Infow("file uploaded", "upload_id", u.ID, "file", u.FileName, "user", sess.Username)
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleDeleteUpload(w http.ResponseWriter, r *http.Request) {
	if err := s.UC.DeleteUpload.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
