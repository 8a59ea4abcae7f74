package adapthttp

import (
	"net/http"

	"fittrack/internal/app"
)

func (s *Server) handleWeightHistory(w http.ResponseWriter, r *http.Request) {
	sess := app.SessionFromContext(r.Context())
	if !sess.Usable() {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}

	entries, err := s.weights.History(r.Context(), sess.Subject)
	if err != nil {
		writeError(w, statusFor(err), messageFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (s *Server) handleWeightCreate(w http.ResponseWriter, r *http.Request) {
	sess := app.SessionFromContext(r.Context())
	if !sess.Usable() {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	validation := app.ValidateBodyWeightForm(r.PostForm)
	if validation.Payload == nil {
		writeJSON(w, http.StatusBadRequest, validationFailed(validation.FieldErrors))
		return
	}

	entry, err := s.weights.Create(r.Context(), sess.Subject, *validation.Payload)
	if err != nil {
		writeJSON(w, statusFor(err), actionFailed("Could not save weight entry: "+messageFor(err)))
		return
	}

	writeJSON(w, http.StatusCreated, actionState{
		Status:      "success",
		Message:     "Weight entry saved.",
		FieldErrors: map[string]string{},
		Entry:       entry,
	})
}
