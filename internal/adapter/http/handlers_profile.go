package adapthttp

import (
	"net/http"

	"fittrack/internal/apierr"
	"fittrack/internal/app"
	"fittrack/internal/domain"
)

// actionState is the JSON result of a form action, mirrored by the front
// end's submit handlers.
type actionState struct {
	Status      string                  `json:"status"`
	Message     string                  `json:"message,omitempty"`
	FieldErrors map[string]string       `json:"fieldErrors"`
	Profile     *domain.UserProfile     `json:"profile,omitempty"`
	Entry       *domain.BodyWeightEntry `json:"entry,omitempty"`
}

func validationFailed(fieldErrors map[string]string) actionState {
	return actionState{
		Status:      "error",
		Message:     "Please fix the highlighted fields.",
		FieldErrors: fieldErrors,
	}
}

func actionFailed(message string) actionState {
	return actionState{
		Status:      "error",
		Message:     message,
		FieldErrors: map[string]string{},
	}
}

func (s *Server) handleProfileFlow(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.flow.Resolve(r.Context()))
}

func (s *Server) handleProfileCreate(w http.ResponseWriter, r *http.Request) {
	sess := app.SessionFromContext(r.Context())
	if !sess.Usable() {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	validation := app.ValidateCreateProfileForm(r.PostForm)
	if validation.Payload == nil {
		writeJSON(w, http.StatusBadRequest, validationFailed(validation.FieldErrors))
		return
	}

	profile, err := s.profiles.Create(r.Context(), sess.Subject, *validation.Payload)
	if err != nil {
		if apierr.HasStatus(err, http.StatusConflict) {
			writeJSON(w, http.StatusConflict, actionState{
				Status:  "error",
				Message: "That username is already taken. Please choose a different one.",
				FieldErrors: map[string]string{
					"username": "Username already exists.",
				},
			})
			return
		}
		writeJSON(w, statusFor(err), actionFailed("Could not create profile: "+messageFor(err)))
		return
	}

	writeJSON(w, http.StatusCreated, actionState{
		Status:      "success",
		FieldErrors: map[string]string{},
		Profile:     profile,
	})
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	sess := app.SessionFromContext(r.Context())
	if !sess.Usable() {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	validation := app.ValidateUpdateProfileForm(r.PostForm)
	if validation.Payload == nil {
		writeJSON(w, http.StatusBadRequest, validationFailed(validation.FieldErrors))
		return
	}

	profile, err := s.profiles.Update(r.Context(), sess.Subject, *validation.Payload)
	if err != nil {
		writeJSON(w, statusFor(err), actionFailed("Could not update profile: "+messageFor(err)))
		return
	}

	writeJSON(w, http.StatusOK, actionState{
		Status:      "success",
		Message:     "Profile updated.",
		FieldErrors: map[string]string{},
		Profile:     profile,
	})
}
