package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
	"github.com/jonathan/jobboard/internal/server/middleware"
	"github.com/jonathan/jobboard/internal/types"
)

// AccountStore is the subset of the database layer backing the /me
// endpoints that bypass the user service.
type AccountStore interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	SaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	GetJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]db.Job, error)
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]db.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error
}

// MeHandler handles the authenticated user's own account endpoints:
// profile, saved jobs and notifications.
type MeHandler struct {
	userService *UserService
	store       AccountStore
	validator   *validator.Validate
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(userService *UserService, store AccountStore) *MeHandler {
	return &MeHandler{
		userService: userService,
		store:       store,
		validator:   validator.New(),
	}
}

// Get handles GET /me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, profile, err := h.userService.GetMe(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user, "profile": profile})
}

// Update handles PUT /me.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	user, err := h.userService.UpdateMe(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /me/profile.
func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ListSavedJobs handles GET /me/saved-jobs. The saved list on the
// profile holds IDs; the response resolves them to full listings,
// silently skipping jobs deleted since they were saved.
func (h *MeHandler) ListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.store.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusOK, map[string]any{"jobs": []jobView{}})
		return
	}

	ids := make([]uuid.UUID, 0, len(profile.SavedJobs))
	for _, raw := range profile.SavedJobs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	jobs, err := h.store.GetJobsByIDs(r.Context(), ids)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"jobs": toJobViews(jobs)})
}

// SaveJob handles POST /me/saved-jobs/{job_id}. Saving an already saved
// job is a no-op.
func (h *MeHandler) SaveJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveJob(r.Context(), userID, jobID); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Job saved"})
}

// UnsaveJob handles DELETE /me/saved-jobs/{job_id}.
func (h *MeHandler) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	if err := h.store.UnsaveJob(r.Context(), userID, jobID); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Job removed from saved list"})
}

// ListNotifications handles GET /me/notifications.
func (h *MeHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := h.store.GetUserNotifications(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

// MarkNotificationRead handles POST /me/notifications/{id}/read.
func (h *MeHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}

	if err := h.store.MarkNotificationRead(r.Context(), userID, id); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// DeleteNotification handles DELETE /me/notifications/{id}.
func (h *MeHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteNotification(r.Context(), userID, id); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification deleted"})
}
