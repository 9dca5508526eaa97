package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/app/service"
	"github.com/sstmlab/nfc-redirect/internal/middleware"
	"github.com/sstmlab/nfc-redirect/internal/models"
	"github.com/sstmlab/nfc-redirect/internal/storage"
)

type PostHandler struct {
	codec  service.CodecIface
	guard  service.ClaimGuardIface
	store  service.RedirectStore
	users  service.UserDirectory
	logger *zap.Logger
}

func NewPost(codec service.CodecIface, guard service.ClaimGuardIface, store service.RedirectStore, users service.UserDirectory, l *zap.Logger) *PostHandler {
	return &PostHandler{
		codec:  codec,
		guard:  guard,
		store:  store,
		users:  users,
		logger: l,
	}
}

func (h *PostHandler) decode(res http.ResponseWriter, req *http.Request, dst interface{}) bool {
	if err := decodeJSONBody(res, req, dst); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
		} else {
			h.logger.Error("decoding request", zap.Error(err))
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return false
	}
	return true
}

// Claim handles POST /claims: the authenticated entry point. The subject
// comes from the verified token, the collectible reference from its redirect
// record, the claimant from the body.
func (h *PostHandler) Claim(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	claims, ok := middleware.ClaimsFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ClaimRequest
	if !h.decode(res, req, &request) {
		return
	}

	claim, err := h.guard.RecordBySubject(ctx, claims.SubjectID, request.UserAddress)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyClaimed) {
			writeJSON(res, http.StatusConflict, models.ClaimStatusResponse{
				Message: "Token claim exists",
				Claimed: true,
			})
			return
		}

		status, msg := statusForError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("recording claim", zap.Error(err))
		}
		http.Error(res, msg, status)
		return
	}

	writeJSON(res, http.StatusCreated, models.ClaimCreatedResponse{
		Message: "NFT claim recorded",
		ID:      claim.ID,
	})
}

// ClaimBySubject handles POST /claims/by-subject: the unauthenticated status
// lookup with the subject named in the body.
func (h *PostHandler) ClaimBySubject(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.ClaimBySubjectRequest
	if !h.decode(res, req, &request) {
		return
	}

	status, err := h.guard.StatusBySubject(ctx, request.Subject, request.UserAddress)
	if err != nil {
		code, msg := statusForError(err)
		if code >= http.StatusInternalServerError {
			h.logger.Error("claim status", zap.Error(err))
		}
		http.Error(res, msg, code)
		return
	}

	response := models.ClaimStatusResponse{Claimed: status.Claimed}
	if status.Claimed {
		response.Message = "Token claim exists"
	} else {
		response.Message = "Token claim does not exist"
		response.Reference = &models.CollectibleRef{
			Address: status.Reference.Contract,
			TokenID: status.Reference.TokenID,
			ChainID: status.Reference.ChainID,
		}
	}

	writeJSON(res, http.StatusOK, response)
}

// InsertRedirects handles POST /redirects: administrative bulk insert.
// Response rows carry ready-to-program resolve links built from non-expiring
// subject tokens.
func (h *PostHandler) InsertRedirects(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Second)
	defer cancel()

	var rows []models.RedirectInsert
	if !h.decode(res, req, &rows) {
		return
	}

	if len(rows) == 0 {
		http.Error(res, "Invalid input data", http.StatusBadRequest)
		return
	}

	records := make([]storage.RedirectRecord, 0, len(rows))
	for _, row := range rows {
		if row.URL == "" {
			http.Error(res, "Invalid input data", http.StatusBadRequest)
			return
		}
		records = append(records, storage.RedirectRecord{
			Subject:          row.Subject,
			URL:              row.URL,
			Description:      row.Description,
			Number:           row.Number,
			Group:            row.Group,
			XLocation:        row.XLocation,
			ZLocation:        row.ZLocation,
			PhygitalContract: row.PhygitalContract,
			PhygitalTokenID:  row.PhygitalTokenID,
			PoapContract:     row.PoapContract,
			PoapTokenID:      row.PoapTokenID,
			ChainID:          row.ChainID,
		})
	}

	inserted, err := h.store.InsertRedirects(ctx, records)
	if err != nil {
		status, msg := statusForError(err)
		h.logger.Error("inserting redirects", zap.Error(err))
		http.Error(res, msg, status)
		return
	}

	linkBase := "https://" + req.Host + "/resolve/"
	response := make([]models.RedirectInserted, 0, len(inserted))
	for _, rec := range inserted {
		token, err := h.codec.Sign(&service.Claims{SubjectID: rec.Subject}, 0)
		if err != nil {
			h.logger.Error("signing subject token", zap.Error(err))
			http.Error(res, "An error occurred", http.StatusInternalServerError)
			return
		}
		response = append(response, models.RedirectInserted{
			Subject: rec.Subject,
			URL:     rec.URL,
			Link:    linkBase + token,
		})
	}

	writeJSON(res, http.StatusCreated, map[string]interface{}{
		"message": "Redirects inserted successfully",
		"data":    response,
	})
}

// UpsertUser handles POST /users: create or update keyed on the unique NFC
// subject id.
func (h *PostHandler) UpsertUser(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.UserUpsertRequest
	if !h.decode(res, req, &request) {
		return
	}

	if request.NFC == "" || request.Username == "" {
		http.Error(res, "Invalid input data", http.StatusBadRequest)
		return
	}

	_, findErr := h.users.FindUserByNFC(ctx, request.NFC)
	if findErr != nil && !errors.Is(findErr, storage.ErrNotFound) {
		status, msg := statusForError(findErr)
		http.Error(res, msg, status)
		return
	}
	created := errors.Is(findErr, storage.ErrNotFound)

	user, err := h.users.UpsertUserByNFC(ctx, storage.UserRecord{
		NFC:          request.NFC,
		Username:     request.Username,
		Address:      request.Address,
		Email:        request.Email,
		Avatar:       request.Avatar,
		Bio:          request.Bio,
		X:            request.X,
		Instagram:    request.Instagram,
		TikTok:       request.TikTok,
		Shop:         request.Shop,
		ContactEmail: request.ContactEmail,
	})
	if err != nil {
		status, msg := statusForError(err)
		h.logger.Error("upserting user", zap.Error(err))
		http.Error(res, msg, status)
		return
	}

	message := "User updated"
	if created {
		message = "User created"
	}

	writeJSON(res, http.StatusOK, map[string]interface{}{
		"message":     message,
		"data":        user,
		"userCreated": created,
	})
}
