package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
)

// maxBodySize bounds form and JSON request bodies.
const maxBodySize = 1 << 16

func (s *HTTPServer) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.html", loginView{})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	userName := r.PostForm.Get(common.FieldUsername)
	password := []byte(r.PostForm.Get(common.FieldPassword))

	sess, err := s.users.Login(r.Context(), userName, password)
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(r.Context(), "login", "error", err)
		}
		s.logger.Info(r.Context(), "Login failed", "username", userName)
		s.render(w, r, "login.html", loginView{Error: "Login failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Info(r.Context(), "Logged in", "username", userName)
	http.Redirect(w, r, common.AdminPath, http.StatusSeeOther)
}

func (s *HTTPServer) adminPage(w http.ResponseWriter, r *http.Request) {
	cards, err := s.credits.Cards(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "list cards", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "admin.html", adminView{Cards: cards})
}

func (s *HTTPServer) adminAdd(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r.Context()); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	rfidID := strings.TrimSpace(r.PostForm.Get(common.FieldRFIDID))
	amount, err := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get(common.FieldAmount)), 10, 64)
	if rfidID == "" || err != nil {
		http.Error(w, "rfid_id and an integer amount are required", http.StatusBadRequest)
		return
	}

	credits, err := s.credits.AddCredits(r.Context(), rfidID, amount)
	if err != nil {
		s.logger.Error(r.Context(), "add credits", "rfid_id", rfidID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "Credits added", "rfid_id", rfidID, "amount", amount, "credits", credits)
	http.Redirect(w, r, common.AdminPath, http.StatusSeeOther)
}

type rfidRequest struct {
	RFIDID string `json:"rfid_id"`
	Amount int64  `json:"amount"`
}

type rfidResponse struct {
	RFIDID           string `json:"rfid_id"`
	RemainingCredits int64  `json:"remaining_credits"`
}

func (s *HTTPServer) decodeRFID(w http.ResponseWriter, r *http.Request) (rfidRequest, bool) {
	var req rfidRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return req, false
	}
	req.RFIDID = strings.TrimSpace(req.RFIDID)
	if req.RFIDID == "" {
		s.respondError(w, r, http.StatusBadRequest, "rfid_id is required")
		return req, false
	}
	return req, true
}

func (s *HTTPServer) rfidDeduct(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRFID(w, r)
	if !ok {
		return
	}

	credits, err := s.credits.Deduct(r.Context(), req.RFIDID)
	switch {
	case err == nil:
		s.logger.Info(r.Context(), "Spin paid", "rfid_id", req.RFIDID, "credits", credits)
		s.respondJSON(w, r, http.StatusOK, rfidResponse{RFIDID: req.RFIDID, RemainingCredits: credits})
	case errors.Is(err, common.ErrorInsufficientCredits):
		s.respondJSON(w, r, http.StatusPaymentRequired, map[string]any{
			"error":             "insufficient credits",
			"rfid_id":           req.RFIDID,
			"remaining_credits": credits,
		})
	case errors.Is(err, common.ErrorNotFound):
		s.respondError(w, r, statusFor(err), "card not found")
	default:
		s.logger.Error(r.Context(), "deduct", "rfid_id", req.RFIDID, "error", err)
		s.respondError(w, r, statusFor(err), "internal error")
	}
}

func (s *HTTPServer) rfidAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRFID(w, r)
	if !ok {
		return
	}
	if req.Amount <= 0 {
		s.respondError(w, r, http.StatusBadRequest, "amount must be positive")
		return
	}

	credits, err := s.credits.AddCredits(r.Context(), req.RFIDID, req.Amount)
	if err != nil {
		s.logger.Error(r.Context(), "payout", "rfid_id", req.RFIDID, "error", err)
		s.respondError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Payout", "rfid_id", req.RFIDID, "amount", req.Amount, "credits", credits)
	s.respondJSON(w, r, http.StatusOK, rfidResponse{RFIDID: req.RFIDID, RemainingCredits: credits})
}
