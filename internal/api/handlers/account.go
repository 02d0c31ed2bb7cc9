package handlers

import (
	"log"
	"net/http"

	"github.com/remib/phonestore/internal/api/middleware"
	"github.com/remib/phonestore/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. Please log in.")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), identity.UserID); err != nil {
		log.Printf("ERROR [account.Delete] user %s: %v", identity.UserID, err)
		writeErrorDetail(w, http.StatusInternalServerError, "Error while deleting the account.", err)
		return
	}

	log.Printf("account %s deleted", identity.UserID)

	writeMessage(w, http.StatusOK, "Your account has been deleted.")
}
