package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	walletUseCase "github.com/mytestspam8-prog/africash/internal/domain/usecase/wallet"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/dto"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles balance-affecting requests for the authenticated user
type WalletHandler struct {
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *walletUseCase.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// Activate handles the POST /api/activate endpoint
func (h *WalletHandler) Activate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	updated, err := h.walletService.Activate(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Earn handles the POST /api/earn endpoint, crediting the reward for a
// completed ad task
func (h *WalletHandler) Earn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.EarnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.walletService.Earn(c.Request.Context(), user.ID, req.TaskID, req.Amount.Cents())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.EarnResponse{
		Balance: updated.FormattedBalance(),
		Message: "Earnings collected successfully",
	})
}

// Withdraw handles the POST /api/withdraw endpoint
func (h *WalletHandler) Withdraw(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	withdrawal, err := h.walletService.Withdraw(
		c.Request.Context(),
		user.ID,
		req.Amount.Cents(),
		req.Method,
		req.PhoneNumber,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}

// Transactions handles the GET /api/transactions endpoint, listing the
// user's ledger newest first
func (h *WalletHandler) Transactions(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	txs, err := h.walletService.Transactions(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txs))
}

// Withdrawals handles the GET /api/withdrawals endpoint, listing the user's
// payout requests newest first
func (h *WalletHandler) Withdrawals(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	ws, err := h.walletService.Withdrawals(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalListResponse(ws))
}
