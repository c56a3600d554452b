package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type IPaymentHandler interface {
	VerifyPayment(ctx *gin.Context)
}

type PaymentHandler struct {
	paymentUsecase usecase.IPaymentUsecase
}

func NewPaymentHandler(uc usecase.IPaymentUsecase) IPaymentHandler {
	return &PaymentHandler{paymentUsecase: uc}
}

// VerifyPayment handles POST /api/verify-payment. A missing transaction is
// 404, a reverted one 400; a mined transaction that merely fails the checks
// comes back 200 with verified=false.
func (h *PaymentHandler) VerifyPayment(ctx *gin.Context) {
	if h.paymentUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment verification is not configured"})
		return
	}
	var req dto.VerifyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TxHash == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "txHash is required"})
		return
	}

	res, err := h.paymentUsecase.VerifyPayment(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTransactionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"verified": false, "error": "Transaction not found"})
		case errors.Is(err, model.ErrTransactionFailed):
			ctx.JSON(http.StatusBadRequest, gin.H{"verified": false, "error": "Transaction failed"})
		default:
			logger.GetLogger().WithField("txHash", req.TxHash).WithField("error", err.Error()).Error("Payment verification failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
		}
		return
	}
	ctx.JSON(http.StatusOK, res)
}
