package handlers

import (
	"net/http"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/services"
	"railbook/internal/validations"

	"github.com/gin-gonic/gin"
)

func usageService(c *gin.Context) services.UsageService {
	return services.UsageService{
		Accounts:     repositories.AccountRepository{},
		Handlers:     repositories.HandlerRepository{},
		Records:      repositories.BookingRecordRepository{},
		RequestID:    middleware.GetRequestID(c),
		WindowDays:   intconfig.Current.AccountWindowDays,
		HandlerSince: intconfig.Current.HandlerStatsSince,
	}
}

func ListAccounts(c *gin.Context) {
	repo := repositories.AccountRepository{}
	accounts, err := repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "count": len(accounts)})
}

func GetAccount(c *gin.Context) {
	repo := repositories.AccountRepository{}
	a, err := repo.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateAccount adds a credential to the reservation pool. An optional
// createdAt lets imports carry the original timestamp; it is parsed strictly
// so bad legacy values surface as 422 instead of corrupting usage stats.
func CreateAccount(c *gin.Context) {
	var req validations.CreateAccountRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	a := models.Account{
		Username:     req.Username,
		Password:     req.Password,
		WalletAmount: req.WalletAmount,
		CreatedAt:    req.CreatedAt,
	}
	repo := repositories.AccountRepository{}
	if err := repo.Create(c.Request.Context(), &a); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func UpdateAccountWallet(c *gin.Context) {
	var req validations.UpdateWalletRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.AccountRepository{}
	if err := repo.UpdateWallet(c.Request.Context(), c.Param("username"), req.WalletAmount); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wallet updated", "walletAmount": req.WalletAmount})
}

func DeleteAccount(c *gin.Context) {
	repo := repositories.AccountRepository{}
	if err := repo.Delete(c.Request.Context(), c.Param("username")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// AccountUsage reports per-account booking counts over the trailing window.
func AccountUsage(c *gin.Context) {
	svc := usageService(c)
	stats, err := svc.AccountStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windowDays": svc.WindowDays, "usage": stats})
}
