package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"max=30"`
	LastName  string `json:"last_name" binding:"max=30"`
	Currency  string `json:"currency" binding:"omitempty,len=3"`
}

func FetchUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user models.User

	if err := db.DB.First(&user, "id = ?", currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user %s: %v", currentUser.ID, err)
		respondInternal(ctx)
		return
	}

	respond(ctx, http.StatusOK, "User profile fetched successfully!", userResponse(user))
}

func UpdateUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user models.User

	if err := db.DB.First(&user, "id = ?", currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user %s: %v", currentUser.ID, err)
		respondInternal(ctx)
		return
	}

	var req UpdateUserRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	updates := make(map[string]interface{})

	if req.FirstName != "" {
		updates["first_name"] = strings.TrimSpace(req.FirstName)
	}

	if req.LastName != "" {
		updates["last_name"] = strings.TrimSpace(req.LastName)
	}

	if req.Currency != "" {
		updates["currency"] = strings.ToUpper(req.Currency)
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user %s: %v", user.ID, err)
		respondInternal(ctx)
		return
	}

	if err := db.DB.First(&user, "id = ?", user.ID).Error; err != nil {
		log.Printf("Failed to refresh user %s: %v", user.ID, err)
		respondInternal(ctx)
		return
	}

	respond(ctx, http.StatusOK, "User profile updated successfully!", userResponse(user))
}

// DeleteUser removes the account after a password confirmation. Owned
// accounts, categories and transactions go with it via the cascade
// constraints.
func DeleteUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user models.User

	if err := db.DB.First(&user, "id = ?", currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user %s: %v", currentUser.ID, err)
		respondInternal(ctx)
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Password is required for account deletion")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(ctx, http.StatusBadRequest, "Incorrect password")
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		log.Printf("Failed to delete user %s: %v", user.ID, err)
		respondInternal(ctx)
		return
	}

	setTokenCookie(ctx, "", -1)

	respond(ctx, http.StatusOK, "Account deleted successfully", nil)
}
