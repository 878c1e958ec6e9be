package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/auth"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
	"github.com/ledgerline-dev/ledgerline/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=30"`
	LastName  string `json:"last_name" binding:"max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Currency  string `json:"currency" binding:"omitempty,len=3"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

var (
	Domain = os.Getenv("DOMAIN")

	demoEmail = "demo@ledgerline.app"
)

func setTokenCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func userResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Currency:  user.Currency,
		IsDemo:    user.IsDemo,
	}
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		respondError(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		respondError(ctx, http.StatusBadRequest, "Email already exists")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		respondInternal(ctx)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		respondInternal(ctx)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = types.DefaultCurrency
	}

	newUser := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Currency:     strings.ToUpper(currency),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		respondInternal(ctx)
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		respondInternal(ctx)
		return
	}

	setTokenCookie(ctx, token, 60*60*24*7)

	respond(ctx, http.StatusCreated, "Account registered successfully!", gin.H{
		"user": userResponse(newUser),
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		respondError(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusBadRequest, "Invalid email or password")
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		respondInternal(ctx)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		respondInternal(ctx)
		return
	}

	setTokenCookie(ctx, token, 60*60*24*7)

	respond(ctx, http.StatusOK, "Logged in successfully!", gin.H{
		"user": userResponse(user),
	})
}

// DemoSignIn signs the caller into the shared read-mostly demo user,
// creating it on first use. Mutations are blocked by the demo guard.
func DemoSignIn(ctx *gin.Context) {
	var user models.User

	err := db.DB.Where("email = ?", demoEmail).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			FirstName:    "Demo",
			LastName:     "User",
			Email:        demoEmail,
			PasswordHash: "-",
			Currency:     types.DefaultCurrency,
			IsDemo:       true,
		}

		if err := db.DB.Create(&user).Error; err != nil {
			log.Printf("Failed to create demo user: %v", err)
			respondInternal(ctx)
			return
		}
	} else if err != nil {
		log.Printf("Database error when fetching demo user: %v", err)
		respondInternal(ctx)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		respondInternal(ctx)
		return
	}

	setTokenCookie(ctx, token, 60*60*24)

	respond(ctx, http.StatusOK, "Signed in to the demo account!", gin.H{
		"user": userResponse(user),
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	respond(ctx, http.StatusOK, "User fetched successfully!", gin.H{
		"user": types.UserResponse{
			ID:        currentUser.ID,
			FirstName: currentUser.FirstName,
			LastName:  currentUser.LastName,
			Email:     currentUser.Email,
			Currency:  currentUser.Currency,
			IsDemo:    currentUser.IsDemo,
		},
	})
}

func Logout(ctx *gin.Context) {
	setTokenCookie(ctx, "", -1)

	respond(ctx, http.StatusOK, "Logged out successfully", nil)
}
