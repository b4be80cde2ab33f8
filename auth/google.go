package auth

import (
	"context"
	"net/http"
	"os"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	accountControllers "github.com/zhuruvl/MusicStore/controllers/account"
	"github.com/zhuruvl/MusicStore/logger"
	"github.com/zhuruvl/MusicStore/models"
)

var (
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// InitFirebase sets up the Firebase client used to verify Google ID tokens.
// Google login stays disabled when the environment is not configured.
func InitFirebase() error {
	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if projectID == "" || credFile == "" {
		logger.Log.Warn("Firebase not configured, Google login disabled")
		return nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credFile))
	if err != nil {
		return err
	}

	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		return err
	}

	logger.Log.Infow("Firebase initialized", "project_id", projectID)
	return nil
}

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
// POST /auth/google
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if firebaseAuth == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
			return
		}

		var req struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()

		// Verify Firebase token
		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		// Extract user info
		email, _ := token.Claims["email"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		// Fetch or create the local user
		var user models.User
		err = db.Where("id = ?", firebaseUserID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       firebaseUserID,
				Username: email,
				Email:    email,
				Provider: "google",
				Picture:  picture,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			logger.Log.Infow("Google user created", "username", user.Username)
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		jwtToken, err := accountControllers.IssueToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": jwtToken, "user": user})
	}
}
