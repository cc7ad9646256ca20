// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"campus-teams/logger"
	"campus-teams/services"
)

func init() {
	// Make the roll-number contract available as a binding tag.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rollnumber", func(fl validator.FieldLevel) bool {
			return services.ValidRollNumber(fl.Field().String())
		})
	}
}

// StudentLoginRequest is the identity payload for roll-number login.
type StudentLoginRequest struct {
	Name       string `json:"name" binding:"required"`
	Branch     string `json:"branch" binding:"required"`
	Year       string `json:"year" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required,rollnumber"`
}

// AdminLoginRequest carries the shared moderation secret.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthController handles student and admin logins.
type AuthController struct {
	Students services.StudentServiceInterface

	// adminHash is the bcrypt hash of the shared moderation secret;
	// the plaintext is discarded at startup.
	adminHash []byte
}

// NewAuthController initializes a new instance of AuthController.
func NewAuthController(students services.StudentServiceInterface, adminHash []byte) *AuthController {
	return &AuthController{Students: students, adminHash: adminHash}
}

// ComparePasswords checks if the given password matches the hashed password.
func ComparePasswords(hashedPassword []byte, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword(hashedPassword, []byte(plainPassword)) == nil
}

// StudentLogin registers or returns the student keyed by roll number.
// Logging in twice with the same roll number yields the same record.
func (ac *AuthController) StudentLogin(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	student, err := ac.Students.Login(req.Name, req.Branch, req.Year, req.RollNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// AdminLogin compares the shared secret and marks the session as admin.
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if !ComparePasswords(ac.adminHash, req.Password) {
		logger.Warn.Println("AdminLogin: invalid password attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	session := sessions.Default(c)
	session.Set("isAdmin", true)
	if err := session.Save(); err != nil {
		logger.Error.Printf("AdminLogin: failed to save session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin login successful"})
}

// AdminLogout clears the admin session.
func (ac *AuthController) AdminLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("isAdmin")
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
