package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chakula/internal/config"
	"chakula/internal/mailer"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

type registerInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ContactPhone string `json:"contact_phone"`
	Role         string `json:"role"`
}

// RegisterUser stages a new account pending email verification. A registrant
// re-registering the same email gets a fresh code; the earlier staged record
// is discarded.
func RegisterUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	err := config.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	// Any earlier staged registration for this email is abandoned.
	if err := config.DB.Where("email = ?", input.Email).Delete(&models.UnverifiedUser{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not discard previous registration: " + err.Error()})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	code, err := generateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate verification code"})
		return
	}

	phone := input.ContactPhone
	if phone == "" {
		phone = "0000000000"
	}

	staged := models.UnverifiedUser{
		Name:             input.Name,
		Email:            input.Email,
		ContactPhone:     phone,
		Password:         hashed,
		Role:             models.ParseRole(input.Role),
		VerificationCode: code,
		CodeExpiry:       time.Now().Add(verifyCodeTTL),
	}
	if err := config.DB.Create(&staged).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create registration: " + err.Error()})
		return
	}

	body := fmt.Sprintf(
		`<p>Welcome! Your verification code is:</p>
		<p><strong style="color:blue;">%s</strong></p>
		<p>It will expire in %d minutes.</p>`,
		code, int(verifyCodeTTL.Minutes()),
	)
	mailer.SendAsync(mail, input.Email, input.Name, "Email Verification Required", body)

	c.JSON(http.StatusCreated, gin.H{
		"message": "A verification email has been sent. Please check your inbox.",
	})
}

type verifyInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// VerifyEmail consumes a staged registration: the verified user row is
// created and the staged row deleted in one transaction.
func VerifyEmail(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staged models.UnverifiedUser
	err := config.DB.
		Where("email = ? AND verification_code = ?", input.Email, input.Code).
		First(&staged).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid verification code."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if time.Now().After(staged.CodeExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code has expired. Please request a new one."})
		return
	}

	user := models.User{
		Name:          staged.Name,
		Email:         staged.Email,
		EmailVerified: true,
		ContactPhone:  staged.ContactPhone,
		Password:      staged.Password,
		Role:          staged.Role,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		var pgErr *pq.Error
		if (errors.As(err, &pgErr) && pgErr.Code == "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}
	if err := tx.Delete(&staged).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not consume registration: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	mailer.SendAsync(mail, user.Email, user.Name,
		"Welcome to Chakula",
		fmt.Sprintf("<p>Hello %s, your account is verified and ready to use.</p>", user.Name))

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully.",
		"user":    user,
		"token":   token,
	})
}

// LoginUser checks the credential against the verified user record and
// issues the session token.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if !checkPassword(user.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
		"user":    user,
	})
}

// ResendCode reissues the verification code for a staged registration.
func ResendCode(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staged models.UnverifiedUser
	if err := config.DB.Where("email = ?", body.Email).First(&staged).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No unverified user found with this email."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	code, err := generateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate verification code"})
		return
	}

	updates := map[string]interface{}{
		"verification_code": code,
		"code_expiry":       time.Now().Add(verifyCodeTTL),
	}
	if err := config.DB.Model(&staged).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update verification code: " + err.Error()})
		return
	}

	html := fmt.Sprintf(
		`<p>Hello %s,</p>
		<p>Your new verification code is:</p>
		<h2 style="color:blue">%s</h2>
		<p>This code expires in %d minutes.</p>`,
		staged.Name, code, int(verifyCodeTTL.Minutes()),
	)
	mailer.SendAsync(mail, staged.Email, staged.Name, "Resend Email Verification", html)

	c.JSON(http.StatusOK, gin.H{"message": "Verification code resent successfully."})
}

// RequestPasswordReset responds identically whether or not the email is
// registered, so the endpoint cannot be used to enumerate accounts.
func RequestPasswordReset(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := config.DB.Where("email = ?", body.Email).First(&user).Error
	if err == nil {
		token, genErr := generateCode()
		if genErr == nil {
			expiry := time.Now().Add(resetTokenTTL)
			updates := map[string]interface{}{
				"reset_token":        token,
				"reset_token_expiry": expiry,
			}
			if dbErr := config.DB.Model(&user).Updates(updates).Error; dbErr != nil {
				logrus.WithError(dbErr).Error("could not persist reset token")
			} else {
				mailer.SendAsync(mail, user.Email, user.Name,
					"Password Reset Request",
					fmt.Sprintf(`Your reset code is <strong style="color:blue">%s</strong>.`, token))
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("password reset lookup failed")
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent."})
}

// ResetPassword replaces the credential and clears the reset token in the
// same update.
func ResetPassword(c *gin.Context) {
	var body struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("reset_token = ?", body.Token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		return
	}

	hashed, err := hashPassword(body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	updates := map[string]interface{}{
		"password":           hashed,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update password: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
}

type adminCreateInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
}

// AdminCreateUser stages an account on behalf of someone else. The invitee
// still has to verify their email before they can log in; the route is
// admin-gated.
func AdminCreateUser(c *gin.Context) {
	var input adminCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: " + err.Error()})
		return
	}

	var existing models.User
	err := config.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	if err := config.DB.Where("email = ?", input.Email).Delete(&models.UnverifiedUser{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not discard previous registration: " + err.Error()})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	code, err := generateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate verification code"})
		return
	}

	staged := models.UnverifiedUser{
		Name:             input.Name,
		Email:            input.Email,
		ContactPhone:     input.ContactPhone,
		Password:         hashed,
		Role:             models.ParseRole(input.Role),
		VerificationCode: code,
		CodeExpiry:       time.Now().Add(verifyCodeTTL),
	}
	if err := config.DB.Create(&staged).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create registration: " + err.Error()})
		return
	}

	body := fmt.Sprintf(
		`<p>An admin has created an account for you. Please verify your email to activate it.</p>
		<p><strong>Verification Code: %s</strong></p>
		<p><em>Note: this code expires in %d minutes.</em></p>`,
		code, int(verifyCodeTTL.Minutes()),
	)
	mailer.SendAsync(mail, input.Email, input.Name, "Your Account Has Been Created", body)

	c.JSON(http.StatusCreated, gin.H{"message": "User created and verification email sent."})
}
