package controllers

import (
	"crypto/rand"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"chakula/internal/config"
	"chakula/internal/mailer"
)

var (
	mail          mailer.Sender
	verifyCodeTTL = 10 * time.Minute
	resetTokenTTL = time.Hour
)

// Setup hands the controllers their collaborators: the notification sender
// and the code/token lifetimes. Called once from main (and from tests with a
// recording sender).
func Setup(cfg *config.Config, sender mailer.Sender) {
	mail = sender
	verifyCodeTTL = cfg.VerifyCodeTTL
	resetTokenTTL = cfg.ResetTokenTTL
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// generateCode draws a 6-digit numeric code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}
