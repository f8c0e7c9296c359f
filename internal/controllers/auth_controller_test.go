package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"chakula/internal/config"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

var registerBody = map[string]interface{}{
	"name":          "Boaz Test",
	"email":         "boaz@example.com",
	"password":      "Secure123!",
	"contact_phone": "0712345678",
	"role":          "member",
}

func stagedCode(t *testing.T, email string) string {
	t.Helper()
	var staged models.UnverifiedUser
	if err := config.DB.Where("email = ?", email).First(&staged).Error; err != nil {
		t.Fatalf("staged registration for %s not found: %v", email, err)
	}
	return staged.VerificationCode
}

func TestRegisterStagesUnverifiedUser(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerBody, "")
	mustStatus(t, w, http.StatusCreated)

	var staged models.UnverifiedUser
	if err := config.DB.Where("email = ?", "boaz@example.com").First(&staged).Error; err != nil {
		t.Fatalf("staged registration not found: %v", err)
	}
	if len(staged.VerificationCode) != 6 {
		t.Errorf("verification code = %q, want 6 digits", staged.VerificationCode)
	}
	if staged.Password == "Secure123!" {
		t.Error("plaintext password was persisted")
	}
	if !staged.CodeExpiry.After(time.Now()) {
		t.Error("code expiry is not in the future")
	}
	if staged.Role != models.RoleMember {
		t.Errorf("role = %q, want member", staged.Role)
	}
}

func TestRegisterConflictsWithVerifiedUser(t *testing.T) {
	r := setupTest(t)
	seedVerifiedUser(t, "Boaz Test", "boaz@example.com", "Secure123!", models.RoleMember)

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerBody, "")
	mustStatus(t, w, http.StatusConflict)
}

func TestReRegisterSupersedesStagedRecord(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)
	firstCode := stagedCode(t, "boaz@example.com")

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)

	var count int64
	config.DB.Model(&models.UnverifiedUser{}).Where("email = ?", "boaz@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("staged registrations = %d, want 1", count)
	}

	// The superseded code must no longer validate, even if it happens to
	// equal the fresh one the collision chance is one in 900000.
	secondCode := stagedCode(t, "boaz@example.com")
	if firstCode == secondCode {
		t.Skip("fresh code collided with the old one")
	}
	w := doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "boaz@example.com",
		"code":  firstCode,
	}, "")
	mustStatus(t, w, http.StatusNotFound)
}

func TestVerifyEmailCreatesVerifiedUser(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)
	code := stagedCode(t, "boaz@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "boaz@example.com",
		"code":  code,
	}, "")
	mustStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	if body["token"] == nil || body["token"] == "" {
		t.Error("no session token in verify response")
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("no user object in verify response: %v", body)
	}
	if user["email"] != "boaz@example.com" {
		t.Errorf("user.email = %v", user["email"])
	}
	if user["email_verified"] != true {
		t.Errorf("user.email_verified = %v, want true", user["email_verified"])
	}

	var verified models.User
	if err := config.DB.Where("email = ?", "boaz@example.com").First(&verified).Error; err != nil {
		t.Fatalf("verified user not found: %v", err)
	}
	if !verified.EmailVerified {
		t.Error("verified user row has email_verified = false")
	}

	var count int64
	config.DB.Model(&models.UnverifiedUser{}).Where("email = ?", "boaz@example.com").Count(&count)
	if count != 0 {
		t.Errorf("staged registrations remaining = %d, want 0", count)
	}
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)
	code := stagedCode(t, "boaz@example.com")

	config.DB.Model(&models.UnverifiedUser{}).
		Where("email = ?", "boaz@example.com").
		Update("code_expiry", time.Now().Add(-time.Minute))

	w := doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "boaz@example.com",
		"code":  code,
	}, "")
	mustStatus(t, w, http.StatusBadRequest)

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "boaz@example.com").Count(&count)
	if count != 0 {
		t.Errorf("verified users = %d, want 0 after expired code", count)
	}
}

func TestVerifyEmailWrongCode(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "boaz@example.com",
		"code":  "000000",
	}, "")
	if w.Code != http.StatusNotFound {
		// One-in-900000 chance the random code really is 000000; the draw
		// starts at 100000 so it cannot be.
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestLoginBeforeVerificationFails(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "boaz@example.com",
		"password": "Secure123!",
	}, "")
	mustStatus(t, w, http.StatusNotFound)
}

func TestLoginAfterVerification(t *testing.T) {
	r := setupTest(t)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)
	code := stagedCode(t, "boaz@example.com")
	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "boaz@example.com",
		"code":  code,
	}, ""), http.StatusOK)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "boaz@example.com",
		"password": "Secure123!",
	}, "")
	mustStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["token"] == nil || body["token"] == "" {
		t.Error("no token in login response")
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "boaz@example.com",
		"password": "wrong-password",
	}, "")
	mustStatus(t, w, http.StatusUnauthorized)
}

func TestRequestPasswordResetIsEnumerationResistant(t *testing.T) {
	r := setupTest(t)
	seedVerifiedUser(t, "Boaz Test", "boaz@example.com", "Secure123!", models.RoleMember)

	known := doJSON(t, r, http.MethodPost, "/auth/request-reset", map[string]interface{}{
		"email": "boaz@example.com",
	}, "")
	unknown := doJSON(t, r, http.MethodPost, "/auth/request-reset", map[string]interface{}{
		"email": "nobody@example.com",
	}, "")

	mustStatus(t, known, http.StatusOK)
	mustStatus(t, unknown, http.StatusOK)
	if known.Body.String() != unknown.Body.String() {
		t.Errorf("responses differ: %s vs %s", known.Body.String(), unknown.Body.String())
	}

	var user models.User
	config.DB.Where("email = ?", "boaz@example.com").First(&user)
	if user.ResetToken == nil || *user.ResetToken == "" {
		t.Error("no reset token persisted for known email")
	}
	if user.ResetTokenExpiry == nil || !user.ResetTokenExpiry.After(time.Now()) {
		t.Error("reset token expiry missing or in the past")
	}
}

func TestResetPasswordWithValidToken(t *testing.T) {
	r := setupTest(t)
	seedVerifiedUser(t, "Boaz Test", "boaz@example.com", "Secure123!", models.RoleMember)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/request-reset", map[string]interface{}{
		"email": "boaz@example.com",
	}, ""), http.StatusOK)

	var user models.User
	config.DB.Where("email = ?", "boaz@example.com").First(&user)
	token := *user.ResetToken

	w := doJSON(t, r, http.MethodPost, "/auth/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "Fresh456!",
	}, "")
	mustStatus(t, w, http.StatusOK)

	// old credential rejected, new one accepted
	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email": "boaz@example.com", "password": "Secure123!",
	}, ""), http.StatusUnauthorized)
	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email": "boaz@example.com", "password": "Fresh456!",
	}, ""), http.StatusOK)

	// token is single use
	config.DB.Where("email = ?", "boaz@example.com").First(&user)
	if user.ResetToken != nil {
		t.Error("reset token not cleared after use")
	}
	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "Again789!",
	}, ""), http.StatusBadRequest)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	r := setupTest(t)
	seedVerifiedUser(t, "Boaz Test", "boaz@example.com", "Secure123!", models.RoleMember)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/request-reset", map[string]interface{}{
		"email": "boaz@example.com",
	}, ""), http.StatusOK)

	var user models.User
	config.DB.Where("email = ?", "boaz@example.com").First(&user)
	token := *user.ResetToken
	config.DB.Model(&user).Update("reset_token_expiry", time.Now().Add(-time.Minute))

	w := doJSON(t, r, http.MethodPost, "/auth/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "Fresh456!",
	}, "")
	mustStatus(t, w, http.StatusBadRequest)
}

func TestResendCode(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/auth/resend-code", map[string]interface{}{
		"email": "boaz@example.com",
	}, "")
	mustStatus(t, w, http.StatusNotFound)

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/register", registerBody, ""), http.StatusCreated)
	first := stagedCode(t, "boaz@example.com")

	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/resend-code", map[string]interface{}{
		"email": "boaz@example.com",
	}, ""), http.StatusOK)

	var staged models.UnverifiedUser
	config.DB.Where("email = ?", "boaz@example.com").First(&staged)
	if staged.VerificationCode == first {
		t.Skip("fresh code collided with the old one")
	}
	if !staged.CodeExpiry.After(time.Now()) {
		t.Error("resend did not push the expiry forward")
	}
}

func TestAdminCreateUser(t *testing.T) {
	r := setupTest(t)
	admin := seedVerifiedUser(t, "Admin", "admin@example.com", "Secure123!", models.RoleAdmin)
	adminToken, err := middleware.GenerateToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}

	payload := map[string]interface{}{
		"name":          "Invited Driver",
		"email":         "driver@example.com",
		"password":      "Secure123!",
		"role":          "driver",
		"contact_phone": "0799999999",
	}

	// all fields are mandatory
	short := map[string]interface{}{"email": "driver@example.com"}
	mustStatus(t, doJSON(t, r, http.MethodPost, "/admin/create-user", short, adminToken), http.StatusBadRequest)

	w := doJSON(t, r, http.MethodPost, "/admin/create-user", payload, adminToken)
	mustStatus(t, w, http.StatusCreated)

	var staged models.UnverifiedUser
	if err := config.DB.Where("email = ?", "driver@example.com").First(&staged).Error; err != nil {
		t.Fatalf("staged invite not found: %v", err)
	}
	if staged.Role != models.RoleDriver {
		t.Errorf("staged role = %q, want driver", staged.Role)
	}

	// the invitee still verifies like everyone else
	mustStatus(t, doJSON(t, r, http.MethodPost, "/auth/verify-email", map[string]interface{}{
		"email": "driver@example.com",
		"code":  staged.VerificationCode,
	}, ""), http.StatusOK)
}

func TestAdminCreateUserForbiddenForMembers(t *testing.T) {
	r := setupTest(t)
	member := seedVerifiedUser(t, "Member", "member@example.com", "Secure123!", models.RoleMember)
	token, err := middleware.GenerateToken(member.ID, member.Email, member.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/admin/create-user", map[string]interface{}{
		"name":          "X",
		"email":         "x@example.com",
		"password":      "Secure123!",
		"role":          "member",
		"contact_phone": "0700000000",
	}, token)
	mustStatus(t, w, http.StatusForbidden)

	// The handler must never have run: no record staged, no mail queued.
	var count int64
	config.DB.Model(&models.UnverifiedUser{}).Where("email = ?", "x@example.com").Count(&count)
	if count != 0 {
		t.Errorf("staged registrations = %d, want 0 for a forbidden request", count)
	}
}
