package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wheelhouse/storefront/config"
	apperrors "github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/password"
	"github.com/wheelhouse/storefront/session"
	"github.com/wheelhouse/storefront/store/storetest"
)

// fakeIssuer returns a deterministic credential per identity.
type fakeIssuer struct{}

func (fakeIssuer) Issue(identity *models.SanitizedIdentity, shortLived bool) (string, error) {
	if shortLived {
		return "reset-token-" + identity.ID, nil
	}
	return "session-token-" + identity.ID, nil
}

// fakeNotifier records every send and can be made to fail.
type fakeNotifier struct {
	sends []sentMail
	err   error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (n *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sends = append(n.sends, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (n *fakeNotifier) last(t *testing.T) sentMail {
	t.Helper()
	if len(n.sends) == 0 {
		t.Fatal("no mail was sent")
	}
	return n.sends[len(n.sends)-1]
}

type testEnv struct {
	svc      *Service
	users    *storetest.Users
	otps     *storetest.Otps
	resets   *storetest.ResetTokens
	notifier *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    storetest.NewUsers(),
		otps:     storetest.NewOtps(),
		resets:   storetest.NewResetTokens(),
		notifier: &fakeNotifier{},
	}
	env.svc = NewService(Deps{
		Users:    env.users,
		Otps:     env.otps,
		Resets:   env.resets,
		Hasher:   password.NewBcryptHasher(password.WithCost(4)),
		Issuer:   fakeIssuer{},
		Notifier: env.notifier,
		Config: config.AuthConfig{
			OtpExpirationMs: 300000,
			OtpLength:       4,
			Origin:          "http://localhost:3000",
		},
		Logger: logger.NewDefault("test"),
	})
	return env
}

func (env *testEnv) signup(t *testing.T, name, email, pw string) *models.SanitizedIdentity {
	t.Helper()
	identity, _, err := env.svc.Signup(context.Background(), SignupInput{Name: name, Email: email, Password: pw})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	return identity
}

// otpFromMail pulls the plaintext code out of the notification body.
func otpFromMail(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, "<b>")
	end := strings.Index(body, "</b>")
	if start < 0 || end < 0 {
		t.Fatalf("mail body %q carries no code", body)
	}
	return body[start+len("<b>") : end]
}

func wantAppError(t *testing.T, err error, code apperrors.ErrorCode, status int) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s error, got nil", code)
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("want AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("error code = %s, want %s (err: %v)", appErr.Code, code, err)
	}
	if appErr.HTTPStatus != status {
		t.Fatalf("http status = %d, want %d (err: %v)", appErr.HTTPStatus, status, err)
	}
	return appErr
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	identity, token, err := env.svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if identity.Name != "Ada" || identity.Email != "ada@example.com" {
		t.Errorf("identity = %+v", identity)
	}
	if identity.IsVerified || identity.IsAdmin {
		t.Error("new accounts must start unverified and non-admin")
	}
	if token != "session-token-"+identity.ID {
		t.Errorf("token = %q", token)
	}

	stored, err := env.users.FindByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("stored user lookup error = %v", err)
	}
	if stored.Password == "pw" {
		t.Error("stored password must be hashed")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ada", "ada@example.com", "pw")

	_, _, err := env.svc.Signup(context.Background(), SignupInput{
		Name: "Imposter", Email: "ada@example.com", Password: "other",
	})
	appErr := wantAppError(t, err, apperrors.ErrCodeConflict, 400)
	if appErr.Message != "User already exists" {
		t.Errorf("message = %q", appErr.Message)
	}
	if env.users.Count() != 1 {
		t.Errorf("user count = %d after rejected signup, want 1", env.users.Count())
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")

	identity, token, err := env.svc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if identity.ID != created.ID {
		t.Errorf("identity.ID = %q, want %q", identity.ID, created.ID)
	}
	if token == "" {
		t.Error("Login() should issue a credential")
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ada", "ada@example.com", "pw")

	cases := []struct {
		name  string
		email string
		pw    string
	}{
		{"wrong password", "ada@example.com", "nope"},
		{"unknown email", "ghost@example.com", "pw"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.svc.Login(context.Background(), tc.email, tc.pw)
			appErr := wantAppError(t, err, apperrors.ErrCodeInvalidCredentials, 404)
			if appErr.Message != "Invalid Credentials" {
				t.Errorf("message = %q, want uniform failure text", appErr.Message)
			}
		})
	}
}

func TestCheckSession(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")

	fresh, err := env.svc.CheckSession(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("CheckSession() error = %v", err)
	}
	if fresh.Email != "ada@example.com" {
		t.Errorf("fresh.Email = %q", fresh.Email)
	}

	_, err = env.svc.CheckSession(context.Background(), "64f1b2a3c4d5e6f7a8b9c0d1")
	wantAppError(t, err, apperrors.ErrCodeUnauthenticated, 401)

	_, err = env.svc.CheckSession(context.Background(), "not-hex")
	wantAppError(t, err, apperrors.ErrCodeUnauthenticated, 401)
}

func TestResendOtpIssuesSingleLiveRecord(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	if err := env.svc.ResendOtp(context.Background(), created.ID); err != nil {
		t.Fatalf("ResendOtp() error = %v", err)
	}
	firstCode := otpFromMail(t, env.notifier.last(t).body)

	if err := env.svc.ResendOtp(context.Background(), created.ID); err != nil {
		t.Fatalf("second ResendOtp() error = %v", err)
	}
	secondCode := otpFromMail(t, env.notifier.last(t).body)
	if env.otps.CountByUser(oid) != 1 {
		t.Errorf("live otp records = %d, want 1", env.otps.CountByUser(oid))
	}

	// The superseded code no longer verifies (unless the fresh draw happened
	// to produce the same digits).
	if firstCode != secondCode {
		_, err := env.svc.VerifyOtp(context.Background(), created.ID, firstCode)
		if err == nil {
			t.Error("VerifyOtp() with superseded code should fail")
		}
	}
}

func TestResendOtpMailContract(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")

	if err := env.svc.ResendOtp(context.Background(), created.ID); err != nil {
		t.Fatalf("ResendOtp() error = %v", err)
	}
	mail := env.notifier.last(t)
	if mail.to != "ada@example.com" {
		t.Errorf("mail.to = %q", mail.to)
	}
	if mail.subject != "OTP Verification" {
		t.Errorf("mail.subject = %q", mail.subject)
	}
	code := otpFromMail(t, mail.body)
	if len(code) != 4 {
		t.Errorf("code = %q, want 4 digits", code)
	}
}

func TestResendOtpUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.ResendOtp(context.Background(), "64f1b2a3c4d5e6f7a8b9c0d1")
	appErr := wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
	if appErr.Message != "User not found" {
		t.Errorf("message = %q", appErr.Message)
	}

	err = env.svc.ResendOtp(context.Background(), "not-hex")
	wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
}

func TestResendOtpDeliveryFailureKeepsRecord(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	env.notifier.err = errors.New("smtp down")
	err := env.svc.ResendOtp(context.Background(), created.ID)
	wantAppError(t, err, apperrors.ErrCodeInternal, 500)

	// The challenge was persisted before delivery was attempted.
	if env.otps.CountByUser(oid) != 1 {
		t.Errorf("live otp records = %d, want 1 after delivery failure", env.otps.CountByUser(oid))
	}
}

func TestVerifyOtpLifecycle(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	if err := env.svc.ResendOtp(context.Background(), created.ID); err != nil {
		t.Fatalf("ResendOtp() error = %v", err)
	}
	code := otpFromMail(t, env.notifier.last(t).body)

	// A wrong code fails but keeps the record for retry.
	_, err := env.svc.VerifyOtp(context.Background(), created.ID, "0000"+code)
	appErr := wantAppError(t, err, apperrors.ErrCodeInvalid, 400)
	if appErr.Message != "OTP is invalid" {
		t.Errorf("message = %q", appErr.Message)
	}
	if env.otps.CountByUser(oid) != 1 {
		t.Error("a mismatch must keep the record")
	}

	// The right code verifies the account and consumes the record.
	identity, err := env.svc.VerifyOtp(context.Background(), created.ID, code)
	if err != nil {
		t.Fatalf("VerifyOtp() error = %v", err)
	}
	if !identity.IsVerified {
		t.Error("identity should be verified after a matching code")
	}
	if env.otps.CountByUser(oid) != 0 {
		t.Error("a match must consume the record")
	}

	// Replay fails: the record is gone.
	_, err = env.svc.VerifyOtp(context.Background(), created.ID, code)
	appErr = wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
	if appErr.Message != "OTP not found" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestVerifyOtpExpiredPurgesRecord(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	if err := env.svc.ResendOtp(context.Background(), created.ID); err != nil {
		t.Fatalf("ResendOtp() error = %v", err)
	}
	code := otpFromMail(t, env.notifier.last(t).body)

	env.svc.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	_, err := env.svc.VerifyOtp(context.Background(), created.ID, code)
	appErr := wantAppError(t, err, apperrors.ErrCodeExpired, 400)
	if appErr.Message != "OTP has expired" {
		t.Errorf("message = %q", appErr.Message)
	}
	if env.otps.CountByUser(oid) != 0 {
		t.Error("an expired record must be purged")
	}
}

func TestVerifyOtpWithoutChallenge(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")

	_, err := env.svc.VerifyOtp(context.Background(), created.ID, "1234")
	appErr := wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
	if appErr.Message != "OTP not found" {
		t.Errorf("message = %q", appErr.Message)
	}
}

// resetTokenFromMail pulls the plaintext token out of the reset link.
func resetTokenFromMail(t *testing.T, body, userID string) string {
	t.Helper()
	marker := "/reset-password/" + userID + "/"
	idx := strings.Index(body, marker)
	if idx < 0 {
		t.Fatalf("mail body %q carries no reset link for %s", body, userID)
	}
	rest := body[idx+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		t.Fatalf("mail body %q has a malformed link", body)
	}
	return rest[:end]
}

func TestForgotPassword(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	sentTo, err := env.svc.ForgotPassword(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if sentTo != "ada@example.com" {
		t.Errorf("sentTo = %q", sentTo)
	}
	if env.resets.CountByUser(oid) != 1 {
		t.Errorf("live reset records = %d, want 1", env.resets.CountByUser(oid))
	}

	mail := env.notifier.last(t)
	if mail.subject != "Password Reset" {
		t.Errorf("mail.subject = %q", mail.subject)
	}
	token := resetTokenFromMail(t, mail.body, created.ID)
	if token == "" {
		t.Error("reset link carries no token")
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ForgotPassword(context.Background(), "ghost@example.com")
	appErr := wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
	if appErr.Message != "Email not found" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestResetPasswordLifecycle(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "old-pw")
	oid, _ := parseUserID(created.ID)

	if _, err := env.svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	token := resetTokenFromMail(t, env.notifier.last(t).body, created.ID)

	// A wrong token fails but keeps the record for retry.
	err := env.svc.ResetPassword(context.Background(), created.ID, "forged", "new-pw")
	appErr := wantAppError(t, err, apperrors.ErrCodeInvalid, 400)
	if appErr.Message != "Reset link is invalid" {
		t.Errorf("message = %q", appErr.Message)
	}
	if env.resets.CountByUser(oid) != 1 {
		t.Error("a mismatch must keep the record")
	}

	// The mailed token overwrites the password and consumes the record.
	if err := env.svc.ResetPassword(context.Background(), created.ID, token, "new-pw"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	if env.resets.CountByUser(oid) != 0 {
		t.Error("a consumed token must be purged")
	}

	if _, _, err := env.svc.Login(context.Background(), "ada@example.com", "old-pw"); err == nil {
		t.Error("the old password should no longer work")
	}
	if _, _, err := env.svc.Login(context.Background(), "ada@example.com", "new-pw"); err != nil {
		t.Errorf("the new password should work, got %v", err)
	}

	// Replay fails: the record is gone.
	err = env.svc.ResetPassword(context.Background(), created.ID, token, "again")
	wantAppError(t, err, apperrors.ErrCodeNotFound, 404)
}

func TestResetPasswordExpiredPurgesRecord(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	if _, err := env.svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	token := resetTokenFromMail(t, env.notifier.last(t).body, created.ID)

	env.svc.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	err := env.svc.ResetPassword(context.Background(), created.ID, token, "new-pw")
	appErr := wantAppError(t, err, apperrors.ErrCodeExpired, 400)
	if appErr.Message != "Reset link has expired" {
		t.Errorf("message = %q", appErr.Message)
	}
	if env.resets.CountByUser(oid) != 0 {
		t.Error("an expired record must be purged")
	}
}

// The issued reset capability is a JWT far larger than bcrypt's 72-byte
// input limit, so this exercises the full flow with the real issuer rather
// than the short fake credentials used elsewhere.
func TestResetFlowWithSessionIssuer(t *testing.T) {
	env := newTestEnv(t)
	sessions, err := session.NewService(session.Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("session.NewService() error = %v", err)
	}
	env.svc.issuer = sessions

	created := env.signup(t, "Ada", "ada@example.com", "old-pw")

	sentTo, err := env.svc.ForgotPassword(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if sentTo != "ada@example.com" {
		t.Errorf("sentTo = %q", sentTo)
	}

	token := resetTokenFromMail(t, env.notifier.last(t).body, created.ID)
	if len(token) <= 72 {
		t.Fatalf("issued token is %d bytes; expected a JWT beyond bcrypt's input limit", len(token))
	}

	if err := env.svc.ResetPassword(context.Background(), created.ID, token, "new-pw"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	if _, _, err := env.svc.Login(context.Background(), "ada@example.com", "new-pw"); err != nil {
		t.Errorf("login with the new password error = %v", err)
	}

	// A tampered token of the same size still fails the digest comparison.
	forged := token[:len(token)-2] + "xx"
	if _, err := env.svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("second ForgotPassword() error = %v", err)
	}
	err = env.svc.ResetPassword(context.Background(), created.ID, forged, "again")
	wantAppError(t, err, apperrors.ErrCodeInvalid, 400)
}

func TestForgotPasswordReplacesPriorToken(t *testing.T) {
	env := newTestEnv(t)
	created := env.signup(t, "Ada", "ada@example.com", "pw")
	oid, _ := parseUserID(created.ID)

	if _, err := env.svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if _, err := env.svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("second ForgotPassword() error = %v", err)
	}
	if env.resets.CountByUser(oid) != 1 {
		t.Errorf("live reset records = %d, want 1", env.resets.CountByUser(oid))
	}
}
