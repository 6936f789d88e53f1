package mailer

import "fmt"

// Subjects for the workflow notifications.
const (
	SubjectOtp   = "OTP Verification"
	SubjectReset = "Password Reset"
)

// OtpBody formats the verification-code message. The plaintext code appears
// only here and in transit; stores only ever see its hash.
func OtpBody(code string) string {
	return fmt.Sprintf("Your OTP is <b>%s</b>. Do not share this with anyone.", code)
}

// ResetLinkBody formats the password-reset message. The link carries the
// unhashed token plus the user id, consumed by the storefront's reset page.
func ResetLinkBody(origin, userID, token string) string {
	return fmt.Sprintf(`<p>Reset your password using this link: <a href="%s/reset-password/%s/%s">Reset Password</a></p>`,
		origin, userID, token)
}
