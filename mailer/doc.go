// Package mailer delivers workflow notifications (OTP codes, password-reset
// links) to a user's registered email over SMTP.
//
// Delivery is synchronous from the workflow's point of view: a transport
// failure propagates back as an error so the operation can surface it.
package mailer
