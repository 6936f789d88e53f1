// Package password provides the one-way hashing primitive shared by
// passwords, OTP codes and password-reset tokens, plus numeric OTP
// generation.
//
// Verification of a wrong secret and of a correct secret run through the
// same bcrypt comparison path, so timing does not reveal which half of a
// credential check failed.
package password
