package session

import "net/http"

// CookieName is the cookie that carries the session credential.
const CookieName = "token"

// cookie builds the base cookie honoring the production contract:
// HttpOnly always; Secure and SameSite=None in production, Lax otherwise.
func (s *Service) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
	}
}

// SetCookie writes the session credential as a cookie with the session TTL.
func (s *Service) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, s.cookie(token, int(s.cfg.SessionTTL.Seconds())))
}

// ClearCookie overwrites the session cookie with an immediately-expired
// empty value. Safe to call whether or not a session exists.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}
