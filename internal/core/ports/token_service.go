package ports

// TokenService issues and verifies the bearer tokens carried by protected
// requests. Issue performs no credential check: credential validation is an
// upstream concern and the issuer signs whatever identity the caller claims.
type TokenService interface {
	Issue(email string) (string, error)
	// Verify validates signature and expiry and returns the embedded email.
	Verify(token string) (string, error)
}
