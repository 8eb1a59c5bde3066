package auth

// Claims es lo único que el core consume del proveedor de autenticación:
// un id de usuario estable y su email.
type Claims struct {
	UserID string
	Email  string
}
