package usecase

import "context"

// FirebaseAuthClient abstracts the identity provider so usecases can be
// tested without network access.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
	SignInWithEmailPassword(ctx context.Context, email, password string) (idToken, refreshToken, uid string, err error)
	RefreshIDToken(ctx context.Context, refreshToken string) (idToken, newRefreshToken, uid string, err error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}
