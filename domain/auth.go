package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/warrantify/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

// SignInChallenge is the message a wallet signs to connect
type SignInChallenge struct {
	Address Address `json:"address"`
	Nonce   string  `json:"nonce"`
	Message string  `json:"message"`
}

type AuthUsecase interface {
	Challenge(ctx ctx.Ctx, address Address) (*SignInChallenge, error)
	SignIn(ctx ctx.Ctx, address Address, signature string) (string, error)
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
