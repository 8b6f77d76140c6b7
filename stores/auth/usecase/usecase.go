package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/ethereum"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/base/validator"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/service/cache"
)

const (
	nonceTtl = 5 * time.Minute
	tokenTtl = 24 * time.Hour
)

type AuthUseCaseCfg struct {
	JwtSecret string
	// must contain one %s, replaced by the nonce
	SignatureMsg string
	// holds outstanding nonces, entries should expire after a few minutes
	NonceCache cache.Service
}

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	nonces       cache.Service
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		jwtSecret:    []byte(cfg.JwtSecret),
		signatureMsg: cfg.SignatureMsg,
		nonces:       cfg.NonceCache,
	}
}

func (im *impl) Challenge(ctx ctx.Ctx, address domain.Address) (*domain.SignInChallenge, error) {
	if !validator.IsWellFormedAddress(string(address)) {
		return nil, domain.ErrInvalidAddress
	}
	nonce := uuid.NewString()
	if err := im.nonces.Set(ctx, address.ToLowerStr(), nonce); err != nil {
		ctx.WithField("err", err).Error("nonces.Set failed")
		return nil, err
	}
	return &domain.SignInChallenge{
		Address: address,
		Nonce:   nonce,
		Message: im.message(nonce),
	}, nil
}

func (im *impl) SignIn(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsWellFormedAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	key := address.ToLowerStr()
	nonce := ""
	if err := im.nonces.Get(ctx, key, &nonce); err == cache.ErrNotFound {
		return "", xerrors.Errorf("no outstanding nonce: %w", domain.ErrInvalidSignature)
	} else if err != nil {
		ctx.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	// a nonce is good for one attempt
	if err := im.nonces.Del(ctx, key); err != nil {
		ctx.WithField("err", err).Error("nonces.Del failed")
		return "", err
	}

	ok, err := ethereum.ValidateMsgSignature([]byte(im.message(nonce)), signature, string(address))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("ethereum.ValidateMsgSignature failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrInvalidSignature)
	}
	if !ok {
		return "", domain.ErrInvalidSignature
	}

	return im.SignToken(ctx, address)
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: string(address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return claims.Address, nil
		}
	}

	return "", err
}

func (im *impl) message(nonce string) string {
	return fmt.Sprintf(im.signatureMsg, nonce)
}
