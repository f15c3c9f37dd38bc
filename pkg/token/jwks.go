package token

import (
	"encoding/base64"
	"math/big"
)

type JWK struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWKS - публикуемый набор ключей проверки access токенов.
// Отдается по /.well-known/jwks.json, чтобы другие сервисы проверяли
// подпись, не обращаясь к этому сервису
func (c *Codec) JWKS() JWKS {
	n := base64.RawURLEncoding.EncodeToString(c.publicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(c.publicKey.E)).Bytes())

	return JWKS{
		Keys: []JWK{
			{Kty: "RSA", Alg: "RS256", Use: "sig", N: n, E: e},
		},
	}
}
