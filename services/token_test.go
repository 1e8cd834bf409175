package services

import (
	"os"
	"testing"

	"main/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", claims["user_id"])
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("iss = %v, want %s", claims["iss"], TokenIssuer)
	}
	if _, exists := claims["type"]; exists {
		t.Error("access token must not carry a type claim")
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	token, err := GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["type"] != "refresh" {
		t.Errorf("type = %v, want refresh", claims["type"])
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
