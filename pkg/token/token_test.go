package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestManager_IssueThenVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, err := m.Issue("alice@example.com", "customer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want alice@example.com", claims.Subject)
	}
	if claims.Role != "customer" {
		t.Errorf("role = %q, want customer", claims.Role)
	}
}

func TestManager_DefaultTTL(t *testing.T) {
	m := NewManager("secret", 0)
	if m.TTL() != DefaultTTL {
		t.Fatalf("TTL = %v, want %v", m.TTL(), DefaultTTL)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "customer",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_RejectsWrongKey(t *testing.T) {
	issuer := NewManager("key-one", time.Hour)
	verifier := NewManager("key-two", time.Hour)

	signed, err := issuer.Issue("alice@example.com", "customer")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after key rotation, got %v", err)
	}
}

func TestManager_RejectsMissingSubject(t *testing.T) {
	m := NewManager("secret", time.Hour)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing sub claim, got %v", err)
	}
}

func TestManager_RejectsUnsignedAlg(t *testing.T) {
	m := NewManager("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
