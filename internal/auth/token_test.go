package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

func testClaims() domain.SessionClaims {
	return domain.SessionClaims{
		StaffID:      "staff-1",
		Name:         "Asha Verma",
		EmpID:        "ZES-001",
		Email:        "asha.verma@example.com",
		Role:         domain.RoleStaff,
		DepartmentID: "dept-cse",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	claims := testClaims()

	token, exp, err := tm.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	resolved, err := tm.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, claims, resolved)
}

func TestResolveFailuresAreIndistinguishable(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)

	valid, _, err := tm.Issue(testClaims())
	require.NoError(t, err)

	otherSecret := NewTokenManager("other-secret", 60)
	foreign, _, err := otherSecret.Issue(testClaims())
	require.NoError(t, err)

	expired := &TokenManager{secret: []byte("unit-secret"), ttl: -time.Minute}
	expiredToken, _, err := expired.Issue(testClaims())
	require.NoError(t, err)

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not.a.token",
		"truncated": valid[:len(valid)-10],
		"tampered":  valid[:len(valid)-2] + "xx",
		"foreign":   foreign,
		"expired":   expiredToken,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := tm.Resolve(token)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.Equal(t, domain.SessionClaims{}, claims)
		})
	}
}

func TestResolveRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)

	// alg=none token with an arbitrary payload
	noneToken := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJzdGFmZi0xIn0."
	_, err := tm.Resolve(noneToken)
	assert.ErrorIs(t, err, ErrNoSession)
}
