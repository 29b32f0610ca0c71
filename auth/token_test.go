package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	token, err := IssueStaffToken("secret", "admin@quickmedics.ng")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateStaffToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@quickmedics.ng", claims["email"])
	assert.Equal(t, "staff", claims["role"])
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := IssueStaffToken("secret", "admin@quickmedics.ng")
	require.NoError(t, err)

	_, err = ValidateStaffToken("other-secret", token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateStaffToken("secret", "not-a-jwt")
	assert.Error(t, err)
}
