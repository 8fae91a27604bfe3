package utils

import (
	"testing"
	"time"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testTokenDuration   = 1 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

// Helper function to create test user
func createTestUser(roles models.RoleSet) *models.User {
	return &models.User{
		ID:    42,
		Email: "test@example.com",
		Roles: roles,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})

	// Act
	token, err := GenerateToken(user, testSecret, testTokenDuration)

	// Assert
	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_DifferentRoles(t *testing.T) {
	// Test token generation for different role sets
	roleSets := []models.RoleSet{
		{models.RoleUser},
		{models.RoleUser, models.RoleAdmin},
		{models.RoleUser, models.RoleModerator},
	}

	for _, roles := range roleSets {
		t.Run(roles.Strings()[len(roles)-1], func(t *testing.T) {
			// Arrange
			user := createTestUser(roles)

			// Act
			token, err := GenerateToken(user, testSecret, testTokenDuration)

			// Assert
			require.NoError(t, err, "GenerateToken should work for all role sets")
			assert.NotEmpty(t, token)

			// Validate the token contains the correct roles
			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, roles, claims.Roles, "Token should contain correct roles")
		})
	}
}

func TestGenerateToken_ZeroDuration(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})

	// Act
	token, err := GenerateToken(user, testSecret, 0)

	// Assert
	require.NoError(t, err, "GenerateToken should handle zero duration")
	assert.NotEmpty(t, token)

	// Token should be immediately expired
	_, err = ValidateToken(token, testSecret)
	assert.Error(t, err, "Token with zero duration should be expired")
}

func TestValidateToken_Success(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Act
	claims, err := ValidateToken(token, testSecret)

	// Assert
	require.NoError(t, err, "ValidateToken should not return error for valid token")
	assert.NotNil(t, claims, "Claims should not be nil")
	assert.Equal(t, user.ID, claims.UserID, "UserID should match")
	assert.Equal(t, user.Email, claims.Email, "Email should match")
	assert.Equal(t, user.Roles, claims.Roles, "Roles should match")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Act
	claims, err := ValidateToken(token, testSecret)

	// Assert
	assert.Error(t, err, "ValidateToken should return error for expired token")
	assert.Nil(t, claims, "Claims should be nil for expired token")
}

func TestValidateToken_InvalidToken(t *testing.T) {
	// Arrange
	invalidTokens := []string{
		"",                   // Empty
		"invalid.token.here", // Invalid format
		"not-a-jwt-token",    // Plain text
		"a.b",                // Incomplete JWT
	}

	for _, invalidToken := range invalidTokens {
		t.Run(invalidToken, func(t *testing.T) {
			// Act
			claims, err := ValidateToken(invalidToken, testSecret)

			// Assert
			assert.Error(t, err, "ValidateToken should return error for invalid token")
			assert.Nil(t, claims, "Claims should be nil for invalid token")
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Act
	claims, err := ValidateToken(token, testWrongSecret)

	// Assert
	assert.Error(t, err, "ValidateToken should return error for wrong secret")
	assert.Nil(t, claims, "Claims should be nil when secret is wrong")
}

func TestValidateToken_TamperedToken(t *testing.T) {
	// Arrange
	user := createTestUser(models.RoleSet{models.RoleUser})
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Tamper with the token by modifying the signature
	tamperedToken := token[:len(token)-5] + "XXXXX"

	// Act
	claims, err := ValidateToken(tamperedToken, testSecret)

	// Assert
	assert.Error(t, err, "ValidateToken should return error for tampered token")
	assert.Nil(t, claims, "Claims should be nil for tampered token")
}

func TestClaims_IsAdmin(t *testing.T) {
	testCases := []struct {
		name  string
		roles models.RoleSet
		want  bool
	}{
		{"plain_user", models.RoleSet{models.RoleUser}, false},
		{"admin", models.RoleSet{models.RoleUser, models.RoleAdmin}, true},
		{"moderator", models.RoleSet{models.RoleUser, models.RoleModerator}, false},
		{"no_roles", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims := &Claims{Roles: tc.roles}
			assert.Equal(t, tc.want, claims.IsAdmin())
		})
	}
}

// Benchmark tests
func BenchmarkGenerateToken(b *testing.B) {
	user := createTestUser(models.RoleSet{models.RoleUser})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GenerateToken(user, testSecret, testTokenDuration)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	user := createTestUser(models.RoleSet{models.RoleUser})
	token, _ := GenerateToken(user, testSecret, testTokenDuration)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(token, testSecret)
	}
}
