package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// TestAPIError_Error tests the Error method implementation
func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		expected string
	}{
		{
			name:     "standard error",
			apiError: ErrBadRequest,
			expected: "Invalid request parameters",
		},
		{
			name:     "custom error",
			apiError: &APIError{HTTPStatus: 500, Code: "TEST", Message: "Test message"},
			expected: "Test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.apiError.Error())
		})
	}
}

// TestPredefinedErrors tests all predefined error constants
func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *APIError
		statusCode int
		code       string
	}{
		{"ErrBadRequest", ErrBadRequest, http.StatusBadRequest, "BAD_REQUEST"},
		{"ErrInvalidJSON", ErrInvalidJSON, http.StatusBadRequest, "INVALID_JSON"},
		{"ErrValidation", ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"ErrDuplicateResource", ErrDuplicateResource, http.StatusConflict, "DUPLICATE_RESOURCE"},
		{"ErrResourceNotFound", ErrResourceNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"ErrInternalServer", ErrInternalServer, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"ErrDatabase", ErrDatabase, http.StatusInternalServerError, "DATABASE_ERROR"},
		{"ErrUnauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"ErrForbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"ErrNoDraftConfig", ErrNoDraftConfig, http.StatusConflict, "NO_DRAFT_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.statusCode, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

// TestNewAPIError tests error derivation with a custom message
func TestNewAPIError(t *testing.T) {
	derived := NewAPIError(ErrValidation, "custom detail")
	assert.Equal(t, ErrValidation.HTTPStatus, derived.HTTPStatus)
	assert.Equal(t, ErrValidation.Code, derived.Code)
	assert.Equal(t, "custom detail", derived.Message)

	// The base error must stay untouched
	assert.Equal(t, "Validation failed", ErrValidation.Message)
}

// TestConstructorHelpers tests the convenience constructors
func TestConstructorHelpers(t *testing.T) {
	v := NewValidationError("bad field")
	assert.Equal(t, "VALIDATION_FAILED", v.Code)
	assert.Equal(t, "bad field", v.Message)

	nf := NewNotFoundError("site not found")
	assert.Equal(t, http.StatusNotFound, nf.HTTPStatus)
	assert.Equal(t, "site not found", nf.Message)

	f := NewForbiddenError("no access")
	assert.Equal(t, http.StatusForbidden, f.HTTPStatus)
}

// TestParseDBError tests driver error mapping
func TestParseDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected *APIError
	}{
		{"nil error", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrResourceNotFound},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateResource},
		{"postgres other error", &pgconn.PgError{Code: "42601"}, ErrDatabase},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, ErrDuplicateResource},
		{"mysql other error", &mysql.MySQLError{Number: 1045}, ErrDatabase},
		{"sqlite unique violation", errors.New("UNIQUE constraint failed: site_configs.business_id"), ErrDuplicateResource},
		{"generic error", errors.New("connection refused"), ErrDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDBError(tt.err))
		})
	}
}

// TestIsDuplicateKeyError tests duplicate detection across drivers
func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, IsDuplicateKeyError(nil))
	assert.False(t, IsDuplicateKeyError(errors.New("connection refused")))
	assert.True(t, IsDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsDuplicateKeyError(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsDuplicateKeyError(errors.New("UNIQUE constraint failed: businesses.slug")))
}
