package middleware

import (
	"context"
	"errors"
	"fmt"
	autherrors "go-leaveflow/internal/auth/errors"
	"go-leaveflow/internal/shared/apperror"
	"go-leaveflow/internal/shared/contextutil"
	"go-leaveflow/internal/shared/response"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenCookie = "access_token"

// Keys set on the gin context by AuthMiddleware.
const (
	KeyUserID     = "user_id"
	KeyEmployeeID = "employee_id"
	KeyRole       = "role"
	KeyIsStaff    = "is_staff"
	KeyDepartment = "department"
)

// Identity is the authorization state of a user as currently stored.
type Identity struct {
	Role       string
	IsStaff    bool
	Department string
}

// IdentityLookup loads the stored identity for a user id.
type IdentityLookup func(ctx context.Context, userID string) (Identity, error)

// AuthMiddleware verifies the access token. With a lookup, role, staff flag
// and department are re-read per request so a revocation applies before the
// token expires; without one the signed claims are used as issued.
func AuthMiddleware(secret string, lookup ...IdentityLookup) gin.HandlerFunc {
	var refresh IdentityLookup
	if len(lookup) > 0 {
		refresh = lookup[0]
	}

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		if userID == "" || employeeID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		isStaff, _ := claims["is_staff"].(bool)
		department, _ := claims["department"].(string)

		if refresh != nil {
			id, err := refresh(c.Request.Context(), userID)
			if err != nil {
				abortWith(c, autherrors.ErrInvalidToken)
				return
			}
			role, isStaff, department = id.Role, id.IsStaff, id.Department
		}

		c.Set(KeyUserID, userID)
		c.Set(KeyEmployeeID, employeeID)
		c.Set(KeyRole, role)
		c.Set(KeyIsStaff, isStaff)
		c.Set(KeyDepartment, department)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithEmployeeID(ctx, employeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireHRStaff gates the HR dashboard: staff flag, an employee profile and
// membership of the HR department are all required.
func RequireHRStaff(hrDepartment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(KeyIsStaff) {
			abortWith(c, autherrors.ErrNotStaff)
			return
		}
		if c.GetString(KeyEmployeeID) == "" {
			abortWith(c, autherrors.ErrNoEmployeeProfile)
			return
		}
		if c.GetString(KeyDepartment) != hrDepartment {
			abortWith(c, autherrors.ErrNotHRDepartment)
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
