package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/balloondhq/balloond-website/internal/core/auth"
	"github.com/balloondhq/balloond-website/internal/domain"
	mdw "github.com/balloondhq/balloond-website/internal/transport/http/middleware"
	"github.com/balloondhq/balloond-website/internal/transport/http/response"
)

// EZ is a thin wrapper over a router group for one-line action and CRUD
// registration.
type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// Binder selects how the request maps onto the action input.
type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none"
)

// AErr is an error carrying the HTTP status it should surface as. The
// wrapped error, if any, is logged server-side and never sent to the
// caller.
type AErr struct {
	Status int
	Msg    string
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Status: http.StatusNotFound, Msg: msg} }

// Internal hides err behind a generic message; err goes to the access
// log only.
func Internal(err error) error {
	return &AErr{Status: http.StatusInternalServerError, Msg: "internal error", Err: err}
}

// Action is a non-CRUD endpoint: I binds the input, O is the response
// body.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	MinRole domain.Role // zero value: no session required
	UseTx   bool
	Status  int // success status; default 200
	Handler func(c *gin.Context, tx *gorm.DB, in *I) (O, error)
}

// RegisterAction mounts a on the group with role gating, input binding,
// optional transaction wrapping, and uniform error mapping.
func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		if a.MinRole != "" {
			if claims := RequireRole(c, a.MinRole); claims == nil {
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			response.Error(c, http.StatusBadRequest, bindErr.Error())
			return
		}

		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := run(tx)
				out = o
				return e
			})
		} else {
			out, err = run(db.WithContext(c))
		}

		if err != nil {
			Fail(c, err)
			return
		}
		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// RequireRole resolves the session claims and writes 401/403 when the
// caller is anonymous or under-privileged. Returns nil after writing.
func RequireRole(c *gin.Context, min domain.Role) *auth.Claims {
	claims := mdw.ClaimsFrom(c)
	if claims == nil {
		response.Error(c, http.StatusUnauthorized, "missing or invalid token")
		return nil
	}
	if !claims.Role.Allows(min) {
		response.Error(c, http.StatusForbidden, "")
		return nil
	}
	return claims
}

// Fail maps err onto the response: AErr statuses pass through, anything
// else is a masked 500. Wrapped causes land in the access log.
func Fail(c *gin.Context, err error) {
	var ae *AErr
	if errors.As(err, &ae) {
		if ae.Err != nil {
			_ = c.Error(ae.Err)
		}
		response.Error(c, ae.Status, ae.Msg)
		return
	}
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, "internal error")
}
