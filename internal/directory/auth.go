package directory

import (
	"context"
	"net/http"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	"github.com/eventdesk/eventdesk/internal/session"
)

// Login exchanges credentials for a bearer token at POST /auth/login and
// stores the token (and profile, when the upstream returns one) in the token
// store. Durable persistence of either is best-effort; a failed write leaves
// the session usable for the life of the process.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthSession, error) {
	body, contentType, err := jsonBody(model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return model.AuthSession{}, err
	}

	var auth model.AuthSession
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.loginPath,
		body:        body,
		contentType: contentType,
	}, &auth); err != nil {
		return model.AuthSession{}, err
	}

	if res := c.tokens.SetToken(ctx, auth.AccessToken); !res.Persisted {
		c.logger.WarnContext(ctx, "token not durably persisted", "error", res.Err)
	}
	if !auth.User.IsZero() {
		if res := c.tokens.SetProfile(ctx, auth.User); !res.Persisted {
			c.logger.WarnContext(ctx, "profile not durably persisted", "error", res.Err)
		}
	}

	return auth, nil
}

// Register submits a registration request. Note that the request goes to the
// configured register path, which currently defaults to the login path; see
// DefaultRegisterPath.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	body, contentType, err := jsonBody(req)
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        c.registerPath,
		body:        body,
		contentType: contentType,
	}, nil)
}

// Logout drops the local session. The upstream has no logout endpoint; the
// bearer token simply stops being sent.
func (c *Client) Logout(ctx context.Context) session.PersistResult {
	return c.tokens.Clear(ctx)
}
