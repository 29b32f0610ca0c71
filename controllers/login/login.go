package logincontroller

import (
	"context"
	"errors"
	"sync"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
)

// The three views of the authentication flow.
const (
	ViewLogin  = "LOGIN"
	ViewForgot = "FORGOT"
	ViewReset  = "RESET"
)

// genericLoginError deliberately hides whether the email or the password was
// wrong.
const genericLoginError = "Invalid email or password"

// API is the slice of the backend client the flow needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) (string, error)
}

// TokenSink receives the bearer token after a successful login.
type TokenSink interface {
	Set(token string) error
}

// State is a snapshot of the flow for the UI.
type State struct {
	View       string `json:"view"`
	ResetEmail string `json:"resetEmail"`
	Error      string `json:"error"`
	SuccessMsg string `json:"successMsg"`
}

// Controller drives the LOGIN → FORGOT → RESET flow. Back-navigation moves
// RESET→FORGOT and FORGOT→LOGIN without server calls.
type Controller struct {
	api     API
	session TokenSink
	onLogin func() // fires once a session begins; may be nil

	mu         sync.Mutex
	view       string
	resetEmail string
	errMsg     string
	successMsg string
}

func New(api API, session TokenSink, onLogin func()) *Controller {
	return &Controller{api: api, session: session, onLogin: onLogin, view: ViewLogin}
}

// State returns a copy of the flow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		View:       c.view,
		ResetEmail: c.resetEmail,
		Error:      c.errMsg,
		SuccessMsg: c.successMsg,
	}
}

// Login submits credentials. On success the token is stored and the session
// begins; on failure only a generic message is shown, the underlying error
// detail is discarded on purpose.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()

	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.mu.Lock()
		c.errMsg = genericLoginError
		c.mu.Unlock()
		return errors.New(genericLoginError)
	}

	if err := c.session.Set(token); err != nil {
		c.mu.Lock()
		c.errMsg = genericLoginError
		c.mu.Unlock()
		return err
	}

	if c.onLogin != nil {
		c.onLogin()
	}
	return nil
}

// RequestOTP asks the backend to email a reset code. Success moves the flow
// to RESET with a banner naming the email; failure shows the server's
// message and stays on FORGOT.
func (c *Controller) RequestOTP(ctx context.Context, email string) error {
	c.mu.Lock()
	c.errMsg = ""
	c.resetEmail = email
	c.mu.Unlock()

	if _, err := c.api.RequestPasswordReset(ctx, email); err != nil {
		c.mu.Lock()
		c.errMsg = serverMessage(err, "Failed to send OTP")
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.successMsg = "OTP sent to " + email
	c.view = ViewReset
	c.mu.Unlock()
	return nil
}

// ConfirmReset submits the OTP with the new password. Success returns to
// LOGIN with a banner and clears the reset-only fields; failure shows the
// server's message and stays on RESET.
func (c *Controller) ConfirmReset(ctx context.Context, otp, newPassword string) error {
	c.mu.Lock()
	c.errMsg = ""
	email := c.resetEmail
	c.mu.Unlock()

	if _, err := c.api.ConfirmPasswordReset(ctx, email, otp, newPassword); err != nil {
		c.mu.Lock()
		c.errMsg = serverMessage(err, "Failed to reset password")
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.successMsg = "Password reset successful! Please login."
	c.view = ViewLogin
	c.resetEmail = ""
	c.mu.Unlock()
	return nil
}

// Forgot moves LOGIN→FORGOT, clearing any banners.
func (c *Controller) Forgot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewForgot
	c.errMsg = ""
	c.successMsg = ""
}

// Back steps RESET→FORGOT or FORGOT→LOGIN. No server call is made.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.view {
	case ViewReset:
		c.view = ViewForgot
	case ViewForgot:
		c.view = ViewLogin
	}
	c.errMsg = ""
	c.successMsg = ""
}

// serverMessage prefers the backend-supplied message, falling back to a
// generic text for transport failures.
func serverMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
