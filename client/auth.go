package client

import "context"

// Login exchanges staff credentials for a bearer token. The token is NOT
// stored here; the login controller owns that step.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, "POST", "/auth/login", body, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RequestPasswordReset asks the backend to email an OTP code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, "POST", "/auth/forgot-password", body, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ConfirmPasswordReset submits the OTP and the new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) (string, error) {
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, "POST", "/auth/reset-password", body, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}
