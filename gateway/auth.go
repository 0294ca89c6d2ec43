package gateway

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. This is the only
// unauthenticated call; the response carries nothing but the credential —
// role and subject are derived by decoding it.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.send(ctx, "auth.login", "POST", "/api/v1/auth/login", nil, "",
		loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
