package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
)

// Claims - полезная нагрузка токена, которую возвращает identity provider.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// DTO для запроса на валидацию.
type validateTokenRequest struct {
	Token string `json:"token"`
}

// Client - клиент для взаимодействия с внешним identity provider.
// Портал сам токены не выпускает и не проверяет.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient - конструктор клиента.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// ValidateToken отправляет токен identity provider-у и возвращает claims.
func (c *Client) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	reqBody, err := json.Marshal(validateTokenRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validation request: %w", err)
	}

	url := c.baseURL + "/api/v1/auth/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send validation request to auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 401 - это не внутренняя ошибка, а просто невалидный токен.
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("token is invalid or expired")
		}
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth service returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode validation response: %w", err)
	}

	return &claims, nil
}
