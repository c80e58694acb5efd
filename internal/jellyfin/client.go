package jellyfin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "CouchIndex"
	clientVersion = "0.1.0"
	deviceName    = "CouchIndex Desktop"
	deviceID      = "couchindex-1"
)

// Client wraps the generated Jellyfin API client with the calls the library
// browser needs.
type Client struct {
	api       *jellyfin.APIClient
	token     string
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

func authHeader() string {
	return fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		clientName, deviceName, deviceID, clientVersion)
}

func NewClient(serverURL string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization", authHeader())

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		serverURL: serverURL,
	}
}

// Authenticate logs in with a password and keeps the access token for
// subsequent requests.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	body := *jellyfin.NewAuthenticateUserByName()
	body.SetUsername(username)
	body.SetPw(password)

	result, resp, err := c.api.UserAPI.AuthenticateUserByName(ctx).AuthenticateUserByName(body).Execute()
	if err != nil {
		return fmt.Errorf("auth failed: %w (status: %s)", err, respStatus(resp))
	}
	user := result.GetUser()
	userID := ""
	if user.Id != nil {
		userID = *user.Id
	}
	c.SetToken(result.GetAccessToken(), userID)
	return nil
}

// SetToken restores a session saved in the config.
func (c *Client) SetToken(token, userID string) {
	c.token = token
	c.userID = userID
	c.api.GetConfig().AddDefaultHeader("X-Emby-Token", c.token)
}

func (c *Client) Token() string     { return c.token }
func (c *Client) UserID() string    { return c.userID }
func (c *Client) ServerURL() string { return c.serverURL }

func respStatus(resp *http.Response) string {
	if resp == nil {
		return "no response"
	}
	return resp.Status
}
