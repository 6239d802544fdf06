package gdrive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// IDrive is the interface for the Drive photo archive client.
type IDrive interface {
	// UploadPhoto uploads an item photo and returns its Drive metadata.
	UploadPhoto(ctx context.Context, req UploadPhotoRequest) (*Photo, error)
}

// Client wraps the Google Drive API service for archiving item photos.
type Client struct {
	service *drive.Service
}

// NewClientFromCredentialsFile creates a Drive client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Drive client from raw credentials JSON bytes.
// Service Account credentials are tried first, then OAuth2 installed-app
// credentials combined with a token.json on disk.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, drive.DriveFileScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := drive.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create drive service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{drive.DriveFileScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create drive service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Drive client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UploadPhoto uploads an item photo and returns its Drive metadata.
func (c *Client) UploadPhoto(ctx context.Context, req UploadPhotoRequest) (*Photo, error) {
	meta := &drive.File{
		Name:     req.Name,
		MimeType: req.MIMEType,
	}
	if req.FolderID != "" {
		meta.Parents = []string{req.FolderID}
	}

	created, err := c.service.Files.Create(meta).
		Media(bytes.NewReader(req.Data)).
		Fields("id, name, webViewLink").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	return &Photo{
		ID:          created.Id,
		Name:        created.Name,
		WebViewLink: created.WebViewLink,
	}, nil
}
