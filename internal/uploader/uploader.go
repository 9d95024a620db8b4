package uploader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Upload publishes the video and returns its URL. Quota and network
// errors are surfaced as-is, authorization failures as ErrAuthExpired.
func (u *implUploader) Upload(ctx context.Context, req Request) (*Result, error) {
	if _, err := os.Stat(req.VideoPath); err != nil {
		return nil, fmt.Errorf("video file not found: %s", req.VideoPath)
	}

	oauthCfg, err := u.oauthConfig()
	if err != nil {
		return nil, err
	}

	source, err := u.tokenSource(ctx, oauthCfg)
	if err != nil {
		return nil, err
	}

	service, err := youtube.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("create youtube client: %w", err)
	}

	privacy := req.Privacy
	if privacy == "" {
		privacy = u.cfg.YouTube.Privacy
	}
	categoryID := req.CategoryID
	if categoryID == "" {
		categoryID = u.cfg.YouTube.CategoryID
	}

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			CategoryId:  categoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           privacy,
			SelfDeclaredMadeForKids: false,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}

	file, err := os.Open(req.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	defer file.Close()

	u.logger.Info(ctx, "Uploading %s (privacy=%s)", req.VideoPath, privacy)

	call := service.Videos.Insert([]string{"snippet", "status"}, video).
		NotifySubscribers(false).
		Media(file)

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	result := &Result{
		VideoID: response.Id,
		URL:     "https://www.youtube.com/watch?v=" + response.Id,
	}

	u.logger.Info(ctx, "Upload completed: %s", result.URL)
	return result, nil
}

// Authorize runs the one-time interactive login flow and persists the
// token for later unattended use.
func (u *implUploader) Authorize(ctx context.Context) error {
	oauthCfg, err := u.oauthConfig()
	if err != nil {
		return err
	}

	token, err := u.interactiveLogin(ctx, oauthCfg)
	if err != nil {
		return err
	}

	if err := u.tokens.Save(token); err != nil {
		return err
	}

	u.logger.Info(ctx, "Upload token saved")
	return nil
}

// tokenSource loads the persisted token, refreshing and re-saving it
// when the provider rotates it. A missing token starts the interactive
// flow only when the uploader is interactive.
func (u *implUploader) tokenSource(ctx context.Context, oauthCfg *oauth2.Config) (oauth2.TokenSource, error) {
	if !u.tokens.Present() {
		if !u.interactive {
			return nil, ErrNoCredential
		}
		token, err := u.interactiveLogin(ctx, oauthCfg)
		if err != nil {
			return nil, err
		}
		if err := u.tokens.Save(token); err != nil {
			return nil, err
		}
		return oauthCfg.TokenSource(ctx, token), nil
	}

	token, err := u.tokens.Load()
	if err != nil {
		return nil, err
	}

	source := oauthCfg.TokenSource(ctx, token)
	refreshed, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExpired, err)
	}
	if refreshed.AccessToken != token.AccessToken {
		if err := u.tokens.Save(refreshed); err != nil {
			u.logger.Warn(ctx, "Failed to persist refreshed token: %v", err)
		}
	}

	return source, nil
}

func (u *implUploader) oauthConfig() (*oauth2.Config, error) {
	path := u.cfg.ResolvePath(u.cfg.YouTube.ClientSecrets)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client secrets %s: %w", path, err)
	}

	oauthCfg, err := google.ConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}
	return oauthCfg, nil
}

// interactiveLogin prints the consent URL and exchanges the pasted
// authorization code. Works over SSH, no local browser needed.
func (u *implUploader) interactiveLogin(ctx context.Context, oauthCfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	fmt.Fprintf(u.stdout, "Open the following URL in a browser and authorize the upload:\n\n%s\n\n", authURL)
	fmt.Fprint(u.stdout, "Paste the authorization code: ")

	reader := bufio.NewReader(u.stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}

	code := strings.TrimSpace(line)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

// classifyAPIError distinguishes authorization failures from quota and
// network errors so the operator knows to re-authenticate.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 401 || apiErr.Code == 403 {
			return fmt.Errorf("%w: %v", ErrAuthExpired, err)
		}
	}
	return fmt.Errorf("youtube upload: %w", err)
}
