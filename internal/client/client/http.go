package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/filex"
	"github.com/aivantu/aivantu/internal/logging"
)

// maxResponseSize caps JSON bodies read into memory. Downloads are streamed
// and not subject to it.
const maxResponseSize = 10 << 20

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client over the backend's REST endpoints.
type HTTPClient struct {
	baseURL *url.URL
	hc      *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client, e.g. with an
// httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a client for the backend at baseURL. timeout bounds
// each whole request including the body; zero means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q: want http(s)://host[:port]", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""

	c := &HTTPClient{
		baseURL: u,
		hc:      &http.Client{Timeout: timeout},
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) BaseURL() string { return c.baseURL.String() }

// SetToken sets the bearer token sent with every request; "" disables it.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ResolveURL makes a link taken from a response absolute. Relative links
// such as "outputs/video_1.mp4" resolve against the base URL.
func (c *HTTPClient) ResolveURL(ref string) (string, error) {
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", ref, err)
	}
	if r.IsAbs() {
		return r.String(), nil
	}
	base := *c.baseURL
	base.Path += "/"
	return base.ResolveReference(r).String(), nil
}

// endpoint joins already-escaped path segments onto the base URL.
func (c *HTTPClient) endpoint(query url.Values, segments ...string) string {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *HTTPClient) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.endpoint(nil, "health"), nil, "")
	return err
}

func (c *HTTPClient) Templates(ctx context.Context) ([]models.Template, error) {
	data, err := c.do(ctx, http.MethodGet, c.endpoint(nil, "templates"), nil, "")
	if err != nil {
		return nil, err
	}
	items, err := decodeList[models.Template](data, "templates")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = items[i].WithDefaults()
	}
	return items, nil
}

func (c *HTTPClient) Voices(ctx context.Context) ([]models.VoiceOption, error) {
	data, err := c.do(ctx, http.MethodGet, c.endpoint(nil, "voices"), nil, "")
	if err != nil {
		return nil, err
	}
	items, err := decodeList[models.VoiceOption](data, "voices")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = items[i].WithDefaults()
	}
	return items, nil
}

func (c *HTTPClient) Gallery(ctx context.Context, email string) ([]models.Video, error) {
	var q url.Values
	if email != "" {
		q = url.Values{models.FieldUserEmail: {email}}
	}
	data, err := c.do(ctx, http.MethodGet, c.endpoint(q, "gallery"), nil, "")
	if err != nil {
		return nil, err
	}
	items, err := decodeList[models.Video](data, "videos", "gallery")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = items[i].WithDefaults()
	}
	return items, nil
}

func (c *HTTPClient) Outputs(ctx context.Context) ([]models.Video, error) {
	data, err := c.do(ctx, http.MethodGet, c.endpoint(nil, "outputs"), nil, "")
	if err != nil {
		return nil, err
	}
	return decodeOutputs(data)
}

// GetProfile returns the stored profile as the backend sent it. Display
// defaults are left to the caller so a later save does not persist them.
func (c *HTTPClient) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, c.endpoint(nil, "profile", url.PathEscape(email)), nil, "")
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := decodeObject(data, &p); err != nil {
		return nil, err
	}
	if p.Email == "" {
		p.Email = email
	}
	return &p, nil
}

// SaveProfile posts the profile as a urlencoded form. The backend may echo
// the stored profile back; when it does not, p is returned as saved.
func (c *HTTPClient) SaveProfile(ctx context.Context, p models.Profile) (*models.Profile, error) {
	form := url.Values{}
	form.Set("email", p.Email)
	form.Set("name", p.Name)
	form.Set("country", p.Country)
	form.Set("photo", common.FirstNonEmpty(p.Photo, p.PhotoURL))

	data, err := c.do(ctx, http.MethodPost, c.endpoint(nil, "profile"),
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	saved := p
	var echo models.Profile
	if json.Unmarshal(data, &echo) == nil && echo.Email != "" {
		saved = echo
	}
	saved = saved.WithDefaults()
	return &saved, nil
}

func (c *HTTPClient) Upload(ctx context.Context, kind filex.Kind, path string) (*models.UploadResult, error) {
	form := newMultipartForm()
	form.Field("kind", string(kind))
	form.File("file", path)

	data, err := c.postMultipart(ctx, c.endpoint(nil, "upload"), form)
	if err != nil {
		return nil, err
	}
	var res models.UploadResult
	if err := decodeObject(data, &res); err != nil {
		return nil, err
	}
	if res.Kind == "" {
		res.Kind = string(kind)
	}
	res = res.WithDefaults()
	return &res, nil
}

func (c *HTTPClient) GenerateVideo(ctx context.Context, req models.GenerateRequest) (*models.RenderResult, error) {
	form := newMultipartForm()
	form.Field(models.FieldUserEmail, req.UserEmail)
	form.Field(models.FieldTitle, req.Title)
	form.Field(models.FieldScript, req.Script)
	form.Field(models.FieldTemplate, req.Template)
	form.Field(models.FieldQuality, req.Quality)
	form.Field(models.FieldLengthType, req.LengthType)
	form.Field(models.FieldLang, req.Lang)
	if req.BgMusic != "" {
		form.Field(models.FieldBgMusic, req.BgMusic)
	}
	for _, v := range req.VoiceTypes {
		form.Field(models.FieldVoiceType, v)
	}
	for _, p := range req.Characters {
		form.File(models.FieldCharacters, p)
	}
	for _, p := range req.CharacterVoiceFiles {
		form.File(models.FieldCharacterVoiceFiles, p)
	}
	if req.BgMusicFile != "" {
		form.File(models.FieldBgMusicFile, req.BgMusicFile)
	}

	data, err := c.postMultipart(ctx, c.endpoint(nil, "generate_video"), form)
	if err != nil {
		return nil, err
	}
	var res models.RenderResult
	if err := decodeObject(data, &res); err != nil {
		return nil, err
	}
	res = res.WithDefaults()
	return &res, nil
}

func (c *HTTPClient) Assistant(ctx context.Context, query, lang string) (*models.AssistantReply, error) {
	data, err := c.postJSON(ctx, c.endpoint(nil, "assistant"), models.AssistantRequest{Query: query, Lang: lang})
	if err != nil {
		return nil, err
	}
	var res models.AssistantReply
	if err := decodeObject(data, &res); err != nil {
		return nil, err
	}
	res = res.WithDefaults()
	return &res, nil
}

func (c *HTTPClient) PreviewVoice(ctx context.Context, text, lang string) (*models.VoicePreview, error) {
	form := newMultipartForm()
	form.Field("text", text)
	form.Field("lang", lang)

	data, err := c.postMultipart(ctx, c.endpoint(nil, "preview_voice"), form)
	if err != nil {
		return nil, err
	}
	var res models.VoicePreview
	if err := decodeObject(data, &res); err != nil {
		return nil, err
	}
	if res.AudioURL == "" {
		return nil, fmt.Errorf("%w: no audio_url in voice preview", ErrMalformedResponse)
	}
	return &res, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, provider models.Provider, req models.OrderRequest) (*models.PaymentOrder, error) {
	var segment string
	switch provider {
	case models.ProviderRazorpay:
		segment = "create_razorpay_order"
	case models.ProviderPaypal:
		segment = "create_paypal_order"
	default:
		return nil, fmt.Errorf("%w: unknown payment provider %q", common.ErrorInvalidInput, provider)
	}

	data, err := c.postJSON(ctx, c.endpoint(nil, segment), req)
	if err != nil {
		return nil, err
	}
	var res models.PaymentOrder
	if err := decodeObject(data, &res); err != nil {
		return nil, err
	}
	res.Provider = provider
	res = res.WithDefaults()
	if res.OrderID == "" {
		return nil, fmt.Errorf("%w: no order id in %s response", ErrMalformedResponse, provider)
	}
	return &res, nil
}

// Download streams the file at rawURL (absolute, or relative to the base
// URL) into w and returns the number of bytes written.
func (c *HTTPClient) Download(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	target, err := c.ResolveURL(rawURL)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	c.decorate(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, &StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
	}

	dst := &writeTracker{w: w}
	n, err := io.Copy(dst, resp.Body)
	c.log.Debug(ctx, "download", "url", target, "bytes", n, "duration", time.Since(start))
	switch {
	case dst.err != nil:
		return n, fmt.Errorf("write download: %w", dst.err)
	case err != nil:
		return n, mapError(err)
	}
	return n, nil
}

// writeTracker remembers the first error of the destination so local write
// failures are not reported as transport errors.
type writeTracker struct {
	w   io.Writer
	err error
}

func (t *writeTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

func (c *HTTPClient) postJSON(ctx context.Context, target string, in any) ([]byte, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, target, bytes.NewReader(b), "application/json")
}

func (c *HTTPClient) postMultipart(ctx context.Context, target string, form *multipartForm) ([]byte, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, target, body, contentType)
}

func (c *HTTPClient) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", common.AppName+"-cli")
	if token := c.bearer(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
}

// do performs one request and returns the body of a 200 response.
func (c *HTTPClient) do(ctx context.Context, method, target string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.decorate(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", req.URL.Path, "error", err)
		return nil, mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	c.log.Debug(ctx, "request", "method", method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", time.Since(start))
	if err != nil {
		return nil, mapError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
