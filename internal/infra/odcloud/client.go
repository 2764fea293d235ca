package odcloud

import (
	"apt_subscription_bot/internal/domain/announcement"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the ApplyHome APT subscription announcement detail endpoint.
	DefaultBaseURL = "https://api.odcloud.kr/api/ApplyhomeInfoDetailSvc/v1/getAPTLttotPblancDetail"

	// PageSize is the fixed number of records requested. Further pages are never fetched.
	PageSize = 100

	defaultTimeout = 30 * time.Second

	announceDateField = "RCRIT_PBLANC_DE"
)

var (
	ErrTransport        = fmt.Errorf("announcement request failed")
	ErrUnexpectedStatus = fmt.Errorf("announcement API returned unexpected status")
	ErrDecode           = fmt.Errorf("announcement response could not be decoded")
)

// Client fetches subscription announcements from the public data portal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient creates a client for baseURL. A nil httpClient gets a 30s timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchAnnouncements issues one GET filtered on the announcement date range of window.
func (c *Client) FetchAnnouncements(ctx context.Context, window announcement.Window, apiKey string) (*announcement.Set, error) {
	reqURL, err := c.buildURL(window, apiKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	log := c.logger.WithFields(logrus.Fields{
		"window_start": window.StartDate(),
		"window_end":   window.EndDate(),
	})
	log.Debug("Requesting announcements")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	set := &announcement.Set{}
	if err := json.Unmarshal(body, set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	log = log.WithFields(logrus.Fields{
		"total_count":   set.TotalCount,
		"current_count": set.CurrentCount,
		"records":       len(set.Data),
	})
	if set.TotalCount > PageSize {
		log.Warn("More announcements matched than one page holds; only the first page is used")
	} else {
		log.Info("Announcements fetched")
	}
	return set, nil
}

func (c *Client) buildURL(window announcement.Window, apiKey string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: parsing base URL: %v", ErrTransport, err)
	}

	query := u.Query()
	query.Set("page", "1")
	query.Set("perPage", fmt.Sprint(PageSize))
	query.Set("serviceKey", apiKey)
	query.Set("cond["+announceDateField+"::GTE]", window.StartDate())
	query.Set("cond["+announceDateField+"::LTE]", window.EndDate())
	u.RawQuery = query.Encode()

	return u.String(), nil
}
