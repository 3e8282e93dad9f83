package feed

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paperfeed/paperlens/internal/paper"
)

// FetchOptions contains optional parameters for fetching papers
type FetchOptions struct {
	Date     string // YYYY-MM-DD, empty means the feed's latest day
	PageSize int
}

// DefaultFetchOptions returns default fetch options
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		PageSize: 100,
	}
}

// ListResponse mirrors one page of the /api/papers endpoint.
type ListResponse struct {
	Papers      []paper.Paper `json:"papers"`
	Page        int           `json:"page"`
	Limit       int           `json:"limit"`
	TotalPapers int           `json:"total_papers"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrev     bool          `json:"has_prev"`
	Date        string        `json:"date"`
}

// CountResponse mirrors the /api/papers/count endpoint.
type CountResponse struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}

// GetPapers fetches every paper for a day, walking the paginated endpoint.
func (c *Client) GetPapers(opts FetchOptions) (*paper.Snapshot, error) {
	if opts.PageSize == 0 {
		opts.PageSize = DefaultFetchOptions().PageSize
	}

	var all []paper.Paper
	var date string
	total := 0
	page := 1

	for {
		result, err := c.fetchPage(opts.Date, page, opts.PageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, result.Papers...)
		date = result.Date
		total = result.TotalPapers

		if !result.HasNext {
			break
		}
		page++
	}

	for i := range all {
		all[i].Normalize()
	}

	return &paper.Snapshot{
		Date:        date,
		TotalPapers: total,
		Papers:      all,
	}, nil
}

// GetCount returns how many papers the feed holds for a day.
func (c *Client) GetCount(date string) (int, error) {
	params := url.Values{}
	if date != "" {
		params.Set("date", date)
	}

	reqURL := fmt.Sprintf("%s/api/papers/count?%s", c.baseURL, params.Encode())
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API request failed: %d", resp.StatusCode)
	}

	var result CountResponse
	if err := decodeJSON(resp.Body, &result); err != nil {
		return 0, err
	}

	return result.Count, nil
}

// fetchPage fetches a single page of results
func (c *Client) fetchPage(date string, page, limit int) (*ListResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if date != "" {
		params.Set("date", date)
	}

	reqURL := fmt.Sprintf("%s/api/papers?%s", c.baseURL, params.Encode())
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed: %d", resp.StatusCode)
	}

	var result ListResponse
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
