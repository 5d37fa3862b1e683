package client

import (
	"context"
	"net/http"
	"net/url"

	"personal-site/domain"
)

type statusUpdate struct {
	Status string `json:"status"`
}

// Tasks lists the tasks scheduled for date (YYYY-MM-DD).
func (c *Client) Tasks(ctx context.Context, date string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := c.do(ctx, http.MethodGet, "/tasks"+escape(date), nil, nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var created domain.Task
	err := c.do(ctx, http.MethodPost, "/tasks", nil, task, &created)
	return created, err
}

func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, http.MethodPut, "/tasks"+escape(id), nil, statusUpdate{Status: status}, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks"+escape(id), nil, nil, nil)
}

// Videos forwards the watch-later filters as query parameters; empty
// fields are left out.
func (c *Client) Videos(ctx context.Context, q domain.VideoQuery) ([]domain.Video, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var videos []domain.Video
	err := c.do(ctx, http.MethodGet, "/videos", params, nil, &videos)
	return videos, err
}

func (c *Client) CreateVideo(ctx context.Context, video domain.Video) error {
	return c.do(ctx, http.MethodPost, "/videos", nil, video, nil)
}

func (c *Client) UpdateVideoStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, http.MethodPut, "/videos"+escape(id), nil, statusUpdate{Status: status}, nil)
}

func (c *Client) Quotes(ctx context.Context) ([]domain.Quote, error) {
	var quotes []domain.Quote
	err := c.do(ctx, http.MethodGet, "/quotes", nil, nil, &quotes)
	return quotes, err
}

func (c *Client) CreateQuote(ctx context.Context, q domain.Quote) error {
	return c.do(ctx, http.MethodPost, "/quotes", nil, q, nil)
}

func (c *Client) UpdateQuote(ctx context.Context, id string, q domain.Quote) error {
	q.ID = ""
	return c.do(ctx, http.MethodPut, "/quotes"+escape(id), nil, q, nil)
}

func (c *Client) DeleteQuote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/quotes"+escape(id), nil, nil, nil)
}

func (c *Client) Blogs(ctx context.Context) ([]domain.BlogLink, error) {
	var blogs []domain.BlogLink
	err := c.do(ctx, http.MethodGet, "/blogs", nil, nil, &blogs)
	return blogs, err
}

func (c *Client) CreateBlog(ctx context.Context, b domain.BlogLink) (domain.BlogLink, error) {
	var created domain.BlogLink
	err := c.do(ctx, http.MethodPost, "/blogs/add", nil, b, &created)
	return created, err
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blogs"+escape(id), nil, nil, nil)
}
