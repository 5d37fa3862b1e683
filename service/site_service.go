package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"time"

	"personal-site/domain"
)

const dateLayout = "2006-01-02"

// ErrInvalidEntry reports a task, video, quote or blog link that is missing
// required fields.
var ErrInvalidEntry = errors.New("invalid entry")

// SiteAPI is the REST backend holding the site's lists.
type SiteAPI interface {
	Tasks(ctx context.Context, date string) ([]domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
	DeleteTask(ctx context.Context, id string) error

	Videos(ctx context.Context, q domain.VideoQuery) ([]domain.Video, error)
	CreateVideo(ctx context.Context, video domain.Video) error
	UpdateVideoStatus(ctx context.Context, id, status string) error

	Quotes(ctx context.Context) ([]domain.Quote, error)
	CreateQuote(ctx context.Context, q domain.Quote) error
	UpdateQuote(ctx context.Context, id string, q domain.Quote) error
	DeleteQuote(ctx context.Context, id string) error

	Blogs(ctx context.Context) ([]domain.BlogLink, error)
	CreateBlog(ctx context.Context, b domain.BlogLink) (domain.BlogLink, error)
	DeleteBlog(ctx context.Context, id string) error
}

type SiteService struct {
	api     SiteAPI
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

func NewSiteService(api SiteAPI) *SiteService {
	return &SiteService{
		api:     api,
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
}

// Today is the current date in the layout the backend uses.
func (s *SiteService) Today() string {
	return s.now().Format(dateLayout)
}

// ScheduleDates lists the dates a new task may be scheduled on, today first.
func (s *SiteService) ScheduleDates() []string {
	today := s.now()
	dates := make([]string, 0, TaskScheduleDays)
	for i := range TaskScheduleDays {
		dates = append(dates, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// Tasks returns the tasks for date (today when empty), highest priority first.
func (s *SiteService) Tasks(ctx context.Context, date string) ([]domain.Task, error) {
	if date == "" {
		date = s.Today()
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidEntry, date)
	}

	tasks, err := s.api.Tasks(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks for %s: %w", date, err)
	}
	SortTasksByPriority(tasks)
	return tasks, nil
}

// AddTask creates a pending task. Date defaults to today and must fall
// within the next TaskScheduleDays days.
func (s *SiteService) AddTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return domain.Task{}, fmt.Errorf("%w: task title is required", ErrInvalidEntry)
	}
	if task.Priority < 1 {
		return domain.Task{}, fmt.Errorf("%w: priority must be at least 1", ErrInvalidEntry)
	}
	if task.Date == "" {
		task.Date = s.Today()
	}
	if !slices.Contains(s.ScheduleDates(), task.Date) {
		return domain.Task{}, fmt.Errorf("%w: date %s is outside the next %d days", ErrInvalidEntry, task.Date, TaskScheduleDays)
	}
	task.ID = ""
	task.Status = domain.StatusPending

	created, err := s.api.CreateTask(ctx, task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return created, nil
}

func (s *SiteService) SetTaskStatus(ctx context.Context, id, status string) error {
	if status != domain.StatusPending && status != domain.StatusCompleted {
		return fmt.Errorf("%w: task status must be %s or %s", ErrInvalidEntry, domain.StatusPending, domain.StatusCompleted)
	}
	if err := s.api.UpdateTaskStatus(ctx, id, status); err != nil {
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	return nil
}

func (s *SiteService) DeleteTask(ctx context.Context, id string) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// Videos fetches the watch-later list and applies the query locally as well,
// so the result honours it even if the backend ignores the parameters.
func (s *SiteService) Videos(ctx context.Context, q domain.VideoQuery) ([]domain.Video, error) {
	if q.Sort == "" {
		q.Sort = "desc"
	}
	if q.Sort != "desc" && q.Sort != "asc" {
		return nil, fmt.Errorf("%w: sort must be asc or desc", ErrInvalidEntry)
	}

	videos, err := s.api.Videos(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching videos: %w", err)
	}
	videos = FilterVideos(videos, q)
	for i := range videos {
		videos[i].Thumbnail = ThumbnailURL(videos[i].URL)
	}
	return videos, nil
}

func (s *SiteService) AddVideo(ctx context.Context, title, rawURL string) error {
	title, rawURL = strings.TrimSpace(title), strings.TrimSpace(rawURL)
	if title == "" || rawURL == "" {
		return fmt.Errorf("%w: video title and URL are required", ErrInvalidEntry)
	}
	if err := s.api.CreateVideo(ctx, domain.Video{Title: title, URL: rawURL}); err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// MarkWatched flips a video to Watched.
func (s *SiteService) MarkWatched(ctx context.Context, id string) error {
	return s.SetVideoStatus(ctx, id, domain.StatusWatched)
}

func (s *SiteService) SetVideoStatus(ctx context.Context, id, status string) error {
	if status != domain.StatusPending && status != domain.StatusWatched {
		return fmt.Errorf("%w: video status must be %s or %s", ErrInvalidEntry, domain.StatusPending, domain.StatusWatched)
	}
	if err := s.api.UpdateVideoStatus(ctx, id, status); err != nil {
		return fmt.Errorf("updating video %s: %w", id, err)
	}
	return nil
}

// Quotes returns every quote in random order.
func (s *SiteService) Quotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.api.Quotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching quotes: %w", err)
	}
	s.shuffle(len(quotes), func(i, j int) { quotes[i], quotes[j] = quotes[j], quotes[i] })
	return quotes, nil
}

func (s *SiteService) AddQuote(ctx context.Context, q domain.Quote) error {
	if err := validateQuote(&q); err != nil {
		return err
	}
	if err := s.api.CreateQuote(ctx, q); err != nil {
		return fmt.Errorf("creating quote: %w", err)
	}
	return nil
}

func (s *SiteService) EditQuote(ctx context.Context, id string, q domain.Quote) error {
	if err := validateQuote(&q); err != nil {
		return err
	}
	if err := s.api.UpdateQuote(ctx, id, q); err != nil {
		return fmt.Errorf("updating quote %s: %w", id, err)
	}
	return nil
}

func (s *SiteService) DeleteQuote(ctx context.Context, id string) error {
	if err := s.api.DeleteQuote(ctx, id); err != nil {
		return fmt.Errorf("deleting quote %s: %w", id, err)
	}
	return nil
}

func (s *SiteService) Blogs(ctx context.Context) ([]domain.BlogLink, error) {
	blogs, err := s.api.Blogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching blogs: %w", err)
	}
	return blogs, nil
}

func (s *SiteService) AddBlog(ctx context.Context, title, link string) (domain.BlogLink, error) {
	title, link = strings.TrimSpace(title), strings.TrimSpace(link)
	if title == "" || link == "" {
		return domain.BlogLink{}, fmt.Errorf("%w: blog title and link are required", ErrInvalidEntry)
	}
	created, err := s.api.CreateBlog(ctx, domain.BlogLink{Title: title, Link: link})
	if err != nil {
		return domain.BlogLink{}, fmt.Errorf("creating blog: %w", err)
	}
	return created, nil
}

func (s *SiteService) DeleteBlog(ctx context.Context, id string) error {
	if err := s.api.DeleteBlog(ctx, id); err != nil {
		return fmt.Errorf("deleting blog %s: %w", id, err)
	}
	return nil
}

// SortTasksByPriority orders tasks highest priority first, keeping the
// backend order among equal priorities.
func SortTasksByPriority(tasks []domain.Task) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return b.Priority - a.Priority
	})
}

// FilterVideos keeps videos whose title contains q.Search (case-insensitive)
// and whose status equals q.Status, sorted by creation time ("asc" oldest
// first, anything else newest first).
func FilterVideos(videos []domain.Video, q domain.VideoQuery) []domain.Video {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if search != "" && !strings.Contains(strings.ToLower(v.Title), search) {
			continue
		}
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		out = append(out, v)
	}

	slices.SortStableFunc(out, func(a, b domain.Video) int {
		if q.Sort == "asc" {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

var youTubeIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// YouTubeID extracts the 11-character video id from a YouTube URL.
func YouTubeID(rawURL string) (string, bool) {
	m := youTubeIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ThumbnailURL returns the high-quality thumbnail for a YouTube URL, or ""
// when the URL is not a YouTube link.
func ThumbnailURL(rawURL string) string {
	id, ok := YouTubeID(rawURL)
	if !ok {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

func validateQuote(q *domain.Quote) error {
	q.Text = strings.TrimSpace(q.Text)
	q.Author = strings.TrimSpace(q.Author)
	if q.Text == "" {
		return fmt.Errorf("%w: quote text is required", ErrInvalidEntry)
	}
	q.ID = ""
	return nil
}
