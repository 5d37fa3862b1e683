package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"personal-site/cli"
	"personal-site/domain"
	"personal-site/service"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks for a day, highest priority first",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List the watch-later videos",
	Args:  cobra.NoArgs,
	RunE:  runVideos,
}

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List quotes in random order",
	Args:  cobra.NoArgs,
	RunE:  runQuotes,
}

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "List saved blog links",
	Args:  cobra.NoArgs,
	RunE:  runBlogs,
}

func init() {
	tasksCmd.Flags().String("date", "", "Day to show, YYYY-MM-DD (default today)")
	taskAdd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Schedule a task within the next week",
		Args:  cobra.ExactArgs(1),
		RunE:  runTaskAdd,
	}
	taskAdd.Flags().IntP("priority", "p", 1, "Priority, higher first")
	taskAdd.Flags().String("date", "", "Day, YYYY-MM-DD (default today)")
	tasksCmd.AddCommand(
		taskAdd,
		siteAction("done ID", "Mark a task completed", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.SetTaskStatus(cmd.Context(), args[0], domain.StatusCompleted)
		}),
		siteAction("undo ID", "Mark a task pending again", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.SetTaskStatus(cmd.Context(), args[0], domain.StatusPending)
		}),
		siteAction("rm ID", "Delete a task", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.DeleteTask(cmd.Context(), args[0])
		}),
		&cobra.Command{
			Use:   "dates",
			Short: "Show the days a task can be scheduled on",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := newSiteService()
				if err != nil {
					return err
				}
				for _, d := range s.ScheduleDates() {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				return nil
			},
		},
	)

	videosCmd.Flags().StringP("search", "s", "", "Title contains (case-insensitive)")
	videosCmd.Flags().String("status", "", "Pending or Watched")
	videosCmd.Flags().String("sort", "desc", "Order by date added: asc or desc")
	videosCmd.AddCommand(
		siteAction("add TITLE URL", "Save a video to watch later", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.AddVideo(cmd.Context(), args[0], args[1])
		}),
		siteAction("watched ID", "Mark a video watched", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.MarkWatched(cmd.Context(), args[0])
		}),
		siteAction("unwatch ID", "Mark a video pending again", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.SetVideoStatus(cmd.Context(), args[0], domain.StatusPending)
		}),
	)

	quoteAdd := siteAction("add TEXT", "Add a quote", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
		author, _ := cmd.Flags().GetString("author")
		return s.AddQuote(cmd.Context(), domain.Quote{Text: args[0], Author: author})
	})
	quoteAdd.Flags().StringP("author", "a", "", "Who said it")
	quoteEdit := siteAction("edit ID TEXT", "Replace a quote", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
		author, _ := cmd.Flags().GetString("author")
		return s.EditQuote(cmd.Context(), args[0], domain.Quote{Text: args[1], Author: author})
	})
	quoteEdit.Flags().StringP("author", "a", "", "Who said it")
	quotesCmd.AddCommand(
		quoteAdd,
		quoteEdit,
		siteAction("rm ID", "Delete a quote", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.DeleteQuote(cmd.Context(), args[0])
		}),
	)

	blogsCmd.AddCommand(
		siteAction("add TITLE LINK", "Save a blog link", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			_, err := s.AddBlog(cmd.Context(), args[0], args[1])
			return err
		}),
		siteAction("rm ID", "Delete a blog link", func(s *service.SiteService, cmd *cobra.Command, args []string) error {
			return s.DeleteBlog(cmd.Context(), args[0])
		}),
	)

	rootCmd.AddCommand(tasksCmd, videosCmd, quotesCmd, blogsCmd)
}

// siteAction builds a subcommand whose positional args are named in use.
func siteAction(use, short string, fn func(*service.SiteService, *cobra.Command, []string) error) *cobra.Command {
	nargs := 0
	for _, r := range use {
		if r == ' ' {
			nargs++
		}
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSiteService()
			if err != nil {
				return err
			}
			if err := fn(s, cmd, args); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "  ok")
			return nil
		},
	}
}

func runTasks(cmd *cobra.Command, _ []string) error {
	s, err := newSiteService()
	if err != nil {
		return err
	}
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = s.Today()
	}
	tasks, err := s.Tasks(cmd.Context(), date)
	if err != nil {
		return err
	}

	return printResult(cmd, tasks, func() string {
		if len(tasks) == 0 {
			return cli.Muted("  Nothing scheduled for "+date) + "\n"
		}
		rows := make([][]string, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, []string{
				cli.Checkbox(t.Status == domain.StatusCompleted),
				t.Title,
				strconv.Itoa(t.Priority),
				t.ID,
			})
		}
		return cli.RenderTable(cli.Table{
			Title:     "Tasks for " + date,
			Headers:   []string{"", "Task", "Priority", "ID"},
			Rows:      rows,
			LeftAlign: true,
		})
	})
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	s, err := newSiteService()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	date, _ := f.GetString("date")

	task, err := s.AddTask(cmd.Context(), domain.Task{
		Title:    args[0],
		Priority: mustInt(f, "priority"),
		Date:     date,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, task, func() string {
		return fmt.Sprintf("  Added %q for %s\n", task.Title, task.Date)
	})
}

func runVideos(cmd *cobra.Command, _ []string) error {
	s, err := newSiteService()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	q := domain.VideoQuery{
		Search: mustString(f, "search"),
		Status: mustString(f, "status"),
		Sort:   mustString(f, "sort"),
	}

	videos, err := s.Videos(cmd.Context(), q)
	if err != nil {
		return err
	}

	return printResult(cmd, videos, func() string {
		if len(videos) == 0 {
			return cli.Muted("  No videos match.") + "\n"
		}
		rows := make([][]string, 0, len(videos))
		for _, v := range videos {
			rows = append(rows, []string{
				cli.Checkbox(v.Status == domain.StatusWatched),
				cli.Truncate(v.Title, 48),
				v.URL,
				thumbnailOrDash(v.Thumbnail),
				cli.FormatDate(v.CreatedAt),
				v.ID,
			})
		}
		return cli.RenderTable(cli.Table{
			Title:     "Watch later",
			Headers:   []string{"", "Title", "URL", "Thumbnail", "Added", "ID"},
			Rows:      rows,
			LeftAlign: true,
		})
	})
}

func thumbnailOrDash(url string) string {
	if url == "" {
		return cli.Muted("-")
	}
	return url
}

func runQuotes(cmd *cobra.Command, _ []string) error {
	s, err := newSiteService()
	if err != nil {
		return err
	}
	quotes, err := s.Quotes(cmd.Context())
	if err != nil {
		return err
	}

	return printResult(cmd, quotes, func() string {
		if len(quotes) == 0 {
			return cli.Muted("  No quotes yet.") + "\n"
		}
		rows := make([][]string, 0, len(quotes))
		for _, q := range quotes {
			author := q.Author
			if author == "" {
				author = "Unknown"
			}
			rows = append(rows, []string{cli.Truncate(q.Text, 60), author, q.ID})
		}
		return cli.RenderTable(cli.Table{
			Title:     "Quotes",
			Headers:   []string{"Quote", "Author", "ID"},
			Rows:      rows,
			LeftAlign: true,
		})
	})
}

func runBlogs(cmd *cobra.Command, _ []string) error {
	s, err := newSiteService()
	if err != nil {
		return err
	}
	blogs, err := s.Blogs(cmd.Context())
	if err != nil {
		return err
	}

	return printResult(cmd, blogs, func() string {
		if len(blogs) == 0 {
			return cli.Muted("  No blog links yet.") + "\n"
		}
		rows := make([][]string, 0, len(blogs))
		for _, b := range blogs {
			rows = append(rows, []string{b.Title, b.Link, b.ID})
		}
		return cli.RenderTable(cli.Table{
			Title:     "Blogs",
			Headers:   []string{"Title", "Link", "ID"},
			Rows:      rows,
			LeftAlign: true,
		})
	})
}
