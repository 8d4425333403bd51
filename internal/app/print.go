package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/logging"
	"github.com/five82/liftoff/internal/spacex"
)

// ErrCommentsDisabled is returned when no comments endpoint is configured.
var ErrCommentsDisabled = errors.New("comments endpoint not configured")

// PrintTimeline fetches the launch list once and writes it grouped by day.
// Diagnostics go to errOut.
func PrintTimeline(ctx context.Context, opts Options, out, errOut io.Writer) error {
	f, err := oneShotFeed(opts, errOut)
	if err != nil {
		return err
	}
	defer f.close()

	f.launches.Use(ctx, spacex.LaunchesRequest())
	st, err := f.launches.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait for launches: %w", err)
	}
	launches, err := st.Result()
	if err != nil {
		return fmt.Errorf("fetch launches: %w", err)
	}
	return writeTimeline(out, spacex.GroupByDate(launches))
}

// PrintComments fetches and writes the comments for one flight.
func PrintComments(ctx context.Context, opts Options, flight int, out, errOut io.Writer) error {
	if flight <= 0 {
		return fmt.Errorf("flight number must be positive, got %d", flight)
	}
	f, err := oneShotFeed(opts, errOut)
	if err != nil {
		return err
	}
	defer f.close()
	if f.comments == nil {
		return ErrCommentsDisabled
	}

	f.comments.Use(ctx, spacex.CommentsRequest(flight))
	st, err := f.comments.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait for comments: %w", err)
	}
	comments, err := st.Result()
	if err != nil {
		return fmt.Errorf("fetch comments: %w", err)
	}
	return writeComments(out, flight, comments)
}

func oneShotFeed(opts Options, errOut io.Writer) (*feed, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.NewConsole(errOut, levelFor(cfg, opts))
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return newFeed(cfg, logger, nil)
}

func writeTimeline(w io.Writer, grouped spacex.Grouped) error {
	var b strings.Builder
	for _, bucket := range grouped {
		fmt.Fprintf(&b, "%s\n", bucket.Date)
		for _, l := range bucket.Launches {
			fmt.Fprintf(&b, "  #%s %s  %s @ %s  [%s]\n", l.ID, l.MissionName, l.RocketName, l.SiteName, l.Success)
			if details := strings.TrimSpace(l.DetailsText()); details != "" {
				fmt.Fprintf(&b, "      %s\n", details)
			}
			fmt.Fprintf(&b, "      %s\n", l.EmbedURL())
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeComments(w io.Writer, flight int, comments []spacex.Comment) error {
	var b strings.Builder
	if len(comments) == 0 {
		fmt.Fprintf(&b, "no comments for flight %d\n", flight)
	}
	for _, c := range comments {
		fmt.Fprintf(&b, "%s  %s\n", c.Author, c.Date)
		fmt.Fprintf(&b, "  %s\n", c.Body)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
