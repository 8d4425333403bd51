package spacex

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Outcome is the tri-state launch result reported by the API.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

func outcomeFrom(flag *bool) Outcome {
	switch {
	case flag == nil:
		return OutcomeUnknown
	case *flag:
		return OutcomeSuccess
	default:
		return OutcomeFailure
	}
}

// Launch is a single launch record.
type Launch struct {
	ID            string
	MissionName   string
	Success       Outcome
	LaunchDateUTC string
	SiteName      string
	RocketName    string
	VideoLink     *string
	Details       *string
}

// dateKeyLen is the length of a YYYY-MM-DD prefix.
const dateKeyLen = 10

// Date returns the calendar-day key of the launch.
func (l Launch) Date() string {
	return dateKey(l.LaunchDateUTC)
}

// FlightNumber parses the launch ID as the numeric flight number used by the
// comments service.
func (l Launch) FlightNumber() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(l.ID))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// VideoID returns the YouTube identifier of the launch webcast, or the
// "error" sentinel.
func (l Launch) VideoID() string {
	return ExtractVideoID(l.VideoLink)
}

// EmbedURL returns the embeddable webcast URL.
func (l Launch) EmbedURL() string {
	return EmbedURL(l.VideoID())
}

// DetailsText returns Details or an empty string.
func (l Launch) DetailsText() string {
	if l.Details == nil {
		return ""
	}
	return *l.Details
}

// Comment is a community comment attached to a flight.
type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Body   string `json:"body"`
	Date   string `json:"date"`
}

type launchPayload struct {
	ID            string  `json:"id"`
	LaunchSuccess *bool   `json:"launch_success"`
	MissionName   string  `json:"mission_name"`
	LaunchDateUTC string  `json:"launch_date_utc"`
	Details       *string `json:"details"`
	LaunchSite    *struct {
		SiteName string `json:"site_name"`
	} `json:"launch_site"`
	Rocket *struct {
		RocketName string `json:"rocket_name"`
	} `json:"rocket"`
	Links *struct {
		VideoLink *string `json:"video_link"`
	} `json:"links"`
}

func (p launchPayload) launch() Launch {
	l := Launch{
		ID:            p.ID,
		MissionName:   p.MissionName,
		Success:       outcomeFrom(p.LaunchSuccess),
		LaunchDateUTC: p.LaunchDateUTC,
		Details:       p.Details,
	}
	if p.LaunchSite != nil {
		l.SiteName = p.LaunchSite.SiteName
	}
	if p.Rocket != nil {
		l.RocketName = p.Rocket.RocketName
	}
	if p.Links != nil {
		l.VideoLink = p.Links.VideoLink
	}
	return l
}

// DecodeLaunches decodes the data member of a launches query.
func DecodeLaunches(data []byte) ([]Launch, error) {
	var payload struct {
		Launches []launchPayload `json:"launches"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode launches: %w", err)
	}
	launches := make([]Launch, 0, len(payload.Launches))
	for _, p := range payload.Launches {
		launches = append(launches, p.launch())
	}
	return launches, nil
}

// DecodeComments decodes the data member of a comments query.
func DecodeComments(data []byte) ([]Comment, error) {
	var payload struct {
		Comments []Comment `json:"comments"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	if payload.Comments == nil {
		return []Comment{}, nil
	}
	return payload.Comments, nil
}
