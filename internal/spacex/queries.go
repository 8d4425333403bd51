package spacex

import "github.com/five82/liftoff/internal/graphql"

const launchesQuery = `query Launches {
  launches {
    id
    launch_success
    mission_name
    launch_date_utc
    launch_site {
      site_name
    }
    rocket {
      rocket_name
    }
    links {
      video_link
    }
    details
  }
}`

const commentsQuery = `query CommentsByFlight($flightNumber: Int!) {
  comments(flight_number: $flightNumber) {
    id
    author
    body
    date
  }
}`

// LaunchesRequest returns the query for the full launch list.
func LaunchesRequest() graphql.Request {
	return graphql.Request{Query: launchesQuery, OperationName: "Launches"}
}

// CommentsRequest returns the query for the comments on one flight.
func CommentsRequest(flightNumber int) graphql.Request {
	return graphql.Request{
		Query:         commentsQuery,
		OperationName: "CommentsByFlight",
		Variables:     map[string]any{"flightNumber": flightNumber},
	}
}
