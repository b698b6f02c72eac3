package graph

import "time"

// graphClockLayout matches the wall-clock strings Graph puts in
// dateTime fields. The service appends up to seven fractional digits;
// time.Parse accepts the fraction even though the layout omits it.
const graphClockLayout = "2006-01-02T15:04:05"

// Calendar mirrors a /me/calendars entry.
type Calendar struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CanShare bool   `json:"canShare"`
}

// DateTimeTimeZone is Graph's split representation of an instant: a
// zone-less wall-clock string plus a named zone. The named zone is
// stored but otherwise ignored; values are treated as UTC.
type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Parsed returns the wall-clock string as a UTC instant.
func (d DateTimeTimeZone) Parsed() (time.Time, error) {
	return time.Parse(graphClockLayout, d.DateTime)
}

// EmailAddress is a name/address pair used by attendees and organizers.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Attendee wraps the optional address of one meeting participant.
type Attendee struct {
	EmailAddress *EmailAddress `json:"emailAddress"`
}

// Recipient is the organizer payload shape.
type Recipient struct {
	EmailAddress *EmailAddress `json:"emailAddress"`
}

// ItemBody carries the event description, usually as HTML.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Location is the subset of the Graph location payload the UI shows.
type Location struct {
	DisplayName string `json:"displayName"`
}

// Event mirrors a calendarview entry restricted to the $select fields.
// Optional fields decode to nil when the service omits them.
type Event struct {
	ID        string           `json:"id"`
	Subject   string           `json:"subject"`
	Start     DateTimeTimeZone `json:"start"`
	End       DateTimeTimeZone `json:"end"`
	Body      *ItemBody        `json:"body"`
	Attendees []Attendee       `json:"attendees"`
	Location  *Location        `json:"location"`
	Organizer *Recipient       `json:"organizer"`
}

type calendarListResponse struct {
	Value []Calendar `json:"value"`
}

type eventListResponse struct {
	Value    []Event `json:"value"`
	NextLink string  `json:"@odata.nextLink"`
}
