// Package store persists calendars and events in a local SQLite file
// and serves the controller as a read-through cache.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"cal365/internal/graph"
)

// storedClockLayout matches the wall-clock strings kept verbatim in the
// time columns. ISO-8601 makes lexicographic row comparison equivalent
// to chronological comparison for the range purge below.
const storedClockLayout = "2006-01-02T15:04:05"

type calendarRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	CanShare bool   `gorm:"column:can_share"`
}

func (calendarRow) TableName() string { return "calendars" }

type eventRow struct {
	ID            string `gorm:"column:id;primaryKey"`
	Subject       string `gorm:"column:subject;not null"`
	StartTime     string `gorm:"column:start_time;not null;index"`
	StartTimeZone string `gorm:"column:start_time_zone"`
	EndTime       string `gorm:"column:end_time;not null"`
	EndTimeZone   string `gorm:"column:end_time_zone"`
	Body          string `gorm:"column:body"`
	AttendeesJSON string `gorm:"column:attendees_json"`
	CalendarID    string `gorm:"column:calendar_id;not null;index"`
}

func (eventRow) TableName() string { return "events" }

// Store wraps the SQLite connection pool. Safe for concurrent use; all
// multi-row writes run inside a transaction.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&calendarRow{}, &eventRow{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// UpsertCalendars replaces calendar rows by id.
func (s *Store) UpsertCalendars(cals []graph.Calendar) error {
	if len(cals) == 0 {
		return nil
	}
	rows := make([]calendarRow, 0, len(cals))
	for _, c := range cals {
		rows = append(rows, calendarRow{ID: c.ID, Name: c.Name, CanShare: c.CanShare})
	}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert calendars: %w", err)
	}
	return nil
}

// Calendars returns all stored calendars.
func (s *Store) Calendars() ([]graph.Calendar, error) {
	var rows []calendarRow
	if err := s.db.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load calendars: %w", err)
	}
	cals := make([]graph.Calendar, 0, len(rows))
	for _, r := range rows {
		cals = append(cals, graph.Calendar{ID: r.ID, Name: r.Name, CanShare: r.CanShare})
	}
	return cals, nil
}

// UpsertEventsForRange refreshes the stored window for one calendar:
// each fetched row is upserted by id and in-window rows missing from
// the fetched set are purged, all inside one transaction. Rows outside
// [startUTC, endUTC) are left alone so the cache keeps serving other
// view ranges.
func (s *Store) UpsertEventsForRange(calendarID string, startUTC, endUTC time.Time, events []graph.Event) error {
	startKey := startUTC.UTC().Format(storedClockLayout)
	endKey := endUTC.UTC().Format(storedClockLayout)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		keep := make([]string, 0, len(events))
		for _, e := range events {
			row, err := rowFromEvent(e, calendarID)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
			keep = append(keep, e.ID)
		}

		purge := tx.Where("calendar_id = ? AND start_time >= ? AND start_time < ?",
			calendarID, startKey, endKey)
		if len(keep) > 0 {
			purge = purge.Where("id NOT IN ?", keep)
		}
		return purge.Delete(&eventRow{}).Error
	})
	if err != nil {
		return fmt.Errorf("upsert events for %s: %w", calendarID, err)
	}
	return nil
}

// EventsFor returns every stored event for a calendar. Attendees are
// rehydrated from the JSON column; location and organizer are not
// persisted and come back absent.
func (s *Store) EventsFor(calendarID string) ([]graph.Event, error) {
	var rows []eventRow
	if err := s.db.Where("calendar_id = ?", calendarID).Order("start_time").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load events for %s: %w", calendarID, err)
	}
	events := make([]graph.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, eventFromRow(r))
	}
	return events, nil
}

func rowFromEvent(e graph.Event, calendarID string) (eventRow, error) {
	attendees, err := json.Marshal(e.Attendees)
	if err != nil {
		return eventRow{}, fmt.Errorf("encode attendees for %s: %w", e.ID, err)
	}
	row := eventRow{
		ID:            e.ID,
		Subject:       e.Subject,
		StartTime:     e.Start.DateTime,
		StartTimeZone: e.Start.TimeZone,
		EndTime:       e.End.DateTime,
		EndTimeZone:   e.End.TimeZone,
		AttendeesJSON: string(attendees),
		CalendarID:    calendarID,
	}
	if e.Body != nil {
		row.Body = e.Body.Content
	}
	return row, nil
}

func eventFromRow(r eventRow) graph.Event {
	e := graph.Event{
		ID:      r.ID,
		Subject: r.Subject,
		Start:   graph.DateTimeTimeZone{DateTime: r.StartTime, TimeZone: r.StartTimeZone},
		End:     graph.DateTimeTimeZone{DateTime: r.EndTime, TimeZone: r.EndTimeZone},
	}
	if r.Body != "" {
		e.Body = &graph.ItemBody{ContentType: "html", Content: r.Body}
	}
	if r.AttendeesJSON != "" {
		var attendees []graph.Attendee
		if err := json.Unmarshal([]byte(r.AttendeesJSON), &attendees); err == nil {
			e.Attendees = attendees
		}
	}
	return e
}
