// Package history holds the static dataset behind the widget (categories of
// dated events), loading and construction-time checks for it, the yaml
// settings, and the small formatting/validation helpers the views share.
//
// The dataset is read once at startup and is immutable afterwards; Dataset
// hands out copies so no view can mutate it.
package history

import (
	"encoding/json"
	"fmt"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// DatasetPath is the embedded location of the default dataset.
const DatasetPath = "assets/historic_dates.json"

// HistoricEvent is one dated entry of a category.
type HistoricEvent struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// HistoricCategory is a titled, non-empty, ordered list of events.
type HistoricCategory struct {
	Title  string          `json:"title"`
	Events []HistoricEvent `json:"events"`
}

// Dataset is the fixed ordered sequence of categories driving the widget.
type Dataset struct {
	categories []HistoricCategory
	first      []int
	last       []int
}

// NewDataset validates categories and returns an immutable Dataset. Any
// violation is a programming error in the bundled data.
func NewDataset(categories []HistoricCategory) (*Dataset, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("dataset has no categories")
	}
	d := &Dataset{
		categories: make([]HistoricCategory, len(categories)),
		first:      make([]int, len(categories)),
		last:       make([]int, len(categories)),
	}
	for i, c := range categories {
		if c.Title == "" {
			return nil, fmt.Errorf("category %d has no title", i)
		}
		if len(c.Events) == 0 {
			return nil, fmt.Errorf("category %d (%s) has no events", i, c.Title)
		}
		for j, e := range c.Events {
			date, err := ParseDate(e.Date)
			if err != nil {
				return nil, fmt.Errorf("category %d (%s) event %d: %w", i, c.Title, j, err)
			}
			if !IsValidDate(date) {
				return nil, fmt.Errorf("category %d (%s) event %d: date %q outside %d-%d", i, c.Title, j, e.Date, MinDate, MaxDate)
			}
		}
		events := make([]HistoricEvent, len(c.Events))
		copy(events, c.Events)
		d.categories[i] = HistoricCategory{Title: c.Title, Events: events}
		d.first[i], _ = ParseDate(events[0].Date)
		d.last[i], _ = ParseDate(events[len(events)-1].Date)
	}
	return d, nil
}

// LoadDataset reads and validates a JSON dataset.
func LoadDataset(reader AppContentReader, path string) (*Dataset, error) {
	data, err := reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var categories []HistoricCategory
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}
	return NewDataset(categories)
}

// Len returns the number of categories.
func (d *Dataset) Len() int {
	return len(d.categories)
}

// Category returns a copy of category i.
func (d *Dataset) Category(i int) HistoricCategory {
	c := d.categories[i]
	events := make([]HistoricEvent, len(c.Events))
	copy(events, c.Events)
	return HistoricCategory{Title: c.Title, Events: events}
}

// EventCount returns the number of events in category i.
func (d *Dataset) EventCount(i int) int {
	return len(d.categories[i].Events)
}

// Titles returns the category titles in order.
func (d *Dataset) Titles() []string {
	titles := make([]string, len(d.categories))
	for i, c := range d.categories {
		titles[i] = c.Title
	}
	return titles
}

// FirstDate is the numeric date of the first event of category i.
func (d *Dataset) FirstDate(i int) int {
	return d.first[i]
}

// LastDate is the numeric date of the last event of category i.
func (d *Dataset) LastDate(i int) int {
	return d.last[i]
}
