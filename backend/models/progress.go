package models

import (
	"sort"
	"strconv"
	"time"
)

// Category is one of the two independent task tracks of a day.
type Category string

const (
	CategoryDSA Category = "dsa"
	CategoryDev Category = "dev"
)

// Progress is the per-user record stored at progress/{uid}. Days are keyed
// by decimal-string day number, matching the database object keys.
type Progress struct {
	Days map[string]*Day `json:"days"`
}

// Day tracks completion state for a single day of the calendar.
// Completed is a stored field: it is set when both category flags are true
// and never cleared afterwards.
type Day struct {
	Completed    bool      `json:"completed"`
	DsaCompleted bool      `json:"dsaCompleted"`
	DevCompleted bool      `json:"devCompleted"`
	DsaChecklist []bool    `json:"dsaChecklist,omitempty"`
	DevChecklist []bool    `json:"devChecklist,omitempty"`
	Date         time.Time `json:"date"`
}

// CategoryCompleted reports the completion flag of one track.
func (d *Day) CategoryCompleted(c Category) bool {
	if c == CategoryDSA {
		return d.DsaCompleted
	}
	return d.DevCompleted
}

// Day returns the entry for a day number, or nil when absent.
func (p *Progress) Day(n int) *Day {
	if p.Days == nil {
		return nil
	}
	return p.Days[strconv.Itoa(n)]
}

// EnsureDay returns the entry for a day number, creating a default one.
func (p *Progress) EnsureDay(n int) *Day {
	if p.Days == nil {
		p.Days = make(map[string]*Day)
	}
	key := strconv.Itoa(n)
	d := p.Days[key]
	if d == nil {
		d = &Day{}
		p.Days[key] = d
	}
	return d
}

// DayNumbers returns the day numbers with an entry, in ascending order.
func (p *Progress) DayNumbers() []int {
	numbers := make([]int, 0, len(p.Days))
	for key := range p.Days {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
