package feed

import (
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"mailsim/models"
	"mailsim/utils"
)

// Section is one relative-time grouping of threads, already ordered for
// display. Empty sections are omitted from output entirely.
type Section struct {
	Key     string          `json:"key"`
	Title   string          `json:"title"`
	Threads []models.Thread `json:"threads"`
}

// Section keys, in display order.
const (
	SectionToday     = "today"
	SectionYesterday = "yesterday"
	SectionLastWeek  = "last7days"
	SectionThisMonth = "currentMonth"
	SectionOlder     = "older"
)

var sectionOrder = []string{SectionToday, SectionYesterday, SectionLastWeek, SectionThisMonth, SectionOlder}

var sectionTitleIDs = map[string]string{
	SectionToday:     "SectionToday",
	SectionYesterday: "SectionYesterday",
	SectionLastWeek:  "SectionLastWeek",
	SectionThisMonth: "SectionThisMonth",
	SectionOlder:     "SectionOlder",
}

// Sections classifies threads into {today, yesterday, last-7-days,
// current-month, older} using start-of-day and start-of-month boundaries in
// loc. Thread order within each section follows the input, so passing the
// collated (descending) threads preserves recency order between and within
// sections.
func Sections(threads []models.Thread, now time.Time, loc *time.Location, localizer *i18n.Localizer) []Section {
	n := now.In(loc)
	startToday := utils.StartOfDay(n)
	startYesterday := startToday.AddDate(0, 0, -1)
	startLastWeek := startToday.AddDate(0, 0, -7)
	startMonth := utils.StartOfMonth(n)

	buckets := make(map[string][]models.Thread)
	for _, t := range threads {
		ts := time.UnixMilli(t.LastTimestamp).In(loc)
		var key string
		switch {
		case !ts.Before(startToday):
			key = SectionToday
		case !ts.Before(startYesterday):
			key = SectionYesterday
		case !ts.Before(startLastWeek):
			key = SectionLastWeek
		case !ts.Before(startMonth):
			key = SectionThisMonth
		default:
			key = SectionOlder
		}
		buckets[key] = append(buckets[key], t)
	}

	var sections []Section
	for _, key := range sectionOrder {
		group, ok := buckets[key]
		if !ok {
			continue
		}
		sections = append(sections, Section{
			Key:     key,
			Title:   utils.T(localizer, sectionTitleIDs[key]),
			Threads: group,
		})
	}
	return sections
}
