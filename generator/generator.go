package generator

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"mailsim/config"
	"mailsim/models"
	"mailsim/storage"
	"mailsim/utils"
)

// Generator procedurally produces a multi-year corpus of messages, one
// simulated calendar day at a time, and persists them into monthly shards.
//
// It is not safe to run two generators concurrently against the same output
// directory; there is no file locking.
type Generator struct {
	cfg    *config.Config
	store  *storage.Store
	roster *Roster
	stores Stores
	env    *Env
}

// New assembles a generator. Roster and stores are immutable configuration;
// the random source is injectable so tests can drive exact branch selection.
func New(cfg *config.Config, store *storage.Store, roster *Roster, stores Stores, src Source) *Generator {
	return &Generator{
		cfg:    cfg,
		store:  store,
		roster: roster,
		stores: stores,
		env: &Env{
			Rand: src,
			Zone: utils.LoadLocation(cfg.Mailbox.Timezone),
		},
	}
}

// Zone returns the home timezone the generator buckets days in.
func (g *Generator) Zone() *time.Location {
	return g.env.Zone
}

// Run generates every day in the configured range, inclusive on both ends.
// Days already represented in their shard are skipped unless forced.
func (g *Generator) Run() error {
	start, err := g.cfg.StartDate()
	if err != nil {
		return err
	}
	end, err := g.cfg.EndDate()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("generation range ends (%s) before it starts (%s)",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, g.env.Zone)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, g.env.Zone)

	if !g.cfg.Generator.Quiet {
		utils.Log.Info("Generating corpus %s .. %s into %s",
			day.Format("2006-01-02"), last.Format("2006-01-02"), g.store.Root())
	}

	total := 0
	for dayIndex := 0; !day.After(last); dayIndex++ {
		n, err := g.generateDay(day)
		if err != nil {
			return err
		}
		total += n

		if !g.cfg.Generator.Quiet && g.cfg.Generator.LogEvery > 0 && dayIndex%g.cfg.Generator.LogEvery == 0 {
			utils.Log.Info("%s: %d messages", day.Format("2006-01-02"), n)
		}
		day = day.AddDate(0, 0, 1)
	}

	if _, err := g.store.WriteManifest(); err != nil {
		return err
	}
	if !g.cfg.Generator.Quiet {
		utils.Log.Info("Finished: %d messages written", total)
	}
	return nil
}

// generateDay emits one simulated day and merges the result into the
// affected shards. Satellite messages may spill past midnight, so a single
// day can touch more than one month.
func (g *Generator) generateDay(day time.Time) (int, error) {
	if g.cfg.Generator.SkipExistingDay && !g.cfg.Generator.ForceRebuild && g.store.DayPresent(day, g.env.Zone) {
		utils.Log.Debug("%s already populated, skipping", day.Format("2006-01-02"))
		return 0, nil
	}

	messages := g.scheduledForDay(day)

	target := g.volumeForDay(day)
	pool := g.roster.Pool()
	for i := len(messages); i < target; i++ {
		from := Pick(g.env.Rand, pool)
		store, ok := g.stores[from.Archetype]
		if !ok || len(store) == 0 {
			continue
		}
		draft := Pick(g.env.Rand, store)(g.env, from, g.roster.Owner, day)
		if draft == nil {
			continue
		}
		msg := g.messageFromDraft(from, draft, day)
		messages = append(messages, msg)
		messages = append(messages, g.satellites(msg, from, day)...)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	return len(messages), g.persistDay(day, messages)
}

// persistDay merges the day's output into each month shard it touches. Under
// a forced rebuild the day's previous content is replaced instead of
// appended.
func (g *Generator) persistDay(day time.Time, messages []models.Message) error {
	byMonth := map[storage.MonthRef][]models.Message{}
	for _, m := range messages {
		t := m.Time(g.env.Zone)
		ref := storage.MonthRef{Year: t.Year(), MonthKey: utils.MonthKey(t)}
		byMonth[ref] = append(byMonth[ref], m)
	}

	for ref, batch := range byMonth {
		if g.cfg.Generator.ForceRebuild {
			kept := make([]models.Message, 0)
			for _, m := range g.store.ReadMonth(ref.Year, ref.MonthKey) {
				if !utils.SameDay(day, m.Time(g.env.Zone)) {
					kept = append(kept, m)
				}
			}
			if err := g.store.WriteMonth(ref.Year, ref.MonthKey, append(kept, batch...)); err != nil {
				return err
			}
			continue
		}
		if err := g.store.MergeMonth(ref.Year, ref.MonthKey, batch); err != nil {
			return err
		}
	}
	return nil
}

// volumeForDay computes the expected message count: weekday volume well above
// weekend volume, with a week-of-month index of 4 or more signalling the
// end-of-month crunch that lifts weekend traffic.
func (g *Generator) volumeForDay(day time.Time) int {
	if utils.IsWeekend(day) {
		if utils.WeekOfMonth(day) >= 4 {
			return Between(g.env.Rand, 5, 10)
		}
		return Between(g.env.Rand, 2, 5)
	}
	return Between(g.env.Rand, 15, 25)
}

// defaultTimestamp draws the archetype-agnostic default send time: a 30%
// chance of an 18:00-21:00 late slot on weekdays, otherwise somewhere in the
// 08:00-17:59 working window, in the home timezone.
func (g *Generator) defaultTimestamp(day time.Time) int64 {
	var hour int
	if Chance(g.env.Rand, 0.3) && !utils.IsWeekend(day) {
		hour = Between(g.env.Rand, 18, 21)
	} else {
		hour = Between(g.env.Rand, 8, 17)
	}
	return utils.AtTime(day, hour, Between(g.env.Rand, 0, 59), g.env.Zone)
}

// messageFromDraft materializes an accepted draft into a wire message.
func (g *Generator) messageFromDraft(from models.Sender, draft *Draft, day time.Time) models.Message {
	ts := draft.When
	if ts == 0 {
		ts = g.defaultTimestamp(day)
	}

	attachments := draft.Attachments
	if attachments == nil && Chance(g.env.Rand, 0.15) {
		attachments = []models.Attachment{{
			Name: fmt.Sprintf("Report_%s.pdf", day.Format("Jan_06")),
			Size: Between(g.env.Rand, 500000, 2000000),
			Mime: "application/pdf",
		}}
	}
	if attachments == nil {
		attachments = []models.Attachment{}
	}

	return models.Message{
		ID:          uuid.NewString(),
		From:        from.Email,
		FromName:    from.Name,
		To:          g.roster.Owner.Email,
		Subject:     draft.Subject,
		Body:        draft.Body,
		Timestamp:   ts,
		IsRead:      Chance(g.env.Rand, 0.7),
		IsStarred:   Chance(g.env.Rand, 0.1),
		Labels:      []string{string(from.Archetype)},
		Attachments: attachments,
	}
}
