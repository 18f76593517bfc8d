package generator

import (
	"time"

	"mailsim/models"
	"mailsim/utils"
)

// Probability of the rare executive all-staff broadcast on any given day.
const allStaffProb = 0.002

// scheduledForDay emits the fixed-rule messages seeded before random
// sampling: the weekday research briefing, the probability-gated catering
// menu, and the rare executive broadcast. Scheduled messages count toward the
// day's volume target but are never drawn from the random pool.
func (g *Generator) scheduledForDay(day time.Time) []models.Message {
	var messages []models.Message

	if !utils.IsWeekend(day) {
		if m, ok := g.morningBrief(day); ok {
			messages = append(messages, m)
		}
		if m, ok := g.cateringMenu(day); ok {
			messages = append(messages, m)
		}
	}

	if Chance(g.env.Rand, allStaffProb) {
		if m, ok := g.allStaffBroadcast(day); ok {
			messages = append(messages, m)
		}
	}
	return messages
}

// morningBrief lands the recurring research briefing at a pseudo-random
// minute between 6:30 and 6:59 local time. Briefings arrive pre-read.
func (g *Generator) morningBrief(day time.Time) (models.Message, bool) {
	msg, ok := g.scheduledMessage(models.ArchetypeInternalBrief, day)
	if !ok {
		return models.Message{}, false
	}
	msg.Timestamp = utils.AtTime(day, 6, Between(g.env.Rand, 30, 59), g.env.Zone)
	msg.IsRead = true
	return msg, true
}

// cateringMenu is gated on the configured daily probability.
func (g *Generator) cateringMenu(day time.Time) (models.Message, bool) {
	if !Chance(g.env.Rand, g.cfg.Generator.CateringProb) {
		return models.Message{}, false
	}
	return g.scheduledMessage(models.ArchetypeExternalCatering, day)
}

func (g *Generator) allStaffBroadcast(day time.Time) (models.Message, bool) {
	msg, ok := g.scheduledMessage(models.ArchetypeInternalAllStaff, day)
	if !ok {
		return models.Message{}, false
	}
	msg.IsRead = Chance(g.env.Rand, 0.8)
	return msg, true
}

// scheduledMessage renders one message from the archetype's template store
// with a randomly chosen sender of that archetype. Missing senders or stores,
// and declining templates, skip the emission.
func (g *Generator) scheduledMessage(a models.Archetype, day time.Time) (models.Message, bool) {
	senders := g.roster.ByArchetype(a)
	store := g.stores[a]
	if len(senders) == 0 || len(store) == 0 {
		return models.Message{}, false
	}

	from := Pick(g.env.Rand, senders)
	draft := Pick(g.env.Rand, store)(g.env, from, g.roster.Owner, day)
	if draft == nil {
		return models.Message{}, false
	}
	return g.messageFromDraft(from, draft, day), true
}
