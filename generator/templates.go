package generator

import (
	"fmt"
	"strings"
	"time"

	"mailsim/models"
	"mailsim/utils"
)

// Env carries the shared state templates draw on: the random source and the
// organization's home timezone.
type Env struct {
	Rand Source
	Zone *time.Location
}

// Draft is an accepted template result. When is an optional UTC
// epoch-millisecond override; zero means the generator derives a default
// timestamp for the day.
type Draft struct {
	Subject     string
	Body        string
	When        int64
	Attachments []models.Attachment
}

// Template produces a draft for (sender, recipient, date), or nil when the
// template does not apply to that date. A nil result is an explicit decline,
// distinct from a draft with empty text.
type Template func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft

// Stores groups templates by archetype. An archetype with no store is
// silently skipped during random selection.
type Stores map[models.Archetype][]Template

func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

// DefaultStores returns the standard template stores.
func DefaultStores() Stores {
	return Stores{
		models.ArchetypeInternal: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				topics := []string{"iron ore model", "Harbour Super report", "Kestrel presentation", "lithium sector deep dive", "small caps screen"}
				topic := Pick(env.Rand, topics)
				return &Draft{
					Subject: fmt.Sprintf("Review of %s", topic),
					Body: fmt.Sprintf("Hi %s,\n\nI've just finished the first draft of the %s. Could you take a look?\n\nCheers,\n%s\n\n%s",
						to.FirstName(), topic, firstName(from.Name), from.Signature),
				}
			},
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				greetings := []string{"Hi " + to.FirstName(), "Morning", to.FirstName(), "Hey"}
				return &Draft{
					Subject: "Client Request Follow-up",
					Body: fmt.Sprintf("%s,\n\nQuick reminder that %s needs a final sign-off before their board pack goes out.\n\nThanks,\n%s\n\n%s",
						Pick(env.Rand, greetings), Pick(env.Rand, KnownClients), firstName(from.Name), from.Signature),
				}
			},
		},
		models.ArchetypeExternalClient: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				topics := []string{"performance report", "investment committee meeting", "request for proposal", "transition of funds", "fee review"}
				deadlines := []string{"tomorrow", "Thursday", "the end of next week"}
				topic := Pick(env.Rand, topics)
				return &Draft{
					Subject: fmt.Sprintf("Follow-up: %s", topic),
					Body: fmt.Sprintf("Hi %s,\n\nHope you are well.\n\nI'm following up on the %s. We require an update by EOD %s for our trustees.\n\nCould you please provide a status update?\n\nKind regards,\n%s\n\n%s",
						to.FirstName(), topic, Pick(env.Rand, deadlines), from.Name, from.Signature),
				}
			},
		},
		models.ArchetypeExternalVendor: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				alerts := []string{"unusual options activity", "analyst rating changes", "price target revision"}
				tickers := []string{"BHP", "RIO", "FMG", "WDS"}
				return &Draft{
					Subject: fmt.Sprintf("Alert: %s - %s", Pick(env.Rand, tickers), Pick(env.Rand, alerts)),
					Body: fmt.Sprintf("This is an automated alert.\n\nSecurity: %s AX Equity\nEvent: %s detected.\n\n%s",
						Pick(env.Rand, tickers), Pick(env.Rand, alerts), from.Signature),
				}
			},
		},
		models.ArchetypeInternalBrief: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				tones := []string{"risk-off", "risk-on", "mixed", "cautious"}
				movers := []string{"The USD strengthened", "Oil futures dropped", "Tech stocks rallied", "Base metals were volatile"}
				events := []string{"FOMC Minutes", "AU Employment Data", "China PMI", "RBA Speech"}
				return &Draft{
					Subject: fmt.Sprintf("AM Brief: %s", day.Format("Mon, 2 Jan 2006")),
					Body: fmt.Sprintf("Good morning,\n\nOvernight Market Summary:\nThe tone was %s. %s overnight.\n\nKey Event Today: %s at %d:00 AEST.\n\nKey Reads for Today:\n- Meridian Research: %s review ahead of reporting season\n- Desk note: positioning into the %s print\n\n%s",
						Pick(env.Rand, tones), Pick(env.Rand, movers), Pick(env.Rand, events),
						Between(env.Rand, 10, 15), Pick(env.Rand, KnownClients), Pick(env.Rand, events), from.Signature),
				}
			},
		},
		models.ArchetypeExternalTeams: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				people := []string{"Priya Raman", "Daniel Okafor", "Grace Liu", "The Resources Team"}
				return &Draft{
					Subject: fmt.Sprintf("Missed call from %s", Pick(env.Rand, people)),
					Body: fmt.Sprintf("You missed a call.\n\n%s tried to call you at %d:%02d.\n\n%s",
						Pick(env.Rand, people), Between(env.Rand, 9, 16), Between(env.Rand, 10, 59), from.Signature),
				}
			},
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				meetings := []string{"Q3 Performance Review", "Iron Ore Deep Dive", Pick(env.Rand, KnownClients) + " Investment Committee", "Weekly Team Sync"}
				return &Draft{
					Subject: fmt.Sprintf("Reminder: %q starts in 15 minutes", Pick(env.Rand, meetings)),
					Body:    fmt.Sprintf("This is a reminder for your upcoming meeting.\n\n%s", from.Signature),
				}
			},
			// Weekday-only morning huddle, pinned to 8:30 local.
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				if utils.IsWeekend(day) {
					return nil
				}
				return &Draft{
					Subject: `Reminder: "Resources Morning Huddle" starts at 8:30 AM`,
					Body:    fmt.Sprintf("This is a reminder for your daily team meeting.\n\n%s", from.Signature),
					When:    utils.AtTime(day, 8, 30, env.Zone),
				}
			},
			// Friday-only sector wrap, pinned to 16:00 local.
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				if day.Weekday() != time.Friday {
					return nil
				}
				return &Draft{
					Subject: `Reminder: "Weekly Metals & Mining Wrap" starts at 4:00 PM`,
					Body:    fmt.Sprintf("This is a reminder for the weekly sector-wide meeting.\n\n%s", from.Signature),
					When:    utils.AtTime(day, 16, 0, env.Zone),
				}
			},
		},
		models.ArchetypeExternalFacilities: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				days := []string{"Monday", "Wednesday"}
				return &Draft{
					Subject: "Building Update: Scheduled Fire Drill",
					Body: fmt.Sprintf("Dear Occupants,\n\nA scheduled fire drill will be conducted this %s morning between 10:00 AM - 11:00 AM. All building employees must participate. Please follow instructions from your floor wardens.\n\nRegards,\nFacilities Team\n\n%s",
						Pick(env.Rand, days), from.Signature),
				}
			},
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				return &Draft{
					Subject: "Important: Air Conditioning Maintenance Tonight",
					Body:    fmt.Sprintf("Please be advised that essential maintenance will be performed on the building's air conditioning system after 7:00 PM tonight. Some noise disruption may occur.\n\nWe appreciate your patience and apologise for any inconvenience caused.\n\n%s", from.Signature),
				}
			},
		},
		models.ArchetypeInternalAllStaff: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				periods := []string{"period of market volatility", "successful quarter", "busy reporting season"}
				asks := []string{"focus on our clients", "uphold our first-class reputation", "work together as one team"}
				return &Draft{
					Subject: fmt.Sprintf("A note from %s", from.Name),
					Body: fmt.Sprintf("Dear colleagues,\n\nI am consistently impressed with your dedication and want to thank you for your hard work during this %s.\n\nPlease continue to %s.\n\nBest,\n%s\n\n%s",
						Pick(env.Rand, periods), Pick(env.Rand, asks), from.Name, from.Signature),
				}
			},
		},
		models.ArchetypeInternalHR: {
			// Payslips only land in the last week of the month.
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				if day.Day() < 25 {
					return nil
				}
				return &Draft{
					Subject: "Your Meridian Payslip is Available",
					Body: fmt.Sprintf("Dear %s,\n\nYour payslip for %s is now available online.\n\nTo view your payslip, please log in to the Employee Portal.\n\n%s",
						to.Name, day.Format("January 2006"), from.Signature),
				}
			},
		},
		models.ArchetypeInternalPM: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				actions := []string{"immediately reduce", "begin accumulating", "liquidate the", "hedge our exposure to"}
				assets := []string{"energy sector holdings", "iron ore position", "USD exposure", "small-cap portfolio"}
				greetings := []string{to.FirstName() + ",", "Team,", to.FirstName() + " -"}
				return &Draft{
					Subject: fmt.Sprintf("URGENT: Portfolio Adjustment for %s", Pick(env.Rand, KnownClients)),
					Body: fmt.Sprintf("%s\n\nClient instruction just came down. We need to %s the %s.\n\nPlease drop everything and model out the implications. I need execution levels and a full impact analysis on my desk in 2 hours.\n\n%s\n\n%s",
						Pick(env.Rand, greetings), Pick(env.Rand, actions), Pick(env.Rand, assets), from.Name, from.Signature),
				}
			},
		},
		models.ArchetypeInternalIT: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				windows := []string{"Saturday 22:00 - Sunday 04:00", "Friday 23:00 - Saturday 03:00"}
				systems := []string{"the order management system", "network storage", "the VPN gateway", "Bloomberg connectivity"}
				return &Draft{
					Subject: "Planned Maintenance Window",
					Body: fmt.Sprintf("Dear colleague,\n\nScheduled maintenance will be performed on %s during %s. Brief interruptions are expected.\n\nNo action is required.\n\n%s",
						Pick(env.Rand, systems), Pick(env.Rand, windows), from.Signature),
				}
			},
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				return &Draft{
					Subject: "Action Required: Password Expiry",
					Body: fmt.Sprintf("Dear %s,\n\nYour network password expires in %d days. Please update it via the self-service portal before expiry to avoid losing access.\n\n%s",
						to.FirstName(), Between(env.Rand, 3, 14), from.Signature),
				}
			},
		},
		models.ArchetypeInternalCompliance: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				trainings := []string{"Anti-Money Laundering", "Market Conduct", "Information Barriers", "Personal Trading Policy"}
				return &Draft{
					Subject: fmt.Sprintf("Reminder: %s training due", Pick(env.Rand, trainings)),
					Body: fmt.Sprintf("Dear %s,\n\nOur records show your annual compliance training is outstanding. Please complete the module within %d business days.\n\n%s",
						to.FirstName(), Between(env.Rand, 5, 10), from.Signature),
				}
			},
		},
		models.ArchetypeExternalRecruiter: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				roles := []string{"Head of Research", "Senior Portfolio Manager", "Director, Equities", "Chief Investment Officer (boutique)"}
				return &Draft{
					Subject: "Confidential opportunity - " + Pick(env.Rand, roles),
					Body: fmt.Sprintf("Hi %s,\n\nI'm retained on a %s search for a well-regarded investment house and your name keeps coming up. Would you be open to a short, confidential call this week?\n\nBest regards,\n%s\n\n%s",
						to.FirstName(), Pick(env.Rand, roles), from.Name, from.Signature),
				}
			},
		},
		models.ArchetypeExternalCatering: {
			func(env *Env, from models.Sender, to models.Mailbox, day time.Time) *Draft {
				mains := []string{"slow-roasted lamb shoulder", "miso-glazed salmon", "wild mushroom risotto", "char siu pork belly"}
				sides := []string{"heirloom tomato salad", "duck fat potatoes", "charred broccolini", "soba noodle slaw"}
				return &Draft{
					Subject: fmt.Sprintf("Today's Menu - %s", day.Format("Monday 2 January")),
					Body: fmt.Sprintf("Good morning,\n\nToday's lunch service features %s with %s, plus the usual salad bar.\n\nPre-orders close at 11:00 AM.\n\n%s",
						Pick(env.Rand, mains), Pick(env.Rand, sides), from.Signature),
					When: utils.AtTime(day, 9, Between(env.Rand, 0, 45), env.Zone),
				}
			},
		},
	}
}
