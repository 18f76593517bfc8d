package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mailsim/models"
)

// Satellite emission probabilities. Each accepted message rolls these
// independently.
const (
	replyProb   = 0.18
	oooProb     = 0.08
	receiptProb = 0.25 // external-client senders only
	junkProb    = 0.05
	inviteProb  = 0.07
)

const minute = int64(time.Minute / time.Millisecond)

// satellites spawns the causally related follow-ups of an accepted message:
// a reply from the recipient, an out-of-office auto-reply, a read receipt or
// bounce, leaked junk mail, and a calendar invite. Every satellite in the
// origin's thread carries a timestamp at or after the origin's.
func (g *Generator) satellites(origin models.Message, from models.Sender, day time.Time) []models.Message {
	var out []models.Message

	if Chance(g.env.Rand, replyProb) {
		out = append(out, g.ownerReply(origin))
	}
	if persona, ok := g.roster.OOOPersona(from.Email); ok && Chance(g.env.Rand, oooProb) {
		out = append(out, g.oooReply(origin, persona))
	}
	if from.Archetype == models.ArchetypeExternalClient && Chance(g.env.Rand, receiptProb) {
		out = append(out, g.systemNotice(origin))
	}
	if Chance(g.env.Rand, junkProb) {
		out = append(out, g.junkMessage(day))
	}
	if Chance(g.env.Rand, inviteProb) {
		out = append(out, g.calendarInvite(origin, from))
	}
	return out
}

// ownerReply answers the origin 15-120 minutes later from the mailbox owner.
func (g *Generator) ownerReply(origin models.Message) models.Message {
	return models.Message{
		ID:          uuid.NewString(),
		From:        g.roster.Owner.Email,
		FromName:    g.roster.Owner.Name,
		To:          origin.From,
		Subject:     "RE: " + origin.Subject,
		Body:        fmt.Sprintf("Thanks - will come back to you shortly.\n\n%s", g.roster.Owner.Name),
		Timestamp:   origin.Timestamp + int64(Between(g.env.Rand, 15, 120))*minute,
		IsRead:      true,
		Labels:      []string{"sent"},
		Attachments: []models.Attachment{},
		ThreadID:    origin.ID,
	}
}

// oooReply is the auto-response from the persona answering for the origin
// sender's mailbox, 2-6 hours later.
func (g *Generator) oooReply(origin models.Message, persona models.Sender) models.Message {
	return models.Message{
		ID:       uuid.NewString(),
		From:     persona.Email,
		FromName: persona.Name,
		To:       g.roster.Owner.Email,
		Subject:  "Automatic reply: " + origin.Subject,
		Body: fmt.Sprintf("I am currently out of the office with limited access to email and will respond on my return.\n\nFor urgent matters please contact the desk.\n\n%s",
			persona.Signature),
		Timestamp:   origin.Timestamp + int64(Between(g.env.Rand, 120, 360))*minute,
		IsRead:      Chance(g.env.Rand, 0.5),
		Labels:      []string{string(models.ArchetypeInternalOOO)},
		Attachments: []models.Attachment{},
		ThreadID:    origin.ID,
	}
}

// systemNotice emits a read receipt or a bounce 12-18 hours after a client
// message.
func (g *Generator) systemNotice(origin models.Message) models.Message {
	system := g.roster.ByArchetype(models.ArchetypeInternalSystem)
	from := models.Sender{Name: "Mail Delivery Subsystem", Email: "mailer-daemon@meridiancap.com.au"}
	if len(system) > 0 {
		from = Pick(g.env.Rand, system)
	}

	subject := "Read: " + origin.Subject
	body := fmt.Sprintf("Your message\n\n    To: %s\n    Subject: %s\n\nwas read.", origin.From, origin.Subject)
	if Chance(g.env.Rand, 0.5) {
		subject = "Undeliverable: RE: " + origin.Subject
		body = fmt.Sprintf("Delivery has failed to these recipients or groups:\n\n%s\nThe recipient's mailbox is full and can't accept messages now. Please try resending this message later.", origin.From)
	}

	return models.Message{
		ID:          uuid.NewString(),
		From:        from.Email,
		FromName:    from.Name,
		To:          g.roster.Owner.Email,
		Subject:     subject,
		Body:        body,
		Timestamp:   origin.Timestamp + int64(Between(g.env.Rand, 720, 1080))*minute,
		IsRead:      Chance(g.env.Rand, 0.6),
		Labels:      []string{string(models.ArchetypeInternalSystem)},
		Attachments: []models.Attachment{},
		ThreadID:    origin.ID,
	}
}

// junkMessage fabricates a fully independent phishing-style message from a
// throwaway identity. It never joins a thread.
func (g *Generator) junkMessage(day time.Time) models.Message {
	names := []string{"Prize Department", "Account Security", "Parcel Tracking", "Crypto Insights Daily", "IT Helpdesk Support"}
	domains := []string{"winbig-now.top", "secure-verify.info", "trackmyparcel.cc", "cryptodaily.biz", "helpdesk-portal.net"}
	subjects := []string{
		"You have (1) package awaiting delivery",
		"URGENT: verify your account within 24 hours",
		"Congratulations! You've been selected",
		"Final notice: invoice overdue",
	}

	name := Pick(g.env.Rand, names)
	return models.Message{
		ID:       uuid.NewString(),
		From:     fmt.Sprintf("noreply-%d@%s", Between(g.env.Rand, 1000, 9999), Pick(g.env.Rand, domains)),
		FromName: name,
		To:       g.roster.Owner.Email,
		Subject:  Pick(g.env.Rand, subjects),
		Body: fmt.Sprintf("Dear customer,\n\nWe detected unusual activity. Click the link below to confirm your details.\n\nhttp://%s/confirm\n\n%s",
			Pick(g.env.Rand, domains), name),
		Timestamp:   g.defaultTimestamp(day),
		Labels:      []string{string(models.ArchetypeExternalJunk)},
		Attachments: []models.Attachment{},
	}
}

// calendarInvite schedules a meeting 2-8 hours after the origin and sends
// the invite, with its .ics attachment, roughly an hour beforehand.
func (g *Generator) calendarInvite(origin models.Message, from models.Sender) models.Message {
	meetingTS := origin.Timestamp + int64(Between(g.env.Rand, 120, 480))*minute
	meeting := time.UnixMilli(meetingTS).In(g.env.Zone)
	topics := []string{"Portfolio Review", "Quarterly Catch-up", "Mandate Discussion", "Research Walkthrough"}
	topic := Pick(g.env.Rand, topics)

	ics := fmt.Sprintf("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nBEGIN:VEVENT\r\nDTSTART:%s\r\nSUMMARY:%s\r\nORGANIZER:mailto:%s\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n",
		meeting.UTC().Format("20060102T150405Z"), topic, from.Email)

	return models.Message{
		ID:       uuid.NewString(),
		From:     from.Email,
		FromName: from.Name,
		To:       g.roster.Owner.Email,
		Subject:  fmt.Sprintf("Invitation: %s @ %s", topic, meeting.Format("Mon 2 Jan 15:04")),
		Body: fmt.Sprintf("You have been invited to the following event.\n\n%s\nWhen: %s\n\n%s",
			topic, meeting.Format("Monday, 2 January 2006 15:04"), from.Signature),
		Timestamp:   meetingTS - 60*minute,
		IsRead:      Chance(g.env.Rand, 0.7),
		Labels:      []string{string(from.Archetype), "invite"},
		Attachments: []models.Attachment{{Name: "invite.ics", Size: len(ics), Mime: "text/calendar"}},
		ThreadID:    origin.ID,
	}
}
