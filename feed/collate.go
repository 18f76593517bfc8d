package feed

import (
	"sort"

	"mailsim/models"
	"mailsim/utils"
)

// previewLength bounds the single-line excerpt shown under a thread subject.
const previewLength = 90

// Collate groups messages by thread key into display threads. The subject of
// the originating (oldest) message is kept unless a later constituent carries
// a reply/forward prefix, in which case the newest such subject wins, so an
// unrelated same-thread entry never clobbers the original subject.
//
// Threads come back sorted by latest-constituent timestamp descending.
func Collate(messages []models.Message) []models.Thread {
	desc := make([]models.Message, len(messages))
	copy(desc, messages)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].Timestamp > desc[j].Timestamp
	})

	type group struct {
		latest       models.Message
		oldest       models.Message
		replySubject string
		count        int
		unread       bool
	}

	var order []string
	groups := make(map[string]*group)

	for _, m := range desc {
		key := m.ThreadKey()
		grp, ok := groups[key]
		if !ok {
			grp = &group{latest: m}
			groups[key] = grp
			order = append(order, key)
		}
		grp.oldest = m
		grp.count++
		if !m.IsRead {
			grp.unread = true
		}
		// Walking newest-to-oldest, the first reply-prefixed subject seen is
		// the most recent one.
		if grp.replySubject == "" && utils.IsReplySubject(m.Subject) {
			grp.replySubject = m.Subject
		}
	}

	threads := make([]models.Thread, 0, len(order))
	for _, key := range order {
		grp := groups[key]
		subject := grp.oldest.Subject
		if grp.replySubject != "" {
			subject = grp.replySubject
		}
		threads = append(threads, models.Thread{
			ID:            key,
			Subject:       subject,
			Preview:       utils.Preview(grp.latest.Body, previewLength),
			Sender:        grp.latest.FromName,
			Avatar:        utils.Initials(grp.latest.FromName),
			Body:          grp.latest.Body,
			MessageCount:  grp.count,
			Unread:        grp.unread,
			LastTimestamp: grp.latest.Timestamp,
		})
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastTimestamp > threads[j].LastTimestamp
	})
	return threads
}
