package models

// Archetype categorizes a correspondent and decides which template store and
// scheduling rules apply to it.
type Archetype string

const (
	ArchetypeInternal           Archetype = "internal"
	ArchetypeInternalBrief      Archetype = "internal-brief"
	ArchetypeInternalAllStaff   Archetype = "internal-allstaff"
	ArchetypeInternalHR         Archetype = "internal-hr"
	ArchetypeInternalPM         Archetype = "internal-pm"
	ArchetypeInternalIT         Archetype = "internal-it"
	ArchetypeInternalCompliance Archetype = "internal-compliance"
	ArchetypeInternalOOO        Archetype = "internal-ooo"
	ArchetypeInternalSystem     Archetype = "internal-system"
	ArchetypeExternalClient     Archetype = "external-client"
	ArchetypeExternalVendor     Archetype = "external-vendor"
	ArchetypeExternalTeams      Archetype = "external-teams"
	ArchetypeExternalFacilities Archetype = "external-facilities"
	ArchetypeExternalCatering   Archetype = "external-catering"
	ArchetypeExternalRecruiter  Archetype = "external-recruiter"
	ArchetypeExternalJunk       Archetype = "external-junk"
)

// ScheduledOnly reports whether the archetype is emitted exclusively by fixed
// scheduling rules and must be excluded from random sender selection.
func (a Archetype) ScheduledOnly() bool {
	switch a {
	case ArchetypeInternalBrief, ArchetypeInternalAllStaff, ArchetypeExternalCatering:
		return true
	}
	return false
}

// SyntheticOnly reports whether the archetype only ever appears as a satellite
// of another message (auto-replies, receipts, junk leakage) and is never
// picked from the pool directly.
func (a Archetype) SyntheticOnly() bool {
	switch a {
	case ArchetypeInternalOOO, ArchetypeInternalSystem, ArchetypeExternalJunk:
		return true
	}
	return false
}

// Sender is a simulated correspondent. Senders are immutable and defined once
// at startup.
//
// AutoReplyFor marks an out-of-office virtual persona: it shares Email with a
// real sender and answers on that mailbox's behalf while its owner is away.
type Sender struct {
	Name         string
	Email        string
	Role         string
	Archetype    Archetype
	Signature    string
	AutoReplyFor string
}

// Mailbox identifies the simulated account every generated message is
// addressed to.
type Mailbox struct {
	Name  string
	Email string
}

// FirstName returns the leading word of the mailbox owner's display name,
// which the templates use for informal greetings.
func (m Mailbox) FirstName() string {
	for i := 0; i < len(m.Name); i++ {
		if m.Name[i] == ' ' {
			return m.Name[:i]
		}
	}
	return m.Name
}
