package generator

import "mailsim/models"

// Roster is the immutable cast of simulated correspondents for one mailbox.
// It is built once at startup and passed explicitly into the generator.
type Roster struct {
	Owner   models.Mailbox
	Senders []models.Sender

	oooByEmail map[string]models.Sender
}

// NewRoster indexes the out-of-office personas by the address they answer
// for.
func NewRoster(owner models.Mailbox, senders []models.Sender) *Roster {
	r := &Roster{
		Owner:      owner,
		Senders:    senders,
		oooByEmail: make(map[string]models.Sender),
	}
	for _, s := range senders {
		if s.AutoReplyFor != "" {
			r.oooByEmail[s.AutoReplyFor] = s
		}
	}
	return r
}

// Pool returns the senders eligible for random selection: scheduled-only,
// synthetic-only and auto-reply personas are excluded.
func (r *Roster) Pool() []models.Sender {
	var pool []models.Sender
	for _, s := range r.Senders {
		if s.Archetype.ScheduledOnly() || s.Archetype.SyntheticOnly() || s.AutoReplyFor != "" {
			continue
		}
		pool = append(pool, s)
	}
	return pool
}

// ByArchetype returns all roster senders of the given archetype, excluding
// auto-reply personas.
func (r *Roster) ByArchetype(a models.Archetype) []models.Sender {
	var out []models.Sender
	for _, s := range r.Senders {
		if s.Archetype == a && s.AutoReplyFor == "" {
			out = append(out, s)
		}
	}
	return out
}

// OOOPersona returns the out-of-office persona answering for the given
// address, if one is defined.
func (r *Roster) OOOPersona(email string) (models.Sender, bool) {
	p, ok := r.oooByEmail[email]
	return p, ok
}

// KnownClients lists the institutional client names the templates reference
// so different messages stay internally consistent.
var KnownClients = []string{
	"Harbour Super",
	"Southern Cross Retirement Fund",
	"Kestrel Insurance",
	"Tasman Sovereign Fund",
	"Clearwater Endowment",
	"Pacific Rail Pension Scheme",
}

// DefaultOwner is the simulated account all generated mail is addressed to.
func DefaultOwner() models.Mailbox {
	return models.Mailbox{
		Name:  "Alex Mercer",
		Email: "alex.mercer@meridiancap.com.au",
	}
}

// DefaultSenders returns the standard cast for the Meridian Capital mailbox.
func DefaultSenders() []models.Sender {
	return []models.Sender{
		{
			Name:      "Priya Raman",
			Email:     "priya.raman@meridiancap.com.au",
			Role:      "Executive Director | Head of Equity Research",
			Archetype: models.ArchetypeInternal,
			Signature: "--\nPriya Raman\nExecutive Director | Head of Equity Research\nMeridian Capital Management\nLevel 24, 360 Collins Street, Melbourne VIC 3000\nTel: +61 3 9600 1200\n",
		},
		{
			Name:      "Daniel Okafor",
			Email:     "daniel.okafor@meridiancap.com.au",
			Role:      "Markets Analyst",
			Archetype: models.ArchetypeInternal,
			Signature: "--\nDaniel Okafor\nMarkets Analyst\nMeridian Capital Management\nMelbourne, Australia\n",
		},
		{
			Name:      "Grace Liu",
			Email:     "grace.liu@meridiancap.com.au",
			Role:      "Credit Analyst | Fixed Income",
			Archetype: models.ArchetypeInternal,
			Signature: "--\nGrace Liu\nCredit Analyst | Fixed Income\nMeridian Capital Management\nSydney, Australia\n",
		},
		{
			Name:      "Meridian Research",
			Email:     "research@meridiancap.com.au",
			Role:      "Global Research",
			Archetype: models.ArchetypeInternalBrief,
			Signature: "--\nMeridian Research\nThis is an automated daily briefing.\nFor more information, please contact your representative.",
		},
		{
			Name:      "Margaret Holt",
			Email:     "margaret.holt@meridiancap.com.au",
			Role:      "Chief Executive Officer",
			Archetype: models.ArchetypeInternalAllStaff,
			Signature: "--\nMargaret Holt\nChief Executive Officer\nMeridian Capital Management",
		},
		{
			Name:      "James Whitfield",
			Email:     "james.whitfield@meridiancap.com.au",
			Role:      "Chief Investment Officer",
			Archetype: models.ArchetypeInternalAllStaff,
			Signature: "--\nJames Whitfield\nChief Investment Officer\nMeridian Capital Management",
		},
		{
			Name:      "Meridian People & Payroll",
			Email:     "payroll@meridiancap.com.au",
			Role:      "Payroll Operations",
			Archetype: models.ArchetypeInternalHR,
			Signature: "--\nMeridian People & Payroll\nThis is an automated notification. Please do not reply.\nFor inquiries, please contact HR Services.",
		},
		{
			Name:      "Victor Casella",
			Email:     "victor.casella@meridiancap.com.au",
			Role:      "Managing Director, Portfolio Manager",
			Archetype: models.ArchetypeInternalPM,
			Signature: "--\nVictor Casella\nManaging Director, Portfolio Manager\nMeridian Capital Management\nSydney, Australia\nTel: +61 2 8234 7700",
		},
		{
			Name:      "Meridian IT Service Desk",
			Email:     "servicedesk@meridiancap.com.au",
			Role:      "Technology Operations",
			Archetype: models.ArchetypeInternalIT,
			Signature: "--\nMeridian IT Service Desk\nRaise a ticket: https://servicedesk.meridiancap.com.au",
		},
		{
			Name:      "Compliance Office",
			Email:     "compliance@meridiancap.com.au",
			Role:      "Regulatory Compliance",
			Archetype: models.ArchetypeInternalCompliance,
			Signature: "--\nCompliance Office\nMeridian Capital Management\nThis message may contain confidential information.",
		},
		{
			Name:      "Microsoft Outlook",
			Email:     "noreply@meridiancap.com.au",
			Role:      "Mail System",
			Archetype: models.ArchetypeInternalSystem,
			Signature: "",
		},
		{
			Name:      "Nadia Kovac",
			Email:     "investments@harboursuper.com.au",
			Role:      "Senior Portfolio Manager, Harbour Super",
			Archetype: models.ArchetypeExternalClient,
			Signature: "--\nNadia Kovac\nSenior Portfolio Manager\nHarbour Super\nTel: +61 2 9922 4100",
		},
		{
			Name:      "Tom Beaumont",
			Email:     "mandates@scrf.com.au",
			Role:      "Investment Analyst, Southern Cross Retirement Fund",
			Archetype: models.ArchetypeExternalClient,
			Signature: "--\nTom Beaumont\nInvestment Analyst\nSouthern Cross Retirement Fund",
		},
		{
			Name:      "Kestrel Treasury",
			Email:     "group.treasury@kestrel.com",
			Role:      "Group Treasury, Kestrel Insurance",
			Archetype: models.ArchetypeExternalClient,
			Signature: "--\nGroup Treasury\nKestrel Insurance",
		},
		{
			Name:      "Tasman Sovereign Fund",
			Email:     "mandates@tasmanfund.govt.nz",
			Role:      "Institutional Client",
			Archetype: models.ArchetypeExternalClient,
			Signature: "--\nTasman Sovereign Fund\nWellington, New Zealand",
		},
		{
			Name:      "FactSet Alerts",
			Email:     "alerts@factset.com",
			Role:      "Market Data",
			Archetype: models.ArchetypeExternalVendor,
			Signature: "--\nFactSet Alert Service\nVisit: www.factset.com",
		},
		{
			Name:      "Microsoft Teams",
			Email:     "no-reply@teams.microsoft.com",
			Role:      "Notifications",
			Archetype: models.ArchetypeExternalTeams,
			Signature: "--\nThis message was sent from a notification-only address that cannot accept incoming email.\nPlease do not reply to this message.",
		},
		{
			Name:      "Collins Tower Facilities",
			Email:     "facilities@collinstower.com.au",
			Role:      "Building Management",
			Archetype: models.ArchetypeExternalFacilities,
			Signature: "--\nCollins Tower Facilities Management\n360 Collins Street, Melbourne VIC 3000\nTel: +61 3 8640 2200",
		},
		{
			Name:      "Atrium Catering",
			Email:     "menus@atriumcatering.com.au",
			Role:      "Catering Services",
			Archetype: models.ArchetypeExternalCatering,
			Signature: "--\nAtrium Catering\nLevel 1, 360 Collins Street, Melbourne VIC 3000",
		},
		{
			Name:      "Eleanor Brass",
			Email:     "ebrass@selwynpartners.com",
			Role:      "Executive Search, Selwyn Partners",
			Archetype: models.ArchetypeExternalRecruiter,
			Signature: "--\nEleanor Brass\nPartner, Financial Services Practice\nSelwyn Partners Executive Search\nMobile: +61 412 665 903",
		},
		// Out-of-office personas answering for real mailboxes.
		{
			Name:         "Priya Raman (Automatic Reply)",
			Email:        "priya.raman@meridiancap.com.au",
			Role:         "Out of Office",
			Archetype:    models.ArchetypeInternalOOO,
			Signature:    "--\nPriya Raman\nMeridian Capital Management",
			AutoReplyFor: "priya.raman@meridiancap.com.au",
		},
		{
			Name:         "Victor Casella (Automatic Reply)",
			Email:        "victor.casella@meridiancap.com.au",
			Role:         "Out of Office",
			Archetype:    models.ArchetypeInternalOOO,
			Signature:    "--\nVictor Casella\nMeridian Capital Management",
			AutoReplyFor: "victor.casella@meridiancap.com.au",
		},
	}
}

// DefaultRoster assembles the standard owner and cast.
func DefaultRoster() *Roster {
	return NewRoster(DefaultOwner(), DefaultSenders())
}
