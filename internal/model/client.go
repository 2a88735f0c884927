// Package model defines the record shapes shared by every part of the
// intelligence engine. Types here carry no behavior beyond small invariant
// helpers; all computation lives in the engine packages.
package model

import "time"

// Status is a client's pipeline lifecycle stage.
type Status string

const (
	StatusLead         Status = "Lead - Laylo"
	StatusPaid         Status = "Paid - Needs Booking"
	StatusBooked       Status = "Booked - Needs Intake"
	StatusIntakeDone   Status = "Intake Complete"
	StatusReadyForCall Status = "Ready for Call"
	StatusCallComplete Status = "Call Complete"
	StatusFollowUpSent Status = "Follow-Up Sent"
)

// PipelineOrder is the canonical stage sequence from lead capture through
// post-call follow-up. Aggregations that report per-stage rows iterate this
// slice, never a map, so output order is stable.
var PipelineOrder = []Status{
	StatusLead,
	StatusPaid,
	StatusBooked,
	StatusIntakeDone,
	StatusReadyForCall,
	StatusCallComplete,
	StatusFollowUpSent,
}

// statusRank maps each status to its position in PipelineOrder.
var statusRank = func() map[Status]int {
	m := make(map[Status]int, len(PipelineOrder))
	for i, s := range PipelineOrder {
		m[s] = i
	}
	return m
}()

// Rank returns the status's position in the pipeline order, or -1 for an
// unknown status. Unknown statuses are tolerated everywhere and degrade to
// the lowest scores rather than erroring; CRM exports are approximate.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether the status has reached the given stage or beyond.
// Unknown statuses have reached nothing.
func (s Status) AtLeast(stage Status) bool {
	r := s.Rank()
	return r >= 0 && r >= stage.Rank()
}

// LeadSource is an acquisition channel.
type LeadSource string

const (
	SourceReferral  LeadSource = "Referral"
	SourceIGDM      LeadSource = "IG DM"
	SourceIGComment LeadSource = "IG Comment"
	SourceIGStory   LeadSource = "IG Story"
	SourceWebsite   LeadSource = "Website"
	SourceLinkedIn  LeadSource = "LinkedIn"
	SourceMetaAd    LeadSource = "Meta Ad"
	SourceDirect    LeadSource = "Direct"
)

// Product is a purchasable offering.
type Product string

const (
	ProductFirstCall  Product = "First Call"
	ProductSingleCall Product = "Single Call"
	ProductSprint     Product = "3-Session Clarity Sprint"
)

// ProductPrices is the current list price per product, used for LTV
// projection when the observed amount is missing or discounted.
var ProductPrices = map[Product]float64{
	ProductFirstCall:  499,
	ProductSingleCall: 699,
	ProductSprint:     1495,
}

// Client is a single lead/customer record as supplied by the CRM export.
// The engine treats client lists as immutable snapshots: records are never
// mutated or deleted, only re-read.
type Client struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Status Status `json:"status"`

	Product Product `json:"product,omitempty"`
	// Amount is the total paid to date; 0 iff the client has not completed
	// a payment.
	Amount float64 `json:"amount"`

	LeadSource LeadSource `json:"lead_source"`

	Created     time.Time  `json:"created"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	CallDate    *time.Time `json:"call_date,omitempty"`

	DaysToConvert int `json:"days_to_convert,omitempty"`
}

// Paid reports whether the client has completed at least one payment.
func (c Client) Paid() bool {
	return c.Amount > 0
}

// Snapshot is one immutable read of the CRM at a point in time: the full
// client list plus the optional intake questionnaire overlay.
type Snapshot struct {
	Clients []Client    `json:"clients"`
	Intake  *IntakeData `json:"intake,omitempty"`
}
