// Package fixture builds the 15-client demo snapshot used by the demo
// source, documentation and tests. The data is constructed relative to a
// caller-supplied clock, never stored as package state, so the engine's
// purity holds and two builds against the same clock are identical.
package fixture

import (
	"time"

	"github.com/soscreative/hotline-intel/internal/model"
)

// Snapshot returns the demo dataset: 15 clients — 12 paid, 3 unpaid leads —
// spread across every pipeline stage, every product and most channels, plus
// a partially answered intake questionnaire. All dates are relative to now.
func Snapshot(now time.Time) model.Snapshot {
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	agoPtr := func(days int) *time.Time { t := ago(days); return &t }

	clients := []model.Client{
		{
			ID: "demo-p01", Name: "Sarah Chen", Email: "sarah@studiolumen.com",
			Phone: "+1-310-555-1234", Status: model.StatusFollowUpSent,
			Product: model.ProductSingleCall, Amount: 699,
			LeadSource: model.SourceReferral,
			Created:    ago(20), PaymentDate: agoPtr(18), CallDate: agoPtr(12),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p02", Name: "Marcus Rivera", Email: "marcus@rivieracollective.co",
			Phone: "+1-718-555-2345", Status: model.StatusFollowUpSent,
			Product: model.ProductSprint, Amount: 1495,
			LeadSource: model.SourceLinkedIn,
			Created:    ago(28), PaymentDate: agoPtr(25), CallDate: agoPtr(18),
			DaysToConvert: 3,
		},
		{
			ID: "demo-p03", Name: "Priya Kaur", Email: "priya@goldthreadstudio.com",
			Phone: "+1-415-555-3456", Status: model.StatusCallComplete,
			Product: model.ProductFirstCall, Amount: 499,
			LeadSource: model.SourceIGDM,
			Created:    ago(12), PaymentDate: agoPtr(10), CallDate: agoPtr(3),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p04", Name: "Tyler Brooks", Email: "tyler@ironbarkdesign.com",
			Phone: "+1-512-555-4567", Status: model.StatusCallComplete,
			Product: model.ProductSingleCall, Amount: 699,
			LeadSource: model.SourceWebsite,
			Created:    ago(10), PaymentDate: agoPtr(8), CallDate: agoPtr(2),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p05", Name: "Jenna Morales", Email: "jenna@mosaiccreative.co",
			Phone: "+1-213-555-5678", Status: model.StatusReadyForCall,
			Product: model.ProductSprint, Amount: 1495,
			LeadSource: model.SourceReferral,
			Created:    ago(9), PaymentDate: agoPtr(7), CallDate: agoPtr(-1),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p06", Name: "David Kim", Email: "david@halcyonstudios.com",
			Phone: "+1-323-555-6789", Status: model.StatusIntakeDone,
			Product: model.ProductSingleCall, Amount: 699,
			LeadSource: model.SourceMetaAd,
			Created:    ago(8), PaymentDate: agoPtr(6), CallDate: agoPtr(-3),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p07", Name: "Amara Osei", Email: "amara@firstandten.co",
			Phone: "+1-404-555-7890", Status: model.StatusIntakeDone,
			Product: model.ProductFirstCall, Amount: 499,
			LeadSource: model.SourceIGComment,
			Created:    ago(7), PaymentDate: agoPtr(5), CallDate: agoPtr(-4),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p08", Name: "Naomi Tanaka", Email: "naomi@kintsugibrands.com",
			Phone: "+1-503-555-8901", Status: model.StatusBooked,
			Product: model.ProductSingleCall, Amount: 699,
			LeadSource: model.SourceIGDM,
			Created:    ago(6), PaymentDate: agoPtr(4), CallDate: agoPtr(-2),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p09", Name: "Elijah Washington", Email: "elijah@boldframefilms.com",
			Phone: "+1-310-555-9012", Status: model.StatusBooked,
			Product: model.ProductSprint, Amount: 1495,
			LeadSource: model.SourceReferral,
			Created:    ago(5), PaymentDate: agoPtr(3), CallDate: agoPtr(-5),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p10", Name: "Lucia Ferreira", Email: "lucia@verdecreativo.com",
			Phone: "+1-305-555-0123", Status: model.StatusPaid,
			Product: model.ProductFirstCall, Amount: 499,
			LeadSource: model.SourceMetaAd,
			Created:    ago(2), PaymentDate: agoPtr(2),
			DaysToConvert: 0,
		},
		{
			ID: "demo-p11", Name: "Raj Patel", Email: "raj@neonlabcreative.com",
			Phone: "+1-646-555-1230", Status: model.StatusLead,
			LeadSource: model.SourceLinkedIn,
			Created:    ago(7),
		},
		{
			ID: "demo-p12", Name: "Mia Rossi", Email: "mia@rossiarchive.com",
			Phone: "+1-917-555-2340", Status: model.StatusLead,
			LeadSource: model.SourceIGStory,
			Created:    ago(5),
		},
		{
			ID: "demo-p13", Name: "Jordan Ellis", Email: "jordan@blankcanvasagency.com",
			Phone: "+1-773-555-3450", Status: model.StatusLead,
			LeadSource: model.SourceIGDM,
			Created:    ago(10),
		},
		{
			ID: "demo-p14", Name: "Anika Shaw", Email: "anika@copperlightphoto.com",
			Phone: "+1-206-555-4560", Status: model.StatusFollowUpSent,
			Product: model.ProductFirstCall, Amount: 499,
			LeadSource: model.SourceDirect,
			Created:    ago(32), PaymentDate: agoPtr(30), CallDate: agoPtr(24),
			DaysToConvert: 2,
		},
		{
			ID: "demo-p15", Name: "Oscar Delgado", Email: "oscar@territoriocreativo.com",
			Phone: "+1-512-555-5670", Status: model.StatusCallComplete,
			Product: model.ProductFirstCall, Amount: 499,
			LeadSource: model.SourceWebsite,
			Created:    ago(16), PaymentDate: agoPtr(14), CallDate: agoPtr(7),
			DaysToConvert: 2,
		},
	}

	intake := &model.IntakeData{
		EmailListSize:     model.Ptr(120),
		PricingConfidence: model.Ptr(5),
		HasWebsite:        model.Ptr(true),
		HasCaseStudies:    model.Ptr(false),
		HasTestimonials:   model.Ptr(true),
		SocialFollowers:   model.Ptr(4_200),
		HasSOPs:           model.Ptr(false),
		ContentFrequency:  model.Ptr(model.ContentRarely),
	}

	return model.Snapshot{Clients: clients, Intake: intake}
}
