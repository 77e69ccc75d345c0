package consultant

// Topic is one entry of the static certification knowledge table.
// Entries are defined once at startup and never mutated.
//
// Fields:
//
//	Key      – lowercase token matched against incoming messages.
//	Title    – display title of the standard.
//	Overview – one-sentence summary.
//	Steps    – typical consulting steps, in delivery order.
//	Timeline – typical duration for an SME engagement.
//	Benefits – headline benefits of certification.
type Topic struct {
	Key      string
	Title    string
	Overview string
	Steps    []string
	Timeline string
	Benefits []string
}

// topics is the certification table consulted by Dispatch. It is an
// ordered slice rather than a map: when a message mentions more than
// one standard, the first entry in this order wins, and that order
// must stay stable across releases.
var topics = []Topic{
	{
		Key:      "iso 9001",
		Title:    "ISO 9001 (Quality Management)",
		Overview: "Framework for consistent quality, customer satisfaction, and continual improvement.",
		Steps: []string{
			"Gap analysis against ISO 9001:2015 requirements",
			"Define scope and process mapping",
			"Build QMS documentation and controls",
			"Train teams and run internal audits",
			"Management review and certification audit support",
		},
		Timeline: "8–16 weeks for most SMEs",
		Benefits: []string{"Reduced defects", "Higher customer trust", "Operational consistency"},
	},
	{
		Key:      "iso 27001",
		Title:    "ISO/IEC 27001 (Information Security)",
		Overview: "ISMS to manage risk, controls (Annex A), and continuous improvement.",
		Steps: []string{
			"Risk assessment and Statement of Applicability",
			"Policies, procedures, and control implementation",
			"Security awareness and incident response",
			"Internal audit and readiness assessment",
			"Stage 1 & 2 certification audit support",
		},
		Timeline: "10–20 weeks depending on scope",
		Benefits: []string{"Reduced security risk", "Stakeholder assurance", "Compliance readiness"},
	},
	{
		Key:      "iso 14001",
		Title:    "ISO 14001 (Environmental Management)",
		Overview: "EMS to manage environmental responsibilities systematically.",
		Steps: []string{
			"Identify aspects and impacts",
			"Set objectives and operational controls",
			"Training and awareness",
			"Internal audit and management review",
			"Certification audit support",
		},
		Timeline: "8–14 weeks",
		Benefits: []string{"Reduced environmental impact", "Regulatory compliance", "Cost savings"},
	},
}

// Topics returns the certification table in match order. Callers must
// treat the returned slice as read-only.
func Topics() []Topic {
	return topics
}
