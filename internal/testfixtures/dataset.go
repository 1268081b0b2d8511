// Package testfixtures provides a small, fully linked seed dataset shared by
// storage, service and adapter tests.
package testfixtures

import (
	"encoding/json"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// AsOf is the reference date the freshness rows are written against.
const AsOf = "2026-10-01"

// Row counts of Dataset.
const (
	SourceCount             = 5
	RegimeCount             = 4
	ProvisionCount          = 10
	ExecutiveOrderCount     = 3
	DelistingProcedureCount = 3
	ExportControlCount      = 3
	CaseLawCount            = 4
	FreshnessCount          = 5
)

// Dataset returns a new copy of the fixture dataset. Callers may mutate it.
func Dataset() *domain.Dataset {
	return &domain.Dataset{
		SchemaVersion: "1.0",
		GeneratedAt:   "2026-09-30",
		Sources:       sources(),
		Regimes:       regimes(),
		Provisions:    provisions(),
		ExecutiveOrders: []domain.ExecutiveOrder{
			{
				ID:           "EO_13694",
				SourceID:     "US_OFAC_REGULATIONS",
				RegimeID:     "US_CYBER_EO13694",
				OrderNumber:  "13694",
				Title:        "Blocking the Property of Certain Persons Engaging in Significant Malicious Cyber-Enabled Activities",
				IssuedDate:   "2015-04-01",
				Status:       domain.OrderAmended,
				Summary:      "Authorizes blocking sanctions against persons responsible for malicious cyber-enabled activities.",
				CyberRelated: true,
				LegalBasis:   []string{"IEEPA", "NEA"},
				OfficialURL:  "https://ofac.treasury.gov/sanctions-programs-and-country-information/sanctions-related-to-significant-malicious-cyber-enabled-activities",
			},
			{
				ID:          "EO_14024",
				SourceID:    "US_OFAC_REGULATIONS",
				OrderNumber: "14024",
				Title:       "Blocking Property With Respect to Specified Harmful Foreign Activities of the Government of the Russian Federation",
				IssuedDate:  "2021-04-15",
				Status:      domain.OrderActive,
				Summary:     "Blocks property of persons operating in specified sectors of the Russian economy.",
				LegalBasis:  []string{"IEEPA"},
				OfficialURL: "https://ofac.treasury.gov/russian-harmful-foreign-activities-sanctions",
			},
			{
				ID:           "UK_CYBER_REGS_2020",
				SourceID:     "UK_OFSI_REGULATIONS",
				OrderNumber:  "SI 2020/597",
				Title:        "The Cyber (Sanctions) (EU Exit) Regulations 2020",
				IssuedDate:   "2020-12-31",
				Status:       domain.OrderActive,
				Summary:      "UK autonomous regime targeting persons involved in relevant cyber activity.",
				CyberRelated: true,
				LegalBasis:   []string{"Sanctions and Anti-Money Laundering Act 2018"},
				OfficialURL:  "https://www.legislation.gov.uk/uksi/2020/597",
			},
		},
		DelistingProcedures: []domain.DelistingProcedure{
			{
				ID:                  "EU_CYBER_DELISTING",
				RegimeID:            "EU_CYBER",
				Authority:           "Council of the European Union",
				ProcedureSummary:    "Request for reconsideration submitted to the Council with supporting evidence.",
				EvidentiaryStandard: "Sufficiently solid factual basis",
				ReviewBody:          "Council of the EU; General Court on annulment",
				ReviewTimeline:      "Annual review",
				ApplicationURL:      "https://www.consilium.europa.eu/en/policies/sanctions/",
				LegalBasis:          []string{"Council Decision (CFSP) 2019/797 Art. 10"},
			},
			{
				ID:                  "US_OFAC_DELISTING",
				RegimeID:            "US_CYBER_EO13694",
				Authority:           "Office of Foreign Assets Control",
				ProcedureSummary:    "Petition for removal from the SDN List under 31 CFR 501.807.",
				EvidentiaryStandard: "Change in circumstances or mistaken basis",
				ReviewBody:          "OFAC; federal district court under the APA",
				ReviewTimeline:      "No fixed timeline",
				ApplicationURL:      "https://ofac.treasury.gov/specially-designated-nationals-list-sdn-list/filing-a-petition-for-removal-from-an-ofac-list",
				LegalBasis:          []string{"31 CFR 501.807"},
			},
			{
				ID:                  "UN_OMBUDSPERSON",
				RegimeID:            "UN_1267",
				Authority:           "Office of the Ombudsperson",
				ProcedureSummary:    "Delisting request to the Ombudsperson with dialogue and comprehensive report.",
				EvidentiaryStandard: "Reasonable and credible basis",
				ReviewBody:          "1267 Committee",
				ReviewTimeline:      "Approximately 8 months",
				ApplicationURL:      "https://www.un.org/securitycouncil/ombudsperson",
				LegalBasis:          []string{"UNSCR 1904 (2009)", "UNSCR 2734 (2024)"},
			},
		},
		ExportControls: []domain.ExportControl{
			{
				ID:           "EU_DUAL_USE_ART_5",
				SourceID:     "EU_COUNCIL_SANCTIONS",
				Jurisdiction: "EU",
				Instrument:   "Regulation (EU) 2021/821",
				Section:      "Article 5",
				Title:        "Catch-all control for cyber-surveillance items",
				Summary:      "Authorisation required for non-listed cyber-surveillance items intended for internal repression.",
				Focus:        "cyber-surveillance",
				OfficialURL:  "https://eur-lex.europa.eu/eli/reg/2021/821/oj",
			},
			{
				ID:           "US_EAR_742_6",
				SourceID:     "US_OFAC_REGULATIONS",
				Jurisdiction: "US",
				Instrument:   "Export Administration Regulations",
				Section:      "742.6(b)(9)",
				Title:        "Cybersecurity items",
				Summary:      "Licence requirements for intrusion software and IP network surveillance items.",
				Focus:        "intrusion software",
				OfficialURL:  "https://www.ecfr.gov/current/title-15/part-742/section-742.6",
			},
			{
				ID:           "US_EAR_744_21",
				SourceID:     "US_OFAC_REGULATIONS",
				Jurisdiction: "US",
				Instrument:   "Export Administration Regulations",
				Section:      "744.21",
				Title:        "Military end use and end user restrictions",
				Summary:      "Licence requirements for items destined to military end uses in listed countries.",
				Focus:        "military end use",
				OfficialURL:  "https://www.ecfr.gov/current/title-15/part-744/section-744.21",
			},
		},
		CaseLaw: []domain.CaseLaw{
			{
				ID:               "CJEU_KADI_II",
				SourceID:         "INTL_CASE_LAW",
				Court:            "Court of Justice of the European Union",
				CaseReference:    "C-584/10 P",
				Title:            "Commission v Kadi",
				DecisionDate:     "2013-07-18",
				RegimeID:         "UN_1267",
				DelistingRelated: true,
				Outcome:          "Annulment upheld",
				Summary:          "EU courts must review whether listing reasons are substantiated.",
				Keywords:         []string{"judicial review", "delisting", "fundamental rights"},
				OfficialURL:      "https://curia.europa.eu/juris/liste.jsf?num=C-584/10",
			},
			{
				ID:               "ECTHR_NADA",
				SourceID:         "INTL_CASE_LAW",
				Court:            "European Court of Human Rights",
				CaseReference:    "10593/08",
				Title:            "Nada v Switzerland",
				DecisionDate:     "2012-09-12",
				RegimeID:         "UN_1267",
				DelistingRelated: true,
				Outcome:          "Violation of Articles 8 and 13",
				Summary:          "Implementation of UN travel ban without effective remedy breached the Convention.",
				Keywords:         []string{"travel ban", "effective remedy"},
				OfficialURL:      "https://hudoc.echr.coe.int/eng?i=001-113118",
			},
			{
				ID:            "GC_CYBER_T_2023",
				SourceID:      "INTL_CASE_LAW",
				Court:         "General Court of the European Union",
				CaseReference: "T-125/22",
				Title:         "Applicant v Council (cyber-attacks)",
				DecisionDate:  "2023-06-07",
				RegimeID:      "EU_CYBER",
				Outcome:       "Action dismissed",
				Summary:       "Listing under the cyber-attacks regime upheld.",
				Keywords:      []string{"cyber-attacks", "listing criteria"},
				OfficialURL:   "https://curia.europa.eu/",
			},
			{
				ID:               "DDC_DERIPASKA",
				SourceID:         "INTL_CASE_LAW",
				Court:            "U.S. District Court for the District of Columbia",
				CaseReference:    "19-cv-00727",
				Title:            "Deripaska v. Yellen",
				DecisionDate:     "2022-03-31",
				DelistingRelated: true,
				Outcome:          "Summary judgment for the government",
				Summary:          "OFAC designation upheld as supported by the administrative record.",
				Keywords:         []string{"designation", "APA review"},
				OfficialURL:      "https://www.courtlistener.com/",
			},
		},
		Freshness: []domain.SourceFreshness{
			{SourceID: "UN_SECURITY_COUNCIL", LastChecked: "2026-09-30", LastUpdated: "2026-09-21",
				CheckFrequency: domain.FrequencyDaily, Status: domain.FreshnessFresh},
			{SourceID: "EU_COUNCIL_SANCTIONS", LastChecked: "2026-09-30", LastUpdated: "2026-08-17",
				CheckFrequency: domain.FrequencyWeekly, Status: domain.FreshnessFresh},
			{SourceID: "US_OFAC_REGULATIONS", LastChecked: "2026-09-30", LastUpdated: "2026-08-17",
				CheckFrequency: domain.FrequencyDaily, Status: domain.FreshnessWarning},
			{SourceID: "UK_OFSI_REGULATIONS", LastChecked: "2026-09-30", LastUpdated: "2026-06-23",
				CheckFrequency: domain.FrequencyDaily, Status: domain.FreshnessStale,
				Notes: "Consolidated list feed moved"},
			{SourceID: "INTL_CASE_LAW", LastChecked: "", LastUpdated: "pending",
				CheckFrequency: domain.FrequencyMonthly, Status: domain.FreshnessPlanned},
		},
	}
}

// JSON returns Dataset encoded as a seed document.
func JSON() ([]byte, error) {
	return json.MarshalIndent(Dataset(), "", "  ")
}

func sources() []domain.Source {
	return []domain.Source{
		{
			ID:              "UN_SECURITY_COUNCIL",
			Name:            "UN Security Council Sanctions",
			Authority:       "United Nations Security Council",
			OfficialPortal:  "https://www.un.org/securitycouncil/sanctions/information",
			RetrievalMethod: "html",
			UpdateFrequency: domain.FrequencyDaily,
			RecordsEstimate: "~1,200 provisions",
			PriorityTier:    domain.PriorityCritical,
			CoverageNote:    "Resolutions establishing the UN sanctions committees",
			LastVerified:    "2026-09-30",
			Metadata:        map[string]any{"language": "en"},
		},
		{
			ID:              "EU_COUNCIL_SANCTIONS",
			Name:            "EU Council Restrictive Measures",
			Authority:       "Council of the European Union",
			OfficialPortal:  "https://eur-lex.europa.eu/",
			RetrievalMethod: "api",
			UpdateFrequency: domain.FrequencyWeekly,
			RecordsEstimate: "800",
			PriorityTier:    domain.PriorityCritical,
			CoverageNote:    "CFSP decisions and implementing regulations",
			LastVerified:    "2026-09-30",
		},
		{
			ID:              "US_OFAC_REGULATIONS",
			Name:            "OFAC Sanctions Regulations",
			Authority:       "U.S. Department of the Treasury",
			OfficialPortal:  "https://ofac.treasury.gov/",
			RetrievalMethod: "api",
			UpdateFrequency: domain.FrequencyDaily,
			RecordsEstimate: "2k",
			PriorityTier:    domain.PriorityHigh,
			CoverageNote:    "31 CFR chapter V and executive orders",
			LastVerified:    "2026-09-30",
		},
		{
			ID:              "UK_OFSI_REGULATIONS",
			Name:            "UK Sanctions Regulations",
			Authority:       "Office of Financial Sanctions Implementation",
			OfficialPortal:  "https://www.legislation.gov.uk/",
			RetrievalMethod: "html",
			UpdateFrequency: domain.FrequencyDaily,
			RecordsEstimate: "~300",
			PriorityTier:    domain.PriorityHigh,
			CoverageNote:    "Regulations made under SAMLA 2018",
			LastVerified:    "2026-09-28",
		},
		{
			ID:              "INTL_CASE_LAW",
			Name:            "Sanctions Case Law",
			Authority:       "Various courts",
			OfficialPortal:  "https://curia.europa.eu/",
			RetrievalMethod: "manual",
			UpdateFrequency: domain.FrequencyMonthly,
			RecordsEstimate: "",
			PriorityTier:    domain.PriorityMedium,
			CoverageNote:    "Leading judgments on listing and delisting",
		},
	}
}

func regimes() []domain.Regime {
	return []domain.Regime{
		{
			ID:                   "EU_CYBER",
			Name:                 "EU Cyber-Attacks Regime",
			Jurisdiction:         "EU",
			Authority:            "Council of the European Union",
			Summary:              "Restrictive measures against cyber-attacks threatening the Union or its Member States.",
			LegalBasis:           []string{"Council Decision (CFSP) 2019/797", "Council Regulation (EU) 2019/796"},
			CyberRelated:         true,
			DelistingProcedureID: "EU_CYBER_DELISTING",
			OfficialURL:          "https://eur-lex.europa.eu/eli/reg/2019/796/oj",
		},
		{
			ID:                   "US_CYBER_EO13694",
			Name:                 "Cyber-Related Sanctions",
			Jurisdiction:         "US",
			Authority:            "Office of Foreign Assets Control",
			Summary:              "Blocking sanctions on persons engaged in malicious cyber-enabled activities.",
			LegalBasis:           []string{"E.O. 13694", "E.O. 13757", "31 CFR part 578"},
			CyberRelated:         true,
			DelistingProcedureID: "US_OFAC_DELISTING",
			OfficialURL:          "https://ofac.treasury.gov/",
		},
		{
			ID:                   "UN_1267",
			Name:                 "ISIL (Da'esh) and Al-Qaida Sanctions",
			Jurisdiction:         "UN",
			Authority:            "Security Council Committee 1267",
			Summary:              "Asset freeze, travel ban and arms embargo against listed individuals and entities.",
			LegalBasis:           []string{"UNSCR 1267 (1999)", "UNSCR 2253 (2015)"},
			DelistingProcedureID: "UN_OMBUDSPERSON",
			OfficialURL:          "https://www.un.org/securitycouncil/sanctions/1267",
		},
		{
			ID:           "UK_RUSSIA",
			Name:         "UK Russia Regime",
			Jurisdiction: "UK",
			Authority:    "Foreign, Commonwealth and Development Office",
			Summary:      "Financial, trade and immigration sanctions relating to Russia.",
			LegalBasis:   []string{"The Russia (Sanctions) (EU Exit) Regulations 2019"},
			OfficialURL:  "https://www.legislation.gov.uk/uksi/2019/855",
		},
	}
}

func provisions() []domain.Provision {
	return []domain.Provision{
		{
			SourceID:   "UN_SECURITY_COUNCIL",
			ItemID:     "UNSCR_1267_OP4",
			Title:      "Resolution 1267 operative paragraph 4 on the Taliban",
			Text:       "Decides that all States shall freeze funds and other financial resources owned or controlled by the designated parties.",
			Parent:     "UNSCR 1267 (1999)",
			Kind:       "resolution_paragraph",
			RegimeID:   "UN_1267",
			IssuedDate: "1999-10-15",
			URL:        "https://undocs.org/S/RES/1267(1999)",
			Topics:     []string{"terrorism", "asset_freeze"},
		},
		{
			SourceID:   "UN_SECURITY_COUNCIL",
			ItemID:     "UNSCR_2253_OP2",
			Title:      "Resolution 2253 asset freeze on ISIL and Al-Qaida",
			Text:       "Decides that all States shall take the asset freeze, travel ban and arms embargo measures.",
			Parent:     "UNSCR 2253 (2015)",
			Kind:       "resolution_paragraph",
			RegimeID:   "UN_1267",
			IssuedDate: "2015-12-17",
			URL:        "https://undocs.org/S/RES/2253(2015)",
			Topics:     []string{"terrorism"},
		},
		{
			SourceID:   "EU_COUNCIL_SANCTIONS",
			ItemID:     "REG_2019_796_ART_3",
			Title:      "Freezing of funds for cyber-attacks",
			Text:       "All funds and economic resources belonging to natural or legal persons responsible for cyber-attacks shall be frozen.",
			Parent:     "Council Regulation (EU) 2019/796",
			Kind:       "article",
			RegimeID:   "EU_CYBER",
			IssuedDate: "2019-05-17",
			URL:        "https://eur-lex.europa.eu/eli/reg/2019/796/oj",
			Topics:     []string{"cyber", "asset_freeze"},
			Metadata:   map[string]any{"celex": "32019R0796"},
		},
		{
			SourceID:   "EU_COUNCIL_SANCTIONS",
			ItemID:     "DEC_2019_797_ART_4",
			Title:      "Entry restrictions for cyber-attack perpetrators",
			Text:       "Member States shall take the measures necessary to prevent the entry into their territories of listed natural persons.",
			Parent:     "Council Decision (CFSP) 2019/797",
			Kind:       "article",
			RegimeID:   "EU_CYBER",
			IssuedDate: "2019-05-17",
			URL:        "https://eur-lex.europa.eu/eli/dec/2019/797/oj",
			Topics:     []string{"cyber", "travel_ban"},
		},
		{
			SourceID:   "US_OFAC_REGULATIONS",
			ItemID:     "31_CFR_578_201",
			Title:      "Prohibited transactions involving malicious cyber-enabled activities",
			Text:       "All property and interests in property of persons listed in the Annex are blocked and may not be transferred.",
			Parent:     "31 CFR part 578",
			Kind:       "regulation",
			RegimeID:   "US_CYBER_EO13694",
			IssuedDate: "2015-12-31",
			URL:        "https://www.ecfr.gov/current/title-31/part-578",
			Topics:     []string{"cyber", "blocking"},
		},
		{
			SourceID:   "US_OFAC_REGULATIONS",
			ItemID:     "EO_13694_SEC_1",
			Title:      "Executive Order 13694 section 1",
			Text:       "All property of persons determined to be responsible for cyber-enabled activities is blocked.",
			Kind:       "executive_order_section",
			RegimeID:   "US_CYBER_EO13694",
			IssuedDate: "2015-04-01",
			URL:        "https://ofac.treasury.gov/media/5721/download",
			Topics:     []string{"cyber"},
		},
		{
			SourceID:   "US_OFAC_REGULATIONS",
			ItemID:     "OFAC_RANSOMWARE_ADVISORY",
			Title:      "Updated advisory on potential sanctions risks for ransomware payments",
			Text:       "Facilitating ransomware payments on behalf of victims may violate OFAC regulations.",
			Kind:       "guidance",
			IssuedDate: "2021-09-21",
			URL:        "https://ofac.treasury.gov/media/912441/download",
			Topics:     []string{"cyber", "ransomware"},
		},
		{
			SourceID:   "UK_OFSI_REGULATIONS",
			ItemID:     "SI_2019_855_REG_11",
			Title:      "Asset-freeze in relation to designated persons",
			Text:       "A person must not deal with funds or economic resources owned, held or controlled by a designated person.",
			Parent:     "The Cyber (Sanctions) (EU Exit) Regulations 2020",
			Kind:       "regulation",
			IssuedDate: "2020-12-31",
			URL:        "https://www.legislation.gov.uk/uksi/2020/597/regulation/11",
			Topics:     []string{"cyber", "ransomware"},
		},
		{
			SourceID:   "UK_OFSI_REGULATIONS",
			ItemID:     "OFSI_CYBER_GUIDANCE",
			Title:      "OFSI guidance on cyber sanctions",
			Text:       "Guidance on the operation of the cyber sanctions regime and reporting obligations.",
			Kind:       "guidance",
			IssuedDate: "2023-11-15",
			URL:        "https://www.gov.uk/government/publications/cyber-sanctions-guidance",
			Topics:     []string{"cyber"},
		},
		{
			SourceID:   "UK_OFSI_REGULATIONS",
			ItemID:     "RUSSIA_REG_2019_855_REG_6",
			Title:      "Making funds available to designated persons",
			Text:       "A person must not make funds available directly or indirectly to a designated person.",
			Parent:     "The Russia (Sanctions) (EU Exit) Regulations 2019",
			Kind:       "regulation",
			RegimeID:   "UK_RUSSIA",
			IssuedDate: "2019-04-10",
			URL:        "https://www.legislation.gov.uk/uksi/2019/855/regulation/6",
			Topics:     []string{"russia", "asset_freeze"},
			Metadata:   map[string]any{"si_number": "2019/855"},
		},
	}
}
