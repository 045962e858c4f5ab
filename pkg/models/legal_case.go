package models

import "time"

// CaseStatus represents the lifecycle state of a litigation case.
type CaseStatus string

const (
	CaseStatusNew                CaseStatus = "NEW"
	CaseStatusActive             CaseStatus = "ACTIVE"
	CaseStatusOnHold             CaseStatus = "ON_HOLD"
	CaseStatusClosed             CaseStatus = "CLOSED"
	CaseStatusCorrectionRequired CaseStatus = "CORRECTION_REQUIRED"
)

// CaseType classifies a litigation case.
type CaseType string

const (
	CaseTypeMoneyRecovery   CaseType = "MONEY_RECOVERY"
	CaseTypeDamagesRecovery CaseType = "DAMAGES_RECOVERY"
	CaseTypeAppeal          CaseType = "APPEAL"
	CaseTypeLandCase        CaseType = "LAND_CASE"
	CaseTypeCriminalCase    CaseType = "CRIMINAL_CASE"
	CaseTypeDisciplinary    CaseType = "DISCIPLINARY"
	CaseTypeOther           CaseType = "OTHER"
)

// LegalCase is a litigation record. Cases are plain records: they do not
// go through the approval workflow, only through status edits.
type LegalCase struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"         validate:"required"`
	CaseType          CaseType       `json:"caseType"      validate:"required"`
	ReferenceNumber   string         `json:"referenceNumber"`
	Status            CaseStatus     `json:"status"        validate:"required"`
	PartiesInvolved   string         `json:"partiesInvolved"`
	NatureOfCase      string         `json:"natureOfCase"`
	FinancialExposure float64        `json:"financialExposure,omitempty"`
	CourtAuthority    string         `json:"courtAuthority"`
	SummaryOfFacts    string         `json:"summaryOfFacts"`
	AssignedOfficerID string         `json:"assignedOfficerId,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	SpecificData      map[string]any `json:"specificData,omitempty"`
	Documents         []Document     `json:"documents"`
}
