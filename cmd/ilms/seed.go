package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nextgen-analytics/ilms/pkg/models"
	cli "github.com/urfave/cli/v3"
)

// seedCommand loads a demo data set: five accounts, two litigation
// cases, and two agreements sitting at different pipeline positions.
func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load a demo data set into the store",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			now := time.Now().UTC()

			users := []models.User{
				{ID: "usr_1", Name: "Sarah Connor", Role: models.RoleLegalOfficer, Email: "sarah.c@legal.corp", Active: true},
				{ID: "usr_2", Name: "John Doe", Role: models.RoleManagement, Email: "john.d@legal.corp", Active: true},
				{ID: "usr_3", Name: "Admin User", Role: models.RoleAdmin, Email: "admin@legal.corp", Active: true},
				{ID: "usr_4", Name: "Mike Ross", Role: models.RoleSupervisor, Email: "mike.r@legal.corp", Active: true},
				{ID: "usr_5", Name: "Pat Viewer", Role: models.RoleViewer, Email: "pat.v@legal.corp", Active: true},
			}

			for _, user := range users {
				if err := app.store.Users().Create(ctx, user); err != nil {
					return fmt.Errorf("failed to seed user %s: %w", user.Email, err)
				}
			}

			cases := []models.LegalCase{
				{
					ID:                "case_001",
					Title:             "Alpha Corp Debt Recovery",
					CaseType:          models.CaseTypeMoneyRecovery,
					ReferenceNumber:   "MR-2026-001",
					Status:            models.CaseStatusActive,
					PartiesInvolved:   "Our Corp vs Alpha Corp",
					NatureOfCase:      "Unpaid invoices for services rendered",
					FinancialExposure: 250000,
					CourtAuthority:    "High Court of Justice",
					SummaryOfFacts:    "Defendant has failed to pay the balance after multiple reminders.",
					AssignedOfficerID: "usr_1",
					CreatedAt:         now.Add(-45 * 24 * time.Hour),
					UpdatedAt:         now.Add(-10 * 24 * time.Hour),
					Documents:         []models.Document{},
				},
				{
					ID:              "case_002",
					Title:           "Property Boundary Dispute - West Sector",
					CaseType:        models.CaseTypeLandCase,
					ReferenceNumber: "LC-2026-012",
					Status:          models.CaseStatusNew,
					PartiesInvolved: "Our Corp vs Private Landowner B",
					NatureOfCase:    "Boundary encroachment on the western facility wall",
					CourtAuthority:  "Land Tribunal",
					SummaryOfFacts:  "New fencing erected by neighbor overlaps company survey lines.",
					CreatedAt:       now.Add(-5 * 24 * time.Hour),
					UpdatedAt:       now.Add(-5 * 24 * time.Hour),
					Documents:       []models.Document{},
				},
			}

			for _, legalCase := range cases {
				if err := app.store.Cases().Create(ctx, legalCase); err != nil {
					return fmt.Errorf("failed to seed case %s: %w", legalCase.ID, err)
				}
			}

			agreements := []models.Agreement{
				{
					ID:                   "agr_001",
					Title:                "Annual IT Support MSA",
					Type:                 "Service Agreement",
					Parties:              "Our Corp, TechSolutions Ltd",
					DurationMonths:       12,
					Value:                120000,
					Status:               models.AgreementStatusPendingReview,
					CurrentVersion:       1,
					ExpiryDate:           now.Add(12 * 30 * 24 * time.Hour),
					CreatedAt:            now.Add(-2 * 24 * time.Hour),
					UpdatedAt:            now.Add(-2 * 24 * time.Hour),
					Documents:            []models.Document{},
					Comments:             []models.Comment{},
					CurrentApprovalLevel: 0,
					MaxApprovalLevels:    3,
				},
				{
					ID:                   "agr_002",
					Title:                "Lease Renewal: Tower A",
					Type:                 "Real Estate",
					Parties:              "Our Corp, Landmark Property",
					DurationMonths:       60,
					Value:                4500000,
					Status:               models.AgreementStatusUnderRevision,
					CurrentVersion:       2,
					ExpiryDate:           now.Add(60 * 30 * 24 * time.Hour),
					CreatedAt:            now.Add(-20 * 24 * time.Hour),
					UpdatedAt:            now.Add(-3 * 24 * time.Hour),
					Documents:            []models.Document{},
					Comments:             []models.Comment{},
					CurrentApprovalLevel: 1,
					MaxApprovalLevels:    3,
				},
			}

			for _, agreement := range agreements {
				if err := app.store.Agreements().Create(ctx, agreement); err != nil {
					return fmt.Errorf("failed to seed agreement %s: %w", agreement.ID, err)
				}
			}

			fmt.Printf("Seeded %d users, %d cases, %d agreements\n", len(users), len(cases), len(agreements))

			return nil
		},
	}
}
