package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/pkg/logger"
)

// ReportService renders the registry to a spreadsheet for offline review.
type ReportService interface {
	BuildRegistryWorkbook() (*excelize.File, error)
}

type reportService struct {
	establishmentService EstablishmentService
	inspectionService    InspectionService
}

func NewReportService(establishmentService EstablishmentService, inspectionService InspectionService) ReportService {
	return &reportService{
		establishmentService: establishmentService,
		inspectionService:    inspectionService,
	}
}

const (
	establishmentsSheet = "Establishments"
	inspectionsSheet    = "Inspections"
)

func (s *reportService) BuildRegistryWorkbook() (*excelize.File, error) {
	detailed, err := s.establishmentService.ListAllWithDetails()
	if err != nil {
		logger.Error("Failed to load establishments for report", err)
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), establishmentsSheet)
	if _, err := f.NewSheet(inspectionsSheet); err != nil {
		return nil, err
	}

	if err := s.writeEstablishments(f, detailed); err != nil {
		return nil, err
	}
	if err := s.writeInspections(f, detailed); err != nil {
		return nil, err
	}

	logger.Info("Registry workbook built", map[string]interface{}{
		"establishments": len(detailed),
	})
	return f, nil
}

func (s *reportService) writeEstablishments(f *excelize.File, detailed []model.EstablishmentWithDetails) error {
	headers := []interface{}{
		"ID", "Name", "City", "State", "Type", "Cuisine", "License",
		"Latest Grade", "Latest Score", "Total Inspections", "Avg Score",
		"Violations (Latest)", "Days Since Inspection",
	}
	if err := f.SetSheetRow(establishmentsSheet, "A1", &headers); err != nil {
		return err
	}

	for i, est := range detailed {
		cuisine := ""
		if est.Cuisine != nil {
			cuisine = *est.Cuisine
		}
		license := ""
		if est.LicenseNumber != nil {
			license = *est.LicenseNumber
		}
		grade, score := "", ""
		if est.LatestInspection != nil {
			grade = string(est.LatestInspection.Grade)
			score = fmt.Sprintf("%d", est.LatestInspection.Score)
		}

		row := []interface{}{
			est.ID, est.Name, est.City, est.State, string(est.BusinessType), cuisine, license,
			grade, score, est.Stats.TotalInspections, est.Stats.AvgScore,
			est.Stats.ViolationCount, est.Stats.DaysSinceInspection,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(establishmentsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *reportService) writeInspections(f *excelize.File, detailed []model.EstablishmentWithDetails) error {
	headers := []interface{}{
		"ID", "Establishment ID", "Establishment", "Date", "Score", "Grade",
		"Inspector", "Inspector ID", "Violations",
	}
	if err := f.SetSheetRow(inspectionsSheet, "A1", &headers); err != nil {
		return err
	}

	rowNum := 2
	for _, est := range detailed {
		history, err := s.inspectionService.GetInspectionsByEstablishmentID(est.ID)
		if err != nil {
			return err
		}
		for _, insp := range history {
			row := []interface{}{
				insp.ID, insp.EstablishmentID, est.Name,
				insp.InspectionDate.Format("2006-01-02"), insp.Score, string(insp.Grade),
				insp.InspectorName, insp.InspectorID, len(insp.Violations),
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(inspectionsSheet, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}
