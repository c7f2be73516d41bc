package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedReferenceData fills every reference table the order workflows resolve
// against. Rows that already exist (same unique name/code) are left untouched,
// so it is safe to run on every start.
func SeedReferenceData(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	tables := []struct {
		name string
		rows interface{}
	}{
		{"order_statuses", rowsOf(orderStatusesData())},
		{"order_types", rowsOf(orderTypesData())},
		{"file_types", rowsOf(fileTypesData())},
		{"service_types", rowsOf(serviceTypesData())},
		{"currencies", rowsOf(currenciesData())},
		{"order_formats", rowsOf(orderFormatsData())},
		{"disciplines", rowsOf(disciplinesData())},
		{"assignment_types", rowsOf(assignmentTypesData())},
		{"education_levels", rowsOf(educationLevelsData())},
		{"citation_styles", rowsOf(citationStylesData())},
		{"genders", rowsOf(gendersData())},
		{"countries", rowsOf(countriesData())},
		{"day_times", rowsOf(dayTimesData())},
		{"page_discounts", rowsOf(pageDiscountsData())},
		{"submission_checklist_items", rowsOf(submissionChecklistData())},
		{"extras", rowsOf(extrasData())},
		{"grammar_questions", rowsOf(grammarQuestionsData())},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(table.rows)
			if result.Error != nil {
				return fmt.Errorf("failed to seed %s: %w", table.name, result.Error)
			}
			logger.Debug("Seeded reference table",
				zap.String("table", table.name),
				zap.Int64("inserted", result.RowsAffected),
			)
		}
		return nil
	})
}

func rowsOf[T any](rows []T) *[]T {
	return &rows
}
