package seeders

import (
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func orderStatusesData() []models.OrderStatus {
	return []models.OrderStatus{
		{Name: models.StatusAvailable},
		{Name: models.StatusBiddingOngoing},
		{Name: models.StatusPendingPayment},
		{Name: models.StatusPendingAcknowledgement},
		{Name: models.StatusOngoing},
		{Name: models.StatusSubmitted},
		{Name: models.StatusCompleted},
		{Name: models.StatusUndergoingRevision},
		{Name: models.StatusCancelled},
	}
}

func orderTypesData() []models.OrderType {
	return []models.OrderType{
		{Name: models.VisibilityPublic},
		{Name: models.VisibilityPrivate},
	}
}

func fileTypesData() []models.FileType {
	return []models.FileType{
		{Name: models.FileTypeClientSupporting},
		{Name: models.FileTypeRevisionSupporting},
		{Name: models.FileTypeSubmittedPaper},
	}
}

func serviceTypesData() []models.ServiceType {
	return []models.ServiceType{
		{Name: "Writing"},
		{Name: "Rewriting"},
		{Name: "Editing"},
		{Name: "Proofreading"},
	}
}

func currenciesData() []models.Currency {
	return []models.Currency{
		{Code: "USD", Symbol: "$"},
		{Code: "EUR", Symbol: "€"},
		{Code: "GBP", Symbol: "£"},
	}
}

func orderFormatsData() []models.OrderFormat {
	return []models.OrderFormat{
		{Name: "Double spaced", InUse: true},
		{Name: "Single spaced"},
	}
}

func disciplinesData() []models.Discipline {
	return []models.Discipline{
		{Name: "English"},
		{Name: "History"},
		{Name: "Nursing"},
		{Name: "Business"},
		{Name: "Psychology"},
		{Name: "Computer Science"},
	}
}

func assignmentTypesData() []models.AssignmentType {
	return []models.AssignmentType{
		{Name: "Essay"},
		{Name: "Research paper"},
		{Name: "Case study"},
		{Name: "Term paper"},
		{Name: "Dissertation"},
	}
}

func educationLevelsData() []models.EducationLevel {
	return []models.EducationLevel{
		{Name: "High school"},
		{Name: "Undergraduate"},
		{Name: "Master's"},
		{Name: "Doctoral"},
	}
}

func citationStylesData() []models.CitationStyle {
	return []models.CitationStyle{
		{Name: "APA"},
		{Name: "MLA"},
		{Name: "Chicago"},
		{Name: "Harvard"},
	}
}

func gendersData() []models.Gender {
	return []models.Gender{
		{Name: "Female"},
		{Name: "Male"},
		{Name: "Prefer not to say"},
	}
}

func countriesData() []models.Country {
	return []models.Country{
		{Name: "United States", Code: "US"},
		{Name: "United Kingdom", Code: "GB"},
		{Name: "Canada", Code: "CA"},
		{Name: "Australia", Code: "AU"},
		{Name: "Kenya", Code: "KE"},
	}
}

func dayTimesData() []models.DayTime {
	return []models.DayTime{
		{Label: "8:00 AM", Value: "08:00"},
		{Label: "12:00 PM", Value: "12:00"},
		{Label: "4:00 PM", Value: "16:00"},
		{Label: "8:00 PM", Value: "20:00"},
		{Label: "11:59 PM", Value: "23:59"},
	}
}

func pageDiscountsData() []models.PageDiscount {
	return []models.PageDiscount{
		{MinPages: 2, Percent: decimal.RequireFromString("3")},
		{MinPages: 5, Percent: decimal.RequireFromString("5")},
		{MinPages: 10, Percent: decimal.RequireFromString("10")},
		{MinPages: 20, Percent: decimal.RequireFromString("15")},
	}
}

func submissionChecklistData() []models.SubmissionChecklistItem {
	return []models.SubmissionChecklistItem{
		{Aspect: "instructions", Description: "The paper follows every instruction in the order"},
		{Aspect: "formatting", Description: "Formatting matches the requested style and format"},
		{Aspect: "citations", Description: "Sources are cited correctly and the count matches"},
		{Aspect: "grammar", Description: "Spelling, grammar and punctuation are correct"},
		{Aspect: "structure", Description: "Introduction, body and conclusion are well organized"},
		{Aspect: "length", Description: "The paper meets the ordered page count"},
	}
}

func extrasData() []models.Extra {
	return []models.Extra{
		{Name: "Plagiarism report", Price: decimal.RequireFromString("9.99")},
		{Name: "Top writer", Price: decimal.RequireFromString("14.99")},
		{Name: "Abstract page", Price: decimal.RequireFromString("7.50")},
		{Name: "Progressive delivery", Price: decimal.RequireFromString("12.00")},
	}
}

func grammarQuestionsData() []models.GrammarQuestion {
	return []models.GrammarQuestion{
		{
			Question: "Choose the correct sentence.",
			Options:  datatypes.JSON(`["Their going home.","They're going home.","There going home."]`),
			Answer:   "They're going home.",
		},
		{
			Question: "Which word completes the sentence: The committee ___ reached a decision.",
			Options:  datatypes.JSON(`["has","have","having"]`),
			Answer:   "has",
		},
		{
			Question: "Pick the sentence with correct comma usage.",
			Options:  datatypes.JSON(`["However, the results were clear.","However the results, were clear.","However the results were, clear."]`),
			Answer:   "However, the results were clear.",
		},
		{
			Question: "Select the correctly spelled word.",
			Options:  datatypes.JSON(`["accommodate","acommodate","accomodate"]`),
			Answer:   "accommodate",
		},
	}
}
