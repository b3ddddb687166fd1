package validator

import (
	"log"

	"landscaping_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum tags used by the request DTOs.
// Empty values pass every enum rule; presence is a `required` concern.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failing is a startup bug, not a runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("user-role", validateUserRole)
	mustRegister("project-status", validateProjectStatus)
	mustRegister("contact-status", validateContactStatus)
	mustRegister("quote-status", validateQuoteStatus)
	mustRegister("testimonial-status", validateTestimonialStatus)
	mustRegister("service-type", validateServiceType)
	mustRegister("budget-range", validateBudgetRange)
	mustRegister("timeline", validateTimeline)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleWorker:
		return true
	default:
		return false
	}
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProjectStatus(value) {
	case models.ProjectStatusPlanning, models.ProjectStatusInProgress, models.ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

func validateContactStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContactStatus(value) {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusResponded, models.ContactStatusArchived:
		return true
	default:
		return false
	}
}

func validateQuoteStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.QuoteStatus(value) {
	case models.QuoteStatusNew, models.QuoteStatusReviewing, models.QuoteStatusQuoted,
		models.QuoteStatusAccepted, models.QuoteStatusRejected, models.QuoteStatusCompleted:
		return true
	default:
		return false
	}
}

func validateTestimonialStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TestimonialStatus(value) {
	case models.TestimonialStatusPending, models.TestimonialStatusApproved, models.TestimonialStatusRejected:
		return true
	default:
		return false
	}
}

func validateServiceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ServiceType(value) {
	case models.ServiceTypeLandscaping, models.ServiceTypeGardenDesign, models.ServiceTypeLawnCare,
		models.ServiceTypeIrrigation, models.ServiceTypeHardscaping, models.ServiceTypeTreeService,
		models.ServiceTypeMaintenance, models.ServiceTypeOther:
		return true
	default:
		return false
	}
}

func validateBudgetRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BudgetRange(value) {
	case models.BudgetUnder1000, models.Budget1000To5K, models.Budget5KTo10K,
		models.Budget10KTo25K, models.BudgetOver25K, models.BudgetNotSure:
		return true
	default:
		return false
	}
}

func validateTimeline(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Timeline(value) {
	case models.TimelineASAP, models.TimelineOneMonth, models.Timeline3Months,
		models.Timeline6Months, models.TimelineFlexible:
		return true
	default:
		return false
	}
}
