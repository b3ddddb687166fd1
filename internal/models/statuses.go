package models

type UserRole string
type ProjectStatus string
type ContactStatus string
type QuoteStatus string
type TestimonialStatus string
type ServiceType string
type BudgetRange string
type Timeline string
type OutboxStatus string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleWorker UserRole = "worker"

	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"

	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
	ContactStatusArchived  ContactStatus = "archived"

	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusReviewing QuoteStatus = "reviewing"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"

	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
	TestimonialStatusRejected TestimonialStatus = "rejected"

	ServiceTypeLandscaping  ServiceType = "landscaping"
	ServiceTypeGardenDesign ServiceType = "garden_design"
	ServiceTypeLawnCare     ServiceType = "lawn_care"
	ServiceTypeIrrigation   ServiceType = "irrigation"
	ServiceTypeHardscaping  ServiceType = "hardscaping"
	ServiceTypeTreeService  ServiceType = "tree_service"
	ServiceTypeMaintenance  ServiceType = "maintenance"
	ServiceTypeOther        ServiceType = "other"

	BudgetUnder1000 BudgetRange = "under_1000"
	Budget1000To5K  BudgetRange = "1000_5000"
	Budget5KTo10K   BudgetRange = "5000_10000"
	Budget10KTo25K  BudgetRange = "10000_25000"
	BudgetOver25K   BudgetRange = "over_25000"
	BudgetNotSure   BudgetRange = "not_sure"

	TimelineASAP     Timeline = "asap"
	TimelineOneMonth Timeline = "1_month"
	Timeline3Months  Timeline = "3_months"
	Timeline6Months  Timeline = "6_months"
	TimelineFlexible Timeline = "flexible"

	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)
