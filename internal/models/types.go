// internal/models/types.go
package models

import "time"

// Role is the access level of an application user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician:
		return true
	}
	return false
}

// User is an application account with a local credential.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password_hash"`
	Role         Role       `json:"role"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type EquipmentState string

const (
	EquipmentOperational  EquipmentState = "operational"
	EquipmentMaintenance  EquipmentState = "maintenance"
	EquipmentOutOfService EquipmentState = "out_of_service"
)

func (s EquipmentState) Valid() bool {
	switch s {
	case EquipmentOperational, EquipmentMaintenance, EquipmentOutOfService:
		return true
	}
	return false
}

// Equipment is one maintainable asset of the plant.
type Equipment struct {
	ID              int64          `json:"id"`
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Location        string         `json:"location"`
	InstallDate     *time.Time     `json:"install_date,omitempty"`
	State           EquipmentState `json:"state"`
	NextMaintenance *time.Time     `json:"next_maintenance,omitempty"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type WorkOrderStatus string

const (
	StatusToPlan        WorkOrderStatus = "to_plan"
	StatusInProgress    WorkOrderStatus = "in_progress"
	StatusDone          WorkOrderStatus = "done"
	StatusCancelled     WorkOrderStatus = "cancelled"
	StatusAwaitingParts WorkOrderStatus = "awaiting_parts"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusToPlan, StatusInProgress, StatusDone, StatusCancelled, StatusAwaitingParts:
		return true
	}
	return false
}

// WorkOrder is a unit of maintenance work against one equipment item
// ("intervention" in the persisted layout).
type WorkOrder struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"`
	EquipmentID    int64           `json:"equipment_id"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	TechnicianID   int64           `json:"technician_id"`
	PlannedDate    *time.Time      `json:"planned_date,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	Priority       Priority        `json:"priority"`
	Status         WorkOrderStatus `json:"status"`
	EstimatedCost  float64         `json:"estimated_cost"`
	ActualCost     float64         `json:"actual_cost"`
	Cause          string          `json:"cause,omitempty"`
	Resolution     string          `json:"resolution,omitempty"`
	CreatedBy      int64           `json:"created_by"`
}

// StockItem is one spare-part reference held in stock.
type StockItem struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"reference"`
	Designation  string  `json:"designation"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	MinThreshold float64 `json:"min_threshold"`
	Unit         string  `json:"unit"`
	Location     string  `json:"location"`
	Supplier     string  `json:"supplier"`
	UnitPrice    float64 `json:"unit_price"`
}

// Value is the derived stock value (quantity x unit price), never persisted.
func (s StockItem) Value() float64 { return s.Quantity * s.UnitPrice }

type ToolCondition string

const (
	ConditionExcellent ToolCondition = "excellent"
	ConditionGood      ToolCondition = "good"
	ConditionFair      ToolCondition = "fair"
	ConditionPoor      ToolCondition = "poor"
)

func (c ToolCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type ToolAvailability string

const (
	ToolAvailable    ToolAvailability = "available"
	ToolOnLoan       ToolAvailability = "on_loan"
	ToolInRepair     ToolAvailability = "in_repair"
	ToolOutOfService ToolAvailability = "out_of_service"
)

func (a ToolAvailability) Valid() bool {
	switch a {
	case ToolAvailable, ToolOnLoan, ToolInRepair, ToolOutOfService:
		return true
	}
	return false
}

// Tool is a shared piece of outillage that can be loaned out.
type Tool struct {
	ID               int64            `json:"id"`
	Reference        string           `json:"reference"`
	Name             string           `json:"name"`
	Type             string           `json:"type"`
	Brand            string           `json:"brand,omitempty"`
	Model            string           `json:"model,omitempty"`
	SerialNumber     string           `json:"serial_number,omitempty"`
	Condition        ToolCondition    `json:"condition"`
	Location         string           `json:"location"`
	AcquisitionDate  *time.Time       `json:"acquisition_date,omitempty"`
	AcquisitionPrice float64          `json:"acquisition_price"`
	CurrentValue     float64          `json:"current_value"`
	Availability     ToolAvailability `json:"availability"`
	Borrower         string           `json:"borrower,omitempty"`
	LoanDate         *time.Time       `json:"loan_date,omitempty"`
	ExpectedReturn   *time.Time       `json:"expected_return,omitempty"`
}

type ThirdPartyKind string

const (
	KindSupplier      ThirdPartyKind = "supplier"
	KindSubcontractor ThirdPartyKind = "subcontractor"
)

func (k ThirdPartyKind) Valid() bool {
	return k == KindSupplier || k == KindSubcontractor
}

// Contact is the shared contact block of third parties and personnel.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ThirdParty is an external supplier or subcontractor. Supplier-only and
// subcontractor-only fields stay zero-valued for the other kind.
type ThirdParty struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Kind           ThirdPartyKind `json:"kind"`
	Specialty      string         `json:"specialty,omitempty"`
	Contact        Contact        `json:"contact"`
	Address        string         `json:"address,omitempty"`
	ContractActive bool           `json:"contract_active"`
	ContractStart  *time.Time     `json:"contract_start,omitempty"`
	ContractEnd    *time.Time     `json:"contract_end,omitempty"`

	// Supplier only
	LeadTimeDays     int     `json:"lead_time_days,omitempty"`
	ReliabilityScore float64 `json:"reliability_score,omitempty"`

	// Subcontractor only
	HourlyRate       float64  `json:"hourly_rate,omitempty"`
	InterventionZone string   `json:"intervention_zone,omitempty"`
	Certifications   []string `json:"certifications,omitempty"`
	LiabilityInsured bool     `json:"liability_insured,omitempty"`
	LiabilityAmount  float64  `json:"liability_amount,omitempty"`
}

type PersonnelStatus string

const (
	PersonnelActive   PersonnelStatus = "active"
	PersonnelLeave    PersonnelStatus = "leave"
	PersonnelAbsent   PersonnelStatus = "absent"
	PersonnelTraining PersonnelStatus = "training"
	PersonnelDetached PersonnelStatus = "detached"
)

func (s PersonnelStatus) Valid() bool {
	switch s {
	case PersonnelActive, PersonnelLeave, PersonnelAbsent, PersonnelTraining, PersonnelDetached:
		return true
	}
	return false
}

// Personnel is one maintenance staff record.
type Personnel struct {
	ID             int64           `json:"id"`
	FullName       string          `json:"full_name"`
	BadgeNumber    string          `json:"badge_number"`
	JobTitle       string          `json:"job_title"`
	Department     string          `json:"department,omitempty"`
	HourlyCost     float64         `json:"hourly_cost"`
	Status         PersonnelStatus `json:"status"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	HireDate       *time.Time      `json:"hire_date,omitempty"`
	ContractType   string          `json:"contract_type,omitempty"`
	Contact        Contact         `json:"contact"`
}

// Session is the server-side state behind a session cookie.
type Session struct {
	UserID   int64
	Username string
	Role     Role
	Expiry   time.Time
}
